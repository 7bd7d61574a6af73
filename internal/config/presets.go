package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"cosine": {
		Resolution: 256, Shape: "cos", Order: 1, FrameIntervalMs: 20,
	},
	"sine": {
		Resolution: 256, Shape: "sin", Order: 1, FrameIntervalMs: 20,
	},
	"square": {
		Resolution: 256, Shape: "rect", Order: 9, FrameIntervalMs: 20,
	},
	"square-fine": {
		Resolution: 512, Shape: "rect", Order: 31, FrameIntervalMs: 10, ShowNegative: true,
	},
	"triangle": {
		Resolution: 256, Shape: "tri", Order: 9, FrameIntervalMs: 20,
	},
	"sawtooth": {
		Resolution: 256, FrameIntervalMs: 20,
		Coefficients: sawtooth(8),
	},
	"spiral": {
		Resolution: 360, FrameIntervalMs: 15, Endless: true, ShowNegative: true,
		Coefficients: []string{"0.2+0.1i", "1", "0.5i", "-0.25", "0.125-0.125i"},
	},
}

// sawtooth returns c_k = -2i·(-1)^(k+1)/(kπ), the series of a falling ramp.
func sawtooth(order int) []string {
	c := make([]string, order+1)
	c[0] = "0"
	for k := 1; k <= order; k++ {
		sign := 1.0
		if k%2 == 0 {
			sign = -1
		}
		c[k] = FormatCoefficient(complex(0, -2*sign/(float64(k)*math.Pi)))
	}
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Coefficients = append([]string(nil), p.Coefficients...)
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
