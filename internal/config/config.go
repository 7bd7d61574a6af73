package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fourier/internal/epicycle"
)

const (
	DefaultResolution = 256
	DefaultShape      = "cos"
	DefaultOrder      = 9
	DefaultIntervalMs = 20
	DefaultTheme      = "classic"
)

type Config struct {
	Resolution      int      `yaml:"resolution"`
	Coefficients    []string `yaml:"coefficients,omitempty"`
	Shape           string   `yaml:"shape"`
	Order           int      `yaml:"order"`
	Endless         bool     `yaml:"endless"`
	ShowNegative    bool     `yaml:"show_negative_frequencies"`
	FrameIntervalMs int      `yaml:"frame_interval_ms"`
	WaitForInput    bool     `yaml:"wait_for_input_before_start"`
	Theme           string   `yaml:"theme,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Resolution:      DefaultResolution,
		Shape:           DefaultShape,
		Order:           DefaultOrder,
		FrameIntervalMs: DefaultIntervalMs,
		Theme:           DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base; keys missing from the file keep the
// values of base. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	cfg.Coefficients = append([]string(nil), base.Coefficients...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first invalid field as an *epicycle.ConfigurationError.
func (c *Config) Validate() error {
	if c.Resolution <= 0 {
		return &epicycle.ConfigurationError{Field: "resolution", Value: c.Resolution, Reason: "must be positive"}
	}
	if c.FrameIntervalMs <= 0 {
		return &epicycle.ConfigurationError{Field: "frame_interval_ms", Value: c.FrameIntervalMs, Reason: "must be positive"}
	}
	if len(c.Coefficients) > 0 {
		coeffs, err := ParseCoefficients(c.Coefficients)
		if err != nil {
			return err
		}
		var anomaly *epicycle.NumericAnomalyError
		if err := epicycle.CheckFinite(coeffs); errors.As(err, &anomaly) {
			return &epicycle.ConfigurationError{Field: "coefficients", Value: c.Coefficients[anomaly.Index], Reason: "must be finite"}
		} else if err != nil {
			return err
		}
		return nil
	}
	shape, err := epicycle.ParseShape(c.Shape)
	if err != nil {
		return err
	}
	if (shape == epicycle.Rectangular || shape == epicycle.Triangular) && c.Order <= 0 {
		return &epicycle.ConfigurationError{Field: "order", Value: c.Order, Reason: "must be positive"}
	}
	return nil
}

// Resolve returns the coefficient sequence of the configured source: the
// explicit list if present, otherwise shape and order.
func (c *Config) Resolve() ([]complex128, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var p epicycle.Provider
	if len(c.Coefficients) > 0 {
		explicit, err := ParseCoefficients(c.Coefficients)
		if err != nil {
			return nil, err
		}
		p = epicycle.NewProvider(explicit, "", 0)
	} else {
		shape, _ := epicycle.ParseShape(c.Shape)
		p = epicycle.NewProvider(nil, shape, c.Order)
	}
	return p.Coefficients()
}

// ParseCoefficients parses complex literals such as "1", "-0.5i", "1+2i",
// "(0.3-1j)" or a bare "j". Both i and j are accepted as the imaginary unit.
func ParseCoefficients(values []string) ([]complex128, error) {
	out := make([]complex128, 0, len(values))
	for _, v := range values {
		z, err := strconv.ParseComplex(normalizeComplex(v), 128)
		if err != nil {
			return nil, &epicycle.ConfigurationError{Field: "coefficients", Value: v, Reason: "not a complex number"}
		}
		out = append(out, z)
	}
	return out, nil
}

// normalizeComplex rewrites v into the form strconv.ParseComplex accepts:
// no blanks or parentheses, a trailing i as the unit and an explicit 1 in
// front of a bare unit.
func normalizeComplex(v string) string {
	s := strings.ReplaceAll(strings.TrimSpace(v), " ", "")
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		s = s[1 : len(s)-1]
	}
	n := len(s)
	if n == 0 {
		return s
	}
	switch s[n-1] {
	case 'j', 'J', 'I':
		s = s[:n-1] + "i"
	}
	if s[n-1] == 'i' && (n == 1 || s[n-2] == '+' || s[n-2] == '-') {
		s = s[:n-1] + "1i"
	}
	return s
}

// FormatCoefficient writes z in the form ParseCoefficients reads back.
func FormatCoefficient(z complex128) string {
	return strconv.FormatComplex(z, 'g', -1, 128)
}
