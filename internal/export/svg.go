package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/fourier/internal/geometry"
)

// Colors match the classic terminal theme.
const (
	colorPositive  = "#ff3333"
	colorNegative  = "#3377ff"
	colorCircle    = "#c0c0c0"
	colorVector    = "#ff7f0e"
	colorNegVector = "#17becf"
	colorAxis      = "#444444"
)

// SVG draws the complex-plane view of a frame as a square image of the given
// size. The axes span ±b.Value so every frame of a run shares one scale.
func SVG(w io.Writer, f geometry.Frame, b geometry.Bounds, size int) error {
	if size <= 0 {
		return fmt.Errorf("export: svg size must be positive, got %d", size)
	}
	lim := b.Value
	if lim <= 0 {
		lim = 1
	}
	px := func(z complex128) (float64, float64) {
		x := (real(z) + lim) / (2 * lim) * float64(size)
		y := float64(size) - (imag(z)+lim)/(2*lim)*float64(size)
		return x, y
	}
	scale := float64(size) / (2 * lim)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, size, size, size, size))

	half := float64(size) / 2
	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="0.5">
<line x1="0" y1="%.1f" x2="%d" y2="%.1f"/>
<line x1="%.1f" y1="0" x2="%.1f" y2="%d"/>
</g>
`, colorAxis, half, size, half, half, half, size))

	for _, l := range f.ComplexPlane {
		if len(l.X) < 2 {
			continue
		}
		color, dash := colorPositive, ""
		if l.Sign == geometry.Negative {
			color, dash = colorNegative, ` stroke-dasharray="4 3"`
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5"%s d="M`, color, dash))
		for i := range l.X {
			x, y := px(complex(l.X[i], l.Y[i]))
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString(fmt.Sprintf("<g fill=\"none\" stroke=\"%s\" stroke-width=\"0.75\">\n", colorCircle))
	for _, c := range f.Circles {
		x, y := px(c.Center)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, x, y, c.Radius*scale))
	}
	sb.WriteString("</g>\n")

	for _, s := range f.Segments {
		color := colorVector
		if s.Sign == geometry.Negative {
			color = colorNegVector
		}
		x1, y1 := px(s.From)
		x2, y2 := px(s.To)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>
`, x1, y1, x2, y2, color))
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
