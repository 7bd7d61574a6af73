package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/fourier/internal/config"
	"github.com/san-kum/fourier/internal/epicycle"
)

type Data struct {
	Coefficients []string  `json:"coefficients"`
	Resolution   int       `json:"resolution"`
	Endless      bool      `json:"endless"`
	Samples      int       `json:"samples"`
	Phi          []float64 `json:"phi"`
	Real         []float64 `json:"real"`
	Imag         []float64 `json:"imag"`
}

// NewData collects a finished run for export.
func NewData(coeffs []complex128, resolution int, endless bool, s epicycle.Series) Data {
	d := Data{
		Coefficients: make([]string, len(coeffs)),
		Resolution:   resolution,
		Endless:      endless,
		Samples:      s.Len(),
		Phi:          s.Phi,
		Real:         s.X,
		Imag:         s.Y,
	}
	for i, c := range coeffs {
		d.Coefficients[i] = config.FormatCoefficient(c)
	}
	return d
}

func JSON(w io.Writer, d Data) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(d)
}
