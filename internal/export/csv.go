package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/fourier/internal/epicycle"
)

// CSV writes one row per sample: the time axis value and the reconstructed
// point. Rows are in frame order, so phi runs from oldest to newest.
func CSV(w io.Writer, s epicycle.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"phi", "real", "imag"}); err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		row := []string{
			strconv.FormatFloat(s.Phi[i], 'f', 6, 64),
			strconv.FormatFloat(s.X[i], 'f', 6, 64),
			strconv.FormatFloat(s.Y[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
