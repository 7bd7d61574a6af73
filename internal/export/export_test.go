package export_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/fourier/internal/config"
	"github.com/san-kum/fourier/internal/export"
	"github.com/san-kum/fourier/internal/geometry"
	"github.com/san-kum/fourier/internal/sequencer"
)

func finishedRun(t *testing.T, shape string, order int, neg bool) (*sequencer.Sequencer, geometry.Frame, geometry.Bounds) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Resolution = 8
	cfg.Shape = shape
	cfg.Order = order
	cfg.ShowNegative = neg
	seq, b, err := sequencer.Build(cfg)
	require.NoError(t, err)

	var last geometry.Frame
	err = seq.Run(context.Background(), sequencer.RendererFunc(func(f geometry.Frame, _ sequencer.Status) error {
		last = f
		return nil
	}))
	require.NoError(t, err)
	return seq, last, b
}

func TestSVG(t *testing.T) {
	_, f, b := finishedRun(t, "rect", 5, true)

	var buf bytes.Buffer
	require.NoError(t, export.SVG(&buf, f, b, 400))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.True(t, strings.HasSuffix(out, "</svg>\n"))
	require.Equal(t, 2, strings.Count(out, "<path "))
	require.Contains(t, out, "stroke-dasharray")
	require.Equal(t, len(f.Circles), strings.Count(out, "<circle "))
}

func TestSVGRejectsSize(t *testing.T) {
	require.Error(t, export.SVG(io.Discard, geometry.Frame{}, geometry.Bounds{Value: 1}, 0))
}

func TestCSV(t *testing.T) {
	seq, _, _ := finishedRun(t, "cos", 1, false)

	var buf bytes.Buffer
	require.NoError(t, export.CSV(&buf, seq.State().Series()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 10)
	require.Equal(t, "phi,real,imag", lines[0])
	require.Equal(t, "-6.283185,1.000000,0.000000", lines[1])
	require.True(t, strings.HasPrefix(lines[9], "0.000000,1.000000,"))
}

func TestJSON(t *testing.T) {
	seq, _, _ := finishedRun(t, "sin", 1, false)
	st := seq.State()

	var buf bytes.Buffer
	d := export.NewData(st.Coefficients(), 8, false, st.Series())
	require.NoError(t, export.JSON(&buf, d))

	var got export.Data
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, 9, got.Samples)
	require.Len(t, got.Coefficients, 2)
	require.Len(t, got.Phi, 9)
	require.InDelta(t, 0, got.Phi[8], 1e-12)
}

func TestWriterZstd(t *testing.T) {
	var buf bytes.Buffer
	w, err := export.Writer(&buf, true)
	require.NoError(t, err)
	_, err = io.WriteString(w, "phi,real,imag\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := zstd.NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()
	plain, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "phi,real,imag\n", string(plain))
}

func TestWriterPlain(t *testing.T) {
	var buf bytes.Buffer
	w, err := export.Writer(&buf, false)
	require.NoError(t, err)
	_, err = io.WriteString(w, "x")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "x", buf.String())
}
