package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/fourier/internal/geometry"
)

func TestPlotUsesConfiguredTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fourier.yaml")
	if err := os.WriteFile(path, []byte("theme: ocean\n"), 0644); err != nil {
		t.Fatal(err)
	}
	configFile, theme = path, ""
	t.Cleanup(func() { configFile = "" })

	cfg, err := resolveConfig(&cobra.Command{})
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	v := plotViews(cfg, geometry.Limits([]float64{0, 1}))
	if v.Theme.Name != "ocean" {
		t.Errorf("expected ocean theme from the config file, got %s", v.Theme.Name)
	}
}
