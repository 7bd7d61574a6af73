package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fourier/internal/config"
	"github.com/san-kum/fourier/internal/epicycle"
	"github.com/san-kum/fourier/internal/export"
	"github.com/san-kum/fourier/internal/geometry"
	"github.com/san-kum/fourier/internal/sequencer"
	"github.com/san-kum/fourier/internal/viz"
)

var (
	resolution   int
	coefficients []string
	shape        string
	order        int
	endless      bool
	waitForInput bool
	intervalMs   int
	showNegative bool
	configFile   string
	preset       string
	theme        string
	useZstd      bool
	svgSize      int
)

// main registers the commands and runs the live animation when no subcommand
// is given. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "fourier",
		Short:        "complex fourier series drawn as epicycles",
		SilenceUsage: true,
		RunE:         runLive,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&resolution, "resolution", "r", config.DefaultResolution, "frames per period")
	flags.StringSliceVarP(&coefficients, "coefficients", "c", nil, "explicit coefficients c_0,c_1,... (e.g. 0,1,0.5j)")
	flags.StringVarP(&shape, "shape", "s", config.DefaultShape, "built-in shape: "+shapeNames())
	flags.IntVarP(&order, "order", "n", config.DefaultOrder, "highest harmonic of the built-in shape")
	flags.BoolVarP(&endless, "endless", "e", false, "animate forever")
	flags.BoolVarP(&endless, "loop", "l", false, "alias for --endless")
	flags.BoolVarP(&waitForInput, "wait", "w", false, "wait for a key press before starting")
	flags.IntVarP(&intervalMs, "interval", "i", config.DefaultIntervalMs, "milliseconds between frames")
	flags.BoolVar(&showNegative, "neg", false, "mirror the negative-frequency chain")
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")
	flags.StringVar(&theme, "theme", "", "color theme: "+strings.Join(viz.ThemeNames(), ", "))
	_ = flags.MarkHidden("loop")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "run one period without a terminal UI and print the final views",
		Args:  cobra.NoArgs,
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:       "export [svg|csv|json]",
		Short:     "run one period and write it to stdout",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"svg", "csv", "json"},
		RunE:      exportRun,
	}
	exportCmd.Flags().BoolVar(&useZstd, "zstd", false, "compress output with zstd")
	exportCmd.Flags().IntVar(&svgSize, "size", 600, "svg width and height in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "pick a preset interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := viz.RunMenu(theme)
			if err != nil {
				return err
			}
			return finish(m)
		},
	}

	rootCmd.AddCommand(plotCmd, exportCmd, presetsCmd, configCmd, menuCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func shapeNames() string {
	names := make([]string, 0, len(epicycle.Shapes()))
	for _, s := range epicycle.Shapes() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// resolveConfig layers defaults, preset, config file and explicitly set flags
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("resolution") {
		cfg.Resolution = resolution
	}
	if f.Changed("coefficients") {
		cfg.Coefficients = coefficients
	}
	if f.Changed("shape") {
		cfg.Shape = shape
		if !f.Changed("coefficients") {
			cfg.Coefficients = nil
		}
	}
	if f.Changed("order") {
		cfg.Order = order
	}
	if f.Changed("endless") || f.Changed("loop") {
		cfg.Endless = endless
	}
	if f.Changed("wait") {
		cfg.WaitForInput = waitForInput
	}
	if f.Changed("interval") {
		cfg.FrameIntervalMs = intervalMs
	}
	if f.Changed("neg") {
		cfg.ShowNegative = showNegative
	}
	if f.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	m, err := viz.NewModelFromConfig(cfg)
	if err != nil {
		return err
	}
	final, err := viz.Run(m)
	if err != nil {
		return err
	}
	return finish(final)
}

// finish reports how the animation ended once the terminal is restored.
func finish(m viz.Model) error {
	if m.Notice() != "" {
		fmt.Println(m.Notice())
	}
	if err := m.Err(); err != nil {
		return err
	}
	if m.Closed() {
		fmt.Println(viz.NoticeClosed)
	}
	return nil
}

// headless runs one bounded period without pacing and returns the resolved
// config with the static replay frame.
func headless(cmd *cobra.Command) (*config.Config, *sequencer.Sequencer, geometry.Frame, geometry.Bounds, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, geometry.Frame{}, geometry.Bounds{}, err
	}
	if cfg.Endless {
		fmt.Fprintln(os.Stderr, "endless mode ignored: rendering one period")
		cfg.Endless = false
	}
	seq, bounds, err := sequencer.Build(cfg)
	if err != nil {
		return nil, nil, geometry.Frame{}, geometry.Bounds{}, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var last geometry.Frame
	err = seq.Run(ctx, sequencer.RendererFunc(func(f geometry.Frame, _ sequencer.Status) error {
		last = f
		return nil
	}))
	if err != nil {
		return nil, nil, geometry.Frame{}, geometry.Bounds{}, err
	}
	if !seq.Complete() {
		return nil, nil, geometry.Frame{}, geometry.Bounds{}, fmt.Errorf("interrupted after %d frames", seq.State().Len())
	}
	return cfg, seq, last, bounds, nil
}

// plotViews builds the static panels in the theme of the resolved config,
// so presets and config files pick the colors too.
func plotViews(cfg *config.Config, bounds geometry.Bounds) *viz.Views {
	return viz.NewViews(bounds, viz.GetTheme(cfg.Theme))
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, seq, f, bounds, err := headless(cmd)
	if err != nil {
		return err
	}
	fmt.Println(viz.NoticeStatic)

	views := plotViews(cfg, bounds)
	fmt.Println(views.Grid(f))

	s := seq.State().Series()
	if s.Len() > 1 {
		graph := asciigraph.PlotMany([][]float64{s.X, s.Y},
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			asciigraph.Caption("real (red) and imaginary (blue) part per frame"))
		fmt.Println(graph)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "frames:\t%d\n", s.Len())
	fmt.Fprintf(w, "circles:\t%d\n", len(f.Circles))
	fmt.Fprintf(w, "axis limit:\t±%.3f\n", bounds.Value)
	fmt.Fprintf(w, "final value:\t%s\n", config.FormatCoefficient(seq.State().Chain().End()))
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	_, seq, f, bounds, err := headless(cmd)
	if err != nil {
		return err
	}

	out, err := export.Writer(os.Stdout, useZstd)
	if err != nil {
		return err
	}

	st := seq.State()
	switch args[0] {
	case "svg":
		err = export.SVG(out, f, bounds, svgSize)
	case "csv":
		err = export.CSV(out, st.Series())
	case "json":
		err = export.JSON(out, export.NewData(st.Coefficients(), seq.Options().Resolution, false, st.Series()))
	default:
		err = fmt.Errorf("unknown format: %s (available: svg, csv, json)", args[0])
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOURCE\tRESOLUTION\tENDLESS\tNEGATIVE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		source := fmt.Sprintf("%s order %d", p.Shape, p.Order)
		if len(p.Coefficients) > 0 {
			source = fmt.Sprintf("%d explicit coefficients", len(p.Coefficients))
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%v\n", name, source, p.Resolution, p.Endless, p.ShowNegative)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "fourier.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
