package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rulerpick/internal/automation"
	"github.com/san-kum/rulerpick/internal/config"
	"github.com/san-kum/rulerpick/internal/export"
	"github.com/san-kum/rulerpick/internal/geometry"
	"github.com/san-kum/rulerpick/internal/gui"
	"github.com/san-kum/rulerpick/internal/slider"
	"github.com/san-kum/rulerpick/internal/storage"
	"github.com/san-kum/rulerpick/internal/viz"
)

var presetInfo = map[string]string{
	"default":     "-100 to 100, whole ticks",
	"percent":     "0 to 100 percent",
	"temperature": "16 to 30 in half degrees",
	"fine":        "-1000 to 1000 in tens",
	"amount":      "0 to 5000 in fifties",
}

func buildPicker(cfg *config.Config, name string) (viz.Model, func(), error) {
	j := &viz.Journal{}
	s, cleanup, err := newSlider(cfg, j)
	if err != nil {
		return viz.Model{}, cleanup, err
	}
	m := viz.NewModel(s, j, name, viz.GetTheme(cfg.Display.Theme), cfg.Display.Rows, cfg.Display.Height)
	return m, cleanup, nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	if configFile != "" || preset != "" {
		return runTUI(cmd, args)
	}
	closeLog, err := setupLogging(true)
	if err != nil {
		return err
	}
	defer closeLog()

	var cleanups []func()
	defer func() {
		for _, c := range cleanups {
			c()
		}
	}()

	entries := make([]viz.Entry, 0, len(config.Presets))
	for _, name := range config.ListPresets() {
		entries = append(entries, viz.Entry{Name: name, Info: presetInfo[name]})
	}
	menu := viz.NewMenu(entries, func(name string) (viz.Model, error) {
		cfg := config.GetPreset(name)
		if feedback != "" {
			cfg.Feedback.Mode = feedback
		}
		m, cleanup, err := buildPicker(cfg, name)
		cleanups = append(cleanups, cleanup)
		return m, err
	})

	v, picked, err := viz.RunMenu(menu)
	if err != nil {
		return err
	}
	if picked {
		fmt.Println(v)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, name, err := loadConfig()
	if err != nil {
		return err
	}
	m, cleanup, err := buildPicker(cfg, name)
	defer cleanup()
	if err != nil {
		return err
	}

	v, err := viz.Run(m)
	if err != nil {
		return err
	}
	slog.Info("picked", "value", v)
	fmt.Println(v)
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, name, err := loadConfig()
	if err != nil {
		return err
	}
	j := &viz.Journal{}
	s, cleanup, err := newSlider(cfg, j)
	defer cleanup()
	if err != nil {
		return err
	}

	v := gui.Run(s, j, name, cfg.Display.Width, cfg.Display.Height, cfg.Display.FPS)
	slog.Info("picked", "value", v)
	fmt.Println(v)
	return nil
}

// layoutFor builds the configured picker, sized and with the flag overrides
// applied. The slider clamps the value, so callers read it back from there.
func layoutFor(cmd *cobra.Command) (*config.Config, *slider.Slider, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("value") {
		cfg.Slider.Value = value
	}
	w, h := cfg.Display.Width, cfg.Display.Height
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}

	s, err := slider.New(cfg.SliderSettings(), slider.WithLogger(slog.Default()))
	if err != nil {
		return nil, nil, err
	}
	s.Resize(w, h)
	return cfg, s, nil
}

func printLayout(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	_, s, err := layoutFor(cmd)
	if err != nil {
		return err
	}
	marks := s.Layout()
	if len(marks) == 0 {
		fmt.Println("nothing to draw")
		return nil
	}

	p := s.Params()
	fmt.Printf("value %g in [%g, %g], tick %g, %gx%g\n\n",
		p.Value, p.Minimum, p.Maximum, p.Tick, p.Width, p.Height)

	cut := geometry.Boundary(p)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MARK\tPOS\tOPACITY\tX\tY\tHEIGHT")
	for _, m := range marks {
		fmt.Fprintf(tw, "%d\t%.2f\t%.3f\t%.2f\t%.2f\t%.0f\n", m.Index, m.Position, m.Opacity, m.X, m.Y, m.Height)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if cut.Zone != geometry.ZoneNone {
		fmt.Printf("\n%s boundary gap ends at %.2f\n", cut.Zone, cut.End)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, s, err := layoutFor(cmd)
	if err != nil {
		return err
	}
	p := s.Params()
	bg := string(viz.GetTheme(cfg.Display.Theme).Background)
	svg := export.LayoutToSVG(s.Layout(), p.Width, p.Height, s.MarkColor(), bg)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, s, err := layoutFor(cmd)
	if err != nil {
		return err
	}
	p := s.Params()
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	bg := string(viz.GetTheme(cfg.Display.Theme).Background)
	if err := export.LayoutToPNG(f, s.Layout(), int(p.Width), int(p.Height), s.MarkColor(), bg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func replayScript(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	script, err := automation.LoadScript(args[0])
	if err != nil {
		return err
	}

	// an explicit --config or --preset wins over the script's preset
	var cfg *config.Config
	if configFile != "" || preset != "" {
		if cfg, _, err = loadConfig(); err != nil {
			return err
		}
	}

	tr, err := automation.Run(context.Background(), script, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("script: %s\n", script.Name)
	if script.Description != "" {
		fmt.Printf("%s\n", script.Description)
	}
	fmt.Printf("samples: %d  notifications: %d  final: %g\n\n", len(tr.Samples), len(tr.Notifications), tr.Final)
	plot(tr.Values(), "value")

	if traceSVG != "" {
		if err := os.WriteFile(traceSVG, []byte(export.TraceToSVG(tr.Samples, 800, 300, "#00ff88")), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", traceSVG)
	}

	if saveTrace {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(tr)
		if err != nil {
			return err
		}
		fmt.Printf("saved: %s\n", id)
	}
	return nil
}

func plot(values []float64, caption string) {
	if len(values) < 2 {
		fmt.Println("not enough samples to plot")
		return
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	fmt.Println()
}

func listTraces(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no traces found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tRANGE\tTICK\tFINAL\tSAMPLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\t%g\t%g\t%d\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Minimum, run.Maximum,
			run.Tick,
			run.Final,
			run.Samples,
		)
	}
	return w.Flush()
}

func showTrace(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if asJSON {
		return st.ExportJSON(os.Stdout, args[0])
	}

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("trace: %s\n", meta.ID)
	fmt.Printf("name: %s\n", meta.Name)
	fmt.Printf("range: [%g, %g] tick %g\n", meta.Minimum, meta.Maximum, meta.Tick)
	fmt.Printf("drags: %d  final: %g\n\n", meta.Began, meta.Final)

	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}
	plot(values, "value")
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRANGE\tTICK\tMARKS\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		s := config.GetPreset(name).Slider
		fmt.Fprintf(w, "%s\t[%g, %g]\t%g\t%d\t%s\n", name, s.Minimum, s.Maximum, s.Tick, s.MarkCount, presetInfo[name])
	}
	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := config.Save(args[0], cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", args[0])
		return nil
	}
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(cfg)
}
