package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	feedback   string
	logFile    string
	verbose    bool

	// layout and export
	value     float64
	width     float64
	height    float64
	outFile   string
	asJSON    bool
	saveTrace bool
	traceSVG  string
)

// main registers the commands and flags and runs the root command. With no
// subcommand the preset menu opens in the terminal.
func main() {
	rootCmd := &cobra.Command{
		Use:          "rulerpick",
		Short:        "scrolling ruler value picker",
		SilenceUsage: true,
		RunE:         runMenu,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".rulerpick", "trace directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&feedback, "feedback", "", "drag feedback: none or audio (overrides config)")
	pf.StringVar(&logFile, "log", "", "log file (the terminal UI logs nowhere else)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "pick a value in the terminal",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "pick a value in a window",
		RunE:  runGUI,
	}

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "print the mark layout for a value",
		RunE:  printLayout,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render the ruler for a value as svg",
		RunE:  exportSVG,
	}

	pngCmd := &cobra.Command{
		Use:   "png",
		Short: "render the ruler for a value as png",
		RunE:  exportPNG,
	}

	for _, c := range []*cobra.Command{layoutCmd, svgCmd, pngCmd} {
		c.Flags().Float64Var(&value, "value", 0, "picker value (default from config)")
		c.Flags().Float64Var(&width, "width", 0, "strip width (default from config)")
		c.Flags().Float64Var(&height, "height", 0, "strip height (default from config)")
	}
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "ruler.svg", "output file")
	pngCmd.Flags().StringVarP(&outFile, "out", "o", "ruler.png", "output file")

	replayCmd := &cobra.Command{
		Use:   "replay [script.yaml]",
		Short: "replay a gesture script and plot the value",
		Args:  cobra.ExactArgs(1),
		RunE:  replayScript,
	}
	replayCmd.Flags().BoolVar(&saveTrace, "save", false, "store the trace")
	replayCmd.Flags().StringVar(&traceSVG, "svg", "", "write the value plot as svg")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored traces",
		RunE:  listTraces,
	}

	showCmd := &cobra.Command{
		Use:   "show [trace_id]",
		Short: "plot a stored trace",
		Args:  cobra.ExactArgs(1),
		RunE:  showTrace,
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "print the trace as json")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective config as yaml (stdout without path)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, layoutCmd, svgCmd, pngCmd, replayCmd, listCmd, showCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
