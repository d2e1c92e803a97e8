// Learning curves entrypoint.
//
// Usage: learningcurves <csv_path> <output_dir> [title]
//
// Reads a tabular training log (CSV, TSV, XLSX or Parquet), picks the curves
// worth plotting and writes learning_curves.{png,svg,html} into output_dir.
// Options come from defaults, an optional YAML file (--config), the
// LEARNING_CURVES_* environment and flags, in increasing precedence.
// Exit status is 0 on success and 1 on any error.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/config"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/generator"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/logging"
)

func newRootCmd() *cobra.Command {
	var configPath string
	var noHints bool
	cmd := &cobra.Command{
		Use:   "learningcurves <csv_path> <output_dir> [title]",
		Short: "Render learning curves from a training metrics log",
		Long: `learningcurves reads per-epoch (or per-episode) training metrics and renders
accuracy, loss or reward curves with their best points marked.`,
		Args: usageArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, configPath, noHints)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "Optional YAML config file")
	f.String("title", config.DefaultTitle, "Chart title (the positional title wins)")
	f.Int("width", 1000, "Chart width in pixels")
	f.Int("height", 600, "Chart height in pixels")
	f.StringSlice("formats", []string{config.FormatPNG, config.FormatSVG, config.FormatHTML}, "Output formats: png, svg, html")
	f.Bool("strict", false, "Fail when a required column is missing instead of synthesizing it")
	f.StringSlice("required-columns", []string{"epoch", "loss", "accuracy"}, "Columns checked in strict mode")
	f.String("log-level", "info", "Log level: debug, info, warn, error")
	f.BoolVar(&noHints, "no-hints", false, "Do not stamp the placeholder-data hint onto PNG output")
	return cmd
}

// usageArgs checks the positional arity and prints the usage line when it is wrong.
func usageArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(2, 3)(cmd, args); err != nil {
		cmd.PrintErrln("Usage: " + cmd.UseLine())
		return err
	}
	return nil
}

func run(cmd *cobra.Command, args []string, configPath string, noHints bool) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if noHints {
		cfg.Hints = false
	}
	logging.SetLogLevel(cfg.LogLevel)

	title := ""
	if len(args) == 3 {
		title = args[2]
	}
	out, err := generator.Generate(args[0], args[1], title, cfg)
	if err != nil {
		return err
	}
	green := color.New(color.FgGreen).SprintFunc()
	for _, p := range out.Files {
		fmt.Printf("%s %s\n", green("Saved"), p)
	}
	if out.Result.Chart.HasSynthetic() {
		fmt.Printf("Placeholder data plotted for: %v\n", out.Result.Chart.SyntheticNames())
	}
	return nil
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString(generator.Describe(err)))
	}
	os.Exit(generator.ExitCode(err))
}
