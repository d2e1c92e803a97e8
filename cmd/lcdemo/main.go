// lcdemo renders the placeholder loss and accuracy curves without an input
// file, for checking fonts, colours and output formats on a new machine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/config"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/generator"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/logging"
)

func main() {
	var cfgPath, outDir string
	cmd := &cobra.Command{
		Use:   "lcdemo",
		Short: "Render demo learning curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath, cmd.Flags())
			if err != nil {
				return err
			}
			logging.SetLogLevel(cfg.LogLevel)
			out, err := generator.GenerateDemo(cfg.Demo.Epochs, outDir, cfg.Title, cfg)
			if err != nil {
				return err
			}
			for _, p := range out.Files {
				fmt.Println(p)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "Optional YAML config file")
	f.StringVar(&outDir, "out", "demo_output", "Output directory")
	f.Int("epochs", 100, "Number of epochs to draw")
	f.String("title", config.DefaultTitle, "Chart title")
	f.StringSlice("formats", []string{config.FormatPNG, config.FormatSVG, config.FormatHTML}, "Output formats: png, svg, html")
	f.String("log-level", "info", "Log level")
	if err := cmd.Execute(); err != nil {
		os.Exit(generator.ExitCode(err))
	}
}
