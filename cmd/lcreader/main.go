package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/analysis"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/dataset"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/render"
)

func main() {
	cmd := &cobra.Command{
		Use:   "lcreader <metrics_file>",
		Short: "Show which learning curves would be plotted, without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			res, err := analysis.Analyze(d, "")
			if err != nil {
				return err
			}
			bold := color.New(color.Bold).SprintFunc()
			fmt.Printf("%s %s (%d rows)\n", bold("File:"), args[0], d.Len())
			fmt.Printf("%s %s (reward=%v validation=%v)\n", bold("Kind:"), res.Classification.Kind(),
				res.Classification.Reward, res.Classification.Validation)
			fmt.Printf("%s %s\n", bold("X axis:"), res.Chart.XColumn)
			for _, step := range res.Normalized {
				fmt.Printf("  normalized: %s\n", step)
			}
			for _, s := range res.Chart.Series {
				line := fmt.Sprintf("  %-22s column=%-20s points=%d", s.Name(), s.YColumn, len(s.Points))
				if s.Synthetic {
					line = color.YellowString(line)
				}
				fmt.Println(line)
			}
			for _, a := range res.Chart.Annotations {
				fmt.Printf("  %s\n", render.AnnotationLabel(a, res.Chart.XColumn))
			}
			return nil
		},
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
