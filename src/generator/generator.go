// Package generator runs one learning-curve rendering transaction: read the
// dataset, analyse it, render the chart and write the output files.
package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/analysis"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/config"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/dataset"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/logging"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/render"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

// Outcome describes a successful run.
type Outcome struct {
	RunID  string
	Result *analysis.Result
	Files  []string
}

// Generate renders the learning curves of the file at inputPath into outDir.
// An empty title falls back to cfg.Title, then to the default title. Nothing
// is written unless the dataset loads and yields at least one series.
func Generate(inputPath, outDir, title string, cfg *config.Config) (*Outcome, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	runID := uuid.New().String()
	start := time.Now()
	logging.Infof("[%s] generating learning curves from %s into %s", runID, inputPath, outDir)

	d, err := dataset.Load(inputPath)
	if err != nil {
		if errors.Is(err, types.ErrInputNotFound) {
			return nil, err
		}
		return nil, types.NewRenderError("read", err)
	}
	logging.TimeTrack(start, "read")
	logging.Debugf("[%s] columns=%v rows=%d", runID, d.Columns(), d.Len())

	if cfg.Strict {
		if err := dataset.CheckRequired(d, cfg.RequiredColumns); err != nil {
			return nil, err
		}
	}

	res, err := analysis.Analyze(d, resolveTitle(title, cfg))
	if err != nil {
		return nil, err
	}
	logSelection(runID, res)

	files, err := writeChart(res.Chart, outDir, runID, cfg)
	if err != nil {
		return nil, err
	}
	logging.TimeTrack(start, "generate")
	logging.Infof("[%s] wrote %d file(s)", runID, len(files))
	return &Outcome{RunID: runID, Result: res, Files: files}, nil
}

// GenerateDemo renders the placeholder curves for epochs 1..epochs into outDir.
func GenerateDemo(epochs int, outDir, title string, cfg *config.Config) (*Outcome, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	runID := uuid.New().String()
	res, err := analysis.DemoChart(epochs, resolveTitle(title, cfg))
	if err != nil {
		return nil, err
	}
	logging.Infof("[%s] demo curves for %d epochs", runID, epochs)
	files, err := writeChart(res.Chart, outDir, runID, cfg)
	if err != nil {
		return nil, err
	}
	return &Outcome{RunID: runID, Result: res, Files: files}, nil
}

func writeChart(c types.Chart, outDir, runID string, cfg *config.Config) ([]string, error) {
	opts := render.Options{Width: cfg.Width, Height: cfg.Height, Hints: cfg.Hints, RunID: runID}
	if c.HasSynthetic() && cfg.Hints && !cfg.Wants(config.FormatPNG) {
		logging.Debugf("[%s] placeholder hint is only stamped on png output", runID)
	}
	files, err := render.WriteAll(c, outDir, cfg.Formats, opts)
	if err != nil {
		var re *types.RenderError
		if !errors.As(err, &re) {
			err = types.NewRenderError("render", err)
		}
		return files, err
	}
	for _, f := range files {
		logging.Infof("[%s] saved %s", runID, f)
	}
	return files, nil
}

func resolveTitle(title string, cfg *config.Config) string {
	if title != "" {
		return title
	}
	if cfg.Title != "" {
		return cfg.Title
	}
	return config.DefaultTitle
}

func logSelection(runID string, res *analysis.Result) {
	for _, step := range res.Normalized {
		logging.Debugf("[%s] normalize: %s", runID, step)
	}
	if len(res.Synthesized) > 0 {
		logging.Warnf("[%s] synthesized placeholder columns: %v", runID, res.Synthesized)
	}
	logging.Infof("[%s] dataset kind=%s x=%s series=%d", runID, res.Classification.Kind(), res.Chart.XColumn, len(res.Chart.Series))
	for _, a := range res.Chart.Annotations {
		logging.Debugf("[%s] %s", runID, render.AnnotationLabel(a, res.Chart.XColumn))
	}
}

// ExitCode maps a run error to the process exit status: 0 on success, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Describe turns a run error into a one-line diagnostic for stderr.
func Describe(err error) string {
	var mc *types.MissingColumnError
	var re *types.RenderError
	switch {
	case errors.Is(err, types.ErrInputNotFound):
		return fmt.Sprintf("Error: %v", err)
	case errors.As(err, &mc):
		return fmt.Sprintf("Error: %v", err)
	case errors.Is(err, types.ErrEmptySeries):
		return fmt.Sprintf("Error: nothing to plot: %v", err)
	case errors.As(err, &re):
		return fmt.Sprintf("Error generating plot: %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}
