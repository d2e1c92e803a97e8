package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/config"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "metrics.csv")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return p
}

func pngOnly() *config.Config {
	cfg := config.Default()
	cfg.Formats = []string{config.FormatPNG}
	cfg.Width, cfg.Height = 800, 400
	return cfg
}

func TestGenerate_WritesRequestedFormats(t *testing.T) {
	in := writeCSV(t, "epoch,accuracy,loss\n1,0.5,0.8\n2,0.6,0.6\n3,0.9,0.3\n")
	out := filepath.Join(t.TempDir(), "charts")
	res, err := Generate(in, out, "", config.Default())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(res.Files) != 3 {
		t.Fatalf("files: %v", res.Files)
	}
	if res.Result.Chart.Title != config.DefaultTitle {
		t.Fatalf("title: %q", res.Result.Chart.Title)
	}
	if res.RunID == "" {
		t.Fatalf("missing run id")
	}
	html, err := os.ReadFile(filepath.Join(out, "learning_curves.html"))
	if err != nil {
		t.Fatalf("read html: %v", err)
	}
	if !strings.Contains(string(html), res.RunID) {
		t.Fatalf("html should carry run id")
	}
}

func TestGenerate_MissingInputWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "charts")
	_, err := Generate(filepath.Join(t.TempDir(), "missing.csv"), out, "T", pngOnly())
	if !errors.Is(err, types.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
	if ExitCode(err) != 1 {
		t.Fatalf("exit code: %d", ExitCode(err))
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("output dir must not be created on missing input")
	}
}

func TestGenerate_EpochOnlyPlotsTwoSyntheticSeries(t *testing.T) {
	in := writeCSV(t, "epoch\n1\n2\n3\n4\n")
	res, err := Generate(in, t.TempDir(), "Synthetic", pngOnly())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if n := len(res.Result.Chart.Series); n != 2 {
		t.Fatalf("series: %d", n)
	}
	for _, s := range res.Result.Chart.Series {
		if !s.Synthetic {
			t.Fatalf("%s should be synthetic", s.Role)
		}
	}
}

func TestGenerate_RewardEpisodes(t *testing.T) {
	in := writeCSV(t, "episode,reward,avg_reward\n1,1,1\n2,5,3\n3,3,3\n")
	res, err := Generate(in, t.TempDir(), "RL", pngOnly())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	c := res.Result.Chart
	if c.XColumn != "episode" || len(c.Series) != 2 || c.HasSynthetic() {
		t.Fatalf("unexpected reward chart: x=%s series=%d synthetic=%v", c.XColumn, len(c.Series), c.HasSynthetic())
	}
	if len(res.Result.Synthesized) != 0 {
		t.Fatalf("reward dataset must not be synthesized: %v", res.Result.Synthesized)
	}
}

func TestGenerate_StrictMode(t *testing.T) {
	in := writeCSV(t, "Epoch,Loss\n1,0.5\n")
	cfg := pngOnly()
	cfg.Strict = true
	out := filepath.Join(t.TempDir(), "charts")
	_, err := Generate(in, out, "", cfg)
	var mc *types.MissingColumnError
	if !errors.As(err, &mc) || mc.Column != "accuracy" {
		t.Fatalf("expected missing accuracy column, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("strict failure must not write output")
	}

	cfg.Strict = false
	if _, err := Generate(in, out, "", cfg); err != nil {
		t.Fatalf("non-strict run should synthesize accuracy: %v", err)
	}
}

func TestGenerate_EmptySeries(t *testing.T) {
	in := writeCSV(t, "episode,reward\n1,x\n")
	_, err := Generate(in, t.TempDir(), "", pngOnly())
	if !errors.Is(err, types.ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
	if !strings.Contains(Describe(err), "nothing to plot") {
		t.Fatalf("describe: %q", Describe(err))
	}
}

func TestGenerate_UnreadableInputIsRenderError(t *testing.T) {
	in := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(in, []byte("not a zip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Generate(in, t.TempDir(), "", pngOnly())
	var re *types.RenderError
	if !errors.As(err, &re) || re.Stage != "read" {
		t.Fatalf("expected read RenderError, got %v", err)
	}
}

func TestGenerateDemo(t *testing.T) {
	out := t.TempDir()
	res, err := GenerateDemo(100, out, "", pngOnly())
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	if len(res.Files) != 1 || filepath.Base(res.Files[0]) != "learning_curves.png" {
		t.Fatalf("files: %v", res.Files)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatalf("nil error must map to 0")
	}
	if ExitCode(types.ErrEmptySeries) != 1 {
		t.Fatalf("errors must map to 1")
	}
}

func TestGenerate_SingleRowInputs(t *testing.T) {
	cases := []struct {
		name, body string
		series     int
	}{
		{"one epoch", "epoch,accuracy,loss\n1,0.5,0.8\n", 2},
		{"fractional epochs", "epoch,accuracy,loss\n1,0.5,0.8\n1.5,0.6,0.7\n", 2},
		{"one episode", "episode,reward\n7,3\n", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := pngOnly()
			cfg.Formats = []string{config.FormatPNG, config.FormatSVG}
			res, err := Generate(writeCSV(t, tc.body), t.TempDir(), "", cfg)
			if err != nil {
				t.Fatalf("generate: %v (exit %d)", err, ExitCode(err))
			}
			if n := len(res.Result.Chart.Series); n != tc.series {
				t.Fatalf("series: %d want %d", n, tc.series)
			}
			if len(res.Files) != 2 {
				t.Fatalf("files: %v", res.Files)
			}
		})
	}
}
