package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/logging"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

// BaseName is the file stem of every output (learning_curves.png, ...).
const BaseName = "learning_curves"

// renderers maps a format name to its encoder.
var renderers = map[string]func(types.Chart, Options) ([]byte, error){
	"png":  PNG,
	"svg":  SVG,
	"html": HTML,
}

// optionalFormats may fail without failing the run; the failure is logged and
// the file skipped.
var optionalFormats = map[string]bool{"html": true}

// WriteAll renders c in each format and writes the files into outDir, creating
// it if needed. It returns the paths written. A failure in a required format
// aborts with a RenderError; files already written are left in place.
func WriteAll(c types.Chart, outDir string, formats []string, opts Options) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, types.NewRenderError("mkdir", fmt.Errorf("create out dir: %w", err))
	}
	var written []string
	for _, format := range formats {
		fn, ok := renderers[format]
		if !ok {
			return written, types.NewRenderError(format, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, format))
		}
		data, err := fn(c, opts)
		if err != nil {
			if optionalFormats[format] {
				logging.Warnf("skipping %s output: %v", format, err)
				continue
			}
			return written, err
		}
		outPath := filepath.Join(outDir, BaseName+"."+format)
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return written, types.NewRenderError("write", fmt.Errorf("write %s: %w", outPath, err))
		}
		logging.Debugf("wrote %s (%d bytes)", outPath, len(data))
		written = append(written, outPath)
	}
	return written, nil
}
