package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// LoadParquet reads a flat Parquet file. Each leaf column becomes a dataset
// column named by its dotted path; nulls and non-numeric values become NaN.
func LoadParquet(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat Parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open Parquet file: %w", err)
	}

	paths := pf.Schema().Columns()
	names := make([]string, len(paths))
	cols := make(map[string][]float64, len(paths))
	for i, p := range paths {
		names[i] = strings.Join(p, ".")
	}

	reader := parquet.NewReader(pf)
	defer reader.Close()

	buf := make([]parquet.Row, 128)
	for {
		n, err := reader.ReadRows(buf)
		for _, row := range buf[:n] {
			vals := make([]float64, len(names))
			for i := range vals {
				vals[i] = math.NaN()
			}
			for _, v := range row {
				c := v.Column()
				if c < 0 || c >= len(vals) {
					continue
				}
				vals[c] = parquetFloat(v)
			}
			for i, name := range names {
				cols[name] = append(cols[name], vals[i])
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading Parquet rows: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return FromColumns(names, cols), nil
}

func parquetFloat(v parquet.Value) float64 {
	if v.IsNull() {
		return math.NaN()
	}
	switch v.Kind() {
	case parquet.Boolean:
		if v.Boolean() {
			return 1
		}
		return 0
	case parquet.Int32:
		return float64(v.Int32())
	case parquet.Int64:
		return float64(v.Int64())
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	case parquet.ByteArray:
		return ParseValue(string(v.ByteArray()))
	}
	return math.NaN()
}
