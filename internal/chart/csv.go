package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCurveCSV writes the SML as beta,expected_return_pct rows.
func WriteCurveCSV(w io.Writer, curve []Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"beta", "expected_return_pct"}); err != nil {
		return err
	}
	for _, p := range curve {
		if err := cw.Write([]string{fmtFloat(p.Beta), fmtFloat(p.ExpectedReturn)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCurveCSVFile creates the parent directory if needed.
func WriteCurveCSVFile(path string, curve []Point) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteCurveCSV(f, curve); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
