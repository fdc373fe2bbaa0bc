// Package sink writes extraction results to their output formats: a
// JSON question file, an optional CSV, an optional SQLite question bank
// for study apps, and the human-readable extraction report.
package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/azfstudy/qextract/internal/model"
)

// WriteJSON serializes the records as an indented JSON array. Path "-"
// writes to stdout.
func WriteJSON(path string, records []model.QuestionRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	var w io.Writer
	if path == "" || path == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	// Ensure trailing newline.
	_, _ = fmt.Fprintln(w)

	return nil
}
