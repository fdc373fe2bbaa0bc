package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/azfstudy/qextract/internal/model"
)

var csvHeader = []string{"id", "question", "answer_a", "answer_b", "answer_c", "answer_d", "correct"}

// WriteCSV writes the records as a tabular file: one row per question,
// one column per option, the correct option identified by letter.
func WriteCSV(path string, records []model.QuestionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{strconv.Itoa(rec.ID), rec.Question}
		correct := ""
		for _, opt := range rec.Answers {
			row = append(row, opt.Text)
			if opt.Correct {
				correct = string(opt.Letter)
			}
		}
		row = append(row, correct)
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write CSV row %d: %w", rec.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return nil
}
