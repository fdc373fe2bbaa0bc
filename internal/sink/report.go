package sink

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/azfstudy/qextract/internal/extract"
	"github.com/azfstudy/qextract/internal/model"
)

// reportWriter sticks on the first write error so the report renderer
// can stay linear.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

func (rw *reportWriter) println(args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintln(rw.w, args...)
}

// WriteReport renders the human-readable extraction report: totals, one
// detailed entry per skipped block, and the missing question IDs
// compressed into ranges. It exists so an operator can patch individual
// missing entries by hand instead of rerunning the extraction.
func WriteReport(w io.Writer, res *model.Result, expectedTotal int) error {
	rw := &reportWriter{w: w}
	rule := strings.Repeat("=", 70)

	rw.println("Question Extraction Report")
	rw.println(rule)
	rw.println()
	rw.printf("Total questions extracted: %d\n", len(res.Records))
	rw.printf("Questions skipped: %d\n", len(res.Skips))
	if expectedTotal > 0 {
		rw.printf("Expected total: %d\n", expectedTotal)
		rw.printf("Missing: %d\n", len(res.MissingIDs(expectedTotal)))
	}
	rw.println()

	if len(res.Skips) > 0 {
		rw.println("Skipped Questions (Detailed):")
		rw.println(rule)
		rw.println()
		for _, skip := range res.Skips {
			id := fmt.Sprintf("%d", skip.ID)
			if skip.ID == 0 {
				id = "unknown"
			}
			rw.printf("Question %s:\n", id)
			rw.printf("  Reason: %s\n", skip.Reason)
			rw.printf("  Has question text: %t\n", skip.HasQuestion)
			rw.printf("  Answers found: %d/4\n", skip.AnswersFound)
			if len(skip.AnswerLetters) > 0 {
				letters := make([]string, len(skip.AnswerLetters))
				for i, l := range skip.AnswerLetters {
					letters[i] = string(l)
				}
				rw.printf("  Answer letters found: %s\n", strings.Join(letters, ", "))
			}
			if skip.QuestionPreview != "" {
				rw.printf("  Question preview: %s\n", skip.QuestionPreview)
			}
			rw.println()
		}
	}

	if missing := res.MissingIDs(expectedTotal); len(missing) > 0 {
		rw.println("Missing Question IDs:")
		rw.println(rule)
		rw.println(extract.FormatRanges(missing))
		rw.println()
		rw.printf("Total missing: %d\n", len(missing))
		rw.println()
		rw.println("Troubleshooting Tips:")
		rw.println(strings.Repeat("-", 70))
		rw.println("If questions are missing:")
		rw.println("1. Check the source for special formatting (tables, images, etc.)")
		rw.println("2. Look for page breaks in the middle of questions")
		rw.println("3. Verify the question has exactly 4 answers (A, B, C, D)")
		rw.println("4. Check if footer text is interfering with parsing")
		rw.println("5. Manually add missing questions to the output if needed")
	}

	return rw.err
}

// SaveReport writes the report to a file.
func SaveReport(path string, res *model.Result, expectedTotal int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	if err := WriteReport(f, res, expectedTotal); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
