package sink

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/azfstudy/qextract/internal/model"
)

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	records := []model.QuestionRecord{testRecord(1)}

	if err := WriteJSON(path, records); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("expected trailing newline")
	}

	var got []model.QuestionRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 || got[0].Answers[0].Letter != model.LetterA || !got[0].Answers[0].Correct {
		t.Errorf("round trip mismatch: %+v", got)
	}

	// Byte-stable across runs.
	path2 := filepath.Join(t.TempDir(), "questions.json")
	if err := WriteJSON(path2, records); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	data2, err := os.ReadFile(path2)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != string(data2) {
		t.Error("JSON output differs between identical runs")
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.csv")

	if err := WriteCSV(path, []model.QuestionRecord{testRecord(3)}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(csvHeader, ",") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if want := "3,What is the capital?,Paris,London,Berlin,Rome,A"; lines[1] != want {
		t.Errorf("expected row %q, got %q", want, lines[1])
	}
}

func TestWriteReport(t *testing.T) {
	res := &model.Result{
		Records: []model.QuestionRecord{testRecord(1), testRecord(2)},
		Skips: []model.SkipEntry{
			{
				ID:              3,
				Reason:          "found 2 answers instead of 4",
				AnswersFound:    2,
				HasQuestion:     true,
				QuestionPreview: "Which ocean borders Portugal?",
				AnswerLetters:   []model.Letter{model.LetterA, model.LetterB},
			},
		},
	}

	var sb strings.Builder
	if err := WriteReport(&sb, res, 5); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"Total questions extracted: 2",
		"Questions skipped: 1",
		"Expected total: 5",
		"Missing: 3",
		"Question 3:",
		"Reason: found 2 answers instead of 4",
		"Answer letters found: A, B",
		"Missing Question IDs:",
		"3-5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReportPropagatesWriteError(t *testing.T) {
	res := &model.Result{Records: []model.QuestionRecord{testRecord(1)}}

	if err := WriteReport(failingWriter{}, res, 2); err == nil {
		t.Fatal("expected write error to propagate")
	}
}

func TestWriteReportUnknownID(t *testing.T) {
	res := &model.Result{
		Skips: []model.SkipEntry{{ID: 0, Reason: "unparseable question number"}},
	}

	var sb strings.Builder
	if err := WriteReport(&sb, res, 0); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if !strings.Contains(sb.String(), "Question unknown:") {
		t.Errorf("expected unknown-id placeholder:\n%s", sb.String())
	}
	if strings.Contains(sb.String(), "Expected total") {
		t.Error("expected-total section should be absent when accounting is disabled")
	}
}
