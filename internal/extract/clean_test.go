package extract

import (
	"strings"
	"testing"
)

func TestCleanDocumentRemovesKnownBoilerplate(t *testing.T) {
	c, err := NewCleaner()
	if err != nil {
		t.Fatalf("NewCleaner: %v", err)
	}

	in := strings.Join([]string{
		"1 What is QNH?",
		"Stand / As at:: 2024",
		"A altimeter setting",
		"Seite / page 12 von / of 55",
		"B a callsign",
	}, "\n")

	out := c.CleanDocument(in)
	if strings.Contains(out, "Stand / As at") || strings.Contains(out, "Seite / page") {
		t.Errorf("boilerplate survived cleanup:\n%s", out)
	}
	if !strings.Contains(out, "What is QNH?") || !strings.Contains(out, "altimeter setting") {
		t.Errorf("content lost during cleanup:\n%s", out)
	}
	// Line structure must survive for the segmenter.
	if got, want := len(strings.Split(out, "\n")), 5; got != want {
		t.Errorf("expected %d lines after cleanup, got %d", want, got)
	}
}

func TestCleanerExtraPatterns(t *testing.T) {
	c, err := NewCleaner(`CONFIDENTIAL DRAFT.*`)
	if err != nil {
		t.Fatalf("NewCleaner: %v", err)
	}
	out := c.CleanDocument("question text\nCONFIDENTIAL DRAFT v3\nmore text")
	if strings.Contains(out, "CONFIDENTIAL") {
		t.Errorf("extra pattern not applied: %q", out)
	}

	if _, err := NewCleaner(`[unclosed`); err == nil {
		t.Error("expected error for an invalid extra pattern")
	}
}

func TestStripTail(t *testing.T) {
	c, err := NewCleaner()
	if err != nil {
		t.Fatalf("NewCleaner: %v", err)
	}

	tests := []struct {
		in, want string
	}{
		{"121.500 MHz Stand / As at:: 2024", "121.500 MHz"},
		{"the correct answer always A notice", "the"},
		{"a clean option text", "a clean option text"},
	}
	for _, tt := range tests {
		if got := c.StripTail(tt.in); got != tt.want {
			t.Errorf("StripTail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsNoise(t *testing.T) {
	c, err := NewCleaner()
	if err != nil {
		t.Fatalf("NewCleaner: %v", err)
	}

	for _, line := range []string{"Stand / As at:: 2024", "Seite 3", "page 4", "3 / 55"} {
		if !c.IsNoise(line) {
			t.Errorf("expected %q to be noise", line)
		}
	}
	for _, line := range []string{"What is the capital?", "A Paris"} {
		if c.IsNoise(line) {
			t.Errorf("did not expect %q to be noise", line)
		}
	}
}
