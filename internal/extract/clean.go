package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// The 2024 question catalog repeats the same bilingual footers, page
// markers and the "answer A is always correct" notice on every page of
// the text extraction. They must be removed before segmentation or they
// end up glued to question stems and option texts.
var defaultStripPatterns = []string{
	`Stand / As at::.*`,
	`richtige Antwort immer A /.*`,
	`correct answer always A.*`,
	`Seite / page \d+ von / of \d+`,
	`Prüfungsfragen im Prüfungsteil.*`,
}

// noiseLine matches lines that are entirely header/footer residue and
// carry no question content.
var noiseLine = regexp.MustCompile(`^(?i)(Stand|richtige|correct|Prüfungsfragen|Seite|page|\d+\s*/\s*\d+)`)

// tailFragment matches boilerplate that leaked onto the end of an
// assembled option text.
var tailFragment = regexp.MustCompile(`(?i)\s*(Stand / As at::.*|richtige Antwort.*|correct answer.*|Seite.*|page.*)$`)

// Cleaner removes recurring non-content text. Stripping is a no-op when
// a pattern does not occur; it never fails.
type Cleaner struct {
	strip []*regexp.Regexp
}

// NewCleaner builds a Cleaner from the built-in patterns plus any extra
// user-supplied ones. Extra patterns are matched case-insensitively and
// never across line boundaries.
func NewCleaner(extra ...string) (*Cleaner, error) {
	patterns := append([]string{}, defaultStripPatterns...)
	patterns = append(patterns, extra...)

	c := &Cleaner{}
	for _, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("boilerplate pattern %q: %w", p, err)
		}
		c.strip = append(c.strip, re)
	}
	return c, nil
}

// CleanDocument removes boilerplate fragments line by line, preserving
// the line structure the segmenter depends on.
func (c *Cleaner) CleanDocument(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for _, re := range c.strip {
			line = re.ReplaceAllString(line, "")
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// IsNoise reports whether a trimmed line is header/footer residue that
// should not count as question prose or option text.
func (c *Cleaner) IsNoise(line string) bool {
	return noiseLine.MatchString(line)
}

// StripTail removes boilerplate fragments from the end of an assembled
// option or stem text.
func (c *Cleaner) StripTail(s string) string {
	return strings.TrimSpace(tailFragment.ReplaceAllString(s, ""))
}
