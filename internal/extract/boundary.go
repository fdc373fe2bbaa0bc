package extract

import (
	"regexp"
	"strings"
)

// optionStart matches a line that opens an answer option: a single
// capital letter from A-D, whitespace, then non-empty content.
var optionStart = regexp.MustCompile(`^([A-D])\s+(.+)$`)

// BoundaryStrategy decides where question prose ends and the four-option
// answer sequence begins within one block's trimmed, noise-free lines.
// When no boundary is found, every line is stem and answers is nil; the
// validator rejects the block downstream.
type BoundaryStrategy interface {
	Split(lines []string) (stem, answers []string)
}

// NaiveBoundary treats the first option-shaped line as the start of the
// answers. Simple and lossy: a stem line that happens to begin with
// "A " is misclassified as an answer.
type NaiveBoundary struct{}

func (NaiveBoundary) Split(lines []string) ([]string, []string) {
	for i, line := range lines {
		if optionStart.MatchString(line) {
			return lines[:i], lines[i:]
		}
	}
	return lines, nil
}

// GuardedBoundary accepts an "A" line as the boundary only when a full
// in-order A→B→C→D sequence follows within Lookahead lines, and the
// candidate does not look like question prose. A candidate is rejected
// when it ends with a question mark or is more than LengthRatio times
// the mean length of the B/C/D lines it would pair with; scanning then
// resumes at the next candidate.
//
// Both thresholds are tuned to one source document, hence configurable.
type GuardedBoundary struct {
	Lookahead   int
	LengthRatio float64
}

func (g GuardedBoundary) Split(lines []string) ([]string, []string) {
	for i, line := range lines {
		m := optionStart.FindStringSubmatch(line)
		if m == nil || m[1] != "A" {
			continue
		}
		rest, ok := g.sequenceAfter(lines, i)
		if !ok {
			continue
		}
		if g.looksLikeProse(line, rest) {
			continue
		}
		return lines[:i], lines[i:]
	}
	return lines, nil
}

// sequenceAfter scans forward from the candidate A line for option-shaped
// lines carrying B, C and D in that order, within the lookahead window.
// Lines that do not carry the next expected letter are skipped as
// continuations.
func (g GuardedBoundary) sequenceAfter(lines []string, start int) ([3]string, bool) {
	var found [3]string
	want := 0
	expected := []string{"B", "C", "D"}

	limit := start + g.Lookahead
	if limit > len(lines) {
		limit = len(lines)
	}
	for j := start + 1; j < limit; j++ {
		m := optionStart.FindStringSubmatch(lines[j])
		if m == nil || m[1] != expected[want] {
			continue
		}
		found[want] = lines[j]
		want++
		if want == len(expected) {
			return found, true
		}
	}
	return found, false
}

func (g GuardedBoundary) looksLikeProse(candidate string, rest [3]string) bool {
	if strings.HasSuffix(strings.TrimSpace(candidate), "?") {
		return true
	}
	mean := float64(len(rest[0])+len(rest[1])+len(rest[2])) / 3
	return float64(len(candidate)) > g.LengthRatio*mean
}
