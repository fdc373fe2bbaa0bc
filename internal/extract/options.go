package extract

import (
	"strings"

	"github.com/azfstudy/qextract/internal/model"
)

// AssembleOptions rebuilds answer options from the answer lines of one
// block. A line matching the option pattern opens a new option; any
// other non-blank, non-noise line continues the current one, joined with
// a single space (the source wraps long options across physical lines).
//
// The option labeled A is the correct one. That is a structural rule of
// the source exam format, asserted here rather than inferred.
func AssembleOptions(lines []string, cleaner *Cleaner) []model.AnswerOption {
	var options []model.AnswerOption
	var current *model.AnswerOption

	flush := func() {
		if current == nil {
			return
		}
		current.Text = cleaner.StripTail(current.Text)
		options = append(options, *current)
		current = nil
	}

	for _, line := range lines {
		if m := optionStart.FindStringSubmatch(line); m != nil {
			flush()
			letter := model.Letter(m[1])
			current = &model.AnswerOption{
				Letter:  letter,
				Text:    strings.TrimSpace(m[2]),
				Correct: letter == model.LetterA,
			}
			continue
		}
		if current != nil && line != "" && !cleaner.IsNoise(line) {
			current.Text += " " + line
		}
	}
	flush()

	return options
}
