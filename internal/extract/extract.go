package extract

import (
	"fmt"
	"strings"

	"github.com/azfstudy/qextract/internal/model"
)

// Boundary strategy names accepted by Config.Mode.
const (
	ModeGuarded = "guarded"
	ModeNaive   = "naive"
)

// Config holds the extraction heuristics. All values are empirically
// tuned to the 2024 catalog and meant to be re-tuned per document via
// flags or the config file, not treated as invariants.
type Config struct {
	Mode             string
	MinStemLen       int
	Lookahead        int
	LengthRatio      float64
	ExpectedTotal    int
	ExtraBoilerplate []string
}

// DefaultConfig returns the settings for the 2024 catalog: guarded
// boundary detection, stems longer than 10 characters, a 20-line
// lookahead with a 2x length ratio, 289 expected questions.
func DefaultConfig() Config {
	return Config{
		Mode:          ModeGuarded,
		MinStemLen:    10,
		Lookahead:     20,
		LengthRatio:   2.0,
		ExpectedTotal: 289,
	}
}

// Extractor turns linearized exam document text into question records.
// It is stateless across calls and safe to reuse.
type Extractor struct {
	cfg      Config
	cleaner  *Cleaner
	boundary BoundaryStrategy
}

// New builds an Extractor. It fails only on an invalid mode or an
// uncompilable extra boilerplate pattern.
func New(cfg Config) (*Extractor, error) {
	cleaner, err := NewCleaner(cfg.ExtraBoilerplate...)
	if err != nil {
		return nil, err
	}

	var boundary BoundaryStrategy
	switch cfg.Mode {
	case ModeGuarded, "":
		boundary = GuardedBoundary{Lookahead: cfg.Lookahead, LengthRatio: cfg.LengthRatio}
	case ModeNaive:
		boundary = NaiveBoundary{}
	default:
		return nil, fmt.Errorf("unknown boundary mode %q (want %s or %s)", cfg.Mode, ModeGuarded, ModeNaive)
	}

	return &Extractor{cfg: cfg, cleaner: cleaner, boundary: boundary}, nil
}

// Extract runs the full pipeline over one document: strip boilerplate,
// segment into blocks, extract fields per block. Every segmented block
// yields exactly one record or one skip entry; a failure in one block
// never aborts the rest.
func (e *Extractor) Extract(text string) *model.Result {
	res := &model.Result{}

	cleaned := e.cleaner.CleanDocument(text)
	for _, block := range SegmentBlocks(cleaned) {
		e.processBlock(block, res)
	}
	return res
}

func (e *Extractor) processBlock(block Block, res *model.Result) {
	defer func() {
		if r := recover(); r != nil {
			id := 0
			if block.IDOK {
				id = block.ID
			}
			res.Skips = append(res.Skips, model.SkipEntry{
				ID:              id,
				Reason:          fmt.Sprintf("exception: %v", r),
				QuestionPreview: "N/A",
			})
		}
	}()

	if !block.IDOK {
		res.Skips = append(res.Skips, model.SkipEntry{
			ID:              0,
			Reason:          "unparseable question number",
			QuestionPreview: preview(block.Text),
		})
		return
	}

	lines := e.contentLines(block.Text)
	stemLines, answerLines := e.boundary.Split(lines)

	// Tail stripping applies to assembled option texts only. The stem
	// is built from already cleaned, noise-filtered lines; stripping it
	// again would truncate stems that merely contain a word like "page".
	stem := strings.TrimSpace(strings.Join(stemLines, " "))
	options := AssembleOptions(answerLines, e.cleaner)

	if entry, ok := validate(block.ID, stem, options, e.cfg.MinStemLen); !ok {
		res.Skips = append(res.Skips, entry)
		return
	}

	res.Records = append(res.Records, model.QuestionRecord{
		ID:       block.ID,
		Question: stem,
		Answers:  options,
	})
}

// contentLines trims the block's lines and drops blanks and noise, the
// shape every downstream stage expects.
func (e *Extractor) contentLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || e.cleaner.IsNoise(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// validate checks the completeness rules: a stem longer than the
// minimum and exactly the four options A, B, C, D in order. On failure
// it returns a skip entry naming every unmet condition.
func validate(id int, stem string, options []model.AnswerOption, minStemLen int) (model.SkipEntry, bool) {
	var reasons []string

	if len(stem) <= minStemLen {
		reasons = append(reasons, fmt.Sprintf("question text too short (%d chars)", len(stem)))
	}
	if len(options) != 4 {
		reasons = append(reasons, fmt.Sprintf("found %d answers instead of 4", len(options)))
	} else {
		for i, opt := range options {
			if opt.Letter != model.Letters[i] {
				reasons = append(reasons, fmt.Sprintf("answer letters %s instead of A, B, C, D", letterList(options)))
				break
			}
		}
	}

	if len(reasons) == 0 {
		return model.SkipEntry{}, true
	}

	letters := make([]model.Letter, len(options))
	for i, opt := range options {
		letters[i] = opt.Letter
	}
	p := "N/A"
	if stem != "" {
		p = preview(stem)
	}
	return model.SkipEntry{
		ID:              id,
		Reason:          strings.Join(reasons, ", "),
		AnswersFound:    len(options),
		HasQuestion:     stem != "",
		QuestionPreview: p,
		AnswerLetters:   letters,
	}, false
}

func letterList(options []model.AnswerOption) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		parts[i] = string(opt.Letter)
	}
	return strings.Join(parts, ", ")
}

func preview(s string) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) > 100 {
		return string(runes[:100])
	}
	return string(runes)
}
