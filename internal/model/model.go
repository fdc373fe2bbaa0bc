package model

// Letter identifies one of the four answer options of a question.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters lists the option letters in document order.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD}

// AnswerOption is one labeled answer of a question. In the source
// document the option printed as A is always the correct one; the
// Correct flag is asserted from the letter, never inferred from content.
type AnswerOption struct {
	Letter  Letter `json:"letter"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// QuestionRecord is one extracted exam question: a dense positive ID,
// the question stem, and exactly four options in letter order.
type QuestionRecord struct {
	ID       int            `json:"id"`
	Question string         `json:"question"`
	Answers  []AnswerOption `json:"answers"`
}

// SkipEntry explains why a segmented block did not yield a record.
// ID is 0 when the claimed question number could not be parsed.
type SkipEntry struct {
	ID              int      `json:"id"`
	Reason          string   `json:"reason"`
	AnswersFound    int      `json:"answers_found"`
	HasQuestion     bool     `json:"has_question"`
	QuestionPreview string   `json:"question_preview"`
	AnswerLetters   []Letter `json:"answer_letters"`
}

// Result is the outcome of one extraction pass: every segmented block
// lands in exactly one of the two lists.
type Result struct {
	Records []QuestionRecord
	Skips   []SkipEntry
}

// ExtractedIDs returns the set of IDs of the valid records.
func (r *Result) ExtractedIDs() map[int]bool {
	ids := make(map[int]bool, len(r.Records))
	for _, rec := range r.Records {
		ids[rec.ID] = true
	}
	return ids
}

// MissingIDs returns the sorted IDs in [1, expectedTotal] with no valid
// record. A non-positive expectedTotal disables the accounting.
func (r *Result) MissingIDs(expectedTotal int) []int {
	if expectedTotal <= 0 {
		return nil
	}
	got := r.ExtractedIDs()
	var missing []int
	for id := 1; id <= expectedTotal; id++ {
		if !got[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
