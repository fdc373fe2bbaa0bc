package extract

import (
	"regexp"
	"strconv"
)

// blockStart opens a new question block: a line beginning with one or
// more digits followed by whitespace. The whitespace class includes
// newlines, so a question number left alone on its own line by the PDF
// extraction still opens a block. The cost is that a bare page number
// or a number at a line start inside question prose causes a spurious
// split; that risk is accepted and surfaces as a skip entry rather
// than being patched over.
var blockStart = regexp.MustCompile(`(?m)^(\d+)\s+`)

// Block is the raw line span claimed by one question number. IDOK is
// false when the captured token did not parse as a positive integer,
// which the pattern makes near impossible but is guarded anyway.
type Block struct {
	ID   int
	IDOK bool
	Text string
}

// SegmentBlocks splits cleaned document text into question blocks. A
// leading fragment before the first number line is discarded.
func SegmentBlocks(text string) []Block {
	matches := blockStart.FindAllStringSubmatchIndex(text, -1)
	blocks := make([]Block, 0, len(matches))

	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		token := text[m[2]:m[3]]
		body := text[m[1]:end]

		id, err := strconv.Atoi(token)
		blocks = append(blocks, Block{
			ID:   id,
			IDOK: err == nil && id > 0,
			Text: body,
		})
	}
	return blocks
}
