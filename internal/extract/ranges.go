package extract

import (
	"fmt"
	"strings"
)

// CompressRanges folds a sorted list of IDs into contiguous ranges for
// readable reports: [4, 17, 18, 19, 202] becomes ["4", "17-19", "202"].
func CompressRanges(ids []int) []string {
	if len(ids) == 0 {
		return nil
	}

	var ranges []string
	start, end := ids[0], ids[0]

	emit := func() {
		if start == end {
			ranges = append(ranges, fmt.Sprintf("%d", start))
		} else {
			ranges = append(ranges, fmt.Sprintf("%d-%d", start, end))
		}
	}

	for _, id := range ids[1:] {
		if id == end+1 {
			end = id
			continue
		}
		emit()
		start, end = id, id
	}
	emit()

	return ranges
}

// FormatRanges renders compressed ranges as one comma-separated line.
func FormatRanges(ids []int) string {
	return strings.Join(CompressRanges(ids), ", ")
}
