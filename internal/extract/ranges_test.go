package extract

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
)

func TestCompressRanges(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []string
	}{
		{"empty", nil, nil},
		{"single", []int{7}, []string{"7"}},
		{"one run", []int{1, 2, 3}, []string{"1-3"}},
		{"mixed", []int{4, 17, 18, 19, 202}, []string{"4", "17-19", "202"}},
		{"adjacent runs", []int{1, 2, 4, 5}, []string{"1-2", "4-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompressRanges(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CompressRanges(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// expandRanges undoes CompressRanges for the round-trip check.
func expandRanges(t *testing.T, ranges []string) []int {
	t.Helper()
	var ids []int
	for _, r := range ranges {
		if lo, hi, found := strings.Cut(r, "-"); found {
			a, err := strconv.Atoi(lo)
			if err != nil {
				t.Fatalf("bad range %q: %v", r, err)
			}
			b, err := strconv.Atoi(hi)
			if err != nil {
				t.Fatalf("bad range %q: %v", r, err)
			}
			for id := a; id <= b; id++ {
				ids = append(ids, id)
			}
			continue
		}
		id, err := strconv.Atoi(r)
		if err != nil {
			t.Fatalf("bad range %q: %v", r, err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestCompressRangesRoundTrip(t *testing.T) {
	in := []int{1, 3, 4, 5, 9, 10, 50, 51, 52, 53, 100}
	out := expandRanges(t, CompressRanges(in))
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip lost ids: in %v, out %v", in, out)
	}
}

func TestFormatRanges(t *testing.T) {
	if got, want := FormatRanges([]int{4, 17, 18, 19, 202}), "4, 17-19, 202"; got != want {
		t.Errorf("FormatRanges = %q, want %q", got, want)
	}
}
