package boyermoore

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestZArray(t *testing.T) {
	tests := []struct {
		s    string
		want []int
	}{
		{"a", []int{1}},
		{"aaaa", []int{4, 3, 2, 1}},
		{"aabaab", []int{6, 1, 0, 3, 1, 0}},
		{"abacaba", []int{7, 0, 1, 0, 3, 0, 1}},
		{"bacba", []int{5, 0, 0, 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got := zArray([]byte(tt.s))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("zArray(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestSuffixLengths(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"a", []int{1}},
		{"aaaa", []int{1, 2, 3, 4}},
		{"abcab", []int{0, 2, 0, 0, 5}},
		{"anpanman", []int{0, 2, 0, 0, 2, 0, 0, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := suffixLengths([]byte(tt.pattern))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("suffixLengths(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestBuildGoodSuffixTable(t *testing.T) {
	tests := []struct {
		pattern       string
		wantShift     []int
		wantBorderPos []int
	}{
		{
			pattern:       "a",
			wantShift:     []int{1, 1},
			wantBorderPos: []int{1, 1},
		},
		{
			// Pure self-overlap: a full match may only slide by one.
			pattern:       "aaaa",
			wantShift:     []int{1, 1, 2, 3, 4},
			wantBorderPos: []int{1, 1, 2, 3, 4},
		},
		{
			pattern:       "abcab",
			wantShift:     []int{3, 3, 3, 3, 5, 1},
			wantBorderPos: []int{3, 3, 3, 3, 5, 5},
		},
		{
			pattern:       "anpanman",
			wantShift:     []int{6, 6, 6, 6, 6, 6, 3, 8, 1},
			wantBorderPos: []int{6, 6, 6, 6, 6, 6, 6, 8, 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := BuildGoodSuffixTable([]byte(tt.pattern))
			if !reflect.DeepEqual(got.Shift, tt.wantShift) {
				t.Errorf("Shift = %v, want %v", got.Shift, tt.wantShift)
			}
			if !reflect.DeepEqual(got.BorderPos, tt.wantBorderPos) {
				t.Errorf("BorderPos = %v, want %v", got.BorderPos, tt.wantBorderPos)
			}
		})
	}
}

// Every shift must be positive for every pattern, or the scan could loop
// forever. Sweep random patterns over small alphabets, which maximize
// self-overlap.
func TestGoodSuffixShiftAlwaysPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabets := []string{"a", "ab", "abc", "abcdefgh"}

	for _, alpha := range alphabets {
		for m := 1; m <= 64; m++ {
			pattern := make([]byte, m)
			for i := range pattern {
				pattern[i] = alpha[rng.Intn(len(alpha))]
			}
			table := BuildGoodSuffixTable(pattern)
			if len(table.Shift) != m+1 {
				t.Fatalf("pattern %q: len(Shift) = %d, want %d", pattern, len(table.Shift), m+1)
			}
			for k, s := range table.Shift {
				if s < 1 {
					t.Fatalf("pattern %q: Shift[%d] = %d, want >= 1", pattern, k, s)
				}
				if s > m {
					t.Fatalf("pattern %q: Shift[%d] = %d exceeds pattern length %d", pattern, k, s, m)
				}
			}
		}
	}
}

func TestBuildBadCharTable(t *testing.T) {
	table := BuildBadCharTable([]byte("abcab"))

	if got := table.LastIndex('a'); got != 3 {
		t.Errorf("LastIndex('a') = %d, want 3", got)
	}
	if got := table.LastIndex('b'); got != 4 {
		t.Errorf("LastIndex('b') = %d, want 4", got)
	}
	if got := table.LastIndex('c'); got != 2 {
		t.Errorf("LastIndex('c') = %d, want 2", got)
	}
	if got := table.LastIndex('z'); got != -1 {
		t.Errorf("LastIndex('z') = %d, want -1 for absent byte", got)
	}

	// Skip is the distance from the mismatch position to the rightmost
	// occurrence; absent bytes skip past the mismatch entirely.
	if got := table.Skip(4, 'z'); got != 5 {
		t.Errorf("Skip(4, 'z') = %d, want 5", got)
	}
	if got := table.Skip(2, 'b'); got != -2 {
		t.Errorf("Skip(2, 'b') = %d, want -2", got)
	}
}
