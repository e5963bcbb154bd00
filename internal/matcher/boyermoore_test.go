package matcher

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dl/bmatch/internal/boyermoore"
)

func TestBoyerMooreMatcher_FindAll(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		invert     bool
		input      string
		wantCount  int
		wantLines  []int
	}{
		{
			name:      "simple match",
			pattern:   "hello",
			input:     "hello world\ngoodbye world\n",
			wantCount: 1,
			wantLines: []int{1},
		},
		{
			name:      "no match",
			pattern:   "xyz",
			input:     "hello world\ngoodbye world\n",
			wantCount: 0,
		},
		{
			name:       "case insensitive",
			pattern:    "hello",
			ignoreCase: true,
			input:      "Hello World\nhello world\nHELLO\n",
			wantCount:  3,
			wantLines:  []int{1, 2, 3},
		},
		{
			name:      "multiple matches same line",
			pattern:   "ab",
			input:     "ababab\n",
			wantCount: 1,
			wantLines: []int{1},
		},
		{
			name:      "invert match",
			pattern:   "hello",
			invert:    true,
			input:     "hello\nworld\nhello again\n",
			wantCount: 1,
			wantLines: []int{2},
		},
		{
			name:      "empty input",
			pattern:   "hello",
			input:     "",
			wantCount: 0,
		},
		{
			name:      "no trailing newline",
			pattern:   "end",
			input:     "start\nend",
			wantCount: 1,
			wantLines: []int{2},
		},
		{
			name:      "match on several lines",
			pattern:   "an",
			input:     "banana\nbread\nand butter\n",
			wantCount: 2,
			wantLines: []int{1, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewBoyerMooreMatcher(tt.pattern, tt.ignoreCase, tt.invert)
			if err != nil {
				t.Fatalf("NewBoyerMooreMatcher() error: %v", err)
			}
			matches := m.FindAll([]byte(tt.input))
			if len(matches) != tt.wantCount {
				t.Fatalf("FindAll() returned %d matches, want %d", len(matches), tt.wantCount)
			}
			for i, want := range tt.wantLines {
				if matches[i].LineNum != want {
					t.Errorf("match %d on line %d, want %d", i, matches[i].LineNum, want)
				}
			}
		})
	}
}

func TestBoyerMooreMatcher_EmptyPattern(t *testing.T) {
	if _, err := NewMatcher("", false, false); !errors.Is(err, boyermoore.ErrEmptyPattern) {
		t.Errorf("NewMatcher(\"\") error = %v, want ErrEmptyPattern", err)
	}
}

func TestBoyerMooreMatcher_Positions(t *testing.T) {
	m, err := NewBoyerMooreMatcher("ab", false, false)
	if err != nil {
		t.Fatal(err)
	}

	matches := m.FindAll([]byte("xabxxabab\n"))
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	// Non-overlapping, left to right.
	want := [][2]int{{1, 3}, {5, 7}, {7, 9}}
	if !reflect.DeepEqual(matches[0].Positions, want) {
		t.Errorf("Positions = %v, want %v", matches[0].Positions, want)
	}
}

func TestBoyerMooreMatcher_MatchExists(t *testing.T) {
	m, err := NewBoyerMooreMatcher("needle", false, false)
	if err != nil {
		t.Fatal(err)
	}
	if !m.MatchExists([]byte("hay needle hay")) {
		t.Error("MatchExists = false, want true")
	}
	if m.MatchExists([]byte("hay hay hay")) {
		t.Error("MatchExists = true, want false")
	}
}

func TestBoyerMooreMatcher_FindLine(t *testing.T) {
	m, err := NewBoyerMooreMatcher("ana", false, false)
	if err != nil {
		t.Fatal(err)
	}

	match, ok := m.FindLine([]byte("banana"), 3, 42)
	if !ok {
		t.Fatal("FindLine = false, want true")
	}
	if match.LineNum != 3 || match.ByteOffset != 42 {
		t.Errorf("match line/offset = %d/%d, want 3/42", match.LineNum, match.ByteOffset)
	}
	if want := [][2]int{{1, 4}}; !reflect.DeepEqual(match.Positions, want) {
		t.Errorf("Positions = %v, want %v", match.Positions, want)
	}

	if _, ok := m.FindLine([]byte("grapefruit"), 1, 0); ok {
		t.Error("FindLine on non-matching line reported a match")
	}
}

// A match far past the previous one exercises the line cursor's jump path.
func TestBoyerMooreMatcher_LongGapLineNumbers(t *testing.T) {
	m, err := NewBoyerMooreMatcher("needle", false, false)
	if err != nil {
		t.Fatal(err)
	}

	text := "needle\n" + strings.Repeat("x", 300) + "\nneedle"
	matches := m.FindAll([]byte(text))
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].LineNum != 1 || matches[1].LineNum != 3 {
		t.Errorf("line numbers = %d, %d, want 1, 3", matches[0].LineNum, matches[1].LineNum)
	}
	if matches[1].ByteOffset != 308 {
		t.Errorf("second match byte offset = %d, want 308", matches[1].ByteOffset)
	}
}

func TestBoyerMooreMatcher_OffsetsAcrossLines(t *testing.T) {
	m, err := NewBoyerMooreMatcher("aa", false, false)
	if err != nil {
		t.Fatal(err)
	}

	matches := m.FindAll([]byte("aa\nbb\naa\n"))
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].ByteOffset != 0 || matches[1].ByteOffset != 6 {
		t.Errorf("byte offsets = %d, %d, want 0, 6", matches[0].ByteOffset, matches[1].ByteOffset)
	}
	if matches[1].LineNum != 3 {
		t.Errorf("second match line = %d, want 3", matches[1].LineNum)
	}
}
