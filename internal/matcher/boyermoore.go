package matcher

import (
	"bytes"

	"github.com/dl/bmatch/internal/boyermoore"
)

// BoyerMooreMatcher adapts the Boyer-Moore core to line-oriented matching of
// a single fixed pattern.
type BoyerMooreMatcher struct {
	bm         *boyermoore.Matcher
	ignoreCase bool
	invert     bool
}

// NewBoyerMooreMatcher preprocesses a single fixed pattern.
// Returns boyermoore.ErrEmptyPattern when pattern is empty.
func NewBoyerMooreMatcher(pattern string, ignoreCase bool, invert bool) (*BoyerMooreMatcher, error) {
	p := []byte(pattern)
	if ignoreCase {
		p = bytes.ToLower(p)
	}
	bm, err := boyermoore.New(p)
	if err != nil {
		return nil, err
	}
	return &BoyerMooreMatcher{
		bm:         bm,
		ignoreCase: ignoreCase,
		invert:     invert,
	}, nil
}

// Core returns the underlying Boyer-Moore matcher, e.g. for table dumps or
// event tracing.
func (m *BoyerMooreMatcher) Core() *boyermoore.Matcher { return m.bm }

// searchKey returns the byte view the scan runs over: the data itself, or an
// ASCII-lowered copy for case-insensitive matching. Offsets are identical in
// both views.
func (m *BoyerMooreMatcher) searchKey(data []byte) []byte {
	if m.ignoreCase {
		return bytes.ToLower(data)
	}
	return data
}

func (m *BoyerMooreMatcher) MatchExists(data []byte) bool {
	if m.invert {
		return len(data) > 0
	}
	_, ok := m.bm.FindFirst(m.searchKey(data))
	return ok
}

func (m *BoyerMooreMatcher) FindAll(data []byte) []Match {
	if m.invert {
		return m.findAllInvert(data)
	}
	offsets := m.nonOverlapping(m.searchKey(data))
	return matchesFromOffsets(data, offsets, len(m.bm.Pattern()))
}

// nonOverlapping filters the core's overlapping occurrence stream down to the
// leftmost non-overlapping ones, which is what line highlighting wants.
func (m *BoyerMooreMatcher) nonOverlapping(key []byte) []int {
	plen := len(m.bm.Pattern())
	var offsets []int
	next := 0
	for off := range m.bm.Occurrences(key) {
		if off < next {
			continue
		}
		offsets = append(offsets, off)
		next = off + plen
	}
	return offsets
}

// findAllInvert returns the lines that do NOT contain the pattern.
func (m *BoyerMooreMatcher) findAllInvert(data []byte) []Match {
	var matches []Match
	var offset int64
	lineNum := 1
	remaining := data

	for len(remaining) > 0 {
		lineLen := len(remaining)
		if i := bytes.IndexByte(remaining, '\n'); i >= 0 {
			lineLen = i
		}
		line := remaining[:lineLen]

		if _, ok := m.bm.FindFirst(m.searchKey(line)); !ok {
			matches = append(matches, Match{
				LineNum:    lineNum,
				LineBytes:  line,
				ByteOffset: offset,
			})
		}

		if lineLen == len(remaining) {
			break
		}
		remaining = remaining[lineLen+1:]
		offset += int64(lineLen) + 1
		lineNum++
	}

	return matches
}

func (m *BoyerMooreMatcher) FindLine(line []byte, lineNum int, byteOffset int64) (Match, bool) {
	offsets := m.nonOverlapping(m.searchKey(line))
	hasMatch := len(offsets) > 0
	if m.invert {
		hasMatch = !hasMatch
	}
	if !hasMatch {
		return Match{}, false
	}

	match := Match{
		LineNum:    lineNum,
		LineBytes:  line,
		ByteOffset: byteOffset,
	}
	if !m.invert {
		plen := len(m.bm.Pattern())
		match.Positions = make([][2]int, len(offsets))
		for i, off := range offsets {
			end := off + plen
			if end > len(line) {
				end = len(line)
			}
			match.Positions[i] = [2]int{off, end}
		}
	}
	return match, true
}

var _ Matcher = (*BoyerMooreMatcher)(nil)
