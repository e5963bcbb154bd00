// Package boyermoore implements exact substring search with the Boyer-Moore
// algorithm: a right-to-left comparison loop driven by the precomputed
// bad-character and strong good-suffix tables, skipping by the larger of the
// two shifts on every failed alignment.
package boyermoore

import (
	"errors"
	"iter"
)

// ErrEmptyPattern is returned when a pattern of length zero is supplied.
var ErrEmptyPattern = errors.New("boyermoore: pattern must not be empty")

// Matcher holds a preprocessed pattern. Build it once and reuse it across
// texts; the tables are never mutated after construction, so a Matcher
// without a sink is safe for concurrent use.
type Matcher struct {
	pattern []byte
	bad     BadCharTable
	good    GoodSuffixTable
	sink    Sink
}

// New preprocesses pattern into a reusable Matcher.
func New(pattern []byte) (*Matcher, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	p := make([]byte, len(pattern))
	copy(p, pattern)
	return &Matcher{
		pattern: p,
		bad:     BuildBadCharTable(p),
		good:    BuildGoodSuffixTable(p),
	}, nil
}

// WithSink registers a scan observer and returns m. A matcher with a sink
// must not be shared between concurrent scans.
func (m *Matcher) WithSink(s Sink) *Matcher {
	m.sink = s
	return m
}

// Pattern returns the preprocessed pattern.
func (m *Matcher) Pattern() []byte { return m.pattern }

// Tables exposes the precomputed shift tables, e.g. for diagnostic dumps.
func (m *Matcher) Tables() (BadCharTable, GoodSuffixTable) {
	return m.bad, m.good
}

// Occurrences returns a lazy sequence of every start index in text where the
// pattern occurs, in ascending order, including overlapping occurrences.
// The sequence is finite and restartable: ranging over it again replays the
// identical scan. Stopping early costs nothing; no background work exists.
// A text shorter than the pattern yields the empty sequence.
func (m *Matcher) Occurrences(text []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		m.scan(text, yield)
	}
}

// FindAll returns every occurrence of the pattern in text.
func (m *Matcher) FindAll(text []byte) []int {
	var out []int
	for pos := range m.Occurrences(text) {
		out = append(out, pos)
	}
	return out
}

// FindFirst returns the first occurrence of the pattern in text, or false
// when there is none.
func (m *Matcher) FindFirst(text []byte) (int, bool) {
	for pos := range m.Occurrences(text) {
		return pos, true
	}
	return 0, false
}

// scan is the alignment loop. It compares right to left at each alignment s,
// and on failure advances by the larger of the bad-character and good-suffix
// shifts. The good-suffix entry is >= 1 by construction, so the maximum is
// always positive and the loop terminates without a separate clamp.
func (m *Matcher) scan(text []byte, yield func(int) bool) {
	n, plen := len(text), len(m.pattern)
	if plen > n {
		return
	}

	comparisons := 0
	alignments := 0

	s := 0
	for s <= n-plen {
		alignments++

		j := plen - 1
		for j >= 0 {
			comparisons++
			eq := m.pattern[j] == text[s+j]
			if m.sink != nil {
				m.sink.Observe(Event{
					Kind:         EventCompare,
					Alignment:    s,
					PatternIndex: j,
					TextIndex:    s + j,
					Equal:        eq,
					Alignments:   alignments,
					Comparisons:  comparisons,
				})
			}
			if !eq {
				break
			}
			j--
		}

		if j < 0 {
			shift := m.good.Shift[0]
			if m.sink != nil {
				m.sink.Observe(Event{
					Kind:            EventMatch,
					Alignment:       s,
					PatternIndex:    -1,
					TextIndex:       s,
					GoodSuffixShift: shift,
					Shift:           shift,
					Alignments:      alignments,
					Comparisons:     comparisons,
				})
			}
			if !yield(s) {
				return
			}
			s += shift
			continue
		}

		bc := m.bad.Skip(j, text[s+j])
		gs := m.good.Shift[j+1]
		shift := max(bc, gs)
		if m.sink != nil {
			m.sink.Observe(Event{
				Kind:            EventMismatch,
				Alignment:       s,
				PatternIndex:    j,
				TextIndex:       s + j,
				BadCharShift:    bc,
				GoodSuffixShift: gs,
				Shift:           shift,
				Alignments:      alignments,
				Comparisons:     comparisons,
			})
		}
		s += shift
	}
}

// Search preprocesses pattern and returns every occurrence in text.
// Use a Matcher directly when the same pattern is searched repeatedly.
func Search(pattern, text []byte) ([]int, error) {
	m, err := New(pattern)
	if err != nil {
		return nil, err
	}
	return m.FindAll(text), nil
}

// SearchFirst preprocesses pattern and returns the first occurrence in text.
// The second result reports whether any occurrence exists.
func SearchFirst(pattern, text []byte) (int, bool, error) {
	m, err := New(pattern)
	if err != nil {
		return 0, false, err
	}
	pos, ok := m.FindFirst(text)
	return pos, ok, nil
}
