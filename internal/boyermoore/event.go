package boyermoore

// EventKind identifies what a scan Event describes.
type EventKind int

const (
	// EventCompare is a single character comparison at the current alignment.
	EventCompare EventKind = iota
	// EventMismatch ends an alignment with a failed comparison; the event
	// carries both candidate shifts and the one applied.
	EventMismatch
	// EventMatch reports a full occurrence of the pattern at Alignment.
	EventMatch
)

// Event is one step of the scan, reported to an optional Sink so an external
// renderer can replay the search. The matcher never depends on what the sink
// does with it.
type Event struct {
	Kind         EventKind
	Alignment    int  // current alignment of pattern[0] in the text
	PatternIndex int  // pattern position compared or mismatched; -1 on a match
	TextIndex    int  // text position of that comparison
	Equal        bool // comparison outcome for EventCompare

	// Shift bookkeeping, set on EventMismatch and EventMatch.
	BadCharShift    int
	GoodSuffixShift int
	Shift           int

	// Running totals across the whole scan.
	Alignments  int
	Comparisons int
}

// Sink observes scan events.
type Sink interface {
	Observe(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Observe(ev Event) { f(ev) }
