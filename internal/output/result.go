package output

import "github.com/dl/bmatch/internal/matcher"

// Result aggregates the matches found in a single input source.
type Result struct {
	// Source names where the text came from: a file path, or "" for stdin
	// and inline text.
	Source  string
	Matches []matcher.Match
	Err     error
	// Closer releases the buffer that Matches point into. Must be called
	// after the result has been fully formatted.
	Closer func() error
}

// HasMatch reports whether this result contains at least one match.
func (r *Result) HasMatch() bool {
	return len(r.Matches) > 0
}
