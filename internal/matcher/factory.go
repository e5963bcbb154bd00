package matcher

// NewMatcher creates a line-oriented Matcher for a single fixed pattern.
// The pattern is always treated literally; an empty pattern is rejected
// before any preprocessing happens.
func NewMatcher(pattern string, ignoreCase bool, invert bool) (Matcher, error) {
	return NewBoyerMooreMatcher(pattern, ignoreCase, invert)
}
