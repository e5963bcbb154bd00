package boyermoore

// alphabetSize is the number of distinct byte values. Inputs are byte
// oriented, so the bad-character table is a fixed array rather than a map.
const alphabetSize = 256

// BadCharTable maps each byte to the index of its rightmost occurrence in the
// pattern, or -1 for bytes the pattern never contains. Built once per pattern
// and read-only afterward.
type BadCharTable [alphabetSize]int

// BuildBadCharTable computes the bad-character table for pattern.
// A forward scan overwrites earlier entries, so ties resolve to the
// rightmost occurrence.
func BuildBadCharTable(pattern []byte) BadCharTable {
	var t BadCharTable
	for i := range t {
		t[i] = -1
	}
	for i, c := range pattern {
		t[c] = i
	}
	return t
}

// LastIndex returns the rightmost index of c within the pattern, or -1.
func (t *BadCharTable) LastIndex(c byte) int {
	return t[c]
}

// Skip returns the bad-character shift for a mismatch of text byte c against
// pattern index j. The result can be zero or negative when c also occurs at or
// right of j; the caller combines it with the good-suffix shift, which is
// always positive.
func (t *BadCharTable) Skip(j int, c byte) int {
	return j - t[c]
}
