package boyermoore

// GoodSuffixTable holds the precomputed good-suffix shifts for one pattern.
// Both arrays have length m+1 and are indexed by the leftmost matched pattern
// position k: a mismatch at pattern index j consumes Shift[j+1] (the verified
// suffix is pattern[j+1:]), and a full match consumes Shift[0].
//
// Every Shift entry is >= 1 by construction, so the scan always advances.
type GoodSuffixTable struct {
	// Shift[k] is the safe shift when the matched suffix is pattern[k:].
	Shift []int
	// BorderPos[k] is the start of the widest border of the pattern that is
	// short enough to realign under the matched suffix pattern[k:]; m when no
	// such border exists. Shift[k] falls back to this value when the suffix
	// has no interior reoccurrence.
	BorderPos []int
}

// BuildGoodSuffixTable computes the strong good-suffix table for pattern.
//
// The construction runs off the suffix-length array (Z-array of the reversed
// pattern): case 2 first fills every entry with the widest-border fallback,
// then case 1 overwrites entries whose suffix reoccurs inside the pattern,
// scanning left to right so the rightmost reoccurrence wins.
func BuildGoodSuffixTable(pattern []byte) GoodSuffixTable {
	m := len(pattern)
	suff := suffixLengths(pattern)

	// Proper border lengths in ascending order: pattern[:b] == pattern[m-b:].
	var borders []int
	for i := 0; i < m-1; i++ {
		if suff[i] == i+1 {
			borders = append(borders, i+1)
		}
	}

	// Case 2: for a matched suffix of length m-k, the widest border no longer
	// than the suffix realigns under it, shifting by m-b. With no usable
	// border the whole pattern slides past (shift m; still >= 1 since m >= 1).
	shift := make([]int, m+1)
	borderPos := make([]int, m+1)
	bi, best := 0, 0
	for k := m; k >= 0; k-- {
		for bi < len(borders) && borders[bi] <= m-k {
			best = borders[bi]
			bi++
		}
		borderPos[k] = m - best
		shift[k] = m - best
	}

	// Case 1: suffix of length suff[i] ends at i, so the suffix pattern[m-suff[i]:]
	// reoccurs with a differing (or absent) byte before it; realigning that
	// occurrence shifts by m-1-i. Ascending i leaves the rightmost, smallest
	// shift in place. i <= m-2 keeps every entry positive; the full-match
	// entry k=0 is never touched because suff[i] < m for i < m-1.
	for i := 0; i < m-1; i++ {
		shift[m-suff[i]] = m - 1 - i
	}

	return GoodSuffixTable{Shift: shift, BorderPos: borderPos}
}

// suffixLengths returns, for every position i, the length of the longest
// substring of pattern ending at i that is also a suffix of the whole pattern.
// Computed as the Z-array of the reversed pattern, read back to front.
func suffixLengths(pattern []byte) []int {
	m := len(pattern)
	rev := make([]byte, m)
	for i, c := range pattern {
		rev[m-1-i] = c
	}
	z := zArray(rev)
	suff := make([]int, m)
	for i, v := range z {
		suff[m-1-i] = v
	}
	return suff
}

// zArray computes the Z-array of s: z[i] is the length of the longest
// substring starting at i that matches a prefix of s, with z[0] = len(s).
func zArray(s []byte) []int {
	n := len(s)
	z := make([]int, n)
	z[0] = n
	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}
	return z
}
