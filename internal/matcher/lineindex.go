package matcher

import "bytes"

// lineCursor walks forward through data resolving byte positions to lines.
// Positions must be supplied in ascending order, which lets the cursor scan
// each byte of the text at most once across all lookups.
type lineCursor struct {
	data      []byte
	lineNum   int // 1-based line number of the current line
	lineStart int // byte offset of current line start
	lineEnd   int // byte offset of the line's \n, or len(data)
}

var newlineByte = []byte{'\n'}

func newLineCursor(data []byte) lineCursor {
	c := lineCursor{data: data, lineNum: 1}
	c.lineEnd = lineEndFrom(data, 0)
	return c
}

// lineFromPos advances to the line containing pos and returns the line bytes,
// the line's byte offset and its 1-based number.
func (c *lineCursor) lineFromPos(pos int) ([]byte, int64, int) {
	switch {
	case pos < c.lineEnd:
		// Still on the current line.

	case pos-c.lineEnd <= 256:
		// Short hop: walk line by line.
		for pos >= c.lineEnd && c.lineEnd < len(c.data) {
			c.lineStart = c.lineEnd + 1
			c.lineNum++
			c.lineEnd = lineEndFrom(c.data, c.lineStart)
		}

	default:
		// Long hop: count skipped newlines and land directly on pos's line.
		c.lineNum += bytes.Count(c.data[c.lineEnd:pos], newlineByte)
		c.lineStart = c.lineEnd
		if i := bytes.LastIndexByte(c.data[c.lineEnd:pos], '\n'); i >= 0 {
			c.lineStart = c.lineEnd + i + 1
		}
		c.lineEnd = lineEndFrom(c.data, pos)
	}

	return c.data[c.lineStart:c.lineEnd], int64(c.lineStart), c.lineNum
}

// lineEndFrom returns the offset of the first \n at or after start, or len(data).
func lineEndFrom(data []byte, start int) int {
	if i := bytes.IndexByte(data[start:], '\n'); i >= 0 {
		return start + i
	}
	return len(data)
}
