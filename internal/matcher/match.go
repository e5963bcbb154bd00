package matcher

// Match represents a single matched line.
type Match struct {
	LineNum    int      // 1-based line number
	LineBytes  []byte   // full line content (no trailing newline)
	ByteOffset int64    // byte offset of line start within the text
	Positions  [][2]int // start/end byte offsets of each occurrence within LineBytes
}

// Matcher finds pattern matches in a text and attributes them to lines.
type Matcher interface {
	// FindAll scans the whole text and returns all matched lines.
	FindAll(data []byte) []Match

	// MatchExists reports whether the text contains at least one match.
	// Faster than FindAll when only existence matters.
	MatchExists(data []byte) bool

	// FindLine checks a single line for matches.
	// lineNum is 1-based, byteOffset is the offset of the line start in the text.
	FindLine(line []byte, lineNum int, byteOffset int64) (Match, bool)
}

// matchesFromOffsets converts sorted whole-buffer occurrence offsets into
// per-line Match values, merging occurrences that land on the same line.
// patternLen sets the end offset of each highlighted span. Uses a single flat
// positions buffer sub-sliced into each Match to keep allocations flat.
func matchesFromOffsets(data []byte, offsets []int, patternLen int) []Match {
	if len(offsets) == 0 {
		return nil
	}

	cursor := newLineCursor(data)
	matches := make([]Match, 0, len(offsets))
	allPos := make([][2]int, 0, len(offsets))
	lastLineStart := int64(-1)
	posStart := 0

	for _, off := range offsets {
		line, lineOffset, lineNum := cursor.lineFromPos(off)

		posInLine := off - int(lineOffset)
		end := posInLine + patternLen
		if end > len(line) {
			end = len(line) // occurrence spans the newline; clip the span
		}
		allPos = append(allPos, [2]int{posInLine, end})

		if lineOffset == lastLineStart {
			matches[len(matches)-1].Positions = allPos[posStart:]
			continue
		}
		posStart = len(allPos) - 1
		matches = append(matches, Match{
			LineNum:    lineNum,
			LineBytes:  line,
			ByteOffset: lineOffset,
			Positions:  allPos[posStart:],
		})
		lastLineStart = lineOffset
	}

	return matches
}
