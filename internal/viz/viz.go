// Package viz renders the Boyer-Moore scan step by step to a terminal.
// It is a pure observer: it consumes boyermoore events and never feeds
// anything back into the matcher.
package viz

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dl/bmatch/internal/boyermoore"
	"github.com/dl/bmatch/internal/output"
)

// Options controls pacing and styling of the rendered steps.
type Options struct {
	Color bool
	// Step waits for Enter between alignments; Delay sleeps instead.
	// Step wins when both are set.
	Step  bool
	Delay time.Duration
}

// Renderer draws one block per alignment: the text line holding the
// alignment with the compared region highlighted, the pattern beneath it at
// its current column, and the shift chosen by the two heuristics. The layout
// assumes a newline-free pattern. Implements boyermoore.Sink.
type Renderer struct {
	w       io.Writer
	in      *bufio.Reader
	styles  output.Styles
	text    []byte
	pattern []byte
	opts    Options
}

// New creates a Renderer for one search of pattern over text.
// in is consumed line-wise in step mode and may be nil otherwise.
func New(w io.Writer, in io.Reader, text, pattern []byte, opts Options) *Renderer {
	r := &Renderer{
		w:       w,
		styles:  output.NoStyles(),
		text:    text,
		pattern: pattern,
		opts:    opts,
	}
	if opts.Color {
		r.styles = output.NewStyles()
	}
	if in != nil {
		r.in = bufio.NewReader(in)
	}
	return r
}

// Observe renders mismatch and match events; bare comparisons are folded
// into the block drawn when their alignment resolves.
func (r *Renderer) Observe(ev boyermoore.Event) {
	switch ev.Kind {
	case boyermoore.EventMismatch:
		r.renderAlignment(ev, false)
		r.renderShift(ev)
		r.pause()
	case boyermoore.EventMatch:
		r.renderAlignment(ev, true)
		fmt.Fprintf(r.w, "match at %d, shift %d\n\n", ev.Alignment, ev.Shift)
		r.pause()
	}
}

// renderAlignment draws the text and the pattern aligned under it. The
// verified suffix is drawn in the match style; on a mismatch the offending
// byte is drawn in the mismatch style. Only the text line containing the
// alignment is shown, so the pattern row indent is the column within that
// line; window bytes past the end of the line are clipped.
func (r *Renderer) renderAlignment(ev boyermoore.Event, matched bool) {
	s := ev.Alignment
	j := ev.PatternIndex // -1 on a full match
	m := len(r.pattern)

	lineStart := bytes.LastIndexByte(r.text[:s], '\n') + 1
	lineEnd := len(r.text)
	if i := bytes.IndexByte(r.text[s:], '\n'); i >= 0 {
		lineEnd = s + i
	}
	col := s - lineStart

	var text strings.Builder
	text.Write(r.text[lineStart:s])
	if matched {
		text.WriteString(r.styles.Match.Render(string(r.text[s:min(s+m, lineEnd)])))
	} else {
		text.Write(r.text[s:min(s+j, lineEnd)])
		if s+j < lineEnd {
			text.WriteString(r.styles.Mismatch.Render(string(r.text[s+j : s+j+1])))
			text.WriteString(r.styles.Match.Render(string(r.text[s+j+1 : min(s+m, lineEnd)])))
		}
	}
	if s+m < lineEnd {
		text.Write(r.text[s+m : lineEnd])
	}
	fmt.Fprintln(r.w, text.String())

	var pat strings.Builder
	pat.WriteString(strings.Repeat(" ", col))
	if matched {
		pat.WriteString(r.styles.Match.Render(string(r.pattern)))
	} else {
		pat.Write(r.pattern[:j])
		pat.WriteString(r.styles.Mismatch.Render(string(r.pattern[j : j+1])))
		pat.WriteString(r.styles.Match.Render(string(r.pattern[j+1:])))
	}
	fmt.Fprintln(r.w, pat.String())

	fmt.Fprintln(r.w, r.styles.Dim.Render(fmt.Sprintf(
		"alignment %d, comparisons %d", ev.Alignments, ev.Comparisons)))
}

// renderShift reports both candidate shifts and which rule won.
func (r *Renderer) renderShift(ev boyermoore.Event) {
	rule := "good suffix"
	if ev.BadCharShift > ev.GoodSuffixShift {
		rule = "bad character"
	}
	fmt.Fprintf(r.w, "bad character shift %d, good suffix shift %d -> shift %d (%s)\n\n",
		ev.BadCharShift, ev.GoodSuffixShift, ev.Shift, rule)
}

func (r *Renderer) pause() {
	if r.opts.Step && r.in != nil {
		fmt.Fprint(r.w, "press Enter to continue ...")
		_, _ = r.in.ReadString('\n')
		fmt.Fprintln(r.w)
		return
	}
	if r.opts.Delay > 0 {
		time.Sleep(r.opts.Delay)
	}
}

var _ boyermoore.Sink = (*Renderer)(nil)
