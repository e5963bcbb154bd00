package cli

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/dl/bmatch/internal/boyermoore"
	"github.com/dl/bmatch/internal/input"
	"github.com/dl/bmatch/internal/matcher"
	"github.com/dl/bmatch/internal/output"
	"github.com/dl/bmatch/internal/viz"
)

// Run executes the search with the given config.
// Returns exit code: 0 = match found, 1 = no match, 2 = error.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid arguments", "err", err)
		return 2
	}

	if cfg.DumpTables {
		if err := dumpTables(os.Stderr, cfg.Pattern); err != nil {
			logger.Error("invalid pattern", "err", err)
			return 2
		}
	}

	if cfg.Viz {
		return runViz(cfg, logger)
	}

	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = output.StdoutIsTerminal()
	}

	m, err := matcher.NewMatcher(cfg.Pattern, cfg.IgnoreCase, cfg.Invert)
	if err != nil {
		logger.Error("invalid pattern", "err", err)
		return 2
	}

	if cfg.FirstOnly {
		return runFirst(cfg, m, logger)
	}

	w := output.NewWriter()
	var formatter output.Formatter
	if cfg.JSONOutput {
		formatter = output.NewJSONFormatter()
	} else {
		formatter = output.NewTextFormatter(cfg.LineNumbers, cfg.CountOnly, cfg.ByteOffsets, useColor)
	}

	sources := cfg.sources()
	multiSource := len(cfg.Paths) > 1
	hasMatch := false

	var buf []byte
	for _, src := range sources {
		result := searchSource(src, m)
		if result.Err != nil {
			logger.Warn("read failed", "source", src.name, "err", result.Err)
			continue
		}
		if result.HasMatch() {
			hasMatch = true
		}
		buf = formatter.Format(buf[:0], result, multiSource)
		if err := w.Write(buf); err != nil {
			logger.Error("write failed", "err", err)
			return 2
		}
		if result.Closer != nil {
			result.Closer()
		}
	}

	if hasMatch {
		return 0
	}
	return 1
}

// source is one text to search.
type source struct {
	name   string // file path; "" for stdin or inline text
	reader input.Reader
	inline []byte // set for --text, bypasses the reader
}

func (c *Config) sources() []source {
	if c.Text != "" {
		return []source{{inline: []byte(c.Text)}}
	}
	if len(c.Paths) == 0 {
		return []source{{reader: input.NewStdinReader()}}
	}
	reader := input.NewBufferedReader()
	srcs := make([]source, len(c.Paths))
	for i, p := range c.Paths {
		srcs[i] = source{name: p, reader: reader}
	}
	return srcs
}

func (s *source) read() (input.ReadResult, error) {
	if s.inline != nil {
		return input.ReadResult{Data: s.inline, Closer: func() error { return nil }}, nil
	}
	return s.reader.Read(s.name)
}

func searchSource(src source, m matcher.Matcher) output.Result {
	rr, err := src.read()
	if err != nil {
		return output.Result{Source: src.name, Err: err}
	}
	return output.Result{
		Source:  src.name,
		Matches: m.FindAll(rr.Data),
		Closer:  rr.Closer,
	}
}

// runFirst prints the byte offset of the first occurrence in each source.
func runFirst(cfg Config, m matcher.Matcher, logger *log.Logger) int {
	bmm, ok := m.(*matcher.BoyerMooreMatcher)
	if !ok {
		logger.Error("--first requires a fixed-pattern matcher")
		return 2
	}

	w := output.NewWriter()
	multiSource := len(cfg.Paths) > 1
	hasMatch := false

	var buf []byte
	for _, src := range cfg.sources() {
		rr, err := src.read()
		if err != nil {
			logger.Warn("read failed", "source", src.name, "err", err)
			continue
		}
		key := rr.Data
		if cfg.IgnoreCase {
			key = bytes.ToLower(key)
		}
		pos, found := bmm.Core().FindFirst(key)
		if found {
			hasMatch = true
			buf = buf[:0]
			if multiSource {
				buf = append(buf, src.name...)
				buf = append(buf, ':')
			}
			buf = strconv.AppendInt(buf, int64(pos), 10)
			buf = append(buf, '\n')
			if err := w.Write(buf); err != nil {
				logger.Error("write failed", "err", err)
				return 2
			}
		}
		if rr.Closer != nil {
			rr.Closer()
		}
	}

	if hasMatch {
		return 0
	}
	return 1
}

// runViz replays the scan of the first source through the step renderer.
// Case-insensitive runs scan and render the lowered bytes, so the display
// shows exactly what was compared.
func runViz(cfg Config, logger *log.Logger) int {
	srcs := cfg.sources()
	src := srcs[0]
	if len(srcs) > 1 {
		logger.Warn("viz renders a single source, ignoring the rest", "source", src.name)
	}

	rr, err := src.read()
	if err != nil {
		logger.Error("read failed", "source", src.name, "err", err)
		return 2
	}
	defer func() {
		if rr.Closer != nil {
			rr.Closer()
		}
	}()

	pattern := []byte(cfg.Pattern)
	text := rr.Data
	if cfg.IgnoreCase {
		pattern = bytes.ToLower(pattern)
		text = bytes.ToLower(text)
	}

	m, err := boyermoore.New(pattern)
	if err != nil {
		logger.Error("invalid pattern", "err", err)
		return 2
	}

	useColor := cfg.Color == ColorAlways || (cfg.Color == ColorAuto && output.StdoutIsTerminal())
	renderer := viz.New(os.Stdout, os.Stdin, text, pattern, viz.Options{
		Color: useColor,
		Step:  cfg.Step,
		Delay: cfg.Delay,
	})
	m.WithSink(renderer)

	occurrences := m.FindAll(text)
	fmt.Printf("text length %d, pattern length %d, occurrences %v\n",
		len(text), len(pattern), occurrences)

	if len(occurrences) > 0 {
		return 0
	}
	return 1
}

// dumpTables writes the precomputed shift tables for pattern, mirroring the
// search exactly: rightmost occurrence per byte, then the good-suffix shift
// and border-position arrays.
func dumpTables(w *os.File, pattern string) error {
	m, err := boyermoore.New([]byte(pattern))
	if err != nil {
		return err
	}
	bad, good := m.Tables()

	fmt.Fprintf(w, "pattern: %q\n", pattern)
	fmt.Fprintln(w, "bad character table (byte -> last index):")
	for c := 0; c < 256; c++ {
		if idx := bad.LastIndex(byte(c)); idx >= 0 {
			fmt.Fprintf(w, "  %q: %d\n", byte(c), idx)
		}
	}
	fmt.Fprintf(w, "good suffix shifts: %v\n", good.Shift)
	fmt.Fprintf(w, "border positions:   %v\n", good.BorderPos)
	return nil
}
