package cli

import (
	"fmt"
	"time"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// Config holds all configuration for a bmatch run.
type Config struct {
	Pattern string
	Text    string   // inline text; mutually exclusive with Paths
	Paths   []string // files to search; stdin when empty and Text is unset

	IgnoreCase  bool
	Invert      bool
	CountOnly   bool
	FirstOnly   bool
	LineNumbers bool
	ByteOffsets bool
	JSONOutput  bool
	Color       ColorMode

	Viz        bool
	Step       bool
	Delay      time.Duration
	DumpTables bool
}

// Validate checks that the config is consistent and returns an error if not.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("no pattern specified")
	}
	if c.Text != "" && len(c.Paths) > 0 {
		return fmt.Errorf("cannot combine --text with file arguments")
	}
	if c.CountOnly && c.FirstOnly {
		return fmt.Errorf("cannot use --count and --first together")
	}
	if c.FirstOnly && c.Invert {
		return fmt.Errorf("cannot use --first and --invert-match together")
	}
	if c.FirstOnly && c.JSONOutput {
		return fmt.Errorf("cannot use --first and --json together")
	}
	if c.Viz && c.JSONOutput {
		return fmt.Errorf("cannot use --viz and --json together")
	}
	if c.Viz && c.Invert {
		return fmt.Errorf("cannot use --viz and --invert-match together")
	}
	if !c.Viz && (c.Step || c.Delay > 0) {
		return fmt.Errorf("--step and --delay require --viz")
	}
	if c.Delay < 0 {
		return fmt.Errorf("invalid delay: %v", c.Delay)
	}
	return nil
}
