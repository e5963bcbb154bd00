// Command bmatch searches for exact occurrences of a fixed pattern using the
// Boyer-Moore algorithm, with an optional step-by-step visualization of the
// scan.
package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dl/bmatch/internal/cli"
)

func main() {
	exitCode := 1
	root := newRootCmd(&exitCode)

	// Config file flags come first so the command line can override them.
	root.SetArgs(append(cli.LoadConfigArgs(), os.Args[1:]...))

	if err := root.Execute(); err != nil {
		os.Exit(2)
	}
	os.Exit(exitCode)
}

func newRootCmd(exitCode *int) *cobra.Command {
	var cfg cli.Config
	var colorMode string
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "bmatch [flags] PATTERN [FILE...]",
		Short: "Boyer-Moore fixed-string search",
		Long: `bmatch finds exact occurrences of PATTERN in the given files, or in
standard input when no file is named. The scan uses the Boyer-Moore
algorithm; --viz replays it alignment by alignment.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Pattern = args[0]
			cfg.Paths = args[1:]
			cfg.Delay = delay

			switch colorMode {
			case "always":
				cfg.Color = cli.ColorAlways
			case "never":
				cfg.Color = cli.ColorNever
			default:
				cfg.Color = cli.ColorAuto
			}

			*exitCode = cli.Run(cfg)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Text, "text", "", "search this text instead of files or stdin")
	flags.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "case-insensitive matching (ASCII)")
	flags.BoolVarP(&cfg.Invert, "invert-match", "v", false, "select lines not containing the pattern")
	flags.BoolVarP(&cfg.CountOnly, "count", "c", false, "print only the count of matching lines")
	flags.BoolVar(&cfg.FirstOnly, "first", false, "print only the byte offset of the first occurrence")
	flags.BoolVarP(&cfg.LineNumbers, "line-number", "n", false, "prefix matching lines with line numbers")
	flags.BoolVarP(&cfg.ByteOffsets, "byte-offset", "b", false, "prefix matching lines with byte offsets")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "emit matches as JSON Lines")
	flags.StringVar(&colorMode, "color", "auto", "colorize output: auto, always, never")
	flags.BoolVar(&cfg.Viz, "viz", false, "render the scan step by step")
	flags.BoolVar(&cfg.Step, "step", false, "with --viz, wait for Enter between alignments")
	flags.DurationVar(&delay, "delay", 0, "with --viz, sleep this long between alignments")
	flags.BoolVar(&cfg.DumpTables, "tables", false, "dump the precomputed shift tables to stderr")

	return cmd
}
