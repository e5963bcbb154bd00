package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// ANSI fragments appended directly by the text formatter hot path.
const (
	ansiMagenta = "\x1b[35m"
	ansiGreen   = "\x1b[32m"
	ansiCyan    = "\x1b[36m"
	ansiBoldRed = "\x1b[1;31m"
	ansiReset   = "\x1b[0m"
)

// Styles holds the lipgloss styles shared by the visualizer and any styled
// output surface.
type Styles struct {
	Source    lipgloss.Style
	LineNum   lipgloss.Style
	Separator lipgloss.Style
	Match     lipgloss.Style
	Mismatch  lipgloss.Style
	Dim       lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Source:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		LineNum:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Match:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Mismatch:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Source:    lipgloss.NewStyle(),
		LineNum:   lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
		Match:     lipgloss.NewStyle(),
		Mismatch:  lipgloss.NewStyle(),
		Dim:       lipgloss.NewStyle(),
	}
}

// IsTerminal checks whether the given file descriptor is a terminal.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
