package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Status styles
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Suggestion lipgloss.Style
	Info       lipgloss.Style
	Success    lipgloss.Style

	// Diff styles
	Removed lipgloss.Style
	Added   lipgloss.Style
	Match   lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Path      lipgloss.Style
	Rule      lipgloss.Style
	Category  lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconError      string
	IconWarning    string
	IconSuggestion string
	IconInfo       string
	IconSuccess    string
	IconArrow      string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if !enabled {
		plain := lipgloss.NewStyle()
		s.Error, s.Warning, s.Suggestion, s.Info, s.Success = plain, plain, plain, plain, plain
		s.Removed, s.Added, s.Match = plain, plain, plain
		s.Header, s.Subheader, s.Path, s.Rule, s.Category, s.Separator = plain, plain, plain, plain, plain, plain

		s.IconError = "ERROR:"
		s.IconWarning = "WARN:"
		s.IconSuggestion = "HINT:"
		s.IconInfo = "INFO:"
		s.IconSuccess = "OK:"
		s.IconArrow = "->"
		return s
	}

	s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))       // Red
	s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))    // Yellow
	s.Suggestion = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // Cyan
	s.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))       // Blue
	s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))    // Green

	s.Removed = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	s.Added = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	s.Match = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
	s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	s.Rule = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	s.Category = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	s.IconError = "✗"
	s.IconWarning = "⚠"
	s.IconSuggestion = "\U0001f4a1"
	s.IconInfo = "ℹ"
	s.IconSuccess = "✓"
	s.IconArrow = "→"

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
