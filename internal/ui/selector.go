package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pthm/uxtone/internal/profile"
)

// ErrSelectionCancelled is returned when the user quits the rule picker
var ErrSelectionCancelled = errors.New("selection cancelled")

// ErrNotInteractive is returned when the rule picker needs a terminal
var ErrNotInteractive = errors.New("rule selection requires an interactive terminal (TTY)")

// SelectorModel is the bubbletea model for choosing which rules to apply
type SelectorModel struct {
	rules     []profile.ApplicableRule
	selected  []bool
	cursor    int
	viewport  viewport.Model
	ready     bool
	width     int
	height    int
	confirmed bool
	cancelled bool
	keys      selectorKeyMap
	styles    selectorStyles
}

type selectorKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	None    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

type selectorStyles struct {
	selected  lipgloss.Style
	checked   lipgloss.Style
	pattern   lipgloss.Style
	arrow     lipgloss.Style
	category  lipgloss.Style
	dim       lipgloss.Style
	header    lipgloss.Style
	statusBar lipgloss.Style
	helpBar   lipgloss.Style
}

func defaultSelectorKeyMap() selectorKeyMap {
	return selectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all"),
		),
		None: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "none"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
	}
}

func defaultSelectorStyles() selectorStyles {
	return selectorStyles{
		selected:  lipgloss.NewStyle().Background(lipgloss.Color("237")).Bold(true),
		checked:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		pattern:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		arrow:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		category:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")).Padding(0, 1),
		statusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
		helpBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("235")),
	}
}

// NewSelectorModel creates a picker over the applicable rules of a profile.
// Every rule starts selected.
func NewSelectorModel(applicable []profile.ApplicableRule) SelectorModel {
	selected := make([]bool, len(applicable))
	for i := range selected {
		selected[i] = true
	}
	return SelectorModel{
		rules:    applicable,
		selected: selected,
		keys:     defaultSelectorKeyMap(),
		styles:   defaultSelectorStyles(),
	}
}

// Selected returns the patterns of the selected rules in table order
func (m SelectorModel) Selected() []string {
	var patterns []string
	for i, ar := range m.rules {
		if m.selected[i] {
			patterns = append(patterns, ar.Rule.Pattern)
		}
	}
	return patterns
}

// Confirmed reports whether the user accepted the selection
func (m SelectorModel) Confirmed() bool {
	return m.confirmed
}

// Init initializes the model
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rules)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if len(m.rules) > 0 {
				m.selected[m.cursor] = !m.selected[m.cursor]
			}

		case key.Matches(msg, m.keys.All):
			m.setAll(true)

		case key.Matches(msg, m.keys.None):
			m.setAll(false)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-4, 3))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-4, 3)
		}
	}

	m.syncViewport()
	return m, nil
}

func (m *SelectorModel) setAll(v bool) {
	m.selected = make([]bool, len(m.rules))
	for i := range m.selected {
		m.selected[i] = v
	}
}

// syncViewport renders the list and scrolls so the cursor stays visible
func (m *SelectorModel) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderList())
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// View renders the picker
func (m SelectorModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var sb strings.Builder

	title := fmt.Sprintf("Select rules to apply (%d of %d)", len(m.Selected()), len(m.rules))
	sb.WriteString(m.styles.header.Render(title))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	detail := ""
	if len(m.rules) > 0 {
		detail = m.renderDetailLine(m.rules[m.cursor])
	}
	sb.WriteString(m.styles.statusBar.Width(m.width).Render(detail))
	sb.WriteString("\n")

	help := " ↑↓ navigate  space toggle  a all  n none  enter apply  q cancel"
	sb.WriteString(m.styles.helpBar.Width(m.width).Render(help))

	return sb.String()
}

func (m SelectorModel) renderList() string {
	lines := make([]string, len(m.rules))
	for i, ar := range m.rules {
		lines[i] = m.renderRule(ar, m.selected[i], i == m.cursor)
	}
	return strings.Join(lines, "\n")
}

func (m SelectorModel) renderRule(ar profile.ApplicableRule, checked, current bool) string {
	box := m.styles.dim.Render("[ ]")
	if checked {
		box = m.styles.checked.Render("[x]")
	}

	content := fmt.Sprintf("%s %s %s %s %s",
		box,
		m.styles.pattern.Render(ar.Rule.Pattern),
		m.styles.arrow.Render("→"),
		ar.Rule.Replacement,
		m.styles.category.Render(fmt.Sprintf("(%s, %d distinct matches)", ar.Rule.Category, len(ar.Matches))),
	)

	if current {
		content = m.styles.selected.Render(content)
	}
	return content
}

func (m SelectorModel) renderDetailLine(ar profile.ApplicableRule) string {
	preview := strings.ReplaceAll(ar.Preview, "\n", " ")
	if r := []rune(preview); len(r) > 80 {
		preview = string(r[:80]) + "..."
	}
	return fmt.Sprintf("%s  %s", ar.Rule.Description, preview)
}

// SelectRules runs the picker and returns the chosen patterns. It fails with
// ErrNotInteractive outside a terminal and ErrSelectionCancelled when the
// user quits.
func (ui *UI) SelectRules(applicable []profile.ApplicableRule) ([]string, error) {
	if !ui.IsInteractive() {
		return nil, ErrNotInteractive
	}

	p := tea.NewProgram(NewSelectorModel(applicable), tea.WithAltScreen(), tea.WithOutput(ui.ErrWriter))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running rule picker: %w", err)
	}

	m := final.(SelectorModel)
	if !m.Confirmed() {
		return nil, ErrSelectionCancelled
	}
	return m.Selected(), nil
}
