package ui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgressController manages the bubbletea program for progress display
type ProgressController struct {
	ui      *UI
	program *tea.Program
	done    chan struct{}
}

// StartProgress starts the progress display if in interactive mode
// Returns nil if not in interactive mode; all methods accept a nil receiver.
func (ui *UI) StartProgress() *ProgressController {
	if ui.Mode != OutputModeInteractive {
		return nil
	}

	p := tea.NewProgram(NewModel(), tea.WithOutput(ui.ErrWriter), tea.WithInput(nil))

	ctrl := &ProgressController{
		ui:      ui,
		program: p,
		done:    make(chan struct{}),
	}

	go func() {
		// The display is best effort; a failed program only loses the spinner.
		_, _ = p.Run()
		close(ctrl.done)
	}()

	return ctrl
}

// SetStage updates the current stage
func (pc *ProgressController) SetStage(stage Stage) {
	if pc != nil && pc.program != nil {
		pc.program.Send(StageMsg(stage))
	}
}

// SetOperation updates the current operation description
func (pc *ProgressController) SetOperation(op string) {
	if pc != nil && pc.program != nil {
		pc.program.Send(OperationMsg(op))
	}
}

// SetFileCount sets the total number of input files
func (pc *ProgressController) SetFileCount(count int) {
	if pc != nil && pc.program != nil {
		pc.program.Send(FileCountMsg(count))
	}
}

// FileStart indicates a file is being read
func (pc *ProgressController) FileStart(name string) {
	if pc != nil && pc.program != nil {
		pc.program.Send(FileStartMsg(name))
	}
}

// FileDone indicates a file has been parsed
func (pc *ProgressController) FileDone() {
	if pc != nil && pc.program != nil {
		pc.program.Send(FileDoneMsg{})
	}
}

// Done signals that all work is complete. It is safe to call more than once.
func (pc *ProgressController) Done(err error) {
	if pc != nil && pc.program != nil {
		pc.program.Send(DoneMsg{Err: err})
		<-pc.done
	}
}

// SimpleSpinner provides a simple spinner for short operations
// without the full progress tracking
type SimpleSpinner struct {
	ui      *UI
	program *tea.Program
	done    chan struct{}
}

// simpleSpinnerModel is a minimal model for just showing a message
type simpleSpinnerModel struct {
	message  string
	quitting bool
}

func (m simpleSpinnerModel) Init() tea.Cmd {
	return nil
}

func (m simpleSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case DoneMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m simpleSpinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("  %s", m.message)
}

// StartSimpleSpinner starts a simple spinner with a message
func (ui *UI) StartSimpleSpinner(w io.Writer, message string) *SimpleSpinner {
	if ui.Mode != OutputModeInteractive {
		// In non-interactive mode, just print the message
		fmt.Fprintf(w, "%s\n", message)
		return nil
	}

	p := tea.NewProgram(simpleSpinnerModel{message: message}, tea.WithOutput(w), tea.WithInput(nil))

	ss := &SimpleSpinner{
		ui:      ui,
		program: p,
		done:    make(chan struct{}),
	}

	go func() {
		_, _ = p.Run()
		close(ss.done)
	}()

	return ss
}

// Stop stops the simple spinner
func (ss *SimpleSpinner) Stop() {
	if ss != nil && ss.program != nil {
		ss.program.Send(DoneMsg{})
		<-ss.done
	}
}
