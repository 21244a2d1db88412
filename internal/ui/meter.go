package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/afc96/passcheck/internal/strength"
)

// MeterModel is the Bubbletea model for the live strength meter. It
// re-evaluates the masked input on every keystroke and renders the score
// as a progress bar with a tier-colored verdict line.
type MeterModel struct {
	input     textinput.Model
	bar       progress.Model
	evaluator *strength.Evaluator
	styles    *Styles
	maxScore  int
	result    strength.Result
	width     int
	quitting  bool
}

// NewMeterModel creates a meter model over the given evaluator
func NewMeterModel(evaluator *strength.Evaluator, cfg strength.Config, styles *Styles) MeterModel {
	ti := textinput.New()
	ti.Placeholder = "type a password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Focus()

	bar := progress.New(progress.WithDefaultGradient())

	return MeterModel{
		input:     ti,
		bar:       bar,
		evaluator: evaluator,
		styles:    styles,
		maxScore:  cfg.MaxScore(),
	}
}

// Init initializes the model
func (m MeterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m MeterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 4
		if m.bar.Width > 60 {
			m.bar.Width = 60
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.result = m.evaluator.Evaluate(m.input.Value())
	return m, cmd
}

// View renders the meter
func (m MeterModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Password Strength Meter"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subheader.Render("esc to quit"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	percent := 0.0
	if m.maxScore > 0 && !m.result.TooShort {
		percent = float64(m.result.Score) / float64(m.maxScore)
	}
	b.WriteString(m.bar.ViewAs(percent))
	b.WriteString("\n\n")

	if m.input.Value() != "" {
		verdict := m.styles.Tier(m.result.Tier).Render(m.result.Message())
		b.WriteString(verdict)
		if !m.result.TooShort {
			b.WriteString(m.styles.Label.Render(fmt.Sprintf("  [score %d/%d]", m.result.Score, m.maxScore)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RunMeter starts the interactive meter and blocks until it exits
func (ui *UI) RunMeter(evaluator *strength.Evaluator, cfg strength.Config) error {
	m := NewMeterModel(evaluator, cfg, ui.Styles)
	p := tea.NewProgram(m, tea.WithOutput(ui.Writer))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("meter failed: %w", err)
	}
	return nil
}
