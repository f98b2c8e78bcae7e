// Package tui is the interactive calculator: a form on the left, the live
// calculation on the right. Every edit triggers one full recomputation of
// the plan; there is no partial update path.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rustyeddy/tradeplan/config"
	"github.com/rustyeddy/tradeplan/plan"
	"github.com/rustyeddy/tradeplan/prefs"
)

// formField identifies the currently focused form row.
type formField int

const (
	fieldDirection formField = iota
	fieldBasis
	fieldEntry
	fieldATR
	fieldAccount
	fieldRisk
	fieldStop
	fieldTarget
	fieldTrail
	fieldBuffer
)

type Model struct {
	store *prefs.Store // may be nil; account size then lives only in the form

	directionIndex int // 0 long, 1 short
	basisIndex     int // 0 percent of account, 1 fixed dollars

	entryInput   textinput.Model
	atrInput     textinput.Model
	accountInput textinput.Model
	riskInput    textinput.Model
	stopInput    textinput.Model
	targetInput  textinput.Model
	trailInput   textinput.Model
	bufferInput  textinput.Model

	currentField formField
	calc         plan.Calculation
	savedAccount float64

	width  int
	height int
}

// NewModel seeds the form from the config defaults and the persisted
// account size.
func NewModel(cfg *config.Config, store *prefs.Store) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	account := cfg.Account.Size
	if store != nil {
		account = store.AccountSize(account)
	}

	newInput := func(placeholder, value string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Width = 12
		in.CharLimit = 15
		in.SetValue(value)
		return in
	}

	m := &Model{
		store:        store,
		entryInput:   newInput("entry price", ""),
		atrInput:     newInput("ATR", ""),
		accountInput: newInput("account size", formatFloat(account)),
		riskInput:    newInput("risk", formatFloat(cfg.Plan.RiskPercent)),
		stopInput:    newInput("stop multiple", formatFloat(cfg.Plan.StopMultiple)),
		targetInput:  newInput("target R", formatFloat(cfg.Plan.TargetR)),
		trailInput:   newInput("trail multiple", formatFloat(cfg.Plan.TrailMultiple)),
		bufferInput:  newInput("entry buffer", formatFloat(cfg.Plan.EntryBuffer)),
		currentField: fieldEntry,
		savedAccount: account,
	}
	m.entryInput.Focus()
	m.recompute()

	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c", "esc"))):
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "tab", "enter"))):
			m.nextField()
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "shift+tab"))):
			m.prevField()
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("left"))):
			if m.currentField == fieldDirection || m.currentField == fieldBasis {
				m.cycleOption(-1)
				return m, nil
			}

		case key.Matches(msg, key.NewBinding(key.WithKeys("right"))):
			if m.currentField == fieldDirection || m.currentField == fieldBasis {
				m.cycleOption(1)
				return m, nil
			}
		}
	}

	// Everything else goes to the focused text input.
	if in := m.inputFor(m.currentField); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		m.recompute()
		return m, cmd
	}

	return m, nil
}

func (m *Model) cycleOption(delta int) {
	switch m.currentField {
	case fieldDirection:
		m.directionIndex = clampIndex(m.directionIndex+delta, 2)
		m.recompute()
	case fieldBasis:
		m.basisIndex = clampIndex(m.basisIndex+delta, 2)
		m.recompute()
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (m *Model) inputFor(f formField) *textinput.Model {
	switch f {
	case fieldEntry:
		return &m.entryInput
	case fieldATR:
		return &m.atrInput
	case fieldAccount:
		return &m.accountInput
	case fieldRisk:
		return &m.riskInput
	case fieldStop:
		return &m.stopInput
	case fieldTarget:
		return &m.targetInput
	case fieldTrail:
		return &m.trailInput
	case fieldBuffer:
		return &m.bufferInput
	}
	return nil
}

// fieldOrder is the navigation order; the account row disappears on the
// fixed-dollar basis.
func (m *Model) fieldOrder() []formField {
	order := []formField{fieldDirection, fieldBasis, fieldEntry, fieldATR}
	if m.basisIndex == 0 {
		order = append(order, fieldAccount)
	}
	return append(order, fieldRisk, fieldStop, fieldTarget, fieldTrail, fieldBuffer)
}

func (m *Model) nextField() { m.moveFocus(1) }
func (m *Model) prevField() { m.moveFocus(-1) }

func (m *Model) moveFocus(delta int) {
	order := m.fieldOrder()
	idx := 0
	for i, f := range order {
		if f == m.currentField {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	m.setField(order[idx])
}

func (m *Model) setField(f formField) {
	if in := m.inputFor(m.currentField); in != nil {
		in.Blur()
	}
	m.currentField = f
	if in := m.inputFor(f); in != nil {
		in.Focus()
	}
}

func (m *Model) values() formValues {
	return formValues{
		Entry:   m.entryInput.Value(),
		ATR:     m.atrInput.Value(),
		Account: m.accountInput.Value(),
		Risk:    m.riskInput.Value(),
		Stop:    m.stopInput.Value(),
		Target:  m.targetInput.Value(),
		Trail:   m.trailInput.Value(),
		Buffer:  m.bufferInput.Value(),
	}
}

func (m *Model) recompute() {
	dir := plan.Long
	if m.directionIndex == 1 {
		dir = plan.Short
	}

	m.calc = plan.Calculate(buildInputs(dir, m.basisIndex == 1, m.values()))
	m.persistAccount()
}

// persistAccount writes the account size through to the preference store
// whenever it parses to a new finite positive value. ParseFloat accepts
// "NaN" and "Inf" spellings, so positivity alone is not enough.
func (m *Model) persistAccount() {
	if m.store == nil {
		return
	}
	v := parseFloat(m.accountInput.Value())
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v == m.savedAccount {
		return
	}
	if err := m.store.SetAccountSize(v); err == nil {
		m.savedAccount = v
	}
}

// View renders the form and the live result side by side, clipped to the
// last reported terminal size. The panes are fixed width and do not reflow.
func (m *Model) View() string {
	panes := lipgloss.JoinHorizontal(lipgloss.Top, m.renderForm(), m.renderResult())
	help := helpStyle.Render("tab/down next | up prev | left/right toggle | esc quit")

	view := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("tradeplan"), panes, help)
	if m.width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.height).Render(view)
	}
	return view
}

func (m *Model) renderForm() string {
	var b strings.Builder

	b.WriteString(m.renderToggle("Direction", []string{"LONG", "SHORT"}, m.directionIndex, fieldDirection))
	b.WriteString("\n")
	b.WriteString(m.renderToggle("Risk Basis", []string{"% ACCOUNT", "FIXED $"}, m.basisIndex, fieldBasis))
	b.WriteString("\n")

	b.WriteString(m.renderInput("Entry", fieldEntry, m.entryInput))
	b.WriteString(m.renderInput("ATR", fieldATR, m.atrInput))
	if m.basisIndex == 0 {
		b.WriteString(m.renderInput("Account", fieldAccount, m.accountInput))
	}

	riskLabel := "Risk %"
	if m.basisIndex == 1 {
		riskLabel = "Risk $"
	}
	b.WriteString(m.renderInput(riskLabel, fieldRisk, m.riskInput))

	b.WriteString(m.renderInput("Stop x ATR", fieldStop, m.stopInput))
	b.WriteString(m.renderInput("Target R", fieldTarget, m.targetInput))
	b.WriteString(m.renderInput("Trail x ATR", fieldTrail, m.trailInput))
	b.WriteString(m.renderInput("Buffer", fieldBuffer, m.bufferInput))

	return focusedPanelStyle.Render(b.String())
}

func (m *Model) renderLabel(label string, f formField) string {
	style := labelStyle
	if m.currentField == f {
		style = focusedLabelStyle
	}
	return style.Render(fmt.Sprintf("%-12s", label))
}

func (m *Model) renderInput(label string, f formField, in textinput.Model) string {
	return m.renderLabel(label, f) + in.View() + "\n"
}

func (m *Model) renderToggle(label string, options []string, selected int, f formField) string {
	var items []string
	for i, opt := range options {
		style := optionStyle
		if i == selected {
			style = selectedOptionStyle
			if f == fieldDirection {
				if i == 0 {
					style = style.Foreground(longColor)
				} else {
					style = style.Foreground(shortColor)
				}
			}
		}
		items = append(items, style.Render(opt))
	}
	return m.renderLabel(label, f) + strings.Join(items, " | ")
}

func (m *Model) renderResult() string {
	var b strings.Builder
	c := m.calc

	if !c.Valid {
		for _, is := range c.Errors {
			b.WriteString(errStyle.Render("error: "+is.Msg) + "\n")
		}
		return panelStyle.Render(b.String())
	}

	dirStyle := longStyle
	if c.Direction == plan.Short {
		dirStyle = shortStyle
	}
	b.WriteString(dirStyle.Render(strings.ToUpper(string(c.Direction))))
	b.WriteString(valueStyle.Render(" @ " + money(c.EntryPrice)))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("Stop", money(c.StopPrice))
	row("Target", money(c.TargetPrice))
	row("Trailing", money(c.TrailingAmount))
	row("Risk / Unit", money(c.RiskPerUnit))
	b.WriteString("\n")
	row("Max Risk", money(c.MaxDollarRisk))
	row("Size", fmt.Sprintf("%d units", c.PositionSize))
	row("Cost", money(c.TotalCost))
	row("Dollar Risk", money(c.DollarRisk))
	if c.RMultiple != nil {
		row("R Multiple", fmt.Sprintf("%.2fR", *c.RMultiple))
	}

	for _, is := range c.Warnings {
		b.WriteString(warnStyle.Render("warning: "+is.Msg) + "\n")
	}

	if tk := c.Ticket; tk != nil {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Order Ticket") + "\n")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s  stop %s limit %s x%d",
			tk.EntryKind, money(tk.EntryStopPrice), money(tk.EntryLimitPrice), tk.Quantity)) + "\n")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s  %s x%d",
			tk.TargetKind, money(tk.TargetPrice), tk.Quantity)) + "\n")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s  %s x%d",
			tk.TrailKind, money(tk.TrailAmount), tk.Quantity)) + "\n")
		b.WriteString(mutedStyle.Render(tk.Linkage) + "\n")
	}

	return panelStyle.Render(b.String())
}

func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Run starts the interactive calculator in the alternate screen.
func Run(cfg *config.Config, store *prefs.Store) error {
	p := tea.NewProgram(NewModel(cfg, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
