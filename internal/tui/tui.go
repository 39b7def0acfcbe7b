// Package tui is the interactive shopping list: a three-field add form
// above the item list, with an error line and a summary line.
package tui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/idilsaglam/shoplist/internal/shoplist"
	"github.com/idilsaglam/shoplist/internal/summary"
	"github.com/idilsaglam/shoplist/internal/ui"
)

type focus int

const (
	focusName focus = iota
	focusQuantity
	focusUnit
	focusList
	focusCount
)

// rows taken by everything except the list: border, form title, three
// inputs, error line, summary line and spacing
const chromeHeight = 11

// Options tune how the program runs.
type Options struct {
	AltScreen bool
	DebugLog  string // path for tea.LogToFile; empty disables logging
}

// Model renders a shoplist.Component. The component is the source of
// truth; the list widget is rebuilt from it after every mutation.
type Model struct {
	c      *shoplist.Component
	inputs [3]textinput.Model
	list   list.Model
	focus  focus
	width  int
	height int
	log    *log.Logger
}

// New builds the model with the name field focused. A nil logger discards.
func New(c *shoplist.Component, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	m := Model{c: c, width: 80, height: 24, log: logger}

	for i, f := range []struct{ prompt, placeholder string }{
		{"Name     > ", "e.g. Milk"},
		{"Quantity > ", "e.g. 2"},
		{"Unit     > ", "e.g. liters"},
	} {
		ti := textinput.New()
		ti.Prompt = f.prompt
		ti.Placeholder = f.placeholder
		ti.CharLimit = 200
		m.inputs[i] = ti
	}

	t := ui.Current()
	l := list.New(toListItems(c.Items()), itemDelegate{}, m.width-4, m.height-chromeHeight)
	l.Title = "Shopping list"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.KeyMap.Quit.SetEnabled(false)
	l.AdditionalShortHelpKeys = listHelp
	l.AdditionalFullHelpKeys = listHelp
	m.list = l

	m.setFocus(focusName)
	return m
}

// Run starts the Bubble Tea program on c and blocks until the user quits.
func Run(c *shoplist.Component, opt Options) error {
	var logger *log.Logger
	if opt.DebugLog != "" {
		f, err := tea.LogToFile(opt.DebugLog, "shoplist "+uuid.NewString()[:8])
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}
	m := New(c, logger)
	m.log.Printf("start with %d items", c.Len())

	var popts []tea.ProgramOption
	if opt.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(m, popts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		fm.log.Printf("quit with %d items", fm.c.Len())
	}
	return nil
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			return m, m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, keys.Prev):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}

	// cursor blink and the like
	var cmd tea.Cmd
	if m.focus == focusList {
		m.list, cmd = m.list.Update(msg)
	} else {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		item, err := m.c.Submit()
		if err != nil {
			// the form state carries the message; View shows it
			return m, nil
		}
		m.log.Printf("added item %d", item.ID)
		m.syncInputs()
		cmd := m.refresh()
		m.list.Select(len(m.list.Items()) - 1)
		return m, tea.Batch(cmd, m.setFocus(focusName))

	case key.Matches(msg, keys.Back):
		return m, m.setFocus(focusList)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.c.SetName(m.inputs[focusName].Value())
	m.c.SetQuantity(m.inputs[focusQuantity].Value())
	m.c.SetUnit(m.inputs[focusUnit].Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Purchased):
		return m, m.markSelected(func(bool) bool { return true })
	case key.Matches(msg, keys.NotPurchased):
		return m, m.markSelected(func(bool) bool { return false })
	case key.Matches(msg, keys.Flip):
		return m, m.markSelected(func(p bool) bool { return !p })

	case key.Matches(msg, keys.Delete):
		li, ok := m.list.SelectedItem().(listItem)
		if !ok {
			return m, nil
		}
		idx := m.list.Index()
		m.c.Delete(li.ID)
		m.log.Printf("deleted item %d", li.ID)
		cmd := m.refresh()
		if n := len(m.list.Items()); idx >= n && n > 0 {
			m.list.Select(n - 1)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// markSelected replaces the purchased flag of the selected item with
// next(current).
func (m *Model) markSelected(next func(bool) bool) tea.Cmd {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	m.c.Toggle(li.ID, next(li.Purchased))
	return m.refresh()
}

// refresh re-projects the component's items into the list widget.
func (m *Model) refresh() tea.Cmd {
	idx := m.list.Index()
	cmd := m.list.SetItems(toListItems(m.c.Items()))
	if idx < len(m.list.Items()) {
		m.list.Select(idx)
	}
	return cmd
}

// syncInputs copies the component's pending text back into the fields.
func (m *Model) syncInputs() {
	p := m.c.Pending()
	for i, v := range []string{p.Name, p.Quantity, p.Unit} {
		m.inputs[i].SetValue(v)
	}
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if focus(i) == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) resize() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
	for i := range m.inputs {
		m.inputs[i].Width = w - lipgloss.Width(m.inputs[i].Prompt) - 1
	}
}

func (m Model) View() string {
	t := ui.Current()

	title := "Add item"
	if m.focus == focusList {
		title = t.Muted.Render(title + "  (tab to edit)")
	} else {
		title = t.Title.Render(title)
	}
	sections := []string{title}
	for i := range m.inputs {
		sections = append(sections, m.inputs[i].View())
	}
	if st := m.c.State(); st.Kind == shoplist.Invalid {
		sections = append(sections, t.Error.Render(t.SymFail+" "+st.Message))
	}
	sections = append(sections, "", m.list.View())

	if s := m.c.Summary(); s.Visible() {
		style := t.Pending
		if s.Kind == summary.AllPurchased {
			style = t.Success
		}
		sections = append(sections, "", style.Render(s.Text())+"  "+ui.ProgressBar(s.Purchased, s.Total, 20))
	}
	return ui.PanelString(strings.Join(sections, "\n"))
}
