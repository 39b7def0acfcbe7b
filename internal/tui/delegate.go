package tui

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) FilterValue() string { return i.Name }

// Label is the display text of an item: "Milk - 2 liters".
func Label(it model.Item) string {
	return fmt.Sprintf("%s - %s %s", it.Name, formatQuantity(it.Quantity), it.Unit)
}

func formatQuantity(q float64) string {
	switch {
	case math.IsInf(q, 1):
		return "Infinity"
	case math.IsInf(q, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	text := Label(it.Item)
	yes, no := t.RadioOff, t.RadioOn
	if it.Purchased {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
		yes, no = t.RadioOn, t.RadioOff
	}
	radios := t.Muted.Render(fmt.Sprintf("%s purchased  %s not purchased", yes, no))

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s   %s", prefix, box, text, radios)
}

func toListItems(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, listItem{Item: it})
	}
	return out
}
