package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next, Prev   key.Binding
	Submit, Back key.Binding

	Purchased, NotPurchased, Flip key.Binding
	Delete                        key.Binding

	Quit, ForceQuit key.Binding
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "to list")),

	Purchased:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "purchased")),
	NotPurchased: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "not purchased")),
	Flip:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Delete:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),

	Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}

// listHelp extends the list's own help with our item actions.
func listHelp() []key.Binding {
	return []key.Binding{keys.Purchased, keys.NotPurchased, keys.Flip, keys.Delete, keys.Next}
}
