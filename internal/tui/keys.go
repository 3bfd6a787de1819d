package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	prevPartner key.Binding
	nextPartner key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	upload      key.Binding
	toggle      key.Binding
	auditLog    key.Binding
	addPartner  key.Binding
	viewPartner key.Binding
	deleteItem  key.Binding
	download    key.Binding
	refresh     key.Binding
	copyLink    key.Binding
	space       key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	prevPartner: key.NewBinding(key.WithKeys("left", "[")),
	nextPartner: key.NewBinding(key.WithKeys("right", "]")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	upload:      key.NewBinding(key.WithKeys("u")),
	toggle:      key.NewBinding(key.WithKeys("t")),
	auditLog:    key.NewBinding(key.WithKeys("l")),
	addPartner:  key.NewBinding(key.WithKeys("a")),
	viewPartner: key.NewBinding(key.WithKeys("p")),
	deleteItem:  key.NewBinding(key.WithKeys("ctrl+d")),
	download:    key.NewBinding(key.WithKeys("D")),
	refresh:     key.NewBinding(key.WithKeys("r")),
	copyLink:    key.NewBinding(key.WithKeys("c")),
	space:       key.NewBinding(key.WithKeys(" ")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n")),
}
