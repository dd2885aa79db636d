package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	export   key.Binding
	prevPage key.Binding
	nextPage key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	export:   key.NewBinding(key.WithKeys("x")),
	prevPage: key.NewBinding(key.WithKeys("h", "pgup")),
	nextPage: key.NewBinding(key.WithKeys("l", "pgdown")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
