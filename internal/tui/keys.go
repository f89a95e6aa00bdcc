package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	toggle   key.Binding
	plans    key.Binding
	export   key.Binding
	logout   key.Binding
	language key.Binding
	refresh  key.Binding
	copy     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	toggle:   key.NewBinding(key.WithKeys(" ", "space", "x")),
	plans:    key.NewBinding(key.WithKeys("p")),
	export:   key.NewBinding(key.WithKeys("e")),
	logout:   key.NewBinding(key.WithKeys("o")),
	language: key.NewBinding(key.WithKeys("g")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
}
