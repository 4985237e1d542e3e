package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	forceQ   key.Binding
	identify key.Binding
	add      key.Binding
	submit   key.Binding
	save     key.Binding
	delete   key.Binding
	copy     key.Binding
	info     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up")),
	down:     key.NewBinding(key.WithKeys("down")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q")),
	forceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	identify: key.NewBinding(key.WithKeys("i")),
	add:      key.NewBinding(key.WithKeys("a")),
	submit:   key.NewBinding(key.WithKeys("s")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	info:     key.NewBinding(key.WithKeys("v")),
}
