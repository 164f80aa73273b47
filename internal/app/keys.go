// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev      key.Binding
	Next      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Add       key.Binding
	AddEnd    key.Binding
	Menu      key.Binding
	Rename    key.Binding
	SetFirst  key.Binding
	Copy      key.Binding
	Duplicate key.Binding
	Delete    key.Binding
	Yank      key.Binding
	Help      key.Binding
	Log       key.Binding
	Filter    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous page")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		MoveLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "move page left")),
		MoveRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "move page right")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add after")),
		AddEnd:    key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add at end")),
		Menu:      key.NewBinding(key.WithKeys("enter", "m"), key.WithHelp("enter", "settings")),
		Rename:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		SetFirst:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "set first")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Duplicate: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duplicate")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Yank:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank name")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Log:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "log")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter log")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// hints is the short key summary shown under the strip.
func (k keyMap) hints() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.MoveLeft, k.Add, k.Menu, k.Help, k.Quit}
}
