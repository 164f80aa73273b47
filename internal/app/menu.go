// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/cpcloud/pagestrip/internal/pages"
)

const menuWidth = 30

// openMenu shows the settings menu for the active page.
func (m *Model) openMenu() tea.Cmd {
	page, ok := m.pages.Page(m.pages.ActiveID())
	if !ok {
		return nil
	}
	options := make([]huh.Option[pages.Action], 0, len(pages.Actions()))
	for _, a := range pages.Actions() {
		options = append(options, huh.NewOption(a.Label(), a))
	}
	m.menuPageID = page.ID
	m.menuAction = pages.ActionNone
	m.menu = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[pages.Action]().
				Title("Settings").
				Description(page.Name).
				Options(options...).
				Value(&m.menuAction),
		),
	).
		WithShowHelp(false).
		WithTheme(huh.ThemeCharm()).
		WithWidth(menuWidth)
	m.mode = modeMenu
	m.log.appendf(logDebug, "menu opened for %s", page.ID)
	return m.menu.Init()
}

func (m *Model) closeMenu() {
	m.menu = nil
	m.menuPageID = ""
	m.menuAction = pages.ActionNone
	m.mode = modeNormal
}

func (m *Model) updateMenu(msg tea.Msg) tea.Cmd {
	if m.menu == nil {
		m.mode = modeNormal
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.closeMenu()
		return nil
	}
	form, cmd := m.menu.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.menu = f
	}
	switch m.menu.State {
	case huh.StateCompleted:
		id, action := m.menuPageID, m.menuAction
		m.closeMenu()
		return tea.Batch(cmd, m.runAction(id, action))
	case huh.StateAborted:
		m.closeMenu()
	}
	return cmd
}

func (m *Model) menuView() string {
	if m.menu == nil {
		return ""
	}
	return m.styles.Overlay.Render(m.menu.View())
}
