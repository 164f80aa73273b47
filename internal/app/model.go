// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import (
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/cpcloud/pagestrip/internal/drag"
	"github.com/cpcloud/pagestrip/internal/pages"
)

type Options struct {
	// Pages seeds the strip; nil means the default four pages.
	Pages       []pages.Page
	NewPageName string
	Verbosity   int
	LogEntries  int
	// Clipboard receives yanked page names. Defaults to the system clipboard.
	Clipboard func(string) error
}

type Model struct {
	pages  *pages.Collection
	drag   drag.Tracker
	press  *pressState
	styles Styles
	keys   keyMap
	mode   Mode

	rename textinput.Model

	menu       *huh.Form
	menuAction pages.Action
	menuPageID string

	help      string
	helpWidth int

	log     *logState
	showLog bool

	status   statusMsg
	width    int
	height   int
	copyText func(string) error
	quitting bool
}

func NewModel(opts Options) *Model {
	rename := textinput.New()
	rename.Prompt = ""
	rename.CharLimit = 64

	log := newLogState(opts.Verbosity)
	if opts.LogEntries > 0 {
		log.maxEntries = opts.LogEntries
	}

	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	m := &Model{
		pages:    pages.New(opts.Pages, pages.WithNewPageName(opts.NewPageName)),
		styles:   DefaultStyles(),
		keys:     defaultKeyMap(),
		rename:   rename,
		log:      log,
		copyText: copyText,
	}
	m.log.appendf(logInfo, "started with %d pages", m.pages.Len())
	return m
}

// Pages returns the current page order for the embedding program.
func (m *Model) Pages() []pages.Page { return m.pages.Pages() }

// ActivePageID returns the selected page id, or "" when there are no pages.
func (m *Model) ActivePageID() string { return m.pages.ActiveID() }

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("pagestrip")
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		m.status = statusMsg{}
		if m.drag.Dragging() {
			// A key press abandons the gesture: edits shift the indices it holds.
			m.cancelDrag()
		}
		switch m.mode {
		case modeRename:
			return m, m.handleRenameKey(msg)
		case modeMenu:
			return m, m.updateMenu(msg)
		case modeHelp:
			m.handleHelpKey(msg)
			return m, nil
		case modeLogFilter:
			return m, m.handleLogFilterKey(msg)
		default:
			return m, m.handleNormalKey(msg)
		}
	}

	switch m.mode {
	case modeMenu:
		return m, m.updateMenu(msg)
	case modeRename:
		var cmd tea.Cmd
		m.rename, cmd = m.rename.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	active := m.pages.ActiveID()
	idx := m.pages.ActiveIndex()
	n := m.pages.Len()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Prev):
		if n > 0 {
			m.selectIndex((idx - 1 + n) % n)
		}
	case key.Matches(msg, m.keys.Next):
		if n > 0 {
			m.selectIndex((idx + 1) % n)
		}
	case key.Matches(msg, m.keys.MoveLeft):
		if idx > 0 {
			m.reorder(idx, idx-1)
		}
	case key.Matches(msg, m.keys.MoveRight):
		if idx >= 0 && idx < n-1 {
			m.reorder(idx, idx+1)
		}
	case key.Matches(msg, m.keys.Add):
		m.addPage(idx)
	case key.Matches(msg, m.keys.AddEnd):
		m.addPage(n - 1)
	case key.Matches(msg, m.keys.Menu):
		return m.openMenu()
	case key.Matches(msg, m.keys.Rename):
		return m.runAction(active, pages.ActionRename)
	case key.Matches(msg, m.keys.SetFirst):
		return m.runAction(active, pages.ActionSetFirst)
	case key.Matches(msg, m.keys.Copy):
		return m.runAction(active, pages.ActionCopy)
	case key.Matches(msg, m.keys.Duplicate):
		return m.runAction(active, pages.ActionDuplicate)
	case key.Matches(msg, m.keys.Delete):
		return m.runAction(active, pages.ActionDelete)
	case key.Matches(msg, m.keys.Yank):
		m.yankActive()
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	case key.Matches(msg, m.keys.Log):
		m.showLog = !m.showLog
	case key.Matches(msg, m.keys.Filter):
		if m.showLog {
			m.mode = modeLogFilter
			return m.log.input.Focus()
		}
	default:
		if d, err := strconv.Atoi(msg.String()); err == nil && d >= 1 && d <= 9 {
			m.selectIndex(d - 1)
		}
	}
	return nil
}

func (m *Model) handleRenameKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.commitRename()
		return nil
	case "esc":
		m.cancelRename()
		return nil
	}
	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	m.pages.UpdateTempName(m.rename.Value())
	return cmd
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.mode = modeNormal
	}
}

func (m *Model) handleLogFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.log.input.Blur()
		m.mode = modeNormal
		return nil
	case "esc":
		m.log.input.SetValue("")
		m.log.setFilter("")
		m.log.input.Blur()
		m.mode = modeNormal
		return nil
	}
	var cmd tea.Cmd
	m.log.input, cmd = m.log.input.Update(msg)
	m.log.setFilter(m.log.input.Value())
	return cmd
}

func (m *Model) yankActive() {
	page, ok := m.pages.Page(m.pages.ActiveID())
	if !ok {
		return
	}
	if err := m.copyText(page.Name); err != nil {
		m.setError("clipboard: %v", err)
		m.log.appendf(logError, "clipboard write failed: %v", err)
		return
	}
	m.setStatus("copied %q to the clipboard", page.Name)
}
