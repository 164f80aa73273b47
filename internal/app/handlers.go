// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/cpcloud/pagestrip/internal/pages"
)

func (m *Model) setStatus(format string, args ...any) {
	m.status = statusMsg{Text: fmt.Sprintf(format, args...), Kind: statusInfo}
}

func (m *Model) setError(format string, args ...any) {
	m.status = statusMsg{Text: fmt.Sprintf(format, args...), Kind: statusError}
}

func (m *Model) selectIndex(i int) {
	page, ok := m.pages.At(i)
	if !ok {
		return
	}
	m.pages.Select(page.ID)
	m.log.appendf(logDebug, "selected %q", page.Name)
}

func (m *Model) addPage(afterIndex int) {
	page := m.pages.AddPage(afterIndex)
	pos := m.pages.Index(page.ID) + 1
	m.setStatus("added %q as the %s page", page.Name, humanize.Ordinal(pos))
	m.log.appendf(logInfo, "add %s at position %d", page.ID, pos)
}

func (m *Model) reorder(from, to int) {
	page, ok := m.pages.At(from)
	if !ok {
		return
	}
	m.pages.Reorder(from, to)
	if m.pages.Index(page.ID) == from {
		return
	}
	m.setStatus("moved %q to %s", page.Name, humanize.Ordinal(to+1))
	m.log.appendf(logInfo, "reorder %s: %d -> %d", page.ID, from, to)
}

// runAction applies a settings-menu action to the page id and reports the
// outcome in the status line.
func (m *Model) runAction(id string, action pages.Action) tea.Cmd {
	page, ok := m.pages.Page(id)
	if !ok {
		return nil
	}
	idx := m.pages.Index(id)

	m.pages.Apply(id, action)
	m.log.appendf(logInfo, "%s %s", action, id)

	switch action {
	case pages.ActionRename:
		return m.beginRename()
	case pages.ActionSetFirst:
		m.setStatus("%q is now the first page", page.Name)
	case pages.ActionCopy, pages.ActionDuplicate:
		if clone, ok := m.pages.At(idx + 1); ok {
			m.setStatus("created %q", clone.Name)
		}
	case pages.ActionDelete:
		if m.pages.Len() == 0 {
			m.setStatus("deleted %q; no pages left", page.Name)
		} else {
			m.setStatus("deleted %q", page.Name)
		}
	}
	return nil
}

// beginRename moves focus to the inline editor once the collection has
// entered rename mode.
func (m *Model) beginRename() tea.Cmd {
	if !m.pages.IsRenaming() {
		return nil
	}
	m.rename.SetValue(m.pages.TempName())
	m.rename.CursorEnd()
	m.mode = modeRename
	return m.rename.Focus()
}

func (m *Model) commitRename() {
	id := m.pages.RenamingID()
	before, _ := m.pages.Page(id)
	m.pages.CommitRename(id)
	after, ok := m.pages.Page(id)
	switch {
	case !ok:
	case before.Name != after.Name:
		m.setStatus("renamed %q to %q", before.Name, after.Name)
		m.log.appendf(logInfo, "rename %s: %q -> %q", id, before.Name, after.Name)
	default:
		m.setStatus("kept the name %q", after.Name)
	}
	m.endRename()
}

func (m *Model) cancelRename() {
	m.pages.CancelRename()
	m.log.append(logDebug, "rename cancelled")
	m.endRename()
}

func (m *Model) endRename() {
	m.rename.Blur()
	m.rename.SetValue("")
	m.mode = modeNormal
}
