// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpcloud/pagestrip/internal/pages"
)

func newTestModel(t *testing.T, initial []pages.Page) *Model {
	t.Helper()
	m := NewModel(Options{
		Pages:     initial,
		Verbosity: 2,
		Clipboard: func(string) error { return nil },
	})
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func pageNames(m *Model) []string {
	var out []string
	for _, p := range m.Pages() {
		out = append(out, p.Name)
	}
	return out
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

const stripRow = stripTop + 1

func tabBounds(t *testing.T, m *Model, index int) segment {
	t.Helper()
	seg, ok := m.layout().tab(index)
	require.True(t, ok, "tab %d not visible", index)
	return seg
}

func TestKeyboardSelection(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "details", m.ActivePageID())

	press(m, runes("4"))
	assert.Equal(t, "ending", m.ActivePageID())

	press(m, runes("l"))
	assert.Equal(t, "info", m.ActivePageID(), "next wraps around")

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "ending", m.ActivePageID(), "previous wraps around")

	press(m, runes("9"))
	assert.Equal(t, "ending", m.ActivePageID(), "out of range digit is ignored")
}

func TestAddKeys(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runes("2"), runes("a"))
	assert.Equal(t, []string{"Info", "Details", "New Page", "Other", "Ending"}, pageNames(m))
	assert.Equal(t, "details", m.ActivePageID())
	assert.Contains(t, m.status.Text, "3rd")

	press(m, runes("A"))
	assert.Equal(t, "New Page", pageNames(m)[5])
}

func TestMoveKeysKeepSelection(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runes("L"))
	assert.Equal(t, []string{"Details", "Info", "Other", "Ending"}, pageNames(m))
	assert.Equal(t, "info", m.ActivePageID())
	assert.Contains(t, m.status.Text, "2nd")

	press(m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	assert.Equal(t, []string{"Info", "Details", "Other", "Ending"}, pageNames(m))

	press(m, runes("H"))
	assert.Equal(t, []string{"Info", "Details", "Other", "Ending"}, pageNames(m), "first page cannot move left")
}

func TestActionKeys(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, runes("c"))
	assert.Equal(t, "Info Copy", pageNames(m)[1])
	assert.Equal(t, `created "Info Copy"`, m.status.Text)

	press(m, runes("d"))
	assert.Equal(t, "Info Duplicate", pageNames(m)[1])

	press(m, runes("4"), runes("f"))
	assert.Equal(t, "Details", pageNames(m)[0])
	assert.Equal(t, "details", m.ActivePageID())

	press(m, runes("x"))
	assert.NotContains(t, pageNames(m), "Details")
	assert.Equal(t, "info", m.ActivePageID(), "selection falls back to the new first page")
}

func TestDeleteEverythingThenAdd(t *testing.T) {
	m := newTestModel(t, nil)
	for i := 0; i < 4; i++ {
		press(m, runes("x"))
	}
	assert.Empty(t, m.Pages())
	assert.Empty(t, m.ActivePageID())
	assert.Contains(t, m.status.Text, "no pages left")
	assert.Contains(t, m.View(), "No pages")

	press(m, runes("x"), runes("r"), runes("c"))
	assert.Empty(t, m.Pages(), "actions on an empty strip are no-ops")

	press(m, runes("a"))
	require.Len(t, m.Pages(), 1)
	assert.Equal(t, m.Pages()[0].ID, m.ActivePageID())
}

func TestRenameCommit(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runes("r"))
	require.Equal(t, modeRename, m.mode)
	assert.Equal(t, "Info", m.rename.Value())

	press(m, tea.KeyMsg{Type: tea.KeyCtrlU}, runes("Welcome  "))
	assert.Equal(t, "Welcome  ", m.pages.TempName())

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, "Welcome", pageNames(m)[0])
	assert.False(t, m.pages.IsRenaming())
	assert.Contains(t, m.status.Text, "renamed")
}

func TestRenameBlankKeepsName(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runes("r"), tea.KeyMsg{Type: tea.KeyCtrlU}, runes("   "), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Info", pageNames(m)[0])
	assert.Equal(t, modeNormal, m.mode)
	assert.Empty(t, m.pages.TempName())
}

func TestRenameEscapeCancels(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runes("r"), runes("XYZ"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "Info", pageNames(m)[0])
	assert.Equal(t, modeNormal, m.mode)
	assert.False(t, m.pages.IsRenaming())
}

func TestRenameKeysDoNotTriggerActions(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runes("r"), runes("x"), runes("q"))
	assert.Len(t, m.Pages(), 4)
	assert.False(t, m.quitting)
	assert.Equal(t, "Infoxq", m.pages.TempName())
}

func TestYank(t *testing.T) {
	var got string
	m := newTestModel(t, nil)
	m.copyText = func(s string) error {
		got = s
		return nil
	}
	press(m, runes("2"), runes("y"))
	assert.Equal(t, "Details", got)
	assert.Equal(t, statusInfo, m.status.Kind)

	m.copyText = func(string) error { return errors.New("no clipboard") }
	press(m, runes("y"))
	assert.Equal(t, statusError, m.status.Kind)
	assert.Contains(t, m.status.Text, "no clipboard")
}

func TestMenuOpenAndEscape(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeMenu, m.mode)
	require.NotNil(t, m.menu)
	assert.Equal(t, "info", m.menuPageID)
	assert.NotEmpty(t, m.menuView())

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeNormal, m.mode)
	assert.Nil(t, m.menu)
	assert.Len(t, m.Pages(), 4)
}

func TestRunActionEveryAction(t *testing.T) {
	for _, action := range pages.Actions() {
		t.Run(action.String(), func(t *testing.T) {
			m := newTestModel(t, nil)
			m.runAction("other", action)
			switch action {
			case pages.ActionSetFirst:
				assert.Equal(t, "Other", pageNames(m)[0])
			case pages.ActionRename:
				assert.Equal(t, modeRename, m.mode)
				assert.Equal(t, "other", m.pages.RenamingID())
			case pages.ActionCopy:
				assert.Equal(t, "Other Copy", pageNames(m)[3])
			case pages.ActionDuplicate:
				assert.Equal(t, "Other Duplicate", pageNames(m)[3])
			case pages.ActionDelete:
				assert.Equal(t, []string{"Info", "Details", "Ending"}, pageNames(m))
			}
		})
	}
}

func TestRunActionStaleID(t *testing.T) {
	m := newTestModel(t, nil)
	m.runAction("gone", pages.ActionDelete)
	assert.Len(t, m.Pages(), 4)
	assert.Empty(t, m.status.Text)
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runes("?"))
	require.Equal(t, modeHelp, m.mode)
	assert.NotEmpty(t, m.View())

	press(m, runes("x"))
	assert.Len(t, m.Pages(), 4, "keys do not reach the strip while help is open")

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeNormal, m.mode)
}

func TestLogPaneFilter(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runes("a"), runes("g"))
	require.True(t, m.showLog)

	press(m, runes("/"))
	require.Equal(t, modeLogFilter, m.mode)
	press(m, runes("add"))
	require.NotNil(t, m.log.filter)
	assert.Contains(t, m.View(), "valid")

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeNormal, m.mode)
	assert.NotNil(t, m.log.filter, "enter keeps the filter")

	press(m, runes("/"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.log.filter, "esc clears the filter")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestMouseClickSelects(t *testing.T) {
	m := newTestModel(t, nil)
	seg := tabBounds(t, m, 2)
	x := seg.Bounds.X + 1
	press(m, mouse(tea.MouseActionPress, x, stripRow), mouse(tea.MouseActionRelease, x, stripRow))
	assert.Equal(t, "other", m.ActivePageID())
}

func TestMouseClickOutsideStripIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	seg := tabBounds(t, m, 2)
	x := seg.Bounds.X + 1
	press(m, mouse(tea.MouseActionPress, x, 20), mouse(tea.MouseActionRelease, x, 20))
	assert.Equal(t, "info", m.ActivePageID())
}

func TestMouseDragDropAfter(t *testing.T) {
	m := newTestModel(t, nil)
	src := tabBounds(t, m, 0)
	dst := tabBounds(t, m, 2)
	right := dst.Bounds.X + dst.Bounds.W - 2

	press(m,
		mouse(tea.MouseActionPress, src.Bounds.X+1, stripRow),
		mouse(tea.MouseActionMotion, src.Bounds.X+2, stripRow),
	)
	require.True(t, m.drag.Dragging())

	press(m, mouse(tea.MouseActionMotion, right, stripRow))
	assert.True(t, m.drag.Indicates(3))
	assert.Contains(t, m.View(), "┃")

	press(m, mouse(tea.MouseActionRelease, right, stripRow))
	assert.Equal(t, []string{"Details", "Other", "Info", "Ending"}, pageNames(m))
	assert.Equal(t, "info", m.ActivePageID())
	assert.False(t, m.drag.Dragging())
	assert.Contains(t, m.status.Text, "3rd")
}

func TestMouseDragDropBefore(t *testing.T) {
	m := newTestModel(t, nil)
	src := tabBounds(t, m, 3)
	dst := tabBounds(t, m, 1)
	left := dst.Bounds.X + 1

	press(m,
		mouse(tea.MouseActionPress, src.Bounds.X+1, stripRow),
		mouse(tea.MouseActionMotion, left, stripRow),
		mouse(tea.MouseActionRelease, left, stripRow),
	)
	assert.Equal(t, []string{"Info", "Ending", "Details", "Other"}, pageNames(m))
}

func TestMouseDragOntoLeadZone(t *testing.T) {
	m := newTestModel(t, nil)
	src := tabBounds(t, m, 2)
	lead := m.layout().Segments[0]
	require.Equal(t, segLeadZone, lead.Kind)

	press(m,
		mouse(tea.MouseActionPress, src.Bounds.X+1, stripRow),
		mouse(tea.MouseActionMotion, lead.Bounds.X, stripRow),
		mouse(tea.MouseActionRelease, lead.Bounds.X, stripRow),
	)
	assert.Equal(t, []string{"Other", "Info", "Details", "Ending"}, pageNames(m))
}

func TestMouseDragOntoSelfIsNoop(t *testing.T) {
	m := newTestModel(t, nil)
	src := tabBounds(t, m, 1)
	end := src.Bounds.X + src.Bounds.W - 2

	press(m,
		mouse(tea.MouseActionPress, src.Bounds.X+1, stripRow),
		mouse(tea.MouseActionMotion, end, stripRow),
		mouse(tea.MouseActionRelease, end, stripRow),
	)
	assert.Equal(t, []string{"Info", "Details", "Other", "Ending"}, pageNames(m))
	assert.False(t, m.drag.Dragging())
	assert.Equal(t, "info", m.ActivePageID(), "a drag is not a click")
}

func TestMouseDragReleasedOutsideCancels(t *testing.T) {
	m := newTestModel(t, nil)
	src := tabBounds(t, m, 0)
	dst := tabBounds(t, m, 3)

	press(m,
		mouse(tea.MouseActionPress, src.Bounds.X+1, stripRow),
		mouse(tea.MouseActionMotion, dst.Bounds.X+1, stripRow),
		mouse(tea.MouseActionRelease, dst.Bounds.X+1, 25),
	)
	assert.Equal(t, []string{"Info", "Details", "Other", "Ending"}, pageNames(m))
	assert.False(t, m.drag.Dragging())
}

func TestKeyDuringDragCancelsIt(t *testing.T) {
	m := newTestModel(t, nil)
	src := tabBounds(t, m, 2)
	press(m,
		mouse(tea.MouseActionPress, src.Bounds.X+1, stripRow),
		mouse(tea.MouseActionMotion, src.Bounds.X+2, stripRow),
	)
	require.True(t, m.drag.Dragging())

	press(m, runes("x"))
	assert.False(t, m.drag.Dragging())
	assert.Nil(t, m.press)
	assert.Equal(t, []string{"Details", "Other", "Ending"}, pageNames(m))

	dst := tabBounds(t, m, 0)
	press(m,
		mouse(tea.MouseActionMotion, dst.Bounds.X+1, stripRow),
		mouse(tea.MouseActionRelease, dst.Bounds.X+1, stripRow),
	)
	assert.Equal(t, []string{"Details", "Other", "Ending"}, pageNames(m))
	assert.NotContains(t, m.status.Text, "moved")
	assert.False(t, m.drag.Dragging())
}

func TestReleaseWithStaleDragIndexIsIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	dst := tabBounds(t, m, 0)
	m.drag.Start(7)

	press(m, mouse(tea.MouseActionRelease, dst.Bounds.X+1, stripRow))
	assert.Equal(t, []string{"Info", "Details", "Other", "Ending"}, pageNames(m))
	assert.Empty(t, m.status.Text)
	assert.False(t, m.drag.Dragging())
}

func TestMouseGapAndAddButton(t *testing.T) {
	m := newTestModel(t, nil)
	var gap segment
	for _, s := range m.layout().Segments {
		if s.Kind == segGap && s.Index == 0 {
			gap = s
		}
	}
	require.Equal(t, segGap, gap.Kind)

	x := gap.Bounds.X + 1
	press(m, mouse(tea.MouseActionPress, x, stripRow), mouse(tea.MouseActionRelease, x, stripRow))
	assert.Equal(t, []string{"Info", "New Page", "Details", "Other", "Ending"}, pageNames(m))

	segs := m.layout().Segments
	add := segs[len(segs)-1]
	require.Equal(t, segAdd, add.Kind)
	x = add.Bounds.X + add.Bounds.W - 3
	press(m, mouse(tea.MouseActionPress, x, stripRow), mouse(tea.MouseActionRelease, x, stripRow))
	assert.Equal(t, "New Page", pageNames(m)[5])
	assert.Equal(t, "info", m.ActivePageID())
}

func TestMouseDotsOpenMenu(t *testing.T) {
	m := newTestModel(t, nil)
	seg := tabBounds(t, m, 0)
	require.NotZero(t, seg.Dots.W)
	x := seg.Dots.X + 1
	press(m, mouse(tea.MouseActionPress, x, stripRow), mouse(tea.MouseActionRelease, x, stripRow))
	assert.Equal(t, modeMenu, m.mode)
}

func TestMouseClickAwayCommitsRename(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runes("r"), tea.KeyMsg{Type: tea.KeyCtrlU}, runes("Start"))

	seg := tabBounds(t, m, 2)
	x := seg.Bounds.X + 1
	press(m, mouse(tea.MouseActionPress, x, stripRow), mouse(tea.MouseActionRelease, x, stripRow))
	assert.Equal(t, "Start", pageNames(m)[0])
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, "other", m.ActivePageID())
}

func TestOverflowShowsWindowAroundActive(t *testing.T) {
	initial := make([]pages.Page, 12)
	for i := range initial {
		initial[i] = pages.Page{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Section %d", i)}
	}
	m := newTestModel(t, initial)
	m.Update(tea.WindowSizeMsg{Width: 70, Height: 30})
	m.pages.Select("p6")

	l := m.layout()
	assert.LessOrEqual(t, l.Lo, 6)
	assert.GreaterOrEqual(t, l.Hi, 6)
	assert.Less(t, l.Hi-l.Lo+1, 12)
	assert.NotEmpty(t, append(l.Hidden[0], l.Hidden[1]...))
	_, ok := l.tab(6)
	assert.True(t, ok)

	badges := renderHiddenBadges(l.Hidden[0], l.Hidden[1], m.width, m.styles)
	for _, name := range l.Hidden[0] {
		assert.Contains(t, badges, name)
	}
	assert.True(t, strings.Contains(m.View(), "Section 6"))
}
