// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/cpcloud/pagestrip/internal/drag"
)

func inStrip(y int) bool {
	return y >= stripTop && y < stripTop+stripHeight
}

// handleMouse turns press/motion/release into clicks and drags. A press on a
// tab only becomes a drag once the pointer moves; releasing without motion
// is a click.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.mode == modeMenu || m.mode == modeHelp {
		return nil
	}
	ev := tea.MouseEvent(msg)
	l := m.layout()
	seg, hit := segment{}, false
	if inStrip(ev.Y) {
		seg, hit = l.hit(ev.X)
	}

	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return nil
		}
		if m.mode == modeRename {
			renaming := m.pages.Index(m.pages.RenamingID())
			if hit && seg.Kind == segTab && seg.Index == renaming {
				return nil
			}
			// Clicking away from the editor blurs it, which commits.
			m.commitRename()
		}
		m.press = nil
		if hit {
			m.press = &pressState{Kind: seg.Kind, Index: seg.Index, X: ev.X}
		}
		return nil

	case tea.MouseActionMotion:
		if m.press == nil || m.press.Kind != segTab {
			return nil
		}
		if !m.drag.Dragging() {
			if ev.X == m.press.X {
				return nil
			}
			m.drag.Start(m.press.Index)
			m.log.appendf(logDebug, "drag start %d", m.press.Index)
		}
		if hit {
			m.hover(seg, ev.X)
		}
		return nil

	case tea.MouseActionRelease:
		press := m.press
		m.press = nil
		if m.drag.Dragging() {
			m.release(seg, hit, ev.X)
			return nil
		}
		if press != nil && hit && seg.Kind == press.Kind && seg.Index == press.Index {
			return m.click(seg, ev.X)
		}
	}
	return nil
}

// hover feeds the segment under the pointer to the drag tracker.
func (m *Model) hover(seg segment, x int) {
	switch seg.Kind {
	case segTab:
		m.drag.Over(seg.Index, x, seg.Bounds)
	case segGap, segTailZone:
		m.drag.OverZone(seg.Index, drag.PositionAfter)
	case segLeadZone:
		m.drag.OverZone(seg.Index, drag.PositionBefore)
	}
}

func (m *Model) cancelDrag() {
	m.drag.End()
	m.press = nil
	m.log.append(logDebug, "drag cancelled")
}

func (m *Model) release(seg segment, hit bool, x int) {
	dragged, _ := m.drag.Dragged()
	page, ok := m.pages.At(dragged)
	if !ok || !hit || seg.Kind == segAdd {
		m.cancelDrag()
		return
	}
	m.hover(seg, x)
	from, to, moved := m.drag.Drop(seg.Index, m.pages)
	if !moved || m.pages.Index(page.ID) != to {
		m.log.append(logDebug, "drop left order unchanged")
		return
	}
	m.setStatus("moved %q to %s", page.Name, humanize.Ordinal(to+1))
	m.log.appendf(logInfo, "drag %s: %d -> %d", page.ID, from, to)
}

func (m *Model) click(seg segment, x int) tea.Cmd {
	switch seg.Kind {
	case segTab:
		page, ok := m.pages.At(seg.Index)
		if !ok {
			return nil
		}
		if page.ID == m.pages.ActiveID() && seg.Dots.Contains(x) {
			return m.openMenu()
		}
		m.selectIndex(seg.Index)
	case segGap:
		m.addPage(seg.Index)
	case segAdd:
		m.addPage(m.pages.Len() - 1)
	}
	return nil
}
