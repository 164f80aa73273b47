// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cpcloud/pagestrip/internal/drag"
	"github.com/cpcloud/pagestrip/internal/pages"
)

const (
	// stripTop is the first screen row of the strip; row 0 is the header.
	stripTop    = 1
	stripHeight = 3

	maxNameWidth = 24
	gapWidth     = 3
	zoneWidth    = 1
	addLabel     = "+ Add page"
	dotsGlyph    = "⋮"
)

var roleIcons = map[pages.Role]string{
	pages.RoleFirst:  "ⓘ",
	pages.RoleMiddle: "▤",
	pages.RoleLast:   "✓",
}

// stripLayout is the rendered strip plus the bounds of every segment, built
// once per frame and reused for mouse hit testing.
type stripLayout struct {
	Segments []segment
	Lo, Hi   int
	Hidden   [2][]string
}

// hit returns the segment under column x.
func (l stripLayout) hit(x int) (segment, bool) {
	for _, s := range l.Segments {
		if s.Bounds.Contains(x) {
			return s, true
		}
	}
	return segment{}, false
}

func (l stripLayout) tab(index int) (segment, bool) {
	for _, s := range l.Segments {
		if s.Kind == segTab && s.Index == index {
			return s, true
		}
	}
	return segment{}, false
}

func (l stripLayout) view() string {
	views := make([]string, len(l.Segments))
	for i, s := range l.Segments {
		views[i] = s.View
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}

func (m *Model) tabLabel(index int, page pages.Page, total int) string {
	icon := roleIcons[pages.RoleAt(index, total)]
	active := page.ID == m.pages.ActiveID()
	if active {
		icon = m.styles.IconActive.Render(icon)
	}
	if page.ID == m.pages.RenamingID() {
		return icon + " " + m.rename.View()
	}
	label := icon + " " + ansi.Truncate(page.Name, maxNameWidth, "…")
	if active {
		label += " " + dotsGlyph
	}
	return label
}

func (m *Model) tabStyle(index int, page pages.Page) lipgloss.Style {
	if dragged, ok := m.drag.Dragged(); ok && dragged == index {
		return m.styles.TabDragged
	}
	switch {
	case page.ID == m.pages.RenamingID():
		return m.styles.TabRenaming
	case page.ID == m.pages.ActiveID():
		return m.styles.TabActive
	default:
		return m.styles.TabInactive
	}
}

func (m *Model) zoneView(slot int) string {
	if m.drag.Indicates(slot) {
		return m.styles.DropMarker.Render("┃")
	}
	return strings.Repeat(" ", zoneWidth)
}

func (m *Model) gapView(leftIndex int) string {
	mid := "+"
	if m.drag.Dragging() {
		mid = "╌"
		if m.drag.Indicates(leftIndex + 1) {
			return m.styles.Connector.Render("╌") +
				m.styles.DropMarker.Render("┃") +
				m.styles.Connector.Render("╌")
		}
	}
	return m.styles.Connector.Render("╌" + mid + "╌")
}

// layout renders the strip for the current state: a leading drop zone, the
// visible tabs joined by "+" gaps, a trailing drop zone and the add button.
func (m *Model) layout() stripLayout {
	all := m.pages.Pages()
	n := len(all)

	tabs := make([]string, n)
	widths := make([]int, n)
	for i, p := range all {
		tabs[i] = m.tabStyle(i, p).Render(m.tabLabel(i, p, n))
		widths[i] = lipgloss.Width(tabs[i])
	}
	add := m.styles.Connector.Render("╌") + m.styles.AddButton.Render(addLabel)
	addW := lipgloss.Width(add)

	anchor := m.pages.ActiveIndex()
	if dragged, ok := m.drag.Dragged(); ok {
		anchor = dragged
	}
	lo, hi := visibleWindow(widths, anchor, m.width, 2*zoneWidth+addW, gapWidth)

	var l stripLayout
	l.Lo, l.Hi = lo, hi
	x := 0
	push := func(s segment) {
		w := lipgloss.Width(s.View)
		s.Bounds = drag.Bounds{X: x, W: w}
		if s.Kind == segTab && all[s.Index].ID == m.pages.ActiveID() {
			// "⋮", its leading space, the right padding cell and border.
			s.Dots = drag.Bounds{X: x + w - 4, W: 2}
		}
		l.Segments = append(l.Segments, s)
		x += w
	}

	if n > 0 {
		push(segment{Kind: segLeadZone, Index: lo, View: m.zoneView(lo)})
		for i := lo; i <= hi; i++ {
			push(segment{Kind: segTab, Index: i, View: tabs[i]})
			if i < hi {
				push(segment{Kind: segGap, Index: i, View: m.gapView(i)})
			}
		}
		push(segment{Kind: segTailZone, Index: hi, View: m.zoneView(hi + 1)})
	}
	push(segment{Kind: segAdd, Index: n - 1, View: add})

	for i := 0; i < lo; i++ {
		l.Hidden[0] = append(l.Hidden[0], all[i].Name)
	}
	for i := hi + 1; i < n; i++ {
		l.Hidden[1] = append(l.Hidden[1], all[i].Name)
	}
	return l
}
