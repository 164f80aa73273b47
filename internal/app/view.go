// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/cpcloud/pagestrip/internal/pages"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	l := m.layout()
	base := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		l.view(),
		renderHiddenBadges(l.Hidden[0], l.Hidden[1], m.width, m.styles),
		m.bodyView(),
		m.footerView(),
	)

	switch m.mode {
	case modeMenu:
		return overlay.Composite(m.menuView(), base, overlay.Center, overlay.Center, 0, 0)
	case modeHelp:
		w := m.width - 8
		if w > 80 {
			w = 80
		}
		help := m.styles.Overlay.Render(m.helpView(w))
		return overlay.Composite(help, base, overlay.Center, overlay.Center, 0, 0)
	}
	return base
}

func (m *Model) headerView() string {
	return m.styles.Header.Render("pagestrip") +
		m.styles.HeaderHint.Render("  "+english.Plural(m.pages.Len(), "page", ""))
}

func (m *Model) bodyView() string {
	var b strings.Builder
	page, ok := m.pages.Page(m.pages.ActiveID())
	if !ok {
		b.WriteString(m.styles.Empty.Render("No pages. Press a or click “Add page” to create one."))
	} else {
		idx := m.pages.ActiveIndex()
		fmt.Fprintf(&b, "%s\n%s",
			m.styles.Header.Render(page.Name),
			m.styles.HeaderHint.Render(fmt.Sprintf(
				"page %d of %d · %s · id %s",
				idx+1, m.pages.Len(), pages.RoleAt(idx, m.pages.Len()), page.ID,
			)),
		)
	}
	if m.showLog {
		b.WriteString("\n\n")
		b.WriteString(m.logPaneView())
	}
	return m.styles.Body.Render(b.String())
}

func (m *Model) logPaneView() string {
	height := m.height - stripTop - stripHeight - 10
	if height < 3 {
		height = 3
	}
	width := m.width - 4
	if width <= 0 {
		width = 80
	}
	filter := m.styles.HeaderHint.Render(m.log.validityLabel())
	if m.mode == modeLogFilter || m.log.input.Value() != "" {
		filter = m.log.input.View() + "  " + filter
	}
	return filter + "\n" + m.log.render(width, height, m.styles)
}

func (m *Model) footerView() string {
	if m.status.Text != "" {
		if m.status.Kind == statusError {
			return m.styles.StatusError.Render(m.status.Text)
		}
		return m.styles.StatusInfo.Render(m.status.Text)
	}
	var hints []string
	switch m.mode {
	case modeRename:
		hints = []string{"enter save", "esc cancel"}
	case modeLogFilter:
		hints = []string{"enter keep filter", "esc clear"}
	default:
		for _, b := range m.keys.hints() {
			h := b.Help()
			hints = append(hints, h.Key+" "+h.Desc)
		}
	}
	return m.styles.HeaderHint.Render(strings.Join(hints, " · "))
}
