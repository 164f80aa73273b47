// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# pagestrip

## Pages

| Key | Action |
|-----|--------|
| ← → / h l | select previous / next page |
| 1–9 | jump to page |
| H L / shift+← → | move the page left / right |
| a / A | add a page after this one / at the end |
| enter / m | open the settings menu |
| r | rename (enter saves, esc cancels) |
| f | set as first page |
| c / d | copy / duplicate |
| x | delete |
| y | copy the page name to the clipboard |

## Mouse

Click a tab to select it and its **⋮** to open settings. Click the **+**
between two tabs to insert a page there. Drag a tab and drop it on the left
or right half of another tab to move it before or after that tab.

## Other

| Key | Action |
|-----|--------|
| g | toggle the activity log |
| / | filter the log (regex) |
| ? | close this help |
| q | quit |
`

// helpView renders the key reference for width, caching the result. A
// renderer failure falls back to the raw markdown.
func (m *Model) helpView(width int) string {
	if width <= 0 {
		width = 72
	}
	if m.help != "" && m.helpWidth == width {
		return m.help
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		var out string
		out, err = r.Render(helpMarkdown)
		if err == nil {
			m.help = strings.TrimRight(out, "\n")
			m.helpWidth = width
			return m.help
		}
	}
	m.log.appendf(logWarn, "help render failed: %v", err)
	return helpMarkdown
}
