// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// visibleWindow picks the contiguous run of tabs [lo, hi] shown when the strip
// is wider than avail. It grows outward from anchor, preferring the right
// side, while the tabs plus fixed chrome and one gap per neighbour still fit.
// A zero avail means the width is unknown and every tab is shown.
func visibleWindow(widths []int, anchor, avail, fixed, gap int) (lo, hi int) {
	n := len(widths)
	if n == 0 {
		return 0, -1
	}
	if avail <= 0 {
		return 0, n - 1
	}
	if anchor < 0 || anchor >= n {
		anchor = 0
	}
	lo, hi = anchor, anchor
	used := fixed + widths[anchor]
	for {
		grew := false
		if hi+1 < n && used+gap+widths[hi+1] <= avail {
			hi++
			used += gap + widths[hi]
			grew = true
		}
		if lo > 0 && used+gap+widths[lo-1] <= avail {
			lo--
			used += gap + widths[lo]
			grew = true
		}
		if !grew {
			return lo, hi
		}
	}
}

// renderHiddenBadges renders a single line naming the pages scrolled out of
// the strip. Pages left of the window are left-aligned in one color; pages to
// the right are right-aligned in another.
func renderHiddenBadges(
	leftNames, rightNames []string,
	width int,
	styles Styles,
) string {
	if len(leftNames) == 0 && len(rightNames) == 0 {
		return ""
	}

	sep := styles.HeaderHint.Render(" · ")

	var leftStr, rightStr string
	if len(leftNames) > 0 {
		parts := make([]string, len(leftNames))
		for i, name := range leftNames {
			parts[i] = styles.HiddenLeft.Render(name)
		}
		leftStr = styles.HeaderHint.Render("◂ ") + strings.Join(parts, sep)
	}
	if len(rightNames) > 0 {
		parts := make([]string, len(rightNames))
		for i, name := range rightNames {
			parts[i] = styles.HiddenRight.Render(name)
		}
		rightStr = strings.Join(parts, sep) + styles.HeaderHint.Render(" ▸")
	}

	leftW := lipgloss.Width(leftStr)
	rightW := lipgloss.Width(rightStr)

	// Both sides present: left-align left group, right-align right group.
	if leftStr != "" && rightStr != "" {
		gap := width - leftW - rightW
		if gap < 1 {
			gap = 1
		}
		return leftStr + strings.Repeat(" ", gap) + rightStr
	}

	if leftStr != "" {
		return leftStr
	}

	pad := width - rightW
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + rightStr
}
