// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import "github.com/charmbracelet/lipgloss"

var (
	accent    = lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#8B7CF6"}
	secondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	muted     = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
	danger    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	indicator = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
)

type Styles struct {
	Header      lipgloss.Style
	HeaderHint  lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabDragged  lipgloss.Style
	TabRenaming lipgloss.Style
	IconActive  lipgloss.Style
	Connector   lipgloss.Style
	DropMarker  lipgloss.Style
	AddButton   lipgloss.Style
	HiddenLeft  lipgloss.Style
	HiddenRight lipgloss.Style
	Body        lipgloss.Style
	Empty       lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style
	LogLevel    map[logLevel]lipgloss.Style
	LogMatch    lipgloss.Style
	LogTime     lipgloss.Style
	Overlay     lipgloss.Style
}

func DefaultStyles() Styles {
	tab := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)
	return Styles{
		Header:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		HeaderHint: lipgloss.NewStyle().Foreground(secondary),
		TabActive: tab.
			BorderForeground(accent).
			Bold(true),
		TabInactive: tab.Foreground(secondary),
		TabDragged:  tab.Faint(true).BorderStyle(lipgloss.NormalBorder()),
		TabRenaming: tab.BorderForeground(indicator),
		IconActive:  lipgloss.NewStyle().Foreground(accent),
		Connector:   lipgloss.NewStyle().Foreground(muted),
		DropMarker:  lipgloss.NewStyle().Foreground(indicator).Bold(true),
		AddButton: tab.
			BorderForeground(accent).
			Foreground(accent),
		HiddenLeft:  lipgloss.NewStyle().Foreground(secondary).Italic(true),
		HiddenRight: lipgloss.NewStyle().Foreground(accent).Italic(true),
		Body:        lipgloss.NewStyle().Padding(1, 2),
		Empty:       lipgloss.NewStyle().Foreground(secondary).Italic(true),
		StatusInfo:  lipgloss.NewStyle().Foreground(secondary),
		StatusError: lipgloss.NewStyle().Foreground(danger).Bold(true),
		LogLevel: map[logLevel]lipgloss.Style{
			logError: lipgloss.NewStyle().Foreground(danger).Bold(true),
			logWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			logInfo:  lipgloss.NewStyle().Foreground(accent),
			logDebug: lipgloss.NewStyle().Foreground(secondary),
		},
		LogMatch: lipgloss.NewStyle().Reverse(true),
		LogTime:  lipgloss.NewStyle().Foreground(muted),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
	}
}
