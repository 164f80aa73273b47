// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import "github.com/cpcloud/pagestrip/internal/drag"

type Mode int

const (
	modeNormal Mode = iota
	modeRename
	modeMenu
	modeHelp
	modeLogFilter
)

type segmentKind int

const (
	segLeadZone segmentKind = iota
	segTab
	segGap
	segTailZone
	segAdd
)

// segment is one clickable piece of the rendered page strip. index is the
// page index for tabs, the left neighbour for gaps, and the adjacent page for
// drop zones.
type segment struct {
	Kind   segmentKind
	Index  int
	Bounds drag.Bounds
	Dots   drag.Bounds
	View   string
}

// pressState remembers where the left button went down so a release on the
// same segment counts as a click.
type pressState struct {
	Kind  segmentKind
	Index int
	X     int
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusError
)

type statusMsg struct {
	Text string
	Kind statusKind
}
