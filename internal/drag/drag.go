// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

// Package drag tracks a single pointer drag across a horizontal strip of
// items and turns the drop into one reorder call. It only knows indices.
package drag

// Position is the side of the hovered item the pointer is on.
type Position int

const (
	PositionNone Position = iota
	PositionBefore
	PositionAfter
)

func (p Position) String() string {
	switch p {
	case PositionBefore:
		return "before"
	case PositionAfter:
		return "after"
	default:
		return "none"
	}
}

// Bounds is the horizontal extent of a rendered item, in cells.
type Bounds struct {
	X, W int
}

// Contains reports whether column x falls inside the bounds.
func (b Bounds) Contains(x int) bool {
	return x >= b.X && x < b.X+b.W
}

// Side classifies x against the midpoint of the bounds.
func (b Bounds) Side(x int) Position {
	// 2x < 2X + W avoids rounding the midpoint of odd widths.
	if 2*x < 2*b.X+b.W {
		return PositionBefore
	}
	return PositionAfter
}

// Reorderer receives the single move a drop resolves to. to indexes the list
// after the item at from has been removed.
type Reorderer interface {
	Reorder(from, to int)
}

// Tracker is the transient state of one drag gesture. The zero value is idle.
type Tracker struct {
	dragging bool
	dragged  int
	over     int
	overSet  bool
	position Position
}

func (t *Tracker) Dragging() bool { return t.dragging }

// Dragged returns the index being dragged.
func (t *Tracker) Dragged() (int, bool) {
	return t.dragged, t.dragging
}

// OverIndex returns the hovered index.
func (t *Tracker) OverIndex() (int, bool) {
	return t.over, t.overSet
}

func (t *Tracker) Position() Position { return t.position }

// Start begins a drag of index.
func (t *Tracker) Start(index int) {
	if index < 0 {
		return
	}
	t.Reset()
	t.dragging = true
	t.dragged = index
}

// Over records the pointer hovering the item at index whose rendered extent
// is b. Ignored while idle.
func (t *Tracker) Over(index, pointerX int, b Bounds) {
	t.OverZone(index, b.Side(pointerX))
}

// OverZone records a hover over a dedicated drop zone next to index.
func (t *Tracker) OverZone(index int, pos Position) {
	if !t.dragging || index < 0 {
		return
	}
	t.over = index
	t.overSet = true
	t.position = pos
}

// Drop resolves the gesture against dropIndex and, when the effective
// target differs from the dragged index, forwards the move to r. moved
// reports that a reorder was requested; r may still reject indices it
// considers out of range. The tracker is idle afterwards whatever the outcome.
func (t *Tracker) Drop(dropIndex int, r Reorderer) (from, to int, moved bool) {
	defer t.Reset()
	if !t.dragging || dropIndex < 0 {
		return 0, 0, false
	}
	from = t.dragged
	to = Target(from, dropIndex, t.position)
	if from == to {
		return from, to, false
	}
	if r != nil {
		r.Reorder(from, to)
	}
	return from, to, true
}

// End abandons the gesture without reordering.
func (t *Tracker) End() {
	t.Reset()
}

func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Target computes the post-removal insertion index for dropping dragged on
// drop at pos.
func Target(dragged, drop int, pos Position) int {
	target := drop
	if pos == PositionAfter {
		target++
	}
	if dragged < target {
		target--
	}
	return target
}

// InsertionSlot returns the gap the dragged item would land in, counted in
// the current list: slot 0 is before the first item, slot n after item n-1.
func (t *Tracker) InsertionSlot() (int, bool) {
	if !t.dragging || !t.overSet || t.position == PositionNone {
		return 0, false
	}
	slot := t.over
	if t.position == PositionAfter {
		slot++
	}
	return slot, true
}

// Indicates reports whether a drop indicator belongs at slot. Slots on either
// side of the dragged item would not move it and get no indicator.
func (t *Tracker) Indicates(slot int) bool {
	got, ok := t.InsertionSlot()
	if !ok || got != slot {
		return false
	}
	return slot != t.dragged && slot != t.dragged+1
}
