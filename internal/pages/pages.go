// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

// Package pages holds the ordered page list of a form, the active selection,
// and the inline rename buffer. Every operation is total: unknown ids and
// out-of-range indices leave the collection untouched.
package pages

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

const (
	DefaultNewPageName = "New Page"
	copySuffix         = " Copy"
	duplicateSuffix    = " Duplicate"
)

type Page struct {
	ID   string
	Name string
}

// DefaultPages returns the starting layout used when no pages are supplied.
func DefaultPages() []Page {
	return []Page{
		{ID: "info", Name: "Info"},
		{ID: "details", Name: "Details"},
		{ID: "other", Name: "Other"},
		{ID: "ending", Name: "Ending"},
	}
}

type Collection struct {
	pages       []Page
	activeID    string
	renamingID  string
	tempName    string
	newPageName string
	seq         int
}

type Option func(*Collection)

// WithNewPageName overrides the name given to pages created by AddPage.
func WithNewPageName(name string) Option {
	return func(c *Collection) {
		if name = strings.TrimSpace(name); name != "" {
			c.newPageName = name
		}
	}
}

// New builds a collection from initial. A nil slice yields DefaultPages; an
// empty non-nil slice yields an empty collection. The first page starts active.
// Blank and repeated ids are replaced with fresh ones.
func New(initial []Page, opts ...Option) *Collection {
	if initial == nil {
		initial = DefaultPages()
	}
	c := &Collection{
		pages:       make([]Page, 0, len(initial)),
		newPageName: DefaultNewPageName,
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, p := range initial {
		switch {
		case p.ID == "":
			p.ID = c.nextID(p.Name)
		case c.Index(p.ID) >= 0:
			p.ID = c.nextID(p.ID)
		}
		c.pages = append(c.pages, p)
	}
	if len(c.pages) > 0 {
		c.activeID = c.pages[0].ID
	}
	return c
}

func (c *Collection) Pages() []Page {
	out := make([]Page, len(c.pages))
	copy(out, c.pages)
	return out
}

func (c *Collection) Len() int { return len(c.pages) }

// Index returns the position of id, or -1.
func (c *Collection) Index(id string) int {
	for i, p := range c.pages {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection) Page(id string) (Page, bool) {
	if i := c.Index(id); i >= 0 {
		return c.pages[i], true
	}
	return Page{}, false
}

// At returns the page at index i.
func (c *Collection) At(i int) (Page, bool) {
	if i < 0 || i >= len(c.pages) {
		return Page{}, false
	}
	return c.pages[i], true
}

func (c *Collection) ActiveID() string    { return c.activeID }
func (c *Collection) ActiveIndex() int    { return c.Index(c.activeID) }
func (c *Collection) RenamingID() string  { return c.renamingID }
func (c *Collection) TempName() string    { return c.tempName }
func (c *Collection) IsRenaming() bool    { return c.renamingID != "" }
func (c *Collection) NewPageName() string { return c.newPageName }

func (c *Collection) Select(id string) {
	if c.Index(id) < 0 {
		return
	}
	c.activeID = id
}

// AddPage inserts a fresh page right after afterIndex. The insertion point is
// clamped to the list bounds. Selection is left alone unless the collection
// was empty.
func (c *Collection) AddPage(afterIndex int) Page {
	page := Page{
		ID:   c.nextID(c.newPageName),
		Name: c.newPageName,
	}
	c.insert(afterIndex+1, page)
	if c.activeID == "" {
		c.activeID = page.ID
	}
	return page
}

func (c *Collection) BeginRename(id string) {
	page, ok := c.Page(id)
	if !ok {
		return
	}
	c.renamingID = id
	c.tempName = page.Name
}

func (c *Collection) UpdateTempName(text string) {
	if c.renamingID == "" {
		return
	}
	c.tempName = text
}

// CommitRename stores the trimmed rename buffer on id when it is non-blank.
// The rename state is cleared either way.
func (c *Collection) CommitRename(id string) {
	name := strings.TrimSpace(c.tempName)
	if i := c.Index(id); i >= 0 && name != "" {
		c.pages[i].Name = name
	}
	c.clearRename()
}

func (c *Collection) CancelRename() {
	c.clearRename()
}

func (c *Collection) clearRename() {
	c.renamingID = ""
	c.tempName = ""
}

func (c *Collection) PromoteToFirst(id string) {
	i := c.Index(id)
	if i <= 0 {
		return
	}
	c.Reorder(i, 0)
}

func (c *Collection) CopyPage(id string) (Page, bool) {
	return c.cloneAfter(id, "copy", copySuffix)
}

func (c *Collection) DuplicatePage(id string) (Page, bool) {
	return c.cloneAfter(id, "duplicate", duplicateSuffix)
}

func (c *Collection) cloneAfter(id, tag, suffix string) (Page, bool) {
	i := c.Index(id)
	if i < 0 {
		return Page{}, false
	}
	src := c.pages[i]
	page := Page{
		ID:   c.nextID(src.ID + "-" + tag),
		Name: src.Name + suffix,
	}
	c.insert(i+1, page)
	return page, true
}

// DeletePage removes id. When the active page goes away the selection falls
// back to the first remaining page; an emptied collection has no selection.
func (c *Collection) DeletePage(id string) (Page, bool) {
	i := c.Index(id)
	if i < 0 {
		return Page{}, false
	}
	removed := c.pages[i]
	c.pages = append(c.pages[:i], c.pages[i+1:]...)
	if c.renamingID == id {
		c.clearRename()
	}
	if c.activeID == id {
		c.activeID = ""
		if len(c.pages) > 0 {
			c.activeID = c.pages[0].ID
		}
	}
	return removed, true
}

// Reorder removes the page at from and reinserts it at to, where to indexes
// the list after the removal.
func (c *Collection) Reorder(from, to int) {
	n := len(c.pages)
	if from == to || from < 0 || from >= n || to < 0 || to > n-1 {
		return
	}
	moved := c.pages[from]
	c.pages = append(c.pages[:from], c.pages[from+1:]...)
	c.insert(to, moved)
}

// Apply routes a menu action to the matching operation.
func (c *Collection) Apply(id string, action Action) {
	switch action {
	case ActionSetFirst:
		c.PromoteToFirst(id)
	case ActionRename:
		c.BeginRename(id)
	case ActionCopy:
		c.CopyPage(id)
	case ActionDuplicate:
		c.DuplicatePage(id)
	case ActionDelete:
		c.DeletePage(id)
	}
}

func (c *Collection) insert(at int, page Page) {
	if at < 0 {
		at = 0
	}
	if at > len(c.pages) {
		at = len(c.pages)
	}
	c.pages = append(c.pages, Page{})
	copy(c.pages[at+1:], c.pages[at:])
	c.pages[at] = page
}

// nextID derives an id from base that has never been handed out by this
// collection and does not clash with a current page.
func (c *Collection) nextID(base string) string {
	slug := strcase.ToKebab(base)
	if slug == "" {
		slug = "page"
	}
	for {
		c.seq++
		id := fmt.Sprintf("%s-%d", slug, c.seq)
		if c.Index(id) < 0 {
			return id
		}
	}
}
