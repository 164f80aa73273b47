// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package app

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type logLevel int

const (
	logError logLevel = iota
	logWarn
	logInfo
	logDebug
)

func (l logLevel) String() string {
	switch l {
	case logError:
		return "ERR"
	case logWarn:
		return "WRN"
	case logInfo:
		return "INF"
	default:
		return "DBG"
	}
}

const defaultMaxLogEntries = 200

type logEntry struct {
	Time    time.Time
	Level   logLevel
	Message string
}

type logMatch struct {
	Start int
	End   int
}

// logState is the in-app activity log. Verbosity 0 disables it, 1 keeps info
// and above, 2 or more keeps debug lines too.
type logState struct {
	enabled    bool
	maxLevel   logLevel
	maxEntries int
	entries    []logEntry
	filter     *regexp.Regexp
	filterErr  error
	input      textinput.Model
	now        func() time.Time
}

func newLogState(verbosity int) *logState {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "filter (regex)"
	input.CharLimit = 128

	ls := &logState{
		enabled:    verbosity > 0,
		maxLevel:   logInfo,
		maxEntries: defaultMaxLogEntries,
		input:      input,
		now:        time.Now,
	}
	if verbosity > 1 {
		ls.maxLevel = logDebug
	}
	return ls
}

func (ls *logState) append(level logLevel, message string) {
	if !ls.enabled || level > ls.maxLevel {
		return
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	ls.entries = append(ls.entries, logEntry{
		Time:    ls.now(),
		Level:   level,
		Message: message,
	})
	if over := len(ls.entries) - ls.maxEntries; over > 0 {
		ls.entries = ls.entries[over:]
	}
}

func (ls *logState) appendf(level logLevel, format string, args ...any) {
	ls.append(level, fmt.Sprintf(format, args...))
}

// setFilter compiles pattern. An invalid pattern is remembered so the pane
// can say why, and filtering falls back to showing everything.
func (ls *logState) setFilter(pattern string) {
	ls.filterErr = nil
	if pattern == "" {
		ls.filter = nil
		return
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		ls.filter = nil
		ls.filterErr = err
		return
	}
	ls.filter = re
}

func (ls *logState) matchLine(line string) bool {
	if ls.filter == nil {
		return true
	}
	return ls.filter.MatchString(line)
}

func (ls *logState) findHighlights(line string) []logMatch {
	if ls.filter == nil {
		return nil
	}
	locs := ls.filter.FindAllStringIndex(line, -1)
	matches := make([]logMatch, 0, len(locs))
	for _, loc := range locs {
		if loc[1] > loc[0] {
			matches = append(matches, logMatch{Start: loc[0], End: loc[1]})
		}
	}
	return matches
}

func (ls *logState) validityLabel() string {
	if ls.input.Value() == "" {
		return "no filter"
	}
	if ls.filterErr != nil {
		return "invalid: " + ls.filterErr.Error()
	}
	return "valid"
}

// applyHighlights styles each span of text. Spans are byte offsets sorted by
// start; overlaps are clipped to the end of the previous span.
func applyHighlights(text string, spans []logMatch, style lipgloss.Style) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	pos := 0
	for _, span := range spans {
		start, end := span.Start, span.End
		if start < pos {
			start = pos
		}
		if end > len(text) {
			end = len(text)
		}
		if start >= end {
			continue
		}
		b.WriteString(text[pos:start])
		b.WriteString(style.Render(text[start:end]))
		pos = end
	}
	b.WriteString(text[pos:])
	return b.String()
}

// render draws the newest entries that pass the filter, oldest first.
func (ls *logState) render(width, height int, styles Styles) string {
	if !ls.enabled {
		return styles.Empty.Render("logging disabled; run with -v")
	}
	lines := make([]string, 0, height)
	for i := len(ls.entries) - 1; i >= 0 && len(lines) < height; i-- {
		e := ls.entries[i]
		if !ls.matchLine(e.Message) {
			continue
		}
		msg := applyHighlights(e.Message, ls.findHighlights(e.Message), styles.LogMatch)
		line := fmt.Sprintf("%s %s %s",
			styles.LogLevel[e.Level].Render(e.Level.String()),
			styles.LogTime.Render(humanize.Time(e.Time)),
			msg,
		)
		lines = append(lines, lipgloss.NewStyle().MaxWidth(width).Render(line))
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Empty.Render("no log entries"))
	}
	return strings.Join(lines, "\n")
}
