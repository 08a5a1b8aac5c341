// This file contains the in-game message log.

package main

import (
	"fmt"
)

// Logs contains the game's log entries.
type Logs struct {
	Entries  []logEntry // all the game log entries
	NextTick int        // index of first log entry of the current turn
}

// logEntry describes a log entry.
type logEntry struct {
	Text string // text for entry
	Tick bool   // whether first entry in a turn
	Dups int    // number of consecutive duplicates of current entry
}

func (e logEntry) String() string {
	s := e.Text
	if e.Dups > 0 {
		s += fmt.Sprintf(" (%d×)", e.Dups+1)
	}
	if e.Tick {
		s = "• " + s
	}
	return s
}

// Log adds an entry to the game's log, collapsing consecutive duplicates.
func (g *Game) Log(text string) {
	e := logEntry{Text: text, Tick: len(g.Logs.Entries) == g.Logs.NextTick}
	if n := len(g.Logs.Entries); n > 0 {
		if last := &g.Logs.Entries[n-1]; last.Text == text {
			last.Dups++
			return
		}
	}
	g.Logs.Entries = append(g.Logs.Entries, e)
}

// Logf is like Log with fmt.Sprintf formatting.
func (g *Game) Logf(format string, args ...any) {
	g.Log(fmt.Sprintf(format, args...))
}

// EndLogTurn marks the start of a new turn in the log.
func (g *Game) EndLogTurn() {
	g.Logs.NextTick = len(g.Logs.Entries)
}

// LastLogLines returns up to n trailing log entries, formatted.
func (g *Game) LastLogLines(n int) []string {
	entries := g.Logs.Entries
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	return lines
}
