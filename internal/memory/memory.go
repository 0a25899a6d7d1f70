// Package memory keeps the session's conversation turns and renders the
// trailing window that goes into the prompt.
package memory

import (
	"errors"
	"strings"
)

// ErrTurnPending is returned when a new user turn is appended while the
// previous one still has no answer. One in-flight request per session.
var ErrTurnPending = errors.New("previous turn still pending")

// ErrNoPendingTurn is returned by Complete when there is nothing to fill.
var ErrNoPendingTurn = errors.New("no pending turn")

// noHistoryPlaceholder is rendered when the window holds no turns yet.
const noHistoryPlaceholder = "No conversation yet."

// Turn is one user question and the assistant's answer. Bot is empty while
// the answer is being generated.
type Turn struct {
	User string
	Bot  string
}

// Memory is an append-only turn sequence. Not safe for concurrent use; a
// session is single-user with one request in flight.
type Memory struct {
	turns   []Turn
	pending bool
}

func New() *Memory {
	return &Memory{}
}

// Append starts a new turn with the answer pending.
func (m *Memory) Append(user string) error {
	if m.pending {
		return ErrTurnPending
	}
	m.turns = append(m.turns, Turn{User: user})
	m.pending = true
	return nil
}

// Complete fills the pending turn's answer.
func (m *Memory) Complete(bot string) error {
	if !m.pending {
		return ErrNoPendingTurn
	}
	m.turns[len(m.turns)-1].Bot = bot
	m.pending = false
	return nil
}

// Abort drops the pending turn, leaving memory as it was before Append.
// Used when generation fails so the question can simply be resubmitted.
func (m *Memory) Abort() {
	if !m.pending {
		return
	}
	m.turns = m.turns[:len(m.turns)-1]
	m.pending = false
}

// Clear empties the conversation (session reset).
func (m *Memory) Clear() {
	m.turns = nil
	m.pending = false
}

// Turns returns a copy of all turns, the pending one included.
func (m *Memory) Turns() []Turn {
	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Len reports the number of turns, the pending one included.
func (m *Memory) Len() int {
	return len(m.turns)
}

// Pending reports whether a turn is awaiting its answer.
func (m *Memory) Pending() bool {
	return m.pending
}

// Window returns the last n completed turns in chronological order. The
// pending turn is excluded: the question being answered is passed to the
// prompt separately, not as history.
func (m *Memory) Window(n int) []Turn {
	turns := m.turns
	if m.pending {
		turns = turns[:len(turns)-1]
	}
	if n < 0 {
		n = 0
	}
	if n > len(turns) {
		n = len(turns)
	}
	out := make([]Turn, n)
	copy(out, turns[len(turns)-n:])
	return out
}

// Format renders turns as alternating user and assistant lines, or a fixed
// placeholder when there is no history to show.
func Format(turns []Turn) string {
	if len(turns) == 0 {
		return noHistoryPlaceholder
	}
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, "User: "+t.User+"\nRichBot: "+t.Bot)
	}
	return strings.Join(lines, "\n")
}
