package game

import (
	"fmt"
	"strings"
)

// --- Event kinds ---

// EventKind identifies a discrete occurrence the simulation reports to
// collaborators (audio, telemetry, tests).
type EventKind int

const (
	EventFired EventKind = iota
	EventEnemyDestroyed
	EventBossHit
	EventBossDestroyed
	EventShieldAbsorb
	EventPowerupCollected
	EventGameOver
	eventKindCount
)

func (k EventKind) String() string {
	switch k {
	case EventFired:
		return "fired"
	case EventEnemyDestroyed:
		return "enemyDestroyed"
	case EventBossHit:
		return "bossHit"
	case EventBossDestroyed:
		return "bossDestroyed"
	case EventShieldAbsorb:
		return "shieldAbsorb"
	case EventPowerupCollected:
		return "powerupCollected"
	case EventGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Event is one discrete occurrence within a frame. X, Y locate it in the
// viewport (muzzle, kill site, pickup point). Value carries the
// kind-specific number: score awarded for destroys, hit points left for
// boss hits, effect duration for pickups.
type Event struct {
	Kind   EventKind
	Detail string // kind-specific tag, e.g. the power-up name or kill cause
	X, Y   float64
	Value  float64
}

// String formats the event as a fixed-width log line.
//
//	enemyDestroyed   bullet       (213.0,145.2) 23
func (ev Event) String() string {
	return fmt.Sprintf("%-17s %-9s (%.1f,%.1f) %g",
		ev.Kind, ev.Detail, ev.X, ev.Y, ev.Value)
}

// --- Event log ---

// EventLogEntry is one recorded event with its frame stamp.
type EventLogEntry struct {
	Frame int
	Event
}

// String prefixes the event line with the frame stamp.
//
//	[F=0042] enemyDestroyed   bullet       (213.0,145.2) 23
func (e EventLogEntry) String() string {
	return fmt.Sprintf("[F=%04d] %s", e.Frame, e.Event.String())
}

// EventLog collects every event of a run in order. Unlike the per-frame
// slice Advance returns, the log is unbounded and machine-queryable — the
// run report and the tests read it.
type EventLog struct {
	entries []EventLogEntry
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add records one event at the given frame.
func (el *EventLog) Add(frame int, ev Event) {
	el.entries = append(el.entries, EventLogEntry{Frame: frame, Event: ev})
}

// Reset discards all recorded entries.
func (el *EventLog) Reset() {
	el.entries = el.entries[:0]
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []EventLogEntry {
	return el.entries
}

// Filter returns entries of the given kind.
func (el *EventLog) Filter(kind EventKind) []EventLogEntry {
	var out []EventLogEntry
	for _, e := range el.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// FilterFrameRange returns entries within [from, to] inclusive.
func (el *EventLog) FilterFrameRange(from, to int) []EventLogEntry {
	var out []EventLogEntry
	for _, e := range el.entries {
		if e.Frame >= from && e.Frame <= to {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match the given kind.
func (el *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range el.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry of the given kind, or false if none.
func (el *EventLog) LastOf(kind EventKind) (EventLogEntry, bool) {
	for i := len(el.entries) - 1; i >= 0; i-- {
		if el.entries[i].Kind == kind {
			return el.entries[i], true
		}
	}
	return EventLogEntry{}, false
}

// Has returns true if at least one entry matches the kind and, when
// non-empty, the detail substring.
func (el *EventLog) Has(kind EventKind, detailSubstr string) bool {
	for _, e := range el.entries {
		if e.Kind != kind {
			continue
		}
		if detailSubstr != "" && !strings.Contains(e.Detail, detailSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns per-kind totals in kind order, one line.
//
//	fired=31 enemyDestroyed=12 bossHit=0 powerupCollected=1
func (el *EventLog) Summary() string {
	var counts [eventKindCount]int
	for _, e := range el.entries {
		counts[e.Kind]++
	}
	var parts []string
	for k := EventKind(0); k < eventKindCount; k++ {
		if counts[k] > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
		}
	}
	if len(parts) == 0 {
		return "(no events)"
	}
	return strings.Join(parts, " ")
}
