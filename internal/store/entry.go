package store

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckMark tags completed records in the log file and in rendered output.
const CheckMark = "✓"

// Kind discriminates log record types.
type Kind int

const (
	// KindUnknown marks lines this version does not recognize. They are
	// preserved verbatim across rewrites and skipped everywhere else.
	KindUnknown Kind = iota
	KindTimer
	KindAlarm
	KindCompleted
)

func (k Kind) String() string {
	switch k {
	case KindTimer:
		return "TIMER"
	case KindAlarm:
		return "ALARM"
	case KindCompleted:
		return "done"
	default:
		return "unknown"
	}
}

// Entry is one record in the log file: a pending timer or alarm, or a
// recently completed one awaiting its retention prune.
type Entry struct {
	Kind     Kind
	Deadline int64 // epoch seconds; completion time for KindCompleted
	PID      int   // detached waiter process, the durable cancel handle
	Window   int64 // visibility window in seconds, 0 = always visible
	Sound    bool
	Message  string
	Raw      string // exact line as read from the file; empty for built entries
}

// Live reports whether the entry is a pending timer or alarm.
func (e Entry) Live() bool {
	return e.Kind == KindTimer || e.Kind == KindAlarm
}

// Line serializes the entry to its log record. The message is the last field
// and may itself contain spaces or separator-like characters; parsing keeps
// it whole.
func (e Entry) Line() string {
	if e.Kind == KindCompleted {
		return fmt.Sprintf("%d %s %s", e.Deadline, CheckMark, e.Message)
	}
	sound := 0
	if e.Sound {
		sound = 1
	}
	return fmt.Sprintf("%d %s %d %d %d %s", e.Deadline, e.Kind, e.PID, e.Window, sound, e.Message)
}

// ParseLine decodes one log line. Lines that do not match a known record
// shape come back as KindUnknown with only Raw set, so rewrites can carry
// them forward untouched.
func ParseLine(line string) Entry {
	e := Entry{Kind: KindUnknown, Raw: line}

	head := strings.SplitN(line, " ", 3)
	if len(head) < 3 {
		return e
	}
	ts, err := strconv.ParseInt(head[0], 10, 64)
	if err != nil {
		return e
	}

	switch head[1] {
	case CheckMark:
		e.Kind = KindCompleted
		e.Deadline = ts
		e.Message = head[2]
		return e

	case "TIMER", "ALARM":
		parts := strings.SplitN(line, " ", 6)
		if len(parts) < 6 {
			return e
		}
		pid, err1 := strconv.Atoi(parts[2])
		window, err2 := strconv.ParseInt(parts[3], 10, 64)
		sound, err3 := strconv.Atoi(parts[4])
		if err1 != nil || err2 != nil || err3 != nil {
			return e
		}
		if head[1] == "TIMER" {
			e.Kind = KindTimer
		} else {
			e.Kind = KindAlarm
		}
		e.Deadline = ts
		e.PID = pid
		e.Window = window
		e.Sound = sound != 0
		e.Message = parts[5]
		return e
	}

	return e
}
