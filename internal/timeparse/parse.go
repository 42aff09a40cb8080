package timeparse

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parse errors. Callers distinguish them with errors.Is.
var (
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidDate     = errors.New("invalid date")
	ErrUnparseable     = errors.New("not a duration or a date")
)

// Mode says how an input string was interpreted.
type Mode int

const (
	ModeTimer Mode = iota // relative duration
	ModeAlarm             // absolute clock time or date
)

var (
	reDurationToken = regexp.MustCompile(`^(\d+(?:\.\d+)?)([hms])`)
	reClock         = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	reDateOnly      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDateTime      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}$`)
)

// ParseDuration parses a sequence of <number><unit> tokens (unit h, m or s;
// numbers may be fractional) and returns the additive sum in whole seconds.
// Any leftover suffix fails the whole parse rather than being ignored.
func ParseDuration(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidDuration)
	}
	rest := s
	var seconds float64
	for rest != "" {
		m := reDurationToken.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		switch m[2] {
		case "h":
			seconds += v * 3600
		case "m":
			seconds += v * 60
		case "s":
			seconds += v
		}
		rest = rest[len(m[0]):]
	}
	return int64(math.Round(seconds)), nil
}

// ParseAbsolute parses:
// - HH:MM (today in local time; rolls to tomorrow if already passed)
// - YYYY-MM-DD (local midnight)
// - YYYY-MM-DD HH:MM (local; "T" separator also accepted)
//
// Inputs are validated up front; malformed strings are never handed to the
// time package to fail on. The bool result reports an HH:MM rollover to
// tomorrow so the caller can warn.
func ParseAbsolute(s string, now time.Time) (int64, bool, error) {
	s = strings.TrimSpace(s)

	if m := reClock.FindStringSubmatch(s); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if hh > 23 || mm > 59 {
			return 0, false, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		t := time.Date(now.Year(), now.Month(), now.Day(), hh, mm, 0, 0, now.Location())
		if !t.After(now) {
			// Normalized day arithmetic keeps the wall-clock time across
			// DST transitions; adding 24h would not.
			tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, hh, mm, 0, 0, now.Location())
			return tomorrow.Unix(), true, nil
		}
		return t.Unix(), false, nil
	}

	if reDateOnly.MatchString(s) {
		t, err := time.ParseInLocation("2006-01-02", s, now.Location())
		if err != nil {
			return 0, false, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return t.Unix(), false, nil
	}

	if reDateTime.MatchString(s) {
		layout := "2006-01-02 15:04"
		if strings.ContainsRune(s, 'T') {
			layout = "2006-01-02T15:04"
		}
		t, err := time.ParseInLocation(layout, s, now.Location())
		if err != nil {
			return 0, false, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return t.Unix(), false, nil
	}

	return 0, false, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Infer interprets one input string: a valid duration means a timer,
// otherwise a valid absolute time means an alarm. It returns the resulting
// deadline as epoch seconds and whether an HH:MM input rolled over to
// tomorrow.
func Infer(s string, now time.Time) (Mode, int64, bool, error) {
	if secs, err := ParseDuration(s); err == nil {
		return ModeTimer, now.Unix() + secs, false, nil
	}
	if epoch, rolled, err := ParseAbsolute(s, now); err == nil {
		return ModeAlarm, epoch, rolled, nil
	}
	return 0, 0, false, fmt.Errorf("%w: %q", ErrUnparseable, s)
}
