package timeparse

import "fmt"

const (
	secsPerMinute = 60
	secsPerHour   = 3600
	secsPerDay    = 86400
	secsPerWeek   = 7 * secsPerDay
	secsPerYear   = 365 * secsPerDay
)

// FormatRemaining renders a remaining-time value at status-bar granularity:
// integer seconds below a minute, integer minutes below an hour, then hours,
// days, weeks and years to one decimal.
func FormatRemaining(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	switch {
	case secs < secsPerMinute:
		return fmt.Sprintf("%ds", secs)
	case secs < secsPerHour:
		return fmt.Sprintf("%dm", secs/secsPerMinute)
	case secs < secsPerDay:
		return fmt.Sprintf("%.1fh", float64(secs)/secsPerHour)
	case secs < secsPerWeek:
		return fmt.Sprintf("%.1fd", float64(secs)/secsPerDay)
	case secs < secsPerYear:
		return fmt.Sprintf("%.1fw", float64(secs)/secsPerWeek)
	default:
		return fmt.Sprintf("%.1fy", float64(secs)/secsPerYear)
	}
}

// FormatPrecise renders HH:MM:SS, zero-padded, with unbounded hours.
func FormatPrecise(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/secsPerHour, (secs%secsPerHour)/secsPerMinute, secs%secsPerMinute)
}
