// Package trim validates user supplied time windows for ranged downloads.
package trim

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const secondsPerMinute = 60

var (
	ErrInvalidNumber   = errors.New("please enter valid numbers")
	ErrNotPositive     = errors.New("times must be positive numbers")
	ErrStartAfterEnd   = errors.New("start time must be less than end time")
	ErrExceedsDuration = errors.New("end time exceeds video duration")
)

// Range is a validated window in seconds. Start < End always holds.
type Range struct {
	Start float64
	End   float64
}

func (r Range) Length() float64 {
	return r.End - r.Start
}

// ParseMinutes parses a minute offset such as "1", "2.5" or " 3 ".
func ParseMinutes(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

// Validate accepts the pair iff startMin >= 0, endMin > 0, startMin < endMin
// and, when duration (seconds) is known, endMin*60 <= duration.
func Validate(startMin, endMin, duration float64) (Range, error) {
	if startMin < 0 || endMin <= 0 {
		return Range{}, ErrNotPositive
	}
	if startMin >= endMin {
		return Range{}, ErrStartAfterEnd
	}
	if duration > 0 && endMin*secondsPerMinute > duration {
		return Range{}, fmt.Errorf("%w (%s)", ErrExceedsDuration, FormatDuration(duration))
	}
	return Range{
		Start: startMin * secondsPerMinute,
		End:   endMin * secondsPerMinute,
	}, nil
}

// FormatDuration renders seconds as "Xm Ys".
func FormatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%dm %ds", total/secondsPerMinute, total%secondsPerMinute)
}

// FormatClock renders a minute offset as "m:ss".
func FormatClock(minutes float64) string {
	whole := math.Floor(minutes)
	secs := int((minutes - whole) * secondsPerMinute)
	return fmt.Sprintf("%d:%02d", int(whole), secs)
}

// FormatSeconds renders seconds without a trailing ".0" for whole values.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
