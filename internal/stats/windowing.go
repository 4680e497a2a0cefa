package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidWindow = errors.New("invalid window bound")

// Window is the inclusive [Start, End] interval used to time-scope manifests.
// No ordering is enforced: an inverted window simply selects nothing.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow creates a window from two instants without normalizing them.
func NewWindow(start, end time.Time) Window {
	return Window{Start: start, End: end}
}

// DefaultWindow covers the calendar day of now in loc, 00:00:00.000 to 23:59:59.999.
func DefaultWindow(now time.Time, loc *time.Location) Window {
	w, _ := PeriodWindow(now, "day", loc)
	return w
}

// PeriodWindow covers the whole day, week (Monday based) or month containing now.
func PeriodWindow(now time.Time, period string, loc *time.Location) (Window, error) {
	if loc == nil {
		loc = time.Local
	}
	switch period {
	case "", "day", "week", "month":
	default:
		return Window{}, fmt.Errorf("unknown period %q (expected day, week or month)", period)
	}
	local := now.In(loc)
	return Window{
		Start: SnapToStart(local, period),
		End:   SnapToEnd(local, period),
	}, nil
}

// Contains reports whether t lies inside the window, boundaries included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// IsInverted reports whether Start is after End.
func (w Window) IsInverted() bool {
	return w.Start.After(w.End)
}

// SnapToStart normalizes a timestamp to the beginning of its bucket (0:00:00).
func SnapToStart(t time.Time, bucket string) time.Time {
	if t.IsZero() {
		return t
	}
	switch bucket {
	case "month":
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case "week":
		// Snap to Monday
		weekday := int(t.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday -> 7
		}
		return time.Date(t.Year(), t.Month(), t.Day()-(weekday-1), 0, 0, 0, 0, t.Location())
	default: // day
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}

// SnapToEnd normalizes a timestamp to the last millisecond of its bucket (23:59:59.999).
func SnapToEnd(t time.Time, bucket string) time.Time {
	if t.IsZero() {
		return t
	}
	start := SnapToStart(t, bucket)
	var next time.Time
	switch bucket {
	case "month":
		next = start.AddDate(0, 1, 0)
	case "week":
		next = start.AddDate(0, 0, 7)
	default: // day
		next = start.AddDate(0, 0, 1)
	}
	return next.Add(-time.Millisecond)
}

// boundLayouts are accepted for window bounds supplied as text.
var boundLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseWindowBound reads a window bound. Date-only values snap to the start of
// the day, or to its last millisecond when end is true.
func ParseWindowBound(s string, end bool, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	for _, layout := range boundLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" && end {
			return SnapToEnd(t, "day"), nil
		}
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWindow, s)
}

// ResolveWindow builds the window requested by a caller. The period selects the
// base window around now (day when empty); explicit start or end override the
// corresponding bound. An inverted result is returned as is.
func ResolveWindow(now time.Time, start, end, period string, loc *time.Location) (Window, error) {
	w, err := PeriodWindow(now, period, loc)
	if err != nil {
		return Window{}, err
	}
	if start != "" {
		if w.Start, err = ParseWindowBound(start, false, loc); err != nil {
			return Window{}, err
		}
	}
	if end != "" {
		if w.End, err = ParseWindowBound(end, true, loc); err != nil {
			return Window{}, err
		}
	}
	return w, nil
}
