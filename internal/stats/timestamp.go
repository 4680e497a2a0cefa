package stats

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"manifest-ops/internal/manifest"
)

// isoLayouts are tried in order before the positional fallback.
// Layouts without an offset are read in the caller's location.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
}

var fieldSeparators = regexp.MustCompile(`[/\s,:]+`)

// maxYear mirrors the largest calendar year upstream exporters can represent.
const maxYear = 275760

// ParseTimestamp normalizes a raw milestone field into an instant expressed in loc.
// It reports false for absent values, the "---" sentinel, and text no notation matches.
// It never fails.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}

	s := strings.TrimSpace(raw)
	if s == "" || s == manifest.NoValue {
		return time.Time{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}

	return parsePositional(s, loc)
}

// parsePositional reads "day month year hour minute" split on / whitespace , or :.
func parsePositional(s string, loc *time.Location) (time.Time, bool) {
	parts := fieldSeparators.Split(s, -1)
	if len(parts) < 5 || dashedDate(parts[0]) {
		return time.Time{}, false
	}

	var n [5]int
	for i := range n {
		v, ok := leadingInt(parts[i])
		if !ok {
			return time.Time{}, false
		}
		n[i] = v
	}

	day, month, year, hour, minute := n[0], n[1], n[2], n[3], n[4]
	if year >= 0 && year <= 99 {
		year += 1900
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	if y := t.Year(); y > maxYear || y < -maxYear {
		return time.Time{}, false
	}
	return t, true
}

// dashedDate reports whether a component continues its digits with '-', as in
// "2024-03-01". Such text is a dashed date no layout matched, not a day.
func dashedDate(s string) bool {
	s = strings.TrimLeft(s, "+-")
	digits := strings.TrimLeft(s, "0123456789")
	return len(digits) < len(s) && strings.HasPrefix(digits, "-")
}

// leadingInt parses the optional sign and leading decimal digits of s,
// ignoring whatever follows ("30h" reads as 30).
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	// Anything longer cannot land inside the representable calendar.
	if end == digitsStart || end-digitsStart > 9 {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
