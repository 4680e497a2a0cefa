package stats

import (
	"time"

	"manifest-ops/internal/manifest"
)

// Stamp normalizes every milestone of every record once, preserving input order.
func Stamp(records []manifest.Record, loc *time.Location) []StampedManifest {
	stamped := make([]StampedManifest, len(records))
	for i, r := range records {
		stamped[i] = StampedManifest{
			Record:    r,
			Received:  parseOptional(r.ReceivedAt, loc),
			Pulled:    parseOptional(r.PulledAt, loc),
			Started:   parseOptional(r.StartedAt, loc),
			Completed: parseOptional(r.CompletedAt, loc),
			Signed:    parseOptional(r.CounterpartySignedAt, loc),
		}
	}
	return stamped
}

func parseOptional(raw string, loc *time.Location) *time.Time {
	t, ok := ParseTimestamp(raw, loc)
	if !ok {
		return nil
	}
	return &t
}

// ReferenceTime returns the instant used to time-scope the manifest:
// received if known, else pulled, else nil.
func (m StampedManifest) ReferenceTime() *time.Time {
	if m.Received != nil {
		return m.Received
	}
	return m.Pulled
}

// FilterWindow returns the manifests whose reference time falls inside the window.
// Manifests without a reference time are always excluded.
func FilterWindow(items []StampedManifest, window Window) []StampedManifest {
	filtered := make([]StampedManifest, 0, len(items))
	if window.IsInverted() {
		return filtered
	}
	for _, m := range items {
		ref := m.ReferenceTime()
		if ref != nil && window.Contains(*ref) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// CountUnreferenced counts manifests that cannot be time-scoped at all.
func CountUnreferenced(items []StampedManifest) int {
	n := 0
	for _, m := range items {
		if m.ReferenceTime() == nil {
			n++
		}
	}
	return n
}
