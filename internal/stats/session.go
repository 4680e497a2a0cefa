package stats

import (
	"manifest-ops/internal/manifest"
)

// Session serves repeated reports over one snapshot of records, the way a
// dashboard recomputes when only the selected window changes. Timestamps are
// normalized once per session and the filtered set of the last window is kept.
// Caching never changes results. A Session is not safe for concurrent use.
type Session struct {
	records []manifest.Record
	opts    Options

	// Cached projections
	stamped      []StampedManifest
	lastWindow   Window
	lastFiltered []StampedManifest
	hasFiltered  bool
}

// NewSession creates a session over records. The slice must not be mutated afterwards.
func NewSession(records []manifest.Record, opts Options) *Session {
	return &Session{
		records: records,
		opts:    opts.withDefaults(),
	}
}

// Options returns the effective options, defaults applied.
func (s *Session) Options() Options {
	return s.opts
}

// Stamped returns every record with its normalized milestones.
func (s *Session) Stamped() []StampedManifest {
	if s.stamped == nil {
		s.stamped = Stamp(s.records, s.opts.Location)
	}
	return s.stamped
}

// InWindow returns the manifests time-scoped to window.
func (s *Session) InWindow(window Window) []StampedManifest {
	if s.hasFiltered && s.lastWindow.Start.Equal(window.Start) && s.lastWindow.End.Equal(window.End) {
		return s.lastFiltered
	}
	s.lastFiltered = FilterWindow(s.Stamped(), window)
	s.lastWindow = window
	s.hasFiltered = true
	return s.lastFiltered
}

// Report computes the full statistics for window.
func (s *Session) Report(window Window) Report {
	return buildReport(s.Stamped(), s.InWindow(window), window, s.opts)
}

// Len returns the number of records in the snapshot.
func (s *Session) Len() int {
	return len(s.records)
}
