package stats

import (
	"time"

	"manifest-ops/internal/manifest"
)

// Options controls the presentation-facing knobs of the engine.
type Options struct {
	// Location is the authoritative calendar for naive timestamps and hour-of-day
	// bucketing. Defaults to time.Local.
	Location *time.Location
	// DeliveredStatus marks a manifest as completed. Defaults to manifest.StatusDelivered.
	DeliveredStatus manifest.Status
	// RankingLimit caps the operator ranking. Defaults to DefaultRankingLimit.
	RankingLimit int
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.DeliveredStatus == "" {
		o.DeliveredStatus = manifest.StatusDelivered
	}
	if o.RankingLimit == 0 {
		o.RankingLimit = DefaultRankingLimit
	}
	return o
}

// Analyze computes every statistic for the records inside window.
// It never fails: unparseable input only shrinks the populations involved.
func Analyze(records []manifest.Record, window Window, opts Options) Report {
	return NewSession(records, opts).Report(window)
}

// buildReport fans the filtered set out to the four independent aggregators.
func buildReport(stamped, filtered []StampedManifest, window Window, opts Options) Report {
	return Report{
		Window:       window,
		Timezone:     opts.Location.String(),
		TotalRecords: len(stamped),
		Unreferenced: CountUnreferenced(stamped),
		InWindow:     len(filtered),
		Ranking:      RankOperators(filtered, opts.RankingLimit),
		Shifts:       CalculateShiftThroughput(filtered, opts.DeliveredStatus),
		LeadTimes:    CalculateLeadTimes(filtered),
		Hourly:       CalculateHourlyHistogram(filtered),
	}
}
