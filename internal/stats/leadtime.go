package stats

import (
	"fmt"
	"math"
)

// CalculateLeadTimes averages the wait, processing and release intervals.
// Each interval only counts manifests that have both of its endpoints, so one
// missing milestone drops a manifest from the intervals that need it and no
// others. Negative intervals from inconsistent source data are kept as-is.
func CalculateLeadTimes(items []StampedManifest) LeadTimes {
	var wait, processing, release meanAccumulator

	for _, m := range items {
		if m.Received != nil && m.Started != nil {
			wait.add(minutesBetween(*m.Received, *m.Started))
		}
		if m.Started != nil && m.Completed != nil {
			processing.add(minutesBetween(*m.Started, *m.Completed))
		}
		if m.Completed != nil && m.Signed != nil {
			release.add(minutesBetween(*m.Completed, *m.Signed))
		}
	}

	return LeadTimes{
		Wait:       LeadTimeMetric{MeanMinutes: wait.mean(), Count: wait.count},
		Processing: LeadTimeMetric{MeanMinutes: processing.mean(), Count: processing.count},
		Release:    LeadTimeMetric{MeanMinutes: release.mean(), Count: release.count},
	}
}

// FormatMinutes renders a duration for dashboards: "0m" when non-positive,
// whole minutes below an hour, "Hh Mm" from an hour on.
func FormatMinutes(minutes float64) string {
	if minutes <= 0 || math.IsNaN(minutes) {
		return "0m"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", int(math.Round(minutes)))
	}
	h := int(math.Floor(minutes / 60))
	m := int(math.Round(math.Mod(minutes, 60)))
	return fmt.Sprintf("%dh %dm", h, m)
}
