package stats

import "manifest-ops/internal/manifest"

// shiftTable lists the fixed local-hour shifts. Shift 3 wraps across midnight.
var shiftTable = [3]ShiftBucket{
	{Shift: 1, Label: "1º TURNO", StartHour: 6, EndHour: 14},
	{Shift: 2, Label: "2º TURNO", StartHour: 14, EndHour: 22},
	{Shift: 3, Label: "3º TURNO", StartHour: 22, EndHour: 6},
}

// ShiftFor returns the zero-based shift index for a local hour of day.
func ShiftFor(hour int) int {
	switch {
	case hour >= 6 && hour < 14:
		return 0
	case hour >= 14 && hour < 22:
		return 1
	default:
		return 2
	}
}

// CalculateShiftThroughput buckets manifests by the shift in which they were
// received. Manifests without a received time are left out of every shift.
// A manifest counts as completed only when its status equals delivered exactly.
func CalculateShiftThroughput(items []StampedManifest, delivered manifest.Status) ShiftThroughput {
	shifts := shiftTable

	for _, m := range items {
		if m.Received == nil {
			continue
		}
		idx := ShiftFor(m.Received.Hour())
		shifts[idx].Total++
		if m.Record.IsDelivered(delivered) {
			shifts[idx].Completed++
		}
	}

	return shifts
}

// Totals sums the arrivals and completions across all shifts.
func (s ShiftThroughput) Totals() (total, completed int) {
	for _, b := range s {
		total += b.Total
		completed += b.Completed
	}
	return total, completed
}
