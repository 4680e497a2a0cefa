package stats

// CalculateHourlyHistogram counts arrivals per local hour of the received time.
// All 24 hours are present even when empty; manifests without a received time
// do not contribute.
func CalculateHourlyHistogram(items []StampedManifest) HourlyHistogram {
	var h HourlyHistogram
	for hour := range h.Buckets {
		h.Buckets[hour].Hour = hour
	}

	for _, m := range items {
		if m.Received == nil {
			continue
		}
		h.Buckets[m.Received.Hour()].Count++
	}

	h.Max = 1
	for _, b := range h.Buckets {
		if b.Count > h.Max {
			h.Max = b.Count
		}
	}
	return h
}

// Total sums the counts across all hours.
func (h HourlyHistogram) Total() int {
	total := 0
	for _, b := range h.Buckets {
		total += b.Count
	}
	return total
}

// Share is the count at hour relative to the busiest hour, in [0, 1].
func (h HourlyHistogram) Share(hour int) float64 {
	if hour < 0 || hour >= len(h.Buckets) || h.Max <= 0 {
		return 0
	}
	return float64(h.Buckets[hour].Count) / float64(h.Max)
}
