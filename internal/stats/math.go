package stats

import "time"

// meanAccumulator keeps a running sum so a mean can be taken without storing samples.
type meanAccumulator struct {
	sum   float64
	count int
}

func (a *meanAccumulator) add(v float64) {
	a.sum += v
	a.count++
}

// mean returns 0 when nothing was added.
func (a meanAccumulator) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// minutesBetween is end minus start in fractional minutes; negative when end precedes start.
func minutesBetween(start, end time.Time) float64 {
	return end.Sub(start).Minutes()
}
