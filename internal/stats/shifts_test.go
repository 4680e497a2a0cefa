package stats

import (
	"fmt"
	"testing"
	"time"

	"manifest-ops/internal/manifest"
)

func TestShiftFor(t *testing.T) {
	want := map[int]int{
		0: 2, 5: 2, 6: 0, 13: 0, 14: 1, 21: 1, 22: 2, 23: 2,
	}
	for hour, shift := range want {
		if got := ShiftFor(hour); got != shift {
			t.Errorf("ShiftFor(%d) = %d, want %d", hour, got, shift)
		}
	}
}

func TestCalculateShiftThroughput(t *testing.T) {
	records := []manifest.Record{
		{Status: manifest.StatusDelivered, ReceivedAt: "2024-01-01T06:00:00"},
		{Status: manifest.StatusPulled, ReceivedAt: "2024-01-01T13:59:00"},
		{Status: manifest.StatusDelivered, ReceivedAt: "2024-01-01T14:00:00"},
		{Status: manifest.StatusDelivered, ReceivedAt: "2024-01-01T22:00:00"},
		{Status: manifest.StatusDelivered, ReceivedAt: "2024-01-01T05:59:00"},
		{Status: "Manifesto entregue", ReceivedAt: "2024-01-01T03:00:00"},
		// Pulled-only manifests are time-scoped but have no arrival hour
		{Status: manifest.StatusDelivered, ReceivedAt: "---", PulledAt: "2024-01-01T09:00:00"},
	}

	shifts := CalculateShiftThroughput(Stamp(records, time.UTC), manifest.StatusDelivered)

	want := [3][2]int{{2, 1}, {1, 1}, {3, 2}}
	for i, w := range want {
		if shifts[i].Total != w[0] || shifts[i].Completed != w[1] {
			t.Errorf("Shift %d: got total=%d completed=%d, want total=%d completed=%d",
				i+1, shifts[i].Total, shifts[i].Completed, w[0], w[1])
		}
		if shifts[i].Shift != i+1 {
			t.Errorf("Expected shift number %d, got %d", i+1, shifts[i].Shift)
		}
	}

	total, completed := shifts.Totals()
	if total != 6 || completed != 4 {
		t.Errorf("Totals() = (%d, %d), want (6, 4)", total, completed)
	}
}

func TestCalculateShiftThroughput_UsesLocalHour(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	// 08:00 UTC is 05:00 in BRT: third shift, not first
	stamped := Stamp([]manifest.Record{{ReceivedAt: "2024-01-01T08:00:00Z"}}, loc)

	shifts := CalculateShiftThroughput(stamped, manifest.StatusDelivered)
	if shifts[2].Total != 1 || shifts[0].Total != 0 {
		t.Errorf("Expected arrival in shift 3, got %+v", shifts)
	}
}

func TestCalculateShiftThroughput_DoesNotMutateTable(t *testing.T) {
	stamped := Stamp([]manifest.Record{{ReceivedAt: "2024-01-01T08:00:00"}}, time.UTC)
	CalculateShiftThroughput(stamped, manifest.StatusDelivered)

	again := CalculateShiftThroughput(nil, manifest.StatusDelivered)
	for _, b := range again {
		if b.Total != 0 || b.Completed != 0 {
			t.Fatalf("Expected fresh zeroed buckets, got %+v", again)
		}
	}
}

func TestCalculateShiftThroughput_SumMatchesHistogram(t *testing.T) {
	var records []manifest.Record
	for h := 0; h < 24; h++ {
		for n := 0; n <= h%3; n++ {
			records = append(records, manifest.Record{ReceivedAt: fmt.Sprintf("02/01/2024 %02d:%02d", h, n*10)})
		}
	}
	records = append(records, manifest.Record{ReceivedAt: "---", PulledAt: "2024-01-02T10:00:00"})

	stamped := Stamp(records, time.UTC)
	shiftTotal, _ := CalculateShiftThroughput(stamped, manifest.StatusDelivered).Totals()
	histTotal := CalculateHourlyHistogram(stamped).Total()

	withReceived := 0
	for _, m := range stamped {
		if m.Received != nil {
			withReceived++
		}
	}
	if shiftTotal != withReceived || histTotal != withReceived {
		t.Errorf("Expected shift total %d and histogram total %d to equal %d", shiftTotal, histTotal, withReceived)
	}
}
