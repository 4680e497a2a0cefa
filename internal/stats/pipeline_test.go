package stats_test

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"manifest-ops/internal/manifest"
	"manifest-ops/internal/stats"
)

func TestAnalyticalPipeline_Fixture(t *testing.T) {
	records, err := manifest.LoadFile(filepath.Join("..", "testdata", "manifests.jsonl"))
	if err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}
	if len(records) != 9 {
		t.Fatalf("Expected 9 valid records (one corrupt line skipped), got %d", len(records))
	}

	window := stats.DefaultWindow(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), time.UTC)
	r := stats.Analyze(records, window, stats.Options{Location: time.UTC})

	if r.TotalRecords != 9 || r.InWindow != 7 || r.Unreferenced != 1 {
		t.Errorf("Counters: total=%d inWindow=%d unreferenced=%d, want 9/7/1", r.TotalRecords, r.InWindow, r.Unreferenced)
	}

	wantRanking := []stats.OperatorCount{{Operator: "ANA", Count: 3}, {Operator: "BRUNO", Count: 2}, {Operator: "CARLA", Count: 1}}
	if len(r.Ranking) != len(wantRanking) {
		t.Fatalf("Ranking = %v, want %v", r.Ranking, wantRanking)
	}
	for i := range wantRanking {
		if r.Ranking[i] != wantRanking[i] {
			t.Errorf("Ranking[%d] = %v, want %v", i, r.Ranking[i], wantRanking[i])
		}
	}

	for i, s := range r.Shifts {
		if s.Total != 2 || s.Completed != 1 {
			t.Errorf("Shift %d = %d/%d, want 2/1", i+1, s.Total, s.Completed)
		}
	}

	lt := r.LeadTimes
	if lt.Wait.Count != 4 || lt.Wait.MeanMinutes != 13.75 {
		t.Errorf("Wait = %+v, want 13.75 over 4", lt.Wait)
	}
	if lt.Processing.Count != 3 || math.Abs(lt.Processing.MeanMinutes-220.0/3) > 1e-9 {
		t.Errorf("Processing = %+v, want 73.33 over 3", lt.Processing)
	}
	if lt.Release.Count != 2 || lt.Release.MeanMinutes != 37.5 {
		t.Errorf("Release = %+v, want 37.5 over 2", lt.Release)
	}
	if got := stats.FormatMinutes(lt.Processing.MeanMinutes); got != "1h 13m" {
		t.Errorf("FormatMinutes(processing) = %q, want 1h 13m", got)
	}

	wantHours := map[int]int{2: 1, 6: 1, 9: 1, 14: 2, 23: 1}
	for hour, b := range r.Hourly.Buckets {
		if b.Count != wantHours[hour] {
			t.Errorf("Hour %d = %d, want %d", hour, b.Count, wantHours[hour])
		}
	}
	if r.Hourly.Max != 2 {
		t.Errorf("Max = %d, want 2", r.Hourly.Max)
	}

	shiftTotal, _ := r.Shifts.Totals()
	if shiftTotal != r.Hourly.Total() {
		t.Errorf("Shift total %d differs from histogram total %d", shiftTotal, r.Hourly.Total())
	}
}
