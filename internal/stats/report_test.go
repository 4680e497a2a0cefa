package stats

import (
	"testing"
	"time"

	"manifest-ops/internal/manifest"
)

func TestAnalyze_DashboardExample(t *testing.T) {
	records := []manifest.Record{
		{
			ReceivedAt:          "2024-01-01T08:00:00",
			StartedAt:           "2024-01-01T08:10:00",
			Status:              manifest.StatusDelivered,
			ResponsibleOperator: "A",
		},
		{
			ReceivedAt:          "2024-01-01T15:00:00",
			ResponsibleOperator: "B",
		},
	}

	r := Analyze(records, wholeDay(2024, 1, 1), Options{Location: time.UTC})

	if len(r.Ranking) != 2 || r.Ranking[0] != (OperatorCount{"A", 1}) || r.Ranking[1] != (OperatorCount{"B", 1}) {
		t.Errorf("Unexpected ranking: %v", r.Ranking)
	}
	if r.Shifts[0].Total != 1 || r.Shifts[0].Completed != 1 {
		t.Errorf("Shift 1 = %+v, want total=1 completed=1", r.Shifts[0])
	}
	if r.Shifts[1].Total != 1 || r.Shifts[1].Completed != 0 {
		t.Errorf("Shift 2 = %+v, want total=1 completed=0", r.Shifts[1])
	}
	if r.Shifts[2].Total != 0 {
		t.Errorf("Shift 3 = %+v, want empty", r.Shifts[2])
	}
	if r.LeadTimes.Wait.MeanMinutes != 10 {
		t.Errorf("Wait mean = %v, want 10", r.LeadTimes.Wait.MeanMinutes)
	}
	for hour, b := range r.Hourly.Buckets {
		want := 0
		if hour == 8 || hour == 15 {
			want = 1
		}
		if b.Count != want {
			t.Errorf("Hour %d = %d, want %d", hour, b.Count, want)
		}
	}
	if r.TotalRecords != 2 || r.InWindow != 2 || r.Unreferenced != 0 {
		t.Errorf("Unexpected counters: total=%d inWindow=%d unreferenced=%d", r.TotalRecords, r.InWindow, r.Unreferenced)
	}
	if r.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", r.Timezone)
	}
}

func TestAnalyze_InvertedWindowReportsZeros(t *testing.T) {
	records := []manifest.Record{
		{ReceivedAt: "2024-01-01T08:00:00", StartedAt: "2024-01-01T08:10:00", ResponsibleOperator: "A"},
	}
	w := wholeDay(2024, 1, 1)

	r := Analyze(records, NewWindow(w.End, w.Start), Options{Location: time.UTC})

	if r.InWindow != 0 {
		t.Errorf("Expected empty filtered set, got %d", r.InWindow)
	}
	if r.Ranking == nil || len(r.Ranking) != 0 {
		t.Errorf("Expected empty ranking, got %v", r.Ranking)
	}
	if total, _ := r.Shifts.Totals(); total != 0 {
		t.Errorf("Expected no shift arrivals, got %d", total)
	}
	if r.LeadTimes != (LeadTimes{}) {
		t.Errorf("Expected zero lead times, got %+v", r.LeadTimes)
	}
	if r.Hourly.Total() != 0 || r.Hourly.Max != 1 {
		t.Errorf("Expected empty histogram with Max 1, got total=%d max=%d", r.Hourly.Total(), r.Hourly.Max)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	r := Analyze(nil, wholeDay(2024, 1, 1), Options{})
	if r.TotalRecords != 0 || r.InWindow != 0 || len(r.Ranking) != 0 {
		t.Errorf("Expected empty report, got %+v", r)
	}
}

func TestAnalyze_PulledOnlyCountsForRankingNotArrivals(t *testing.T) {
	records := []manifest.Record{
		{ReceivedAt: "---", PulledAt: "2024-01-01T09:00:00", StartedAt: "2024-01-01T09:30:00", ResponsibleOperator: "A"},
	}
	r := Analyze(records, wholeDay(2024, 1, 1), Options{Location: time.UTC})

	if r.InWindow != 1 || len(r.Ranking) != 1 {
		t.Fatalf("Expected pulled-only record in window and ranked, got %+v", r)
	}
	if total, _ := r.Shifts.Totals(); total != 0 {
		t.Errorf("Expected no shift arrivals, got %d", total)
	}
	if r.Hourly.Total() != 0 {
		t.Errorf("Expected no histogram arrivals, got %d", r.Hourly.Total())
	}
	if r.LeadTimes.Wait.Count != 0 {
		t.Errorf("Expected no wait pairs, got %d", r.LeadTimes.Wait.Count)
	}
}

func TestAnalyze_CustomOptions(t *testing.T) {
	records := []manifest.Record{
		{Status: "Done", ReceivedAt: "2024-01-01T08:00:00", ResponsibleOperator: "A"},
		{Status: manifest.StatusDelivered, ReceivedAt: "2024-01-01T09:00:00", ResponsibleOperator: "B"},
	}
	r := Analyze(records, wholeDay(2024, 1, 1), Options{Location: time.UTC, DeliveredStatus: "Done", RankingLimit: 1})

	if r.Shifts[0].Completed != 1 {
		t.Errorf("Expected only the custom delivered status to complete, got %d", r.Shifts[0].Completed)
	}
	if len(r.Ranking) != 1 || r.Ranking[0].Operator != "A" {
		t.Errorf("Expected ranking truncated to A, got %v", r.Ranking)
	}
}

func TestOptions_Defaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.Location != time.Local {
		t.Errorf("Expected time.Local, got %v", o.Location)
	}
	if o.DeliveredStatus != manifest.StatusDelivered {
		t.Errorf("Expected %q, got %q", manifest.StatusDelivered, o.DeliveredStatus)
	}
	if o.RankingLimit != DefaultRankingLimit {
		t.Errorf("Expected %d, got %d", DefaultRankingLimit, o.RankingLimit)
	}
}
