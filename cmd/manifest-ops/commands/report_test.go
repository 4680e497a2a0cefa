package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"manifest-ops/internal/config"
	"manifest-ops/internal/manifest"
	"manifest-ops/internal/stats"
)

var fixture = filepath.Join("..", "..", "..", "internal", "testdata", "manifests.jsonl")

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Location:        time.UTC,
		DeliveredStatus: manifest.StatusDelivered,
		RankingLimit:    stats.DefaultRankingLimit,
	}
}

func TestRunReport_Formats(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"inWindow": 7`},
		{"text", "#1  ANA"},
		{"mermaid", "```mermaid"},
		{"html", "<td>ANA</td>"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := runReport(context.Background(), testConfig(), []string{fixture}, reportOptions{format: tt.format}, &buf, now)
			if err != nil {
				t.Fatalf("runReport() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Expected %q in output:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestRunReport_ExplicitWindow(t *testing.T) {
	var buf bytes.Buffer
	opts := reportOptions{start: "2024-03-01T06:00", end: "2024-03-01T13:59", format: "json"}
	if err := runReport(context.Background(), testConfig(), []string{fixture}, opts, &buf, time.Now()); err != nil {
		t.Fatalf("runReport() error = %v", err)
	}

	var r stats.Report
	if err := json.Unmarshal(buf.Bytes(), &r); err != nil {
		t.Fatalf("Output is not a report: %v", err)
	}
	if r.Shifts[1].Total != 0 || r.Shifts[2].Total != 0 {
		t.Errorf("Expected only the first shift inside 06:00-13:59, got %+v", r.Shifts)
	}
}

func TestRunReport_Errors(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := map[string]reportOptions{
		"UnknownFormat": {format: "pdf"},
		"BadPeriod":     {period: "decade"},
		"BadStart":      {start: "soon"},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			if err := runReport(context.Background(), testConfig(), []string{fixture}, opts, &bytes.Buffer{}, now); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	if err := runReport(context.Background(), testConfig(), []string{"missing.jsonl"}, reportOptions{}, &bytes.Buffer{}, now); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestRunReport_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest_ops.prom")
	opts := reportOptions{format: "json", metricsFile: path}
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := runReport(context.Background(), testConfig(), []string{fixture}, opts, &bytes.Buffer{}, now); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected metrics textfile: %v", err)
	}
	if !strings.Contains(string(data), `manifest_ops_operator_manifests{operator="ANA",rank="1"} 3`) {
		t.Errorf("Unexpected textfile:\n%s", data)
	}
}
