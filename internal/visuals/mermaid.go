package visuals

import (
	"fmt"
	"math"
	"strings"

	"manifest-ops/internal/stats"
)

// GenerateHourlyChart creates a Mermaid bar chart of arrivals per local hour.
func GenerateHourlyChart(h stats.HourlyHistogram) string {
	if h.Total() == 0 {
		return ""
	}

	labels := make([]string, 0, len(h.Buckets))
	values := make([]string, 0, len(h.Buckets))
	for _, b := range h.Buckets {
		labels = append(labels, fmt.Sprintf("\"%02dh\"", b.Hour))
		values = append(values, fmt.Sprintf("%d", b.Count))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Arrivals per Hour\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Manifests\" 0 --> %d\n", h.Max+int(math.Max(1, float64(h.Max)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateShiftChart creates a Mermaid bar chart with received and completed bars per shift.
func GenerateShiftChart(shifts stats.ShiftThroughput) string {
	total, _ := shifts.Totals()
	if total == 0 {
		return ""
	}

	var labels, totals, completed []string
	maxVal := 0
	for _, s := range shifts {
		labels = append(labels, fmt.Sprintf("\"%s\"", s.Label))
		totals = append(totals, fmt.Sprintf("%d", s.Total))
		completed = append(completed, fmt.Sprintf("%d", s.Completed))
		if s.Total > maxVal {
			maxVal = s.Total
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Throughput per Shift\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Manifests\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(totals, ", ")))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(completed, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateRankingChart creates a Mermaid bar chart of the operator ranking.
func GenerateRankingChart(ranking []stats.OperatorCount) string {
	if len(ranking) == 0 {
		return ""
	}

	var labels, values []string
	maxVal := 0
	for _, oc := range ranking {
		// Quotes would terminate the mermaid label
		safeName := strings.ReplaceAll(oc.Operator, "\"", "'")
		labels = append(labels, fmt.Sprintf("\"%s\"", safeName))
		values = append(values, fmt.Sprintf("%d", oc.Count))
		if oc.Count > maxVal {
			maxVal = oc.Count
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Operator Ranking\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Manifests\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateLeadTimePie creates a Mermaid pie chart splitting the mean end-to-end time by interval.
func GenerateLeadTimePie(lt stats.LeadTimes) string {
	parts := []struct {
		name string
		m    stats.LeadTimeMetric
	}{
		{"Espera", lt.Wait},
		{"Processamento", lt.Processing},
		{"Liberação", lt.Release},
	}

	var sb strings.Builder
	started := false
	for _, p := range parts {
		if p.m.Count == 0 || p.m.MeanMinutes <= 0 {
			continue
		}
		if !started {
			sb.WriteString("```mermaid\n")
			sb.WriteString("pie title Mean Lead Time (minutes)\n")
			started = true
		}
		sb.WriteString(fmt.Sprintf("    \"%s\" : %.1f\n", p.name, p.m.MeanMinutes))
	}
	if !started {
		return ""
	}
	sb.WriteString("```")
	return sb.String()
}

// GenerateDashboard joins every non-empty chart of r.
func GenerateDashboard(r stats.Report) string {
	var charts []string
	for _, c := range []string{
		GenerateHourlyChart(r.Hourly),
		GenerateShiftChart(r.Shifts),
		GenerateRankingChart(r.Ranking),
		GenerateLeadTimePie(r.LeadTimes),
	} {
		if c != "" {
			charts = append(charts, c)
		}
	}
	return strings.Join(charts, "\n\n")
}
