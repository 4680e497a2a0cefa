package mcp

import (
	"context"
	"errors"
	"fmt"

	"manifest-ops/internal/manifest"
	"manifest-ops/internal/stats"
	"manifest-ops/internal/visuals"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

var errNoInput = errors.New("provide inline 'records' or manifest 'paths'")

func (s *Server) handleAnalyzeManifests(ctx context.Context, _ *gomcp.CallToolRequest, in AnalyzeInput) (*gomcp.CallToolResult, any, error) {
	res, err := s.analyze(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	result, err := textResult(res)
	return result, nil, err
}

func (s *Server) handleFormatDuration(_ context.Context, _ *gomcp.CallToolRequest, in FormatDurationInput) (*gomcp.CallToolResult, any, error) {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: stats.FormatMinutes(in.Minutes)}},
	}, nil, nil
}

// analyze runs one analysis and wraps the report for the agent.
func (s *Server) analyze(ctx context.Context, in AnalyzeInput) (ResponseEnvelope, error) {
	if len(in.Records) == 0 && len(in.Paths) == 0 {
		return ResponseEnvelope{}, errNoInput
	}
	records := append([]manifest.Record(nil), in.Records...)

	if len(in.Paths) > 0 {
		loaded, err := manifest.LoadFiles(ctx, s.resolvePaths(in.Paths))
		if err != nil {
			return ResponseEnvelope{}, err
		}
		records = append(records, loaded...)
	}

	window, err := stats.ResolveWindow(s.now(), in.Start, in.End, in.Period, s.cfg.Location)
	if err != nil {
		return ResponseEnvelope{}, fmt.Errorf("invalid window: %w", err)
	}

	report := stats.Analyze(records, window, s.cfg.EngineOptions())
	log.Info().
		Int("records", report.TotalRecords).
		Int("inWindow", report.InWindow).
		Time("start", window.Start).
		Time("end", window.End).
		Msg("Manifest analysis completed")

	if s.cfg.MetricsFile != "" {
		if err := s.exportMetrics(report); err != nil {
			log.Warn().Err(err).Str("path", s.cfg.MetricsFile).Msg("Metrics export failed")
		}
	}

	env := ResponseEnvelope{
		Data:      report,
		Formatted: formatLeadTimes(report.LeadTimes),
		Warnings:  reportWarnings(report),
	}
	if s.cfg.EnableMermaidCharts {
		env.Charts = visuals.GenerateDashboard(report)
	}
	return env, nil
}

// exportMetrics publishes one report to the textfile. Concurrent tool calls
// each write a complete report; the last one wins.
func (s *Server) exportMetrics(report stats.Report) error {
	s.metricsMu.Lock()
	defer s.metricsMu.Unlock()

	s.metrics.Observe(report)
	return s.metrics.WriteTextfile(s.cfg.MetricsFile)
}
