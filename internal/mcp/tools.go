package mcp

import (
	"fmt"

	"manifest-ops/internal/manifest"

	"github.com/google/jsonschema-go/jsonschema"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// AnalyzeInput selects the manifests and the window of an analysis.
type AnalyzeInput struct {
	Records []manifest.Record `json:"records,omitempty" jsonschema:"Inline manifest records, as exported by the terminal system"`
	Paths   []string          `json:"paths,omitempty" jsonschema:"Manifest files (.json .jsonl .yaml) to load, relative to DATA_PATH unless absolute"`
	Start   string            `json:"start,omitempty" jsonschema:"Optional window start (YYYY-MM-DD or YYYY-MM-DDTHH:MM)"`
	End     string            `json:"end,omitempty" jsonschema:"Optional window end (YYYY-MM-DD or YYYY-MM-DDTHH:MM); a date covers the whole day"`
	Period  string            `json:"period,omitempty" jsonschema:"Base window around now when start/end are omitted: day (default), week or month"`
}

// FormatDurationInput is a duration in minutes to render.
type FormatDurationInput struct {
	Minutes float64 `json:"minutes" jsonschema:"Duration in minutes"`
}

func (s *Server) registerTools(srv *gomcp.Server) error {
	analyzeSchema, err := jsonschema.For[AnalyzeInput](nil)
	if err != nil {
		return fmt.Errorf("failed to infer analyze_manifests schema: %w", err)
	}
	durationSchema, err := jsonschema.For[FormatDurationInput](nil)
	if err != nil {
		return fmt.Errorf("failed to infer format_duration schema: %w", err)
	}

	gomcp.AddTool(srv, &gomcp.Tool{
		Name: "analyze_manifests",
		Description: "Compute operational efficiency for cargo manifests inside a time window: operator ranking, " +
			"throughput per shift, mean wait/processing/release lead times and arrivals per hour.\n\n" +
			"Provide either inline 'records' or 'paths' to manifest files. " +
			"Timestamps may mix ISO-8601 and 'DD/MM/YYYY, HH:MM' notations; '---' means not reached.",
		InputSchema: analyzeSchema,
	}, s.handleAnalyzeManifests)

	gomcp.AddTool(srv, &gomcp.Tool{
		Name:        "format_duration",
		Description: "Render a duration in minutes the way the dashboard does ('45m', '1h 13m').",
		InputSchema: durationSchema,
	}, s.handleFormatDuration)

	return nil
}
