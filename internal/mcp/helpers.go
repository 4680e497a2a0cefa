package mcp

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"manifest-ops/internal/stats"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ResponseEnvelope is the JSON document returned to the agent.
type ResponseEnvelope struct {
	Data      stats.Report      `json:"data"`
	Formatted map[string]string `json:"formatted"`
	Warnings  []string          `json:"warnings,omitempty"`
	Charts    string            `json:"charts,omitempty"`
}

func textResult(v any) (*gomcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: string(out)}},
	}, nil
}

func (s *Server) resolvePaths(paths []string) []string {
	resolved := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			resolved[i] = p
			continue
		}
		resolved[i] = filepath.Join(s.cfg.DataPath, p)
	}
	return resolved
}

func formatLeadTimes(lt stats.LeadTimes) map[string]string {
	return map[string]string{
		"wait":       stats.FormatMinutes(lt.Wait.MeanMinutes),
		"processing": stats.FormatMinutes(lt.Processing.MeanMinutes),
		"release":    stats.FormatMinutes(lt.Release.MeanMinutes),
	}
}

func reportWarnings(r stats.Report) []string {
	var warnings []string
	if r.Window.IsInverted() {
		warnings = append(warnings, "Window start is after its end; no manifests were selected.")
	} else if r.InWindow == 0 {
		warnings = append(warnings, "No manifests fall inside the window.")
	}
	if r.Unreferenced > 0 {
		warnings = append(warnings, fmt.Sprintf("%d record(s) have neither a received nor a pulled time and were never counted.", r.Unreferenced))
	}
	return warnings
}
