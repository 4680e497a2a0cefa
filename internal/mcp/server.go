// Package mcp exposes the manifest efficiency engine as Model Context Protocol tools over stdio.
package mcp

import (
	"context"
	"sync"
	"time"

	"manifest-ops/internal/config"
	"manifest-ops/internal/metrics"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

const serverName = "manifest-ops"

// Server holds the state for the MCP server.
type Server struct {
	cfg     *config.AppConfig
	version string
	now     func() time.Time

	// metricsMu keeps Observe and WriteTextfile of one analysis together.
	metricsMu sync.Mutex
	metrics   *metrics.Exporter
}

// NewServer creates a new MCP server.
func NewServer(cfg *config.AppConfig, version string) *Server {
	return &Server{
		cfg:     cfg,
		version: version,
		metrics: metrics.NewExporter(),
		now:     time.Now,
	}
}

// build registers every tool on a fresh SDK server.
func (s *Server) build() (*gomcp.Server, error) {
	srv := gomcp.NewServer(&gomcp.Implementation{Name: serverName, Version: s.version}, nil)
	if err := s.registerTools(srv); err != nil {
		return nil, err
	}
	return srv, nil
}

// Start serves tool calls over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv, err := s.build()
	if err != nil {
		return err
	}
	log.Info().Str("dataPath", s.cfg.DataPath).Msg("MCP Server starting Stdio loop")
	return srv.Run(ctx, &gomcp.StdioTransport{})
}
