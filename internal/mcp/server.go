// Package mcp exposes the dissolution space as Model Context Protocol tools.
// Layer 1 tools return reference catalogs, layer 2 tools compute, and the
// layer 3 tool bundles both for a downstream prompt writer.
package mcp

import (
	"context"
	"log/slog"
	"time"

	"dissolve/internal/config"
	"dissolve/internal/logging"
	"dissolve/internal/store"
	"dissolve/internal/taxonomy"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server and the data every tool reads.
type Server struct {
	MCPServer *sdkmcp.Server

	tax     *taxonomy.Store
	cfg     *config.Config
	history store.Store
	log     *slog.Logger
}

// Option customizes a Server.
type Option func(*Server)

// WithTaxonomy replaces the embedded taxonomy.
func WithTaxonomy(t *taxonomy.Store) Option {
	return func(s *Server) { s.tax = t }
}

// WithHistory records every tool call in h and registers the history tool.
func WithHistory(h store.Store) Option {
	return func(s *Server) { s.history = h }
}

// NewServer creates an MCP server with every dissolution tool registered.
// A nil cfg uses config.Default().
func NewServer(cfg *config.Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{
		tax: taxonomy.Default(),
		cfg: cfg,
		log: logging.New("mcp"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: cfg.Server.Name, Version: cfg.Server.Version},
		nil,
	)
	s.registerCatalogTools()
	s.registerComputeTools()
	s.registerSynthesisTools()
	if s.history != nil {
		s.registerHistoryTools()
	}
	return s
}

// Run serves on t until ctx is canceled or the client disconnects.
func (s *Server) Run(ctx context.Context, t sdkmcp.Transport) error {
	s.log.Info("serving", "name", s.cfg.Server.Name, "version", s.cfg.Server.Version, "history", s.history != nil)
	return s.MCPServer.Run(ctx, t)
}

// addTool registers fn under name. Every call gets a call id for log
// correlation and, when history is enabled, is recorded with its arguments
// and result. Errors returned by fn reach the client as IsError results whose
// text is a JSON error record.
func addTool[In, Out any](s *Server, name, description string, fn func(context.Context, In) (Out, error)) {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{Name: name, Description: description},
		func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, Out, error) {
			callID := uuid.NewString()
			logger := s.log.With("tool", name, "call_id", callID)
			start := time.Now()
			logger.Debug("tool call", "args", in)

			out, err := fn(ctx, in)
			s.record(logger, callID, name, in, out, err)

			if err != nil {
				te := newToolError(err)
				if te.rec.Kind == errKindInternal {
					logger.Warn("tool failed", "error", err)
				} else {
					logger.Info("tool rejected input", "error", err, "kind", te.rec.Kind)
				}
				var zero Out
				return nil, zero, te
			}
			logger.Debug("tool done", "elapsed", time.Since(start))
			return nil, out, nil
		})
}

func (s *Server) record(logger *slog.Logger, callID, tool string, in, out any, callErr error) {
	if s.history == nil || tool == toolHistory {
		return
	}
	run, err := store.NewRun(tool, in, out, callErr)
	if err != nil {
		logger.Warn("history encode failed", "error", err)
		return
	}
	run.CallID = callID
	if _, err := s.history.SaveRun(run); err != nil {
		logger.Warn("history save failed", "error", err)
		return
	}
	if keep := s.cfg.History.Keep; keep > 0 && run.ID%int64(keep) == 0 {
		if n, err := s.history.Prune(keep); err != nil {
			logger.Warn("history prune failed", "error", err)
		} else if n > 0 {
			logger.Debug("history pruned", "removed", n)
		}
	}
}
