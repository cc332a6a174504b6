// ABOUTME: MCP server setup for the fitness tracker store.
// ABOUTME: Wraps the MCP server with a storage Repository and stats aggregator.
package mcp

import (
	"context"
	"time"

	"github.com/harperreed/fitness/internal/stats"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	stats     *stats.Aggregator
	log       zerolog.Logger
	now       func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for tool failures.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) { s.log = log.With().Str("component", "mcp").Logger() }
}

// WithClock overrides the clock used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository, opts ...Option) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitness",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		stats:     stats.New(repo),
		log:       zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// today returns the local calendar date in YYYY-MM-DD form.
func (s *Server) today() string {
	return s.now().Format("2006-01-02")
}

func (s *Server) dateOrToday(date string) string {
	if date == "" {
		return s.today()
	}
	return date
}
