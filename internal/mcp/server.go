// Copyright (c) 2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/campmcp/source"
)

const (
	serverName    = "email-campaign-mcp"
	serverVersion = "1.0.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default, suitable
	// for local agent integrations such as Claude Desktop).
	TransportStdio Transport = "stdio"
	// TransportHTTP uses Streamable HTTP transport (suitable for remote
	// agents or when multiple concurrent clients are needed).
	TransportHTTP Transport = "http"
)

// Server wraps an MCP server and its underlying campaign dataset.
type Server struct {
	mcp    *mcpsrv.MCPServer
	src    source.Sourcer
	logger *slog.Logger
}

// Option is a functional option for [New].
type Option func(*Server)

// WithLogger sets the logger.  A nil logger is ignored, the server then
// logs with slog.Default().
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// WithSource sets the campaign dataset that the server queries.
func WithSource(src source.Sourcer) Option {
	return func(s *Server) {
		s.src = src
	}
}

// New creates a new MCP server.  The server is populated with all available
// tools but does not start listening until one of the Serve* methods is
// called.
func New(opt ...Option) *Server {
	s := &Server{
		logger: slog.Default(),
	}
	for _, o := range opt {
		o(s)
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions(s.src)),
	)

	// Register all tools.
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}

	s.mcp = mcpServer
	return s
}

// instructions returns the server instructions that describe the dataset to
// the connecting agent.
func instructions(src source.Sourcer) string {
	dataset := "The dataset contains mock email campaign data exported from a marketing platform."
	if src != nil {
		dataset = fmt.Sprintf("The dataset %q (type: %s) contains mock email campaign data exported from a marketing platform.", src.Name(), src.Type())
	}
	return fmt.Sprintf(`You are connected to an email campaign analytics MCP server.

%s

The get_email_campaign_data tool returns campaign data as JSON text.  Choose
the view with the query_type argument:
- "all": complete campaign records, unmodified
- "performance": derived open, click-through and conversion rates per campaign
- "metrics": raw counters (sent, opened, clicked, converted) and revenue
- "subjects": subject line details (the mock dataset has none; the tool
  reports the gap in-band)

The optional campaign_name argument narrows the result to a single campaign,
matched case-insensitively.  Failures are reported inside the payload as an
object with an "error" field, not as protocol errors.

All data is read-only.  Rates are percentage strings with two decimal places
(e.g. "40.00%%").
`, dataset)
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio", "dataset", s.datasetName())
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as
// "127.0.0.1:8483".  The MCP endpoint is mounted on /mcp; /healthcheck
// responds 200 for liveness probes.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthcheck", healthcheck)
	mux.Handle("/mcp", streamSrv)

	httpSrv := &http.Server{
		Addr:    addr,
		Handler: middleware.Logger(mux),
	}

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr, "endpoint", "/mcp", "dataset", s.datasetName())

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := httpSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// healthcheck is the health probe endpoint handler.
func healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// datasetName returns the dataset name for log attribution.
func (s *Server) datasetName() string {
	if s.src == nil {
		return ""
	}
	return s.src.Name()
}

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolGetEmailCampaignData(),
	}
}

// resultText is a helper that wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
