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

// Command campmcp starts a Model Context Protocol server that serves mock
// email campaign data to AI agents through the get_email_campaign_data
// tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/trace"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rusq/osenv/v2"

	"github.com/rusq/campmcp/internal/mcp"
	"github.com/rusq/campmcp/source"
)

var build = "dev"

const (
	envData      = "CAMPMCP_DATA"
	envTransport = "CAMPMCP_TRANSPORT"
	envListen    = "CAMPMCP_LISTEN"
)

// secrets defines the names of the supported environment files.
// Inexperienced Windows users might have bad experience trying to create
// .env file with the notepad as it will battle for having the "txt"
// extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

func main() {
	loadSecrets(secrets)

	p, err := parseCmdLine(os.Args[1:])
	if err != nil {
		slog.Error("invalid parameters", "error", err)
		os.Exit(2)
	}
	if p.printVersion {
		fmt.Println(build)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, p); err != nil {
		slog.Error("campmcp: terminated", "error", err)
		os.Exit(1)
	}
}

// run starts the MCP server with the given parameters.
func run(ctx context.Context, p params) error {
	lg, logStop, err := initLog(p.LogFile, p.LogJSON, p.Verbose)
	if err != nil {
		return err
	}
	defer logStop()
	defer initTrace(p.TraceFile)()

	ctx, task := trace.NewTask(ctx, "main.run")
	defer task.End()
	trace.Logf(ctx, "info", "params: %+v", p)

	src, err := source.Load(ctx, p.DataFile)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	srv := mcp.New(mcp.WithSource(src), mcp.WithLogger(lg))

	switch mcp.Transport(p.Transport) {
	case mcp.TransportStdio:
		return srv.ServeStdio(ctx)
	case mcp.TransportHTTP:
		return srv.ServeHTTP(ctx, p.ListenAddr)
	default:
		return fmt.Errorf("unknown transport %q (use %q or %q)", p.Transport, mcp.TransportStdio, mcp.TransportHTTP)
	}
}

// loadSecrets loads the environment from the files in the secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// parseCmdLine parses the command line arguments.
func parseCmdLine(args []string) (params, error) {
	fs := flag.NewFlagSet("campmcp", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			flag.CommandLine.Output(),
			"Campmcp %s - MCP server for mock email campaign data.\n\n"+
				"The server exposes the get_email_campaign_data tool over the stdio\n"+
				"or the Streamable HTTP transport.\n\n"+
				"Usage:  %s [flags]\n\nflags:\n",
			build, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	var p params
	fs.StringVar(&p.DataFile, "data", osenv.Value(envData, source.DefaultPath()), "`path` to the campaign dataset (environment: "+envData+")")
	fs.StringVar(&p.Transport, "transport", osenv.Value(envTransport, "stdio"), "MCP `transport`: \"stdio\" or \"http\" (environment: "+envTransport+")")
	fs.StringVar(&p.ListenAddr, "listen", osenv.Value(envListen, "127.0.0.1:8483"), "`address` to listen on when -transport=http (environment: "+envListen+")")

	fs.StringVar(&p.LogFile, "log", osenv.Value("LOG_FILE", ""), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&p.LogJSON, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.StringVar(&p.TraceFile, "trace", osenv.Value("TRACE_FILE", ""), "trace `file` (optional)")
	fs.BoolVar(&p.Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")
	fs.BoolVar(&p.printVersion, "V", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return p, err
	}
	p.Transport = strings.ToLower(p.Transport)

	return p, p.validate()
}
