package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"pptmcp/server/internal/config"
	"pptmcp/server/internal/mcpserver"
	"pptmcp/server/internal/rpc"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tool server",
		Long: `Serve the tool catalog over the configured transport:

  stdio    MCP over stdin/stdout (default)
  sse      MCP server-sent events at /sse and /message
  http     MCP streamable HTTP at /mcp
  jsonrpc  newline-delimited JSON-RPC over stdin/stdout`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	flags := cmd.Flags()
	flags.String("transport", config.TransportStdio, "stdio, sse, http or jsonrpc")
	flags.String("addr", config.DefaultAddr, "listen address for the HTTP transports")
	flags.String("base-url", "", "public base URL advertised by the SSE transport")
	flags.String("auth-token", "", "bearer token required by the HTTP transports")
	flags.StringSlice("cors-origin", nil, "allowed CORS origin for the HTTP transports (repeatable, * for any)")
	flags.Duration("shutdown-timeout", config.DefaultShutdownTimeout, "grace period for HTTP shutdown")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	cfg := a.cfg
	a.logger.Info("pptmcp.starting",
		"version", version,
		"transport", cfg.Transport,
		"storage_root", cfg.StorageRoot,
		"serialize_edits", cfg.SerializeEdits,
	)

	if cfg.Transport == config.TransportJSONRPC {
		server := rpc.NewServer(rpc.APIVersion, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger.With("component", "rpc"))
		rpc.RegisterOperations(server, a.dispatcher, version)
		if err := server.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	mcp, err := mcpserver.New(a.dispatcher, version, a.logger.With("component", "mcp"))
	if err != nil {
		return err
	}
	if cfg.Transport == config.TransportStdio {
		return mcpserver.ServeStdio(ctx, mcp, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger)
	}
	host, err := mcpserver.NewHTTPHost(mcp, mcpserver.HTTPOptions{
		Transport:       cfg.Transport,
		Addr:            cfg.Addr,
		BaseURL:         cfg.BaseURL,
		AuthToken:       cfg.AuthToken,
		CORSOrigins:     cfg.CORSOrigins,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, a.logger.With("component", "http"))
	if err != nil {
		return err
	}
	return host.Run(ctx)
}
