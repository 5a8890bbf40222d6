package mcpserver

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"

	"pptmcp/server/internal/config"
	"pptmcp/server/internal/logging"
)

const (
	HealthPath  = "/healthz"
	SSEPath     = "/sse"
	MessagePath = "/message"
	MCPPath     = "/mcp"
)

// ServeStdio speaks MCP over in/out until in closes or ctx is done.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.Nop()
	}
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))
	logger.Info("mcp.stdio_listening")
	err := stdio.Listen(ctx, in, out)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

type HTTPOptions struct {
	// Transport is config.TransportSSE or config.TransportHTTP.
	Transport       string
	Addr            string
	BaseURL         string
	AuthToken       string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// HTTPHost serves one MCP HTTP transport plus a health check on gin.
type HTTPHost struct {
	opts    HTTPOptions
	engine  *gin.Engine
	logger  *slog.Logger
	closers map[string]gfshutdown.Operation
}

func NewHTTPHost(s *server.MCPServer, opts HTTPOptions, logger *slog.Logger) (*HTTPHost, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = config.DefaultShutdownTimeout
	}
	gin.SetMode(gin.ReleaseMode)
	h := &HTTPHost{
		opts:    opts,
		engine:  gin.New(),
		logger:  logger,
		closers: map[string]gfshutdown.Operation{},
	}
	h.engine.Use(gin.Recovery())
	h.engine.Use(h.loggingMiddleware())
	if len(opts.CORSOrigins) > 0 {
		h.engine.Use(corsMiddleware(opts.CORSOrigins))
	}

	h.engine.GET(HealthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "name": ServerName, "transport": opts.Transport})
	})

	group := h.engine.Group("/")
	if opts.AuthToken != "" {
		group.Use(h.authMiddleware())
	}
	switch opts.Transport {
	case config.TransportSSE:
		sse := server.NewSSEServer(s,
			server.WithBaseURL(baseURL(opts)),
			server.WithSSEEndpoint(SSEPath),
			server.WithMessageEndpoint(MessagePath),
		)
		group.GET(SSEPath, gin.WrapH(sse.SSEHandler()))
		group.POST(MessagePath, gin.WrapH(sse.MessageHandler()))
		h.closers["mcp-sse"] = sse.Shutdown
	case config.TransportHTTP:
		streamable := server.NewStreamableHTTPServer(s, server.WithEndpointPath(MCPPath))
		group.Any(MCPPath, gin.WrapH(streamable))
		h.closers["mcp-http"] = streamable.Shutdown
	default:
		return nil, fmt.Errorf("transport %q is not served over HTTP", opts.Transport)
	}
	return h, nil
}

func (h *HTTPHost) Handler() http.Handler {
	return h.engine
}

// Run listens on the configured address and blocks until a shutdown signal
// has been handled or the listener fails.
func (h *HTTPHost) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              h.opts.Addr,
		Handler:           h.engine,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("http.listening", "addr", h.opts.Addr, "transport", h.opts.Transport)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	operations := map[string]gfshutdown.Operation{"http-server": srv.Shutdown}
	for name, op := range h.closers {
		operations[name] = op
	}
	// Shutdown runs after the signal has already cancelled ctx.
	wait := gfshutdown.GracefulShutdown(context.WithoutCancel(ctx), h.opts.ShutdownTimeout, operations)
	select {
	case err := <-errCh:
		h.logger.Error("http.listen_failed", "addr", h.opts.Addr, "error", err.Error())
		return fmt.Errorf("listen on %s: %w", h.opts.Addr, err)
	case code := <-wait:
		h.logger.Info("http.stopped", "exit_code", code)
		if code != 0 {
			return fmt.Errorf("shutdown finished with exit code %d", code)
		}
		return nil
	}
}

func (h *HTTPHost) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Debug("http.request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

func (h *HTTPHost) authMiddleware() gin.HandlerFunc {
	want := []byte("Bearer " + h.opts.AuthToken)
	return func(c *gin.Context) {
		got := c.GetHeader("Authorization")
		if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			h.logger.Warn("http.unauthorized",
				"path", c.Request.URL.Path,
				"authorization", logging.RedactHeader("Authorization", got),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Mcp-Session-Id"},
		ExposeHeaders: []string{"Mcp-Session-Id"},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = origins
	return cors.New(cfg)
}

func baseURL(opts HTTPOptions) string {
	if opts.BaseURL != "" {
		return strings.TrimRight(opts.BaseURL, "/")
	}
	if strings.HasPrefix(opts.Addr, ":") {
		return "http://localhost" + opts.Addr
	}
	return "http://" + opts.Addr
}
