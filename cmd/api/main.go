// Package main is the entry point for the blogsmith API server.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	_ "blogsmith/docs"
	"blogsmith/internal/config"
	hhttp "blogsmith/internal/handler/http"
	"blogsmith/internal/handler/http/requestid"
	"blogsmith/internal/infra/news"
	"blogsmith/internal/infra/writer"
	"blogsmith/internal/observability/logging"
	"blogsmith/internal/observability/tracing"
	"blogsmith/internal/usecase/generate"
	pkgconfig "blogsmith/pkg/config"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
	maxRequestBody    = 1 << 20 // 1 MiB
)

// @title           Blogsmith API
// @version         1.0
// @description     API for generating SEO-friendly blog posts from recent news coverage.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /
func main() {
	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing := initTracing(logger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("failed to shut down tracing", slog.Any("error", err))
		}
	}()

	style := loadStyle(logger, cfg.StyleFile)

	svc := generate.NewService(
		createNewsFetcher(logger, *cfg),
		createPostWriter(logger, *cfg, style),
	)

	handler := applyMiddleware(logger, setupRoutes(svc))

	runServer(logger, handler, cfg.Port)
}

// initLogger builds the process-wide structured logger and installs it as
// the slog default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initTracing installs the OpenTelemetry tracer provider and returns its
// shutdown function. TRACING_ENABLED=false turns tracing off entirely.
func initTracing(logger *slog.Logger) func(context.Context) error {
	if !pkgconfig.GetEnvBool("TRACING_ENABLED", true) {
		logger.Info("tracing disabled")
		return func(context.Context) error { return nil }
	}

	logger.Info("tracing enabled")
	return tracing.Init("blogsmith")
}

// loadStyle reads the optional writing style profile. Style only shapes the
// prompt, so a missing or broken profile falls back to the defaults instead
// of blocking startup.
func loadStyle(logger *slog.Logger, path string) writer.Style {
	if path == "" {
		return writer.DefaultStyle()
	}

	profile, err := config.LoadStyleConfig(path)
	if err != nil {
		logger.Warn("failed to load style profile, using default style",
			slog.String("path", path),
			slog.Any("error", err))
		return writer.DefaultStyle()
	}

	logger.Info("style profile loaded", slog.String("path", path))

	return writer.StyleFromProfile(
		profile.GetTone(),
		profile.GetAudience(),
		profile.GetLanguage(),
		profile.GetInstructions(),
	)
}

// createNewsFetcher builds the configured news backend. A missing API key is
// a warning only: the key is checked again on every call, so the service can
// start and serve health checks without one.
func createNewsFetcher(logger *slog.Logger, cfg config.Config) generate.NewsFetcher {
	if cfg.NewsProvider == config.NewsProviderNoop {
		logger.Warn("news provider is noop, posts will rely on the model's general knowledge")
		return news.NewNoOp()
	}

	newsCfg, err := news.LoadConfig()
	if err != nil {
		logger.Error("failed to load news configuration", slog.Any("error", err))
		os.Exit(1)
	}

	httpClient := newHTTPClient(newsCfg.Timeout)

	switch cfg.NewsProvider {
	case config.NewsProviderCurrents:
		if newsCfg.APIKey == "" {
			logger.Warn("CURRENTS_API_KEY is not set, generation requests will fail until it is configured")
		}
		return news.NewCurrentsClient(newsCfg, httpClient)
	case config.NewsProviderRSS:
		return news.NewGoogleNewsClient(newsCfg, httpClient)
	default:
		// config.Load rejects unknown provider names, so this is unreachable.
		logger.Error("unknown news provider", slog.String("provider", cfg.NewsProvider))
		os.Exit(1)
		return nil
	}
}

// createPostWriter builds the configured AI writer backend. As with the news
// backend, a missing API key only logs a warning at startup.
func createPostWriter(logger *slog.Logger, cfg config.Config, style writer.Style) generate.PostWriter {
	switch cfg.WriterProvider {
	case config.WriterProviderOpenAI:
		writerCfg, err := writer.LoadOpenAIConfig()
		if err != nil {
			logger.Error("failed to load writer configuration", slog.Any("error", err))
			os.Exit(1)
		}
		if writerCfg.APIKey == "" {
			logger.Warn("OPENAI_API_KEY is not set, generation requests will fail until it is configured")
		}
		return writer.NewOpenAIWriter(writerCfg, style)

	case config.WriterProviderClaude:
		writerCfg, err := writer.LoadClaudeConfig()
		if err != nil {
			logger.Error("failed to load writer configuration", slog.Any("error", err))
			os.Exit(1)
		}
		if writerCfg.APIKey == "" {
			logger.Warn("ANTHROPIC_API_KEY is not set, generation requests will fail until it is configured")
		}
		return writer.NewClaudeWriter(writerCfg, style)

	case config.WriterProviderNoop:
		logger.Warn("writer provider is noop, serving canned posts")
		return writer.NewNoopWriter()

	default:
		// config.Load rejects unknown provider names, so this is unreachable.
		logger.Error("unknown writer provider", slog.String("provider", cfg.WriterProvider))
		os.Exit(1)
		return nil
	}
}

// newHTTPClient builds the outbound HTTP client shared by the news backends.
// The timeout bounds the whole exchange including reading the body.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}

// setupRoutes registers all HTTP routes on a fresh mux.
func setupRoutes(svc hhttp.GenerateService) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", hhttp.RootHandler{})
	mux.Handle("GET /heartbeat", hhttp.HeartbeatHandler{})
	mux.Handle("POST /generate-post", hhttp.GenerateHandler{Svc: svc})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// applyMiddleware wraps the handler with the shared middleware chain.
// Order from outermost to innermost: request ID, tracing, panic recovery,
// request logging, body size limit, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Applied in reverse order so the last wrap runs first.
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(maxRequestBody)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and blocks until it exits. SIGINT and
// SIGTERM trigger a graceful shutdown that waits for in-flight requests up
// to shutdownTimeout.
func runServer(logger *slog.Logger, handler http.Handler, port int) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped")
}
