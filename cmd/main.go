package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/config"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/dto"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/endpoints"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/service"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/transport"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/logger"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/serpapi"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/toolregistry"
	"github.com/mark3labs/mcp-go/mcp"
)

func main() {
	cfg, err := config.InitConfig(".env")
	if err != nil {
		slog.Error("cannot load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cancel, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cancel context.CancelFunc, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...",
		slog.Int("port", cfg.HTTP.Port),
		slog.String("mcp_path", cfg.HTTP.MCPPath))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// upstream client
	client := serpapi.NewClient(serpapi.Config{
		BaseURL:    cfg.SerpAPI.BaseURL,
		APIKey:     cfg.SerpAPI.APIKey,
		Language:   cfg.SerpAPI.Language,
		Timeout:    cfg.SerpAPI.Timeout,
		MaxRetries: cfg.SerpAPI.MaxRetries,
		RetryDelay: cfg.SerpAPI.RetryDelay,
	})

	registry := toolregistry.NewRegistry()

	// service
	flightService := service.NewFlightService(client)
	serverService := service.NewServerService(registry, cfg.Server.Name, cfg.Server.Version)

	// endpoint
	toolEndpoint := endpoints.MakeToolEndpoint(flightService, serverService)
	endpoints.RegisterTools(registry, toolEndpoint)

	slog.InfoContext(ctx, "tools registered", slog.Any("tools", registry.Names()))

	return endpoints.Endpoints{
		ToolEndpoint: toolEndpoint,
		RPCEndpoint: endpoints.MakeRPCEndpoint(registry, mcp.Implementation{
			Name:    cfg.Server.Name,
			Version: cfg.Server.Version,
		}),
	}
}
