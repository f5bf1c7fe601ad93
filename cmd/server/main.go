package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/nehank20/billsplit/internal/config"
	"github.com/nehank20/billsplit/internal/metrics"
	"github.com/nehank20/billsplit/internal/middleware"
	"github.com/nehank20/billsplit/internal/service"
	"github.com/nehank20/billsplit/pkg/api/apiconnect"
	"github.com/nehank20/billsplit/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	mux := http.NewServeMux()

	// Outermost first: the request ID must exist before anything logs.
	interceptors := connect.WithInterceptors(
		middleware.RequestID(),
		middleware.LoggingInterceptor(nil),
		m.Interceptor(),
	)
	tipPath, tipHandler := apiconnect.NewTipServiceHandler(service.NewTipService(cfg.CurrencyLabel, m), interceptors)
	mux.Handle(tipPath, tipHandler)

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Wrap with h2c so HTTP/2 clients work without TLS
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting",
			"address", server.Addr,
			"procedures", []string{apiconnect.TipServiceCalculateProcedure, apiconnect.TipServiceAdjustPersonCountProcedure},
			"currency_label", cfg.CurrencyLabel,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// corsMiddleware adds CORS headers so a browser front end can call the Connect API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, "+middleware.RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, "+middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
