package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	void "github.com/Virinas-code/atmospheremc-void"
	"github.com/Virinas-code/atmospheremc-void/session"
	"github.com/Virinas-code/atmospheremc-void/util"
	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath  string
		addr        string
		logLevel    string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "void",
		Short: "Minecraft server list front-end",
		Long: `Void answers the server list ping of Minecraft: Java Edition clients,
including the legacy ping of old clients. Logins are refused.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := util.LoadOpts(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("addr") {
				opts.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				opts.LogLevel = logLevel
			}
			if cmd.Flags().Changed("metrics-addr") {
				opts.MetricsAddr = metricsAddr
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return run(ctx, util.NewLogger(os.Stderr, opts.LogLevel), opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a .toml or .yaml configuration file")
	cmd.Flags().StringVar(&addr, "addr", "", "Address to listen on")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn or error")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Address to serve Prometheus metrics on")
	return cmd
}

func run(ctx context.Context, logger *slog.Logger, opts *util.Opts) error {
	var metrics *session.Metrics
	if opts.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics = session.NewMetrics(reg)
		go serveMetrics(logger, opts.MetricsAddr, reg)
	}

	server := void.New(logger, opts, nil, metrics)
	if err := server.Listen(); err != nil {
		return err
	}
	return server.Serve(ctx)
}

func serveMetrics(logger *slog.Logger, addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to serve metrics", "err", err)
	}
}
