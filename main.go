package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"showmarket/api"
	"showmarket/config"
	"showmarket/logging"
	"showmarket/server"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var (
		serve      = flag.Bool("serve", false, "Run the JSON proxy server instead of the terminal UI")
		configPath = flag.String("config", "showmarket.yaml", "Path to the YAML config file")
		envPath    = flag.String("env", ".env", "Path to a dotenv file loaded before config")
		addr       = flag.String("addr", "", "Listen address for -serve (overrides config)")
	)
	flag.Parse()

	if err := config.LoadDotEnvFile(*envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *envPath, err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if *serve {
		err = runServer(cfg)
	} else {
		err = runTUI(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCatalog(cfg *config.Config, logger *slog.Logger) *api.Client {
	return api.NewClient(
		cfg.Upstream.BaseURL,
		&http.Client{Timeout: cfg.Upstream.Timeout},
		api.WithLogger(logger),
		api.WithUserAgent(cfg.Upstream.UserAgent),
	)
}

func runServer(cfg *config.Config) error {
	logger, err := logging.New(os.Stderr, logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(newCatalog(cfg, logger), logger, server.Options{
		Addr:          cfg.Server.Addr,
		AllowedOrigin: cfg.Server.AllowedOrigin,
		ReadTimeout:   cfg.Server.ReadTimeout,
		WriteTimeout:  cfg.Server.WriteTimeout,
		WindowSize:    cfg.Pager.WindowSize,
	})
	logger.Info("proxy listening", "addr", cfg.Server.Addr, "upstream", cfg.Upstream.BaseURL)
	if err := srv.Run(ctx); err != nil {
		return err
	}
	logger.Info("proxy stopped")
	return nil
}

func runTUI(cfg *config.Config) error {
	// The terminal owns stdout and stderr while the UI runs.
	var w io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, closeLog, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer closeLog()
		w = f
	}
	logger, err := logging.New(w, logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(Options{
			Catalog:    newCatalog(cfg, logger),
			Logger:     logger,
			WindowSize: cfg.Pager.WindowSize,
		}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
