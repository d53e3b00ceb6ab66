// ABOUTME: Entry point for the bizmsg-gateway webhook server.
// ABOUTME: Wires config, state store, API clients, bot, and the HTTP router.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/2389/bizmsg-gateway/internal/bizmsg"
	"github.com/2389/bizmsg-gateway/internal/bot"
	"github.com/2389/bizmsg-gateway/internal/config"
	"github.com/2389/bizmsg-gateway/internal/state"
	"github.com/2389/bizmsg-gateway/internal/translate"
	"github.com/2389/bizmsg-gateway/internal/webhook"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
 _     _
| |__ (_)_____ __ ___  ___  __ _
| '_ \| |_  / '_ ' _ \/ __|/ _' |
| |_) | |/ /| | | | | \__ \ (_| |
|_.__/|_/___|_| |_| |_|___/\__, |
                           |___/
`

// getConfigPath returns the path to the gateway config file.
// Priority: BIZMSG_CONFIG env var > XDG_CONFIG_HOME/bizmsg/gateway.yaml > ~/.config/bizmsg/gateway.yaml
func getConfigPath() string {
	if envPath := os.Getenv("BIZMSG_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "gateway.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "bizmsg", "gateway.yaml")
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: bizmsg-gateway <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve      Start the webhook server")
		fmt.Println("  version    Print the version")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)
	slog.SetDefault(logger)

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Config:  %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:    %s\n", cfg.Server.HTTPAddr)
	green.Print("    ▶ ")
	fmt.Printf("Webhook: %s\n", cfg.Server.WebhookPath)
	green.Print("    ▶ ")
	fmt.Printf("State:   %s\n", cfg.State.Backend)
	fmt.Println()

	logger.Info("starting bizmsg-gateway",
		"config", configPath,
		"http_addr", cfg.Server.HTTPAddr,
		"state_backend", cfg.State.Backend,
	)

	// State store
	store, err := newStateStore(cfg)
	if err != nil {
		return fmt.Errorf("creating state store: %w", err)
	}
	defer store.Close()

	// Outbound API client
	client, err := bizmsg.NewClient(ctx, bizmsg.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}

	// Translation client
	translator, err := translate.NewClient(ctx, translate.ClientConfig{
		BaseURL: cfg.Translate.BaseURL,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("creating translation client: %w", err)
	}

	// Bot and router
	agent := bot.New(bot.Config{
		Sender:     client,
		Translator: translator,
		Profiles:   profilesFromConfig(cfg.Agent),
		Policy:     bot.FailurePolicy(cfg.Agent.FailurePolicy),
		Logger:     logger,
	})

	router := webhook.NewRouter(webhook.RouterConfig{
		State:    store,
		Agent:    agent,
		Profiles: agent.Profiles(),
		Logger:   logger,
	})

	mux := http.NewServeMux()
	mux.Handle(cfg.Server.WebhookPath, webhook.NewHandler(router, cfg.Server.PropagateFailures, logger))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving HTTP: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newStateStore(cfg *config.Config) (state.Store, error) {
	switch cfg.State.Backend {
	case "sqlite":
		return state.NewSQLite(cfg.State.Path)
	default:
		return state.NewMemory(cfg.State.DedupeTTL, cfg.State.DedupeMaxSize), nil
	}
}

func profilesFromConfig(cfg config.AgentConfig) bot.Profiles {
	profiles := bot.DefaultProfiles()
	if cfg.BotName != "" {
		profiles.BotName = cfg.BotName
	}
	if cfg.BotAvatar != "" {
		profiles.BotAvatar = cfg.BotAvatar
	}
	if cfg.LiveAgentName != "" {
		profiles.HumanName = cfg.LiveAgentName
	}
	if cfg.LiveAgentAvatar != "" {
		profiles.HumanAvatar = cfg.LiveAgentAvatar
	}
	return profiles
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = &colorHandler{
			level: level,
		}
	}

	return slog.New(handler)
}

// colorHandler provides colorized log output with thread-safe writes.
type colorHandler struct {
	mu     sync.Mutex
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	buf.WriteString(color.HiBlackString(r.Time.Format("15:04:05") + " "))

	switch r.Level {
	case slog.LevelDebug:
		buf.WriteString(color.MagentaString("DBG "))
	case slog.LevelInfo:
		buf.WriteString(color.CyanString("INF "))
	case slog.LevelWarn:
		buf.WriteString(color.YellowString("WRN "))
	case slog.LevelError:
		buf.WriteString(color.New(color.FgRed, color.Bold).Sprint("ERR "))
	default:
		buf.WriteString("??? ")
	}

	buf.WriteString(r.Message)

	// Handler-level attrs first (from WithAttrs)
	for _, a := range h.attrs {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
	}

	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	fmt.Print(buf.String())
	return nil
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &colorHandler{
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups), len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups = append(newGroups, name)
	return &colorHandler{
		level:  h.level,
		attrs:  h.attrs,
		groups: newGroups,
	}
}
