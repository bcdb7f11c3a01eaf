package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/powerctl/nutctl/internal/auth"
	"github.com/powerctl/nutctl/internal/config"
	"github.com/powerctl/nutctl/internal/nut"
	"github.com/powerctl/nutctl/internal/safety"
	"github.com/powerctl/nutctl/internal/tools"
	"github.com/powerctl/nutctl/internal/ups"
)

var configFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose UPS control and metrics as MCP tools over HTTP",
	Long: `Start an MCP (Model Context Protocol) server exposing ups_load_on,
ups_load_off, and ups_usage as tools. Connection defaults, the auth
token, audit logging, and UPS-name filtering come from the YAML config
file and NUTCTL_* environment variables; connection flags override the
configured NUT defaults when set.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configFlag, "config", "", "Path to YAML config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadServeConfig()
	config.ApplyEnvOverrides(cfg)
	applyFlagOverrides(cfg)

	tokenBefore := cfg.Server.AuthToken
	token, err := config.EnsureAuthToken(cfg)
	if err != nil {
		log.Printf("warning: could not generate auth token: %v; running without authentication", err)
	} else if tokenBefore == "" {
		log.Printf("generated auth token (set NUTCTL_AUTH_TOKEN to persist): %s", token)
	}

	// Open audit log writer if enabled.
	var auditLogger *safety.AuditLogger
	if cfg.Audit.Enabled {
		f, err := os.OpenFile(cfg.Audit.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			log.Printf("warning: could not open audit log %q: %v; audit logging disabled", cfg.Audit.LogPath, err)
		} else {
			auditLogger = safety.NewAuditLogger(f)
			defer f.Close()
		}
	}

	filter := safety.NewFilter(cfg.Filter.Allowlist, cfg.Filter.Denylist)
	confirm := safety.NewConfirmationTracker(ups.DestructiveTools)

	// Each tool call dials its own session; see ups.SessionController.
	nutCfg := nut.Config{
		Host:     cfg.NUT.Host,
		Port:     cfg.NUT.Port,
		Username: cfg.NUT.Username,
		Password: cfg.NUT.Password,
		Debug:    debugFlag,
	}
	ctrl := ups.NewSessionController(func() (nut.Session, error) {
		return nut.Dial(nutCfg)
	})

	mcpServer := server.NewMCPServer(
		"nutctl",
		"1.0.0",
		server.WithToolCapabilities(false),
	)
	tools.RegisterAll(mcpServer, ups.UPSTools(ctrl, filter, confirm, auditLogger, cfg.NUT.UPSName))

	httpHandler := server.NewStreamableHTTPServer(mcpServer)
	authMiddleware := auth.NewAuthMiddleware(cfg.Server.AuthToken)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           authMiddleware(httpHandler),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("nutctl serving MCP on %s (NUT server %s:%d)", addr, cfg.NUT.Host, cfg.NUT.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-stop:
	}

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
	log.Println("server stopped")
	return nil
}

// loadServeConfig reads the config file named by --config, falling back
// to defaults when no file is given or it cannot be read.
func loadServeConfig() *config.Config {
	if configFlag == "" {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		log.Printf("could not load config from %q (%v), using defaults", configFlag, err)
		return config.DefaultConfig()
	}

	log.Printf("loaded config from %q", configFlag)
	return cfg
}

// applyFlagOverrides lets the global connection flags take precedence
// over the configured NUT defaults.
func applyFlagOverrides(cfg *config.Config) {
	if serverFlag != "" {
		cfg.NUT.Host = serverFlag
	}
	if portFlag > 0 {
		cfg.NUT.Port = portFlag
	}
	if upsNameFlag != "" {
		cfg.NUT.UPSName = upsNameFlag
	}
	if usernameFlag != "" {
		cfg.NUT.Username = usernameFlag
	}
	if passwordFlag != "" {
		cfg.NUT.Password = passwordFlag
	}
}
