package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/assistant"
	"github.com/jmoreau/formadvisor/internal/assistant/gemini"
	"github.com/jmoreau/formadvisor/internal/catalog"
	"github.com/jmoreau/formadvisor/internal/logger"
	"github.com/jmoreau/formadvisor/internal/matching"
	"github.com/jmoreau/formadvisor/internal/secrets"
	"github.com/jmoreau/formadvisor/internal/server"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recommendation HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", "", "listen address for the HTTP server")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting formadvisor", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	courses := catalog.Load(config.ContentDir, logger)

	strategy, err := matching.New(config.matchingConfig(), logger)
	if err != nil {
		logger.Fatal("building matching strategy", zap.Error(err))
	}

	responder, err := newResponder(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("AI responder unavailable, using canned replies", zap.Error(err))
		responder = assistant.Canned{}
	}

	serverCfg := server.Config{}
	if config.Server != nil {
		serverCfg.Listen = config.Server.Listen
		serverCfg.CORSOrigins = config.Server.CORSOrigins
	}

	srv := server.New(serverCfg, courses, strategy, responder, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("http server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down", zap.String("reason", "signal received"))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Fatal("shutdown failed", zap.Error(err))
		}
	}
}

// newResponder builds the conversational backend: canned replies unless
// AI is enabled and a provider can be configured.
func newResponder(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (assistant.Responder, error) {
	if cfg == nil || !cfg.Enabled {
		return assistant.Canned{}, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	respLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewResponder(generator, cfg.Gemini.MaxRetries, respLogger), nil
}
