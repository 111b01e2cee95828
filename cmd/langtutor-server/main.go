package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/langtutor/internal/bootstrap"
	"github.com/at-ishikawa/langtutor/internal/config"
	"github.com/at-ishikawa/langtutor/internal/providers"
	"github.com/at-ishikawa/langtutor/internal/server"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "langtutor-server",
		Short:         "Translation, chat and resource service HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	handler, err := newHandler(ctx, app, cfg)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler,
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

// newHandler builds every service from the configuration and registers the resources to release on shutdown
func newHandler(ctx context.Context, app *bootstrap.App, cfg *config.Config) (http.Handler, error) {
	translator, err := providers.TranslationClient(cfg, "")
	if err != nil {
		return nil, err
	}
	translationHandler, err := server.NewTranslationHandler(translator)
	if err != nil {
		return nil, fmt.Errorf("server.NewTranslationHandler > %w", err)
	}

	chatClient, model, err := providers.ChatClient(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := chatClient.(interface{ Close() error }); ok {
		app.AddShutdownHook(func(context.Context) error {
			return closer.Close()
		})
	}
	chatHandler, err := server.NewChatHandler(chatClient, model, cfg.Chat.Timeout())
	if err != nil {
		return nil, fmt.Errorf("server.NewChatHandler > %w", err)
	}

	repository, release, err := providers.ResourceRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.AddShutdownHook(func(context.Context) error {
		release()
		return nil
	})
	resourceHandler, err := server.NewResourceHandler(repository)
	if err != nil {
		return nil, fmt.Errorf("server.NewResourceHandler > %w", err)
	}

	mux := server.NewMux(translationHandler, chatHandler, resourceHandler)
	return server.CORS(h2c.NewHandler(mux, &http2.Server{}), cfg.Server.CORS.AllowedOrigins), nil
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
