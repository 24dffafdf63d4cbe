package cmd

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/EldarTem/inventoryTrack/internal/core/container"
	"github.com/EldarTem/inventoryTrack/internal/core/logger"
	"github.com/EldarTem/inventoryTrack/internal/core/routes"
	"github.com/EldarTem/inventoryTrack/internal/middleware"
	"github.com/EldarTem/inventoryTrack/internal/storage"
)

const version = "1.0.0"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the back-office client core.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve()
	},
}

var resetStateCmd = &cobra.Command{
	Use:   "reset-state",
	Short: "Erase the locally persisted session and stock-count state.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := storage.NewFileStore(stateDir())
		if err != nil {
			return fmt.Errorf("open state directory: %w", err)
		}
		for _, key := range []string{storage.KeySession, storage.KeyInventories, storage.KeyInventoryItems} {
			if err := store.Erase(key); err != nil {
				return fmt.Errorf("reset state: %w", err)
			}
		}
		return nil
	},
}

func serve() error {
	log := logger.NewLogger()
	defer func() { _ = log.Sync() }()

	apiBaseURL := envOr("API_BASE_URL", "http://localhost:8080/api")
	appContainer, err := container.NewAppContainer(apiBaseURL, stateDir(), log)
	if err != nil {
		return fmt.Errorf("build container: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), middleware.RecoveryMiddleware(log))
	routes.RegisterRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router, version)

	addr := envOr("LISTEN_ADDR", "127.0.0.1:8085")
	log.Info("client core listening on " + addr)
	return router.Run(addr)
}

func stateDir() string {
	return envOr("STATE_DIR", ".inventorytrack")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Execute runs the CLI. A bare invocation serves, matching how the
// browser client started straight into the app shell.
func Execute() {
	rootCmd := &cobra.Command{
		Use:   "inventorytrack",
		Short: "Warehouse back-office client core",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetStateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
