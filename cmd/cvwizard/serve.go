package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"cv-builder/internal/config"
	"cv-builder/internal/server"
	"cv-builder/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CV wizard HTTP API server",
	Long:  "Starts the REST API. Sessions persist to the file store under the data directory, or to PostgreSQL when DATABASE_URL is set.",
	RunE:  runServe,
}

var (
	servePort    int
	serveDataDir string
	serveDBURL   string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (overrides CVWIZARD_PORT)")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "Snapshot directory (overrides CVWIZARD_DATA_DIR)")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL connection URL (overrides DATABASE_URL)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDataDir != "" {
		cfg.DataDir = serveDataDir
	}
	if serveDBURL != "" {
		cfg.DatabaseURL = serveDBURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st, cleanup, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(server.Config{
		Port:         cfg.Port,
		Store:        st,
		SaveDebounce: cfg.SaveDebounce,
		UndoDepth:    cfg.UndoDepth,
		ChromePath:   cfg.ChromePath,
	})
	return srv.Start()
}

// openStore selects Postgres when a database URL is configured, the file
// store otherwise.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		log.Printf("[store] using PostgreSQL persistence")
		return pg, pg.Close, nil
	}

	fs, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open data directory: %w", err)
	}
	log.Printf("[store] using file persistence in %s", cfg.DataDir)
	return fs, func() {}, nil
}
