// Command setup prepares the configured save backend: it creates the postgres
// database when missing and applies the save-store migrations.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/ArcFarmia_Go/internal/bootstrap"
	"github.com/osse101/ArcFarmia_Go/internal/config"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, logger.LogFormatText, cfg.ServiceName, cfg.Version, cfg.Environment))
	ctx := context.Background()

	switch cfg.SaveBackend {
	case config.SaveBackendPostgres:
		if err := ensureDatabase(ctx, cfg); err != nil {
			log.Fatalf("Failed to prepare database: %v", err)
		}
	case config.SaveBackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SavePath), bootstrap.DirPermission); err != nil {
			log.Fatalf("Failed to create save directory: %v", err)
		}
	case config.SaveBackendFile:
		if err := os.MkdirAll(cfg.SavePath, bootstrap.DirPermission); err != nil {
			log.Fatalf("Failed to create save directory: %v", err)
		}
	}

	// Opening the store applies pending migrations
	fmt.Printf("Opening %s save store...\n", cfg.SaveBackend)
	store, err := bootstrap.OpenSaveStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open save store: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Printf("Warning: failed to close save store: %v\n", err)
	}

	fmt.Println("Save store ready.")
}

// ensureDatabase connects to the server's default database and creates DB_NAME if it does not exist
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, serverConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
