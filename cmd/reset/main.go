// Command reset deletes the local save so the next start begins from defaults.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/osse101/ArcFarmia_Go/internal/bootstrap"
	"github.com/osse101/ArcFarmia_Go/internal/config"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

func main() {
	key := flag.String("key", "", "save key to delete (defaults to SAVE_KEY)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, logger.LogFormatText, cfg.ServiceName, cfg.Version, cfg.Environment))
	if *key == "" {
		*key = cfg.SaveKey
	}

	ctx := context.Background()
	store, err := bootstrap.OpenSaveStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open save store: %v", err)
	}
	defer store.Close()

	log.Printf("Deleting save %q from the %s store...\n", *key, cfg.SaveBackend)
	if err := store.Delete(ctx, *key); err != nil {
		log.Fatalf("Failed to delete save: %v", err)
	}

	fmt.Println("\n✅ Local save reset complete!")
}
