package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/comodds/protoslip/internal/catalog"
	"github.com/comodds/protoslip/internal/generator"
	"github.com/comodds/protoslip/internal/pkg/config"
	"github.com/comodds/protoslip/internal/pkg/logging"
	"github.com/comodds/protoslip/internal/pkg/models"
	"github.com/comodds/protoslip/internal/server"
	"github.com/comodds/protoslip/internal/server/handlers"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	fmt.Println("Starting Slip Service...")

	_ = godotenv.Load()

	var configPath string
	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}
	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.Parse()

	fmt.Printf("Loading config from: %s\n", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.Setup(&cfg.Logging, "slip-service")
	slog.Info("Config loaded", "catalog_source", cfg.Catalog.Source, "catalog_path", cfg.Catalog.Path)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	matches, err := loadCatalog(ctx, cfg)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		log.Fatalf("slip-service: failed to load catalog: %v", err)
	}
	slog.Info("Catalog loaded", "matches", len(matches))

	store := catalog.NewStore()
	store.Replace(matches)

	if cfg.Generator.Seed != 0 {
		slog.Info("Using fixed generator seed", "seed", cfg.Generator.Seed)
	}
	var seedCounter int64

	handlers.SetServiceName("slip-service")
	handlers.SetCatalogInfoFunc(func() (int, time.Time) {
		return store.Len(), store.LoadedAt()
	})
	handlers.SetGetMatchesFunc(store.Snapshot)
	handlers.SetGenerateFunc(func(req generator.Request) (*models.Combination, error) {
		if req.Stake == 0 {
			req.Stake = cfg.Generator.DefaultStake
		}
		// Each call gets its own generator so concurrent requests never
		// share a random source.
		var rng *rand.Rand
		if cfg.Generator.Seed != 0 {
			rng = rand.New(rand.NewSource(cfg.Generator.Seed + atomic.AddInt64(&seedCounter, 1)))
		}
		return generator.New(rng).Generate(store.Snapshot(), req)
	})

	server.Run(ctx, cfg.Server.Addr, "slip-service", cfg.Server.ReadHeaderTimeout)

	<-ctx.Done()
	slog.Info("Shutting down")
}

func loadCatalog(ctx context.Context, cfg *config.Config) ([]models.Match, error) {
	switch cfg.Catalog.Source {
	case "sqlite":
		return catalog.LoadSQLite(ctx, cfg.Catalog.Path)
	default:
		return catalog.LoadFile(cfg.Catalog.Path)
	}
}
