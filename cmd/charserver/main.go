// Package main provides the character server binary that exposes the
// character record tools over MCP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/grimward/charkeeper/internal/config"
	"github.com/grimward/charkeeper/internal/game/experience"
	"github.com/grimward/charkeeper/internal/game/roster"
	"github.com/grimward/charkeeper/internal/game/ruleset"
	"github.com/grimward/charkeeper/internal/mcpserver"
	"github.com/grimward/charkeeper/internal/observability"
	"github.com/grimward/charkeeper/internal/server"
	"github.com/grimward/charkeeper/internal/storage"
	"github.com/grimward/charkeeper/internal/storage/memory"
	"github.com/grimward/charkeeper/internal/storage/postgres"
	redisstore "github.com/grimward/charkeeper/internal/storage/redis"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "path to game content directory; overrides config")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting character server",
		zap.String("transport", cfg.Server.Transport),
		zap.String("backend", cfg.Store.Backend),
	)

	// Load game content
	contentStart := time.Now()
	rules, err := ruleset.Load(cfg.Content.Dir)
	if err != nil {
		logger.Fatal("loading game content", zap.Error(err))
	}
	logger.Info("game content loaded",
		zap.String("dir", cfg.Content.Dir),
		zap.Int("classes", rules.ClassCount()),
		zap.Int("starter_kit_items", len(rules.StarterKit())),
		zap.Duration("elapsed", time.Since(contentStart)),
	)

	// Open the character store
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("opening character store", zap.Error(err))
	}

	svc := roster.NewService(store, rules, experience.NewTable(), logger)
	mcpSrv := mcpserver.New(svc, logger)

	lc := server.NewLifecycle(logger)
	lc.Add("character-store", &server.FuncService{
		StartFn: func() error { return nil },
		StopFn:  closeStore,
	})

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	switch cfg.Server.Transport {
	case "stdio":
		lc.Add("mcp-stdio", &server.FuncService{
			StartFn: func() error { return mcpSrv.ServeStdio(runCtx) },
			StopFn:  cancelRun,
		})
	case "http":
		lc.Add("mcp-http", &server.FuncService{
			StartFn: func() error { return mcpSrv.ServeHTTP(cfg.Server.HTTPAddr) },
			StopFn: func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				mcpSrv.Shutdown(shutdownCtx)
			},
		})
	}

	logger.Info("character server ready", zap.Duration("startup", time.Since(start)))
	if err := lc.Run(ctx); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// openStore builds the configured store backend and returns it with its
// shutdown function.
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.CharacterStore, func(), error) {
	switch cfg.Store.Backend {
	case "postgres":
		dbStart := time.Now()
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		return postgres.NewCharacterStore(pool.DB()), pool.Close, nil

	case "redis":
		redisStart := time.Now()
		client, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		logger.Info("redis connected",
			zap.String("addr", cfg.Redis.Addr),
			zap.Duration("elapsed", time.Since(redisStart)),
		)
		closeClient := func() {
			if err := client.Close(); err != nil {
				logger.Warn("closing redis client", zap.Error(err))
			}
		}
		return redisstore.NewCharacterStore(client), closeClient, nil

	case "memory":
		logger.Info("using in-memory store; records are lost on exit")
		return memory.NewStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
