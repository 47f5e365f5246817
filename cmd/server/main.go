package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/api"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/cache"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/config"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/logger"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store/xpgx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.Init(); err != nil {
		panic(err)
	}

	zapLogger, err := config.NewLogger()
	if err != nil {
		panic(err)
	}
	logger.Init(zapLogger)
	defer func() { _ = zapLogger.Sync() }()

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperKeyDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	st := store.NewStore(pool)

	var menuCache cache.Cache
	if addr := viper.GetString(constants.ViperKeyRedisAddr); addr != "" {
		redisCache, err := cache.NewRedis(ctx, addr, viper.GetString(constants.ViperKeyRedisPassword), 0)
		if err != nil {
			logger.Fatal(ctx, err)
		}
		defer redisCache.Close()
		menuCache = redisCache
	} else {
		menuCache = cache.NewMemory()
	}

	svc, err := api.NewAPIService(st, menuCache)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperKeyListenAddr))

	<-ctx.Done()
	logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err)
	}
}
