package main

import (
	"context"
	"log"
	"time"

	"cinevault/cmd"
	"cinevault/internal/data/memstore"
	"cinevault/internal/data/repository"
	"cinevault/internal/wire"
	"cinevault/pkg/database"
	"cinevault/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production defaults.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("strict_sort", config.Query.StrictSort),
	)

	repos, closeStore, err := openStore(config, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err), zap.String("driver", config.Store.Driver))
	}
	defer closeStore()

	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}

// openStore connects the configured driver. The postgres driver applies the
// schema before serving.
func openStore(config *utils.Config, logger *zap.Logger) (*repository.Repository, func(), error) {
	if config.Store.Driver == utils.StoreDriverMemory {
		logger.Warn("Using in-memory store, data is lost on restart")
		return memstore.New(logger).Repository(), func() {}, nil
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	logger.Info("Database connected successfully",
		zap.String("host", config.Database.Host),
		zap.String("database", config.Database.Name),
	)

	return repository.NewRepository(db, logger), db.Close, nil
}
