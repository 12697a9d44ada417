package main

import (
	"os"

	"github.com/DRSN-tech/catalog-backend/internal/app"
	config "github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

// @title			Catalog API
// @version		1.0
// @description	Каталог товаров и категорий
// @host			localhost:8080
// @BasePath		/api/v1
func main() {
	bootLog := logger.NewWithDefaults()

	cfg, err := config.Load(bootLog)
	if err != nil {
		bootLog.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.LoggerOptions())
	if err != nil {
		bootLog.Errorf(err, "failed to initialize logger")
		os.Exit(1)
	}
	defer log.Sync()

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		_ = log.Sync()
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		_ = log.Sync()
		os.Exit(1)
	}
}
