package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"greed-server/internal/domain"
	"greed-server/internal/engine"
	"greed-server/internal/infrastructure/storage"
	"greed-server/internal/progress"
	"greed-server/internal/server"
	"greed-server/internal/version"
	"greed-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var configPath string
	var dataDir string
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&configPath, "config", "", "Path to YAML config with balance overrides")
	flag.StringVar(&dataDir, "data", "data", "Directory for player profiles")
	flag.Parse()

	logger.Log.Info("Starting Gecko's Greed server...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := domain.NewConfig()
	if configPath != "" {
		loaded, err := domain.LoadConfig(configPath)
		if err != nil {
			logger.Log.Fatal("Config load error: ", err)
		}
		cfg = loaded
		logger.Log.Infof("⚙️  Config loaded from %s", configPath)
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}

	port := os.Getenv("GG_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Хранилище профилей и ядро
	store, err := progress.NewFileStore(dataDir)
	if err != nil {
		logger.Log.Fatal("Storage init error: ", err)
	}

	gameService := engine.NewService(cfg, progress.NewService(store))

	ledger, err := storage.NewLedger(dataDir)
	if err != nil {
		logger.Log.Fatal("Ledger init error: ", err)
	}
	gameService.SetLedger(ledger)

	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	gameService.Stop()
	if err := srv.Shutdown(); err != nil {
		logger.Log.WithError(err).Warn("HTTP shutdown error")
	}

	logger.Log.Info("Done.")
}
