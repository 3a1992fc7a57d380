package main

import (
	"log"
	"net/http"

	"github.com/handshou/rainmap-go/internal/api"
	"github.com/handshou/rainmap-go/internal/boundary"
	"github.com/handshou/rainmap-go/internal/config"
	"github.com/handshou/rainmap-go/internal/database"
	"github.com/handshou/rainmap-go/internal/handler"
	"github.com/handshou/rainmap-go/internal/provider"
	"github.com/handshou/rainmap-go/internal/repository"
	"github.com/handshou/rainmap-go/internal/scheduler"
	"github.com/handshou/rainmap-go/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	repo := repository.NewReadingRepository(db)

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	rainProvider := provider.NewRealtimeProvider(httpClient, cfg.ProviderURL)

	rainfallSvc := service.NewRainfallService(repo, rainProvider)
	heatmapSvc := service.NewHeatmapService(repo, boundary.Singapore, cfg.GridResolution)

	sched := scheduler.New(rainfallSvc, cfg.FetchInterval, cfg.Retention)
	if err := sched.Start(); err != nil {
		log.Fatal("Failed to start scheduler:", err)
	}
	defer sched.Stop()

	router := api.SetupRouter(cfg,
		handler.NewRainfallHandler(rainfallSvc),
		handler.NewHeatmapHandler(heatmapSvc),
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
