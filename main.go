package main

import (
	"net/http"
	"os"

	"energy-dashboard/config"
	"energy-dashboard/dataset"
	"energy-dashboard/models"
	"energy-dashboard/server"
	"energy-dashboard/services"
	"energy-dashboard/storage"
	"energy-dashboard/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Energy Dashboard starting ===")
	logger.Info("Config — data: %s | addr: %s | default country: %s",
		cfg.DataPath, cfg.Addr, cfg.DefaultCountry)

	var cache dataset.Cache
	ds, err := cache.Get(func() (*models.Dataset, error) {
		header, rows, err := dataset.Read(cfg.DataPath)
		if err != nil {
			return nil, err
		}
		logger.Info("Read %d raw rows from %s", len(rows), cfg.DataPath)
		return services.NewCleaner(logger).Clean(header, rows), nil
	})
	if err != nil {
		logger.Error("Dataset load failed: %v", err)
		os.Exit(1)
	}
	if len(ds.Plants) == 0 {
		logger.Error("All rows were dropped during cleaning. Exiting.")
		os.Exit(1)
	}

	insights := services.NewInsightService(logger)
	insights.Print(insights.Overview(ds))

	if cfg.ExportPath != "" {
		csvWriter, err := storage.NewCSVWriter(cfg.ExportPath, ds.Header)
		if err != nil {
			logger.Error("Failed to create CSV writer: %v", err)
			os.Exit(1)
		}
		defer csvWriter.Close()

		if err := csvWriter.Write(ds.Plants); err != nil {
			logger.Error("CSV snapshot failed: %v", err)
		} else {
			logger.Info("Cleaned dataset snapshot saved to %s", cfg.ExportPath)
		}
	}

	if cfg.PostgresEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			logger.Error("Make sure Docker is running: docker compose up -d")
			os.Exit(1)
		}
		defer pgWriter.Close()

		if err := pgWriter.Write(ds.Plants); err != nil {
			logger.Error("PostgreSQL mirror failed: %v", err)
		} else {
			logger.Info("Dataset mirrored to PostgreSQL (table: plants)")
		}
	}

	srv := server.New(ds, cfg, logger)
	logger.Info("Listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Routes()); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
