package main

import (
	"flag"
	"log"
	"os"
	"time"

	"wrist_surgery_app_go/config"
	"wrist_surgery_app_go/db"
	"wrist_surgery_app_go/logging"
	"wrist_surgery_app_go/models"
	"wrist_surgery_app_go/services"

	"go.uber.org/zap"
)

func main() {
	out := flag.String("out", "leads.xlsx", "output file")
	fromFlag := flag.String("from", "", "first day to include (YYYY-MM-DD)")
	toFlag := flag.String("to", "", "last day to include (YYYY-MM-DD)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	from, to, err := parseRange(*fromFlag, *toFlag)
	if err != nil {
		logger.Fatal("invalid date range", zap.Error(err))
	}

	if err := db.Initialize(cfg.DBPath, cfg.Environment, logger); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Lead{}); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	buf, err := services.ExportLeadsXLSX(db.DB, from, to)
	if err != nil {
		logger.Fatal("failed to export leads", zap.Error(err))
	}

	if err := os.WriteFile(*out, buf.Bytes(), 0600); err != nil {
		logger.Fatal("failed to write export", zap.String("path", *out), zap.Error(err))
	}
	logger.Info("lead export written", zap.String("path", *out), zap.Int("bytes", buf.Len()))
}

// parseRange turns inclusive YYYY-MM-DD days into a [from, to) range
func parseRange(fromParam, toParam string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if fromParam != "" {
		if from, err = time.Parse("2006-01-02", fromParam); err != nil {
			return from, to, err
		}
	}
	if toParam != "" {
		if to, err = time.Parse("2006-01-02", toParam); err != nil {
			return from, to, err
		}
		to = to.AddDate(0, 0, 1)
	}
	return from, to, nil
}
