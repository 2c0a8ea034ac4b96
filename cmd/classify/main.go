package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"universe-classifier/internal/classifier"
	"universe-classifier/internal/config"
	"universe-classifier/internal/dataset"
	"universe-classifier/internal/db"
	"universe-classifier/internal/domain"
	"universe-classifier/internal/output"
	"universe-classifier/internal/repository"
	"universe-classifier/internal/service"
)

// Uso: classify [input.json] [output-dir]
// Sin argumentos toma INPUT_PATH y OUTPUT_DIR del entorno.
func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if len(os.Args) > 1 {
		cfg.InputPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		cfg.OutputDir = os.Args[2]
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	batch, err := dataset.Load(cfg.InputPath)
	if err != nil {
		logger.Fatal("load dataset", zap.String("path", cfg.InputPath), zap.Error(err))
	}

	var runs repository.RunRepository
	pool, err := db.NewPool(ctx, cfg)
	switch {
	case errors.Is(err, db.ErrNotConfigured):
		logger.Debug("persistence disabled")
	case err != nil:
		logger.Fatal("db connect", zap.Error(err))
	default:
		defer pool.Close()
		runs = repository.NewPgRunRepository(pool)
	}

	svc := service.NewClassificationService(logger, classifier.New(logger), runs)
	run, err := svc.Run(ctx, batch)
	if err != nil {
		logger.Fatal("classify", zap.Error(err))
	}

	if err := output.WriteDir(cfg.OutputDir, output.Partition(run.Outcomes)); err != nil {
		logger.Fatal("write output", zap.String("dir", cfg.OutputDir), zap.Error(err))
	}

	logger.Info("output written",
		zap.String("dir", cfg.OutputDir),
		zap.String("run_id", run.ID.String()),
		zap.Int("indeterminate", run.Counts[domain.UniverseIndeterminate]),
	)
	if len(run.Rejections) > 0 {
		_ = logger.Sync()
		os.Exit(2)
	}
}
