package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"universe-classifier/internal/classifier"
	"universe-classifier/internal/dataset"
	"universe-classifier/internal/domain"
	"universe-classifier/internal/repository"
)

// ClassificationService coordina la clasificación de lotes y su persistencia opcional.
type ClassificationService struct {
	logger     *zap.Logger
	classifier *classifier.Classifier
	runs       repository.RunRepository
}

// NewClassificationService crea el servicio. runs puede ser nil si no hay base de datos.
func NewClassificationService(logger *zap.Logger, c *classifier.Classifier, runs repository.RunRepository) *ClassificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		c = classifier.New(logger)
	}
	return &ClassificationService{
		logger:     logger,
		classifier: c,
		runs:       runs,
	}
}

// ClassifyOne clasifica un único personaje.
func (s *ClassificationService) ClassifyOne(character domain.Character) domain.Outcome {
	d := s.classifier.Decide(character)
	return domain.Outcome{
		Character: character,
		Universe:  d.Universe,
		DecidedBy: d.DecidedBy,
	}
}

// Run clasifica todos los registros válidos del lote. Los rechazados viajan en el run sin clasificar.
func (s *ClassificationService) Run(ctx context.Context, batch dataset.Batch) (domain.Run, error) {
	run := domain.Run{
		ID:         uuid.New(),
		Source:     batch.Source,
		Outcomes:   make([]domain.Outcome, 0, len(batch.Characters)),
		Rejections: batch.Rejections,
		Counts:     make(map[domain.Universe]int, len(domain.Universes)),
		CreatedAt:  time.Now().UTC(),
	}
	for _, u := range domain.Universes {
		run.Counts[u] = 0
	}

	for i, character := range batch.Characters {
		outcome := s.ClassifyOne(character)
		outcome.Position = i
		run.Outcomes = append(run.Outcomes, outcome)
		run.Counts[outcome.Universe]++
	}

	for _, r := range batch.Rejections {
		s.logger.Warn("record rejected",
			zap.String("run_id", run.ID.String()),
			zap.Int("index", r.Index),
			zap.String("reason", r.Reason),
		)
	}

	if s.runs != nil {
		if err := s.runs.Create(ctx, run); err != nil {
			return domain.Run{}, fmt.Errorf("persist run: %w", err)
		}
	}

	s.logger.Info("classification run completed",
		zap.String("run_id", run.ID.String()),
		zap.String("source", run.Source),
		zap.Int("total", run.Total()),
		zap.Int("rejected", len(run.Rejections)),
		zap.Int("star_wars", run.Counts[domain.UniverseStarWars]),
		zap.Int("hitch_hiker", run.Counts[domain.UniverseHitchHiker]),
		zap.Int("rings", run.Counts[domain.UniverseRings]),
		zap.Int("marvel", run.Counts[domain.UniverseMarvel]),
		zap.Int("indeterminate", run.Counts[domain.UniverseIndeterminate]),
	)
	return run, nil
}

// GetRun devuelve el resumen persistido de un run.
func (s *ClassificationService) GetRun(ctx context.Context, id uuid.UUID) (domain.RunSummary, error) {
	if s.runs == nil {
		return domain.RunSummary{}, ErrPersistenceDisabled
	}
	return s.runs.GetByID(ctx, id)
}

// ListOutcomes devuelve los outcomes persistidos, opcionalmente filtrados por universo.
func (s *ClassificationService) ListOutcomes(ctx context.Context, id uuid.UUID, universe domain.Universe) ([]domain.Outcome, error) {
	if s.runs == nil {
		return nil, ErrPersistenceDisabled
	}
	if universe != "" && !universe.Valid() {
		return nil, ErrUnknownUniverse
	}
	return s.runs.ListOutcomes(ctx, id, universe)
}
