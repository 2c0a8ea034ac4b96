package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"universe-classifier/internal/domain"
)

// ErrRunNotFound se devuelve cuando el run no existe.
var ErrRunNotFound = errors.New("run not found")

type RunRepository interface {
	Create(ctx context.Context, run domain.Run) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.RunSummary, error)
	ListOutcomes(ctx context.Context, runID uuid.UUID, universe domain.Universe) ([]domain.Outcome, error)
}

type PgRunRepository struct {
	pool *pgxpool.Pool
}

func NewPgRunRepository(pool *pgxpool.Pool) *PgRunRepository {
	return &PgRunRepository{pool: pool}
}

// Create guarda el run y todos sus outcomes en una sola transacción.
func (r *PgRunRepository) Create(ctx context.Context, run domain.Run) error {
	const insertRun = `
		INSERT INTO classification_runs (id, source, total, rejected, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	const insertOutcome = `
		INSERT INTO classification_outcomes (run_id, position, character_id, universe, decided_by, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, insertRun,
		run.ID,
		run.Source,
		run.Total(),
		len(run.Rejections),
		run.CreatedAt,
	); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, o := range run.Outcomes {
		payload, err := json.Marshal(o.Character)
		if err != nil {
			return fmt.Errorf("encode character %d: %w", o.Character.ID, err)
		}
		batch.Queue(insertOutcome,
			run.ID,
			o.Position,
			int64(o.Character.ID),
			string(o.Universe),
			string(o.DecidedBy),
			payload,
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PgRunRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.RunSummary, error) {
	const runQuery = `
		SELECT id, source, total, rejected, created_at
		FROM classification_runs
		WHERE id = $1
	`
	const countQuery = `
		SELECT universe, COUNT(*)
		FROM classification_outcomes
		WHERE run_id = $1
		GROUP BY universe
	`

	var s domain.RunSummary
	err := r.pool.QueryRow(ctx, runQuery, id).Scan(
		&s.ID,
		&s.Source,
		&s.Total,
		&s.Rejected,
		&s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.RunSummary{}, ErrRunNotFound
	}
	if err != nil {
		return domain.RunSummary{}, err
	}

	rows, err := r.pool.Query(ctx, countQuery, id)
	if err != nil {
		return domain.RunSummary{}, err
	}
	defer rows.Close()

	s.Counts = make(map[domain.Universe]int, len(domain.Universes))
	for _, u := range domain.Universes {
		s.Counts[u] = 0
	}
	for rows.Next() {
		var universe string
		var count int
		if err := rows.Scan(&universe, &count); err != nil {
			return domain.RunSummary{}, err
		}
		s.Counts[domain.Universe(universe)] = count
	}
	if err := rows.Err(); err != nil {
		return domain.RunSummary{}, err
	}
	return s, nil
}

// ListOutcomes devuelve los outcomes en orden de entrada. universe vacío devuelve todos.
func (r *PgRunRepository) ListOutcomes(ctx context.Context, runID uuid.UUID, universe domain.Universe) ([]domain.Outcome, error) {
	const query = `
		SELECT position, universe, decided_by, payload
		FROM classification_outcomes
		WHERE run_id = $1 AND ($2::text = '' OR universe = $2::text)
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query, runID, string(universe))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []domain.Outcome
	for rows.Next() {
		var o domain.Outcome
		var u, decidedBy string
		var payload []byte
		if err := rows.Scan(&o.Position, &u, &decidedBy, &payload); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &o.Character); err != nil {
			return nil, fmt.Errorf("decode outcome %d: %w", o.Position, err)
		}
		o.Universe = domain.Universe(u)
		o.DecidedBy = domain.Tier(decidedBy)
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
