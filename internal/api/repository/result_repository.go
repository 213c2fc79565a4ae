package repository

import (
	"context"
	"fmt"
	"time"

	"ctchen222/studio-backend/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// ResultRepository defines the interface for exam result data operations.
type ResultRepository interface {
	List(ctx context.Context) ([]models.Result, error)
	Create(ctx context.Context, result *models.Result) error
	Delete(ctx context.Context, id string) error
}

type sqliteResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a new SQLite-based ResultRepository.
func NewResultRepository(db *sqlx.DB) ResultRepository {
	return &sqliteResultRepository{db: db}
}

// resultRow is the flat row shape; the API model nests the mentions.
type resultRow struct {
	ID          string    `db:"id"`
	SuccessRate float64   `db:"success_rate"`
	Date        time.Time `db:"date"`
	TresBien    int       `db:"tres_bien"`
	Bien        int       `db:"bien"`
	AssezBien   int       `db:"assez_bien"`
}

func (row resultRow) toModel() models.Result {
	return models.Result{
		ID:          row.ID,
		SuccessRate: row.SuccessRate,
		Date:        row.Date,
		Mentions: models.Mentions{
			TresBien:  row.TresBien,
			Bien:      row.Bien,
			AssezBien: row.AssezBien,
		},
	}
}

func (r *sqliteResultRepository) List(ctx context.Context) ([]models.Result, error) {
	ctx, span := tracer.Start(ctx, "ResultRepository.List")
	defer span.End()

	rows := []resultRow{}
	query := `SELECT id, success_rate, date, tres_bien, bien, assez_bien FROM results`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]models.Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, row.toModel())
	}
	return results, nil
}

func (r *sqliteResultRepository) Create(ctx context.Context, result *models.Result) error {
	ctx, span := tracer.Start(ctx, "ResultRepository.Create")
	defer span.End()

	query := `INSERT INTO results (id, success_rate, date, tres_bien, bien, assez_bien)
	          VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		result.ID, result.SuccessRate, result.Date,
		result.Mentions.TresBien, result.Mentions.Bien, result.Mentions.AssezBien)
	if err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	return nil
}

func (r *sqliteResultRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ResultRepository.Delete")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM results WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	return checkAffected(res)
}
