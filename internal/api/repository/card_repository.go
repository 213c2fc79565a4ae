package repository

import (
	"context"
	"database/sql"
	"fmt"

	"ctchen222/studio-backend/internal/api/apperrors"
	"ctchen222/studio-backend/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// CardRepository defines the interface for card data operations.
type CardRepository interface {
	List(ctx context.Context) ([]models.Card, error)
	Create(ctx context.Context, card *models.Card) error
	Update(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id string) error
}

type sqliteCardRepository struct {
	db *sqlx.DB
}

// NewCardRepository creates a new SQLite-based CardRepository.
func NewCardRepository(db *sqlx.DB) CardRepository {
	return &sqliteCardRepository{db: db}
}

func (r *sqliteCardRepository) List(ctx context.Context) ([]models.Card, error) {
	ctx, span := tracer.Start(ctx, "CardRepository.List")
	defer span.End()

	cards := []models.Card{}
	query := `SELECT id, title, description, image FROM cards`
	if err := r.db.SelectContext(ctx, &cards, query); err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

func (r *sqliteCardRepository) Create(ctx context.Context, card *models.Card) error {
	ctx, span := tracer.Start(ctx, "CardRepository.Create")
	defer span.End()

	query := `INSERT INTO cards (id, title, description, image) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, card.ID, card.Title, card.Description, card.Image); err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

func (r *sqliteCardRepository) Update(ctx context.Context, card *models.Card) error {
	ctx, span := tracer.Start(ctx, "CardRepository.Update")
	defer span.End()

	query := `UPDATE cards SET title = ?, description = ?, image = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, card.Title, card.Description, card.Image, card.ID)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}
	return checkAffected(res)
}

func (r *sqliteCardRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "CardRepository.Delete")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return checkAffected(res)
}

// checkAffected maps a zero-row write to ErrNotFound.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
