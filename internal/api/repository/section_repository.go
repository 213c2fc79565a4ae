package repository

import (
	"context"
	"fmt"

	"ctchen222/studio-backend/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// SectionRepository defines the interface for page section data operations.
type SectionRepository interface {
	List(ctx context.Context) ([]models.Section, error)
	Create(ctx context.Context, section *models.Section) error
	UpdateContent(ctx context.Context, id, content string) (*models.Section, error)
	Delete(ctx context.Context, id string) error
}

type sqliteSectionRepository struct {
	db *sqlx.DB
}

// NewSectionRepository creates a new SQLite-based SectionRepository.
func NewSectionRepository(db *sqlx.DB) SectionRepository {
	return &sqliteSectionRepository{db: db}
}

func (r *sqliteSectionRepository) List(ctx context.Context) ([]models.Section, error) {
	ctx, span := tracer.Start(ctx, "SectionRepository.List")
	defer span.End()

	sections := []models.Section{}
	query := `SELECT id, title, content FROM sections`
	if err := r.db.SelectContext(ctx, &sections, query); err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return sections, nil
}

func (r *sqliteSectionRepository) Create(ctx context.Context, section *models.Section) error {
	ctx, span := tracer.Start(ctx, "SectionRepository.Create")
	defer span.End()

	query := `INSERT INTO sections (id, title, content) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, section.ID, section.Title, section.Content); err != nil {
		return fmt.Errorf("failed to create section: %w", err)
	}
	return nil
}

// UpdateContent replaces a section's content and returns the updated record.
func (r *sqliteSectionRepository) UpdateContent(ctx context.Context, id, content string) (*models.Section, error) {
	ctx, span := tracer.Start(ctx, "SectionRepository.UpdateContent")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `UPDATE sections SET content = ? WHERE id = ?`, content, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return nil, err
	}

	var section models.Section
	if err := r.db.GetContext(ctx, &section, `SELECT id, title, content FROM sections WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("failed to reload section: %w", err)
	}
	return &section, nil
}

func (r *sqliteSectionRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "SectionRepository.Delete")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM sections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return checkAffected(res)
}
