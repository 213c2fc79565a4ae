package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ctchen222/studio-backend/internal/api/apperrors"
	"ctchen222/studio-backend/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// ImageRepository defines the interface for image metadata operations.
type ImageRepository interface {
	List(ctx context.Context) ([]models.Image, error)
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, id string) (*models.Image, error)
	Delete(ctx context.Context, id string) error
}

type sqliteImageRepository struct {
	db *sqlx.DB
}

// NewImageRepository creates a new SQLite-based ImageRepository.
func NewImageRepository(db *sqlx.DB) ImageRepository {
	return &sqliteImageRepository{db: db}
}

func (r *sqliteImageRepository) List(ctx context.Context) ([]models.Image, error) {
	ctx, span := tracer.Start(ctx, "ImageRepository.List")
	defer span.End()

	images := []models.Image{}
	query := `SELECT id, filename, mimetype, size, upload_path FROM images`
	if err := r.db.SelectContext(ctx, &images, query); err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

func (r *sqliteImageRepository) Create(ctx context.Context, image *models.Image) error {
	ctx, span := tracer.Start(ctx, "ImageRepository.Create")
	defer span.End()

	query := `INSERT INTO images (id, filename, mimetype, size, upload_path) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, image.ID, image.Filename, image.Mimetype, image.Size, image.UploadPath)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

func (r *sqliteImageRepository) GetByID(ctx context.Context, id string) (*models.Image, error) {
	ctx, span := tracer.Start(ctx, "ImageRepository.GetByID")
	defer span.End()

	var image models.Image
	query := `SELECT id, filename, mimetype, size, upload_path FROM images WHERE id = ?`
	if err := r.db.GetContext(ctx, &image, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return &image, nil
}

func (r *sqliteImageRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ImageRepository.Delete")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return checkAffected(res)
}
