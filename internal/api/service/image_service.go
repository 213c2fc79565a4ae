package service

import (
	"context"
	"mime/multipart"

	"ctchen222/studio-backend/internal/api/models"
	"ctchen222/studio-backend/internal/api/repository"
	"ctchen222/studio-backend/internal/storage"

	"github.com/google/uuid"
)

// ImageService defines the interface for image asset business logic.
type ImageService interface {
	List(ctx context.Context) ([]models.Image, error)
	Upload(ctx context.Context, fh *multipart.FileHeader) (*models.Image, error)
	Delete(ctx context.Context, id string) error
}

type imageService struct {
	imageRepo repository.ImageRepository
	uploads   *storage.UploadStore
}

// NewImageService creates a new ImageService.
func NewImageService(imageRepo repository.ImageRepository, uploads *storage.UploadStore) ImageService {
	return &imageService{imageRepo: imageRepo, uploads: uploads}
}

func (s *imageService) List(ctx context.Context) ([]models.Image, error) {
	ctx, span := tracer.Start(ctx, "ImageService.List")
	defer span.End()

	return s.imageRepo.List(ctx)
}

// Upload stores the file on disk and records its metadata.
func (s *imageService) Upload(ctx context.Context, fh *multipart.FileHeader) (*models.Image, error) {
	ctx, span := tracer.Start(ctx, "ImageService.Upload")
	defer span.End()

	uploadPath, err := s.uploads.Save(fh)
	if err != nil {
		return nil, err
	}

	image := &models.Image{
		ID:         uuid.New().String(),
		Filename:   fh.Filename,
		Mimetype:   fh.Header.Get("Content-Type"),
		Size:       fh.Size,
		UploadPath: uploadPath,
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// Delete removes the metadata record and the stored file.
func (s *imageService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ImageService.Delete")
	defer span.End()

	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.imageRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.uploads.Remove(image.UploadPath)
}
