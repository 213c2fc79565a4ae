package service

import (
	"context"

	"ctchen222/studio-backend/internal/api/models"
	"ctchen222/studio-backend/internal/api/repository"
	"ctchen222/studio-backend/internal/cache"

	"github.com/google/uuid"
)

// SectionService defines the interface for page section business logic.
type SectionService interface {
	List(ctx context.Context) ([]models.Section, error)
	Create(ctx context.Context, req *models.SectionRequest) (*models.Section, error)
	UpdateContent(ctx context.Context, id, content string) (*models.Section, error)
	Delete(ctx context.Context, id string) error
}

type sectionService struct {
	sectionRepo repository.SectionRepository
	cache       *cache.ListCache
}

// NewSectionService creates a new SectionService.
func NewSectionService(sectionRepo repository.SectionRepository, listCache *cache.ListCache) SectionService {
	return &sectionService{sectionRepo: sectionRepo, cache: listCache}
}

func (s *sectionService) List(ctx context.Context) ([]models.Section, error) {
	ctx, span := tracer.Start(ctx, "SectionService.List")
	defer span.End()

	var sections []models.Section
	if s.cache.Get(ctx, cache.KeySections, &sections) {
		return sections, nil
	}

	sections, err := s.sectionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cache.KeySections, sections)
	return sections, nil
}

func (s *sectionService) Create(ctx context.Context, req *models.SectionRequest) (*models.Section, error) {
	ctx, span := tracer.Start(ctx, "SectionService.Create")
	defer span.End()

	section := &models.Section{
		ID:      uuid.New().String(),
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KeySections)
	return section, nil
}

func (s *sectionService) UpdateContent(ctx context.Context, id, content string) (*models.Section, error) {
	ctx, span := tracer.Start(ctx, "SectionService.UpdateContent")
	defer span.End()

	section, err := s.sectionRepo.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KeySections)
	return section, nil
}

func (s *sectionService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "SectionService.Delete")
	defer span.End()

	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.KeySections)
	return nil
}
