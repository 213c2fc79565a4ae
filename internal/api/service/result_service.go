package service

import (
	"context"
	"fmt"

	"ctchen222/studio-backend/internal/api/apperrors"
	"ctchen222/studio-backend/internal/api/models"
	"ctchen222/studio-backend/internal/api/repository"
	"ctchen222/studio-backend/internal/cache"
	"ctchen222/studio-backend/internal/validator"

	"github.com/google/uuid"
)

// ResultService defines the interface for exam result business logic.
type ResultService interface {
	List(ctx context.Context) ([]models.Result, error)
	Create(ctx context.Context, req *models.ResultRequest) (*models.Result, error)
	Delete(ctx context.Context, id string) error
}

type resultService struct {
	resultRepo repository.ResultRepository
	cache      *cache.ListCache
}

// NewResultService creates a new ResultService.
func NewResultService(resultRepo repository.ResultRepository, listCache *cache.ListCache) ResultService {
	return &resultService{resultRepo: resultRepo, cache: listCache}
}

func (s *resultService) List(ctx context.Context) ([]models.Result, error) {
	ctx, span := tracer.Start(ctx, "ResultService.List")
	defer span.End()

	var results []models.Result
	if s.cache.Get(ctx, cache.KeyResults, &results) {
		return results, nil
	}

	results, err := s.resultRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cache.KeyResults, results)
	return results, nil
}

func (s *resultService) Create(ctx context.Context, req *models.ResultRequest) (*models.Result, error) {
	ctx, span := tracer.Start(ctx, "ResultService.Create")
	defer span.End()

	if err := validator.GetValidator().Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	result := &models.Result{
		ID:          uuid.New().String(),
		SuccessRate: req.SuccessRate,
		Date:        req.Date,
		Mentions:    req.Mentions,
	}
	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KeyResults)
	return result, nil
}

func (s *resultService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ResultService.Delete")
	defer span.End()

	if err := s.resultRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.KeyResults)
	return nil
}
