package service

import (
	"context"

	"ctchen222/studio-backend/internal/api/models"
	"ctchen222/studio-backend/internal/api/repository"
	"ctchen222/studio-backend/internal/cache"

	"github.com/google/uuid"
)

// CardService defines the interface for card business logic.
type CardService interface {
	List(ctx context.Context) ([]models.Card, error)
	Create(ctx context.Context, form *models.CardForm, imagePath *string) (*models.Card, error)
	Update(ctx context.Context, id string, form *models.CardForm, imagePath *string) (*models.Card, error)
	Delete(ctx context.Context, id string) error
}

type cardService struct {
	cardRepo repository.CardRepository
	cache    *cache.ListCache
}

// NewCardService creates a new CardService.
func NewCardService(cardRepo repository.CardRepository, listCache *cache.ListCache) CardService {
	return &cardService{cardRepo: cardRepo, cache: listCache}
}

func (s *cardService) List(ctx context.Context) ([]models.Card, error) {
	ctx, span := tracer.Start(ctx, "CardService.List")
	defer span.End()

	var cards []models.Card
	if s.cache.Get(ctx, cache.KeyCards, &cards) {
		return cards, nil
	}

	cards, err := s.cardRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cache.KeyCards, cards)
	return cards, nil
}

func (s *cardService) Create(ctx context.Context, form *models.CardForm, imagePath *string) (*models.Card, error) {
	ctx, span := tracer.Start(ctx, "CardService.Create")
	defer span.End()

	card := &models.Card{
		ID:          uuid.New().String(),
		Title:       form.Title,
		Description: form.Description,
		Image:       imagePath,
	}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KeyCards)
	return card, nil
}

// Update replaces a card's fields. When the request carried no new file,
// imagePath is nil and the form's image value (the previous path) is kept.
func (s *cardService) Update(ctx context.Context, id string, form *models.CardForm, imagePath *string) (*models.Card, error) {
	ctx, span := tracer.Start(ctx, "CardService.Update")
	defer span.End()

	image := imagePath
	if image == nil && form.Image != "" {
		image = &form.Image
	}

	card := &models.Card{
		ID:          id,
		Title:       form.Title,
		Description: form.Description,
		Image:       image,
	}
	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KeyCards)
	return card, nil
}

func (s *cardService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "CardService.Delete")
	defer span.End()

	if err := s.cardRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.KeyCards)
	return nil
}
