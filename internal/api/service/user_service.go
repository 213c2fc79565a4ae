package service

import (
	"context"
	"errors"

	"ctchen222/studio-backend/internal/api/apperrors"
	"ctchen222/studio-backend/internal/api/models"
	"ctchen222/studio-backend/internal/api/repository"
	"ctchen222/studio-backend/internal/auth"
	"ctchen222/studio-backend/internal/config"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"
)

var tracer = otel.Tracer("api.service")

// bcryptCost matches the work factor the site has always hashed with.
const bcryptCost = 10

// dummyHash keeps the unknown-username branch of Login paying the same
// bcrypt cost as the wrong-password branch.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserService defines the interface for credential issuance.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) error
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
}

type userService struct {
	userRepo  repository.UserRepository
	secretKey []byte
}

// NewUserService creates a new UserService signing tokens with the
// configured secret.
func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo:  userRepo,
		secretKey: []byte(cfg.SecretKey),
	}
}

// Register hashes the password and persists a new credential record.
// A taken username fails without writing anything.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) error {
	ctx, span := tracer.Start(ctx, "UserService.Register")
	defer span.End()

	if req.Username == "" || req.Password == "" {
		return apperrors.ErrValidation
	}

	_, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err == nil {
		return apperrors.ErrDuplicateUser
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return err
	}

	return s.userRepo.Create(ctx, &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: string(hash),
	})
}

// Login verifies the credentials and mints a signed token. Unknown
// usernames and wrong passwords yield the same error.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	ctx, span := tracer.Start(ctx, "UserService.Login")
	defer span.End()

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Burn a comparison so this branch is not observably faster.
			bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return auth.GenerateToken(user.Username, s.secretKey, auth.TokenValidity)
}
