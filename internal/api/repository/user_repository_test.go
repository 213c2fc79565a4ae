package repository

import (
	"context"
	"testing"

	"ctchen222/studio-backend/internal/api/apperrors"
	"ctchen222/studio-backend/internal/api/models"
	"ctchen222/studio-backend/internal/db"

	"github.com/jmoiron/sqlx"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	pool, err := db.Connect(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	// Each new connection would get its own empty in-memory database.
	pool.SetMaxOpenConns(1)
	t.Cleanup(func() { pool.Close() })

	if err := db.Initialize(pool); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}
	return pool
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &models.User{ID: "u1", Username: "alice", PasswordHash: "hash1"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if got.ID != "u1" || got.Username != "alice" || got.PasswordHash != "hash1" {
		t.Errorf("Unexpected record: %+v", got)
	}
}

func TestUserRepository_GetMissing(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.GetByUsername(context.Background(), "nobody")
	if err != apperrors.ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// The UNIQUE constraint must reject the second insert and leave the first
// record untouched.
func TestUserRepository_DuplicateInsert(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	first := &models.User{ID: "u1", Username: "alice", PasswordHash: "hash1"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	second := &models.User{ID: "u2", Username: "alice", PasswordHash: "hash2"}
	if err := repo.Create(ctx, second); err != apperrors.ErrDuplicateUser {
		t.Fatalf("Expected ErrDuplicateUser, got %v", err)
	}

	got, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if got.PasswordHash != "hash1" {
		t.Errorf("Stored hash changed after conflicting insert: %s", got.PasswordHash)
	}
}
