package auth

import (
	"testing"
	"time"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("alice", secret, TokenValidity)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a non-empty token")
	}

	username, err := VerifyToken(token, secret)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if username != "alice" {
		t.Errorf("Expected username 'alice', got '%s'", username)
	}
}

func TestVerifyToken_Expiry(t *testing.T) {
	secret := []byte("test-secret")

	tests := []struct {
		name      string
		remaining time.Duration
		wantErr   bool
	}{
		{name: "fifty-nine minutes left", remaining: 59 * time.Minute, wantErr: false},
		{name: "one minute past expiry", remaining: -time.Minute, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken("alice", secret, tt.remaining)
			if err != nil {
				t.Fatalf("GenerateToken failed: %v", err)
			}

			_, err = VerifyToken(token, secret)
			if tt.wantErr && err == nil {
				t.Error("Expected verification to fail, got nil error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected verification to pass, got %v", err)
			}
		})
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("alice", []byte("secret-one"), TokenValidity)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := VerifyToken(token, []byte("secret-two")); err == nil {
		t.Error("Expected verification under a different secret to fail")
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	if _, err := VerifyToken("not-a-token", []byte("test-secret")); err == nil {
		t.Error("Expected verification of garbage input to fail")
	}
}
