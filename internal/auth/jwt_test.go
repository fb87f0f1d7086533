package auth

import (
	"testing"
	"time"
)

func TestNewJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", 24*time.Hour)

	if manager == nil {
		t.Fatal("expected JWTManager to be created")
	}
	if manager.secretKey != "test-secret" {
		t.Errorf("expected secretKey 'test-secret', got '%s'", manager.secretKey)
	}
	if manager.tokenDuration != 24*time.Hour {
		t.Errorf("expected tokenDuration 24h, got %v", manager.tokenDuration)
	}
}

func TestGenerateToken(t *testing.T) {
	manager := NewJWTManager("test-secret-key", 24*time.Hour)

	token, expiresAt, err := manager.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if token == "" {
		t.Error("expected non-empty token")
	}

	expectedExpiry := time.Now().Add(24 * time.Hour)
	if expiresAt.Before(expectedExpiry.Add(-time.Minute)) || expiresAt.After(expectedExpiry.Add(time.Minute)) {
		t.Errorf("expiry time not within expected range")
	}
}

func TestValidateToken_Valid(t *testing.T) {
	manager := NewJWTManager("test-secret-key", 24*time.Hour)

	token, _, err := manager.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error validating token: %v", err)
	}

	if claims.UserID != "user-123" {
		t.Errorf("expected UserID 'user-123', got '%s'", claims.UserID)
	}
	if claims.Subject != "user-123" {
		t.Errorf("expected Subject 'user-123', got '%s'", claims.Subject)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret-key", -time.Second)

	token, _, err := manager.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = manager.ValidateToken(token)
	if err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

// A token still inside its lifetime is honored; one past it is not. There is
// no revocation beyond natural expiry.
func TestValidateToken_ExpiryBoundary(t *testing.T) {
	almostExpired := NewJWTManager("test-secret-key", time.Minute)
	token, _, err := almostExpired.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := almostExpired.ValidateToken(token); err != nil {
		t.Errorf("token within lifetime should verify, got %v", err)
	}

	justExpired := NewJWTManager("test-secret-key", -time.Minute)
	token, _, err = justExpired.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := justExpired.ValidateToken(token); err == nil {
		t.Error("token past lifetime should fail verification")
	}
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	manager1 := NewJWTManager("secret-key-1", 24*time.Hour)
	manager2 := NewJWTManager("secret-key-2", 24*time.Hour)

	token, _, err := manager1.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = manager2.ValidateToken(token)
	if err == nil {
		t.Error("expected error for token with wrong signature")
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	manager := NewJWTManager("test-secret-key", 24*time.Hour)

	_, err := manager.ValidateToken("not-a-valid-token")
	if err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateToken_EmptyToken(t *testing.T) {
	manager := NewJWTManager("test-secret-key", 24*time.Hour)

	_, err := manager.ValidateToken("")
	if err == nil {
		t.Error("expected error for empty token")
	}
}

// Expired and malformed tokens fail with the same generic error; the caller
// cannot tell the two apart.
func TestValidateToken_FailuresIndistinguishable(t *testing.T) {
	manager := NewJWTManager("test-secret-key", -time.Hour)
	expired, _, err := manager.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, expiredErr := manager.ValidateToken(expired)
	_, malformedErr := manager.ValidateToken("garbage")

	if expiredErr != malformedErr {
		t.Errorf("expected identical errors, got %v and %v", expiredErr, malformedErr)
	}
}
