package jwt

import (
	"testing"
	"time"

	"ayurcare/config"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	s := testService()

	token, tokenID, err := s.GenerateAccessToken("practitioner")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if tokenID == "" {
		t.Fatal("token id missing")
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "practitioner" {
		t.Errorf("username = %q", claims.Username)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token type = %q, want %q", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	s := testService()

	token, _, err := s.GenerateRefreshToken("practitioner")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token type = %q, want %q", claims.TokenType, RefreshToken)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := testService()

	token, _, err := s.GenerateAccessToken("practitioner")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another secret should not validate")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	s := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})

	token, _, err := s.GenerateAccessToken("practitioner")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := s.ValidateToken(token); err == nil {
		t.Error("expired token should not validate")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	s := testService()

	if _, err := s.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage should not validate")
	}
}

func TestTokenIDsUnique(t *testing.T) {
	s := testService()

	_, first, err := s.GenerateAccessToken("practitioner")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	_, second, err := s.GenerateAccessToken("practitioner")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if first == second {
		t.Error("token ids should be unique per issue")
	}
}
