package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"ayurcare/config"
	"ayurcare/internal/delivery/dto"
	"ayurcare/internal/repository"
	"ayurcare/internal/service"
	"ayurcare/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUsecase(t *testing.T, password string) AuthUsecase {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	kv := repository.NewMemoryStore()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository(kv, log))
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})

	cfg := config.AuthConfig{Username: "practitioner", PasswordHash: string(hash)}
	return NewAuthUsecase(log, cfg, jwtService, nil, auditService)
}

func TestLogin(t *testing.T) {
	uc := newAuthUsecase(t, "correct horse")

	tokens, err := uc.Login(context.Background(), &dto.LoginRequest{
		Username: "practitioner",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("tokens missing")
	}
	if tokens.TokenType != "Bearer" {
		t.Errorf("token type = %q", tokens.TokenType)
	}
	if tokens.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Errorf("expires in = %d", tokens.ExpiresIn)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc := newAuthUsecase(t, "correct horse")

	if _, err := uc.Login(context.Background(), &dto.LoginRequest{
		Username: "practitioner",
		Password: "battery staple",
	}); err != ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginWrongUsername(t *testing.T) {
	uc := newAuthUsecase(t, "correct horse")

	if _, err := uc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "correct horse",
	}); err != ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshToken(t *testing.T) {
	uc := newAuthUsecase(t, "correct horse")
	ctx := context.Background()

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Username: "practitioner", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("no new access token")
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	uc := newAuthUsecase(t, "correct horse")
	ctx := context.Background()

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Username: "practitioner", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// An access token presented as a refresh token must be rejected even
	// though the signature is valid.
	if _, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.AccessToken}); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshTokenGarbage(t *testing.T) {
	uc := newAuthUsecase(t, "correct horse")

	if _, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "junk"}); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutWithoutRedis(t *testing.T) {
	uc := newAuthUsecase(t, "correct horse")

	if err := uc.Logout(context.Background(), "practitioner", "token-id"); err != nil {
		t.Errorf("Logout: %v", err)
	}
}
