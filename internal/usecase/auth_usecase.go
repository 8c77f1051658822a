package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ayurcare/config"
	"ayurcare/internal/delivery/dto"
	"ayurcare/internal/domain/entity"
	"ayurcare/internal/service"
	"ayurcare/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthUsecase authenticates the single practitioner account configured in
// the environment. When a redis client is available issued tokens are
// allow-listed so logout can revoke them; otherwise tokens are stateless.
type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, username, tokenID string) error
}

type authUsecase struct {
	log          *logrus.Logger
	cfg          config.AuthConfig
	jwtService   *jwt.JWTService
	redisClient  *redis.Client // nil disables the token allow-list
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	cfg config.AuthConfig,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		cfg:          cfg,
		jwtService:   jwtService,
		redisClient:  redisClient,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != u.cfg.Username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.cfg.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	response, err := u.issueTokens(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	u.auditService.Record(ctx, entity.AuditActionLogin, req.Username, nil)

	return response, nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.LoginResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	if u.redisClient != nil {
		key := refreshTokenKey(claims.Username, claims.TokenID)
		exists, err := u.redisClient.Exists(ctx, key).Result()
		if err != nil {
			u.log.Warnf("Failed to check refresh token: %+v", err)
			return nil, err
		}
		if exists == 0 {
			return nil, ErrInvalidToken
		}
		// Rotate: the old refresh token is spent.
		if err := u.redisClient.Del(ctx, key).Err(); err != nil {
			u.log.Warnf("Failed to revoke refresh token: %+v", err)
		}
	}

	return u.issueTokens(ctx, claims.Username)
}

func (u *authUsecase) Logout(ctx context.Context, username, tokenID string) error {
	if u.redisClient != nil {
		if err := u.redisClient.Del(ctx, accessTokenKey(username, tokenID)).Err(); err != nil {
			u.log.Warnf("Failed to revoke access token: %+v", err)
			return err
		}
	}

	u.auditService.Record(ctx, entity.AuditActionLogout, username, nil)

	return nil
}

func (u *authUsecase) issueTokens(ctx context.Context, username string) (*dto.LoginResponse, error) {
	accessToken, accessID, err := u.jwtService.GenerateAccessToken(username)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshID, err := u.jwtService.GenerateRefreshToken(username)
	if err != nil {
		return nil, err
	}

	if u.redisClient != nil {
		if err := u.redisClient.Set(ctx, accessTokenKey(username, accessID), "1", u.jwtService.GetAccessExpiry()).Err(); err != nil {
			u.log.Warnf("Failed to store access token: %+v", err)
			return nil, err
		}
		if err := u.redisClient.Set(ctx, refreshTokenKey(username, refreshID), "1", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
			u.log.Warnf("Failed to store refresh token: %+v", err)
			return nil, err
		}
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry() / time.Second),
	}, nil
}

func accessTokenKey(username, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", username, tokenID)
}

func refreshTokenKey(username, tokenID string) string {
	return fmt.Sprintf("refresh_token:%s:%s", username, tokenID)
}
