package usecase

import (
	"context"
	"errors"
	"strings"

	"ayurcare/internal/delivery/dto"
	"ayurcare/internal/domain/entity"
	"ayurcare/internal/domain/repository"
	"ayurcare/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrInvalidAPIKey = errors.New("invalid gemini api key")

// geminiKeyPrefix is the shape check applied before storing an API key.
const geminiKeyPrefix = "AIza"

type SettingsUsecase interface {
	Get(ctx context.Context) *dto.SettingsResponse
	Update(ctx context.Context, req *dto.SettingsUpdateRequest) (*dto.SettingsResponse, error)
}

type settingsUsecase struct {
	log          *logrus.Logger
	settingsRepo repository.SettingsRepository
	auditService service.AuditService
}

func NewSettingsUsecase(
	log *logrus.Logger,
	settingsRepo repository.SettingsRepository,
	auditService service.AuditService,
) SettingsUsecase {
	return &settingsUsecase{
		log:          log,
		settingsRepo: settingsRepo,
		auditService: auditService,
	}
}

func (u *settingsUsecase) Get(ctx context.Context) *dto.SettingsResponse {
	return toResponse(u.settingsRepo.Load(ctx))
}

func (u *settingsUsecase) Update(ctx context.Context, req *dto.SettingsUpdateRequest) (*dto.SettingsResponse, error) {
	settings := u.settingsRepo.Load(ctx)

	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.SanskritTerms != nil {
		settings.SanskritTerms = *req.SanskritTerms
	}
	if req.DarkMode != nil {
		settings.DarkMode = *req.DarkMode
	}
	if req.GeminiAPIKey != nil {
		key := strings.TrimSpace(*req.GeminiAPIKey)
		switch {
		case key == "":
			settings.GeminiAPIKey = ""
		case strings.Contains(key, "*"):
			// A masked value round-tripped from Get; keep the stored key.
		case !strings.HasPrefix(key, geminiKeyPrefix):
			return nil, ErrInvalidAPIKey
		default:
			settings.GeminiAPIKey = key
		}
	}

	if err := u.settingsRepo.Save(ctx, settings); err != nil {
		u.log.Warnf("Failed to persist settings: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, entity.AuditActionSettingsUpdate, "", nil)

	return toResponse(settings), nil
}

func toResponse(settings entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Language:            settings.Language,
		SanskritTerms:       settings.SanskritTerms,
		DarkMode:            settings.DarkMode,
		GeminiAPIKey:        maskAPIKey(settings.GeminiAPIKey),
		GeminiKeyConfigured: settings.GeminiAPIKey != "",
	}
}

// maskAPIKey hides all but the last four characters.
func maskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	masked := len(key)
	if masked > 20 {
		masked = 20
	}
	suffix := key
	if len(key) > 4 {
		suffix = key[len(key)-4:]
	}
	return strings.Repeat("*", masked) + suffix
}
