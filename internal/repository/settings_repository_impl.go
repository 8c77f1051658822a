package repository

import (
	"context"
	"encoding/json"
	"errors"

	"ayurcare/internal/domain/entity"
	domainRepo "ayurcare/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type settingsRepository struct {
	kv  domainRepo.KeyValueStore
	log *logrus.Logger
}

func NewSettingsRepository(kv domainRepo.KeyValueStore, log *logrus.Logger) domainRepo.SettingsRepository {
	return &settingsRepository{kv: kv, log: log}
}

func (r *settingsRepository) Load(ctx context.Context) entity.Settings {
	raw, err := r.kv.Get(ctx, domainRepo.KeySettings)
	if err != nil {
		if !errors.Is(err, domainRepo.ErrKeyNotFound) {
			r.log.Warnf("Failed to read settings: %+v", err)
		}
		return entity.DefaultSettings()
	}

	settings := entity.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		r.log.Warnf("Malformed settings payload, using defaults: %+v", err)
		return entity.DefaultSettings()
	}
	if settings.Language == "" {
		settings.Language = entity.LanguageEnglish
	}
	return settings
}

func (r *settingsRepository) Save(ctx context.Context, settings entity.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, domainRepo.KeySettings, raw)
}
