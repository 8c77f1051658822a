package repository

import (
	"context"

	"ayurcare/internal/domain/entity"
)

// PatientRepository persists the full patient collection. Load absorbs a
// missing or malformed payload by returning an empty collection; read
// failures are logged, never propagated.
type PatientRepository interface {
	Load(ctx context.Context) []entity.Patient
	Save(ctx context.Context, patients []entity.Patient) error
}

// SettingsRepository persists practice settings. Load falls back to
// defaults when nothing valid has been saved.
type SettingsRepository interface {
	Load(ctx context.Context) entity.Settings
	Save(ctx context.Context, settings entity.Settings) error
}

// AuditLogRepository persists the capped audit trail.
type AuditLogRepository interface {
	Append(ctx context.Context, entry entity.AuditEntry) error
	List(ctx context.Context) []entity.AuditEntry
}
