package repository

import (
	"context"
	"encoding/json"
	"errors"

	"ayurcare/internal/domain/entity"
	domainRepo "ayurcare/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type auditLogRepository struct {
	kv  domainRepo.KeyValueStore
	log *logrus.Logger
}

func NewAuditLogRepository(kv domainRepo.KeyValueStore, log *logrus.Logger) domainRepo.AuditLogRepository {
	return &auditLogRepository{kv: kv, log: log}
}

func (r *auditLogRepository) Append(ctx context.Context, entry entity.AuditEntry) error {
	entries := r.List(ctx)
	entries = append(entries, entry)
	if len(entries) > entity.AuditTrailLimit {
		entries = entries[len(entries)-entity.AuditTrailLimit:]
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, domainRepo.KeyAudit, raw)
}

func (r *auditLogRepository) List(ctx context.Context) []entity.AuditEntry {
	raw, err := r.kv.Get(ctx, domainRepo.KeyAudit)
	if err != nil {
		if !errors.Is(err, domainRepo.ErrKeyNotFound) {
			r.log.Warnf("Failed to read audit trail: %+v", err)
		}
		return []entity.AuditEntry{}
	}

	var entries []entity.AuditEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		r.log.Warnf("Malformed audit trail payload, starting empty: %+v", err)
		return []entity.AuditEntry{}
	}
	return entries
}
