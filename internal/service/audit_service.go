package service

import (
	"context"
	"time"

	"ayurcare/internal/domain/entity"
	"ayurcare/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AuditService records store mutations. Failures to persist an entry are
// logged and absorbed so auditing can never fail a mutation.
type AuditService interface {
	Record(ctx context.Context, action, entityID string, metadata map[string]interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, action, entityID string, metadata map[string]interface{}) {
	entry := entity.AuditEntry{
		Action:    action,
		EntityID:  entityID,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.auditRepo.Append(ctx, entry); err != nil {
		s.log.Warnf("Failed to append audit entry: %+v", err)
	}
}
