package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"dealerdesk/internal/model"
	"dealerdesk/internal/repository"
	"dealerdesk/internal/session"
)

// recordAudit writes an audit event; failures are logged, never surfaced.
// The audit trail must not be able to block the operation it describes.
func recordAudit(ctx context.Context, repo repository.AuditRepository, sess *session.Session, action, entity, entityID, detail string) {
	ev := &model.AuditEvent{Action: action, Entity: entity, EntityID: entityID, Detail: detail}
	if sess != nil {
		ev.Actor = sess.User.Name
		ev.ActorRole = string(sess.User.Role)
	}
	if err := repo.Record(ctx, ev); err != nil {
		log.Error().Err(err).Str("action", action).Msg("failed to record audit event")
	}
}

// AuditService exposes the local audit trail to the admin console.
type AuditService interface {
	Recent(ctx context.Context, limit int) ([]model.AuditEvent, error)
}

type auditService struct{ repo repository.AuditRepository }

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Recent(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	return s.repo.ListRecent(ctx, limit)
}
