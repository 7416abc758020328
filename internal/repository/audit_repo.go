package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dealerdesk/internal/model"
)

// AuditRepository persists the console's local audit trail.
type AuditRepository interface {
	Record(ctx context.Context, ev *model.AuditEvent) error
	ListRecent(ctx context.Context, limit int) ([]model.AuditEvent, error)
}

type auditRepo struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) AuditRepository { return &auditRepo{db: db} }

func (r *auditRepo) Record(ctx context.Context, ev *model.AuditEvent) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *auditRepo) ListRecent(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var events []model.AuditEvent
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&events).Error
	return events, err
}
