package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded by the console.
const (
	AuditLogin                = "auth.login"
	AuditRegister             = "auth.register"
	AuditLogout               = "auth.logout"
	AuditDealerOnboard        = "dealer.onboard"
	AuditDealerUpdate         = "dealer.update"
	AuditLoanDelete           = "loan.delete"
	AuditRepresentativeCreate = "representative.create"
	AuditRepresentativeUpdate = "representative.update"
	AuditRepresentativeDelete = "representative.delete"
)

// AuditEvent is a local record of who did what through the console.
// The remote API keeps the data of record; this table only answers
// "which console user touched this entity, and when".
type AuditEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Actor     string    `gorm:"not null;index" json:"actor"`
	ActorRole string    `gorm:"type:varchar(20);not null" json:"actorRole"`
	Action    string    `gorm:"type:varchar(50);not null;index" json:"action"`
	Entity    string    `gorm:"type:varchar(30)" json:"entity"`
	EntityID  string    `gorm:"type:varchar(64)" json:"entityId"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"createdAt"`
}

func (AuditEvent) TableName() string { return "audit_events" }
