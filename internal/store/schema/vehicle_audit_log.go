package schema

import (
	"time"

	"gorm.io/datatypes"
)

// AuditAction identifies the kind of change recorded in the audit log
type AuditAction string

const (
	// AuditActionMint records vehicle profile creation from a mint event
	AuditActionMint AuditAction = "mint"
	// AuditActionTransfer records an ownership change
	AuditActionTransfer AuditAction = "transfer"
	// AuditActionBurn records the backing token being destroyed
	AuditActionBurn AuditAction = "burn"
	// AuditActionUpdate records a profile field update
	AuditActionUpdate AuditAction = "update"
)

// VehicleAuditLog represents the vehicle_audit_log table - an append-only
// trail of changes applied to a vehicle profile
type VehicleAuditLog struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// VehicleID references the vehicle profile this entry relates to
	VehicleID string `gorm:"column:vehicle_id;not null;type:uuid;index"`
	// Action identifies the kind of change
	Action AuditAction `gorm:"column:action;not null;type:text"`
	// ActorWallet is the wallet that triggered the change, when known
	ActorWallet *string `gorm:"column:actor_wallet;type:text"`
	// Details carries action-specific data as JSON
	Details datatypes.JSON `gorm:"column:details;type:jsonb"`
	// CreatedAt is the timestamp when this entry was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the VehicleAuditLog model
func (VehicleAuditLog) TableName() string {
	return "vehicle_audit_log"
}
