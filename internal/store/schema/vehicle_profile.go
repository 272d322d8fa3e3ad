package schema

import (
	"time"
)

// VehicleProfile represents the vehicle_profiles table - one profile per
// minted vehicle NFT, keyed by the on-chain token id
type VehicleProfile struct {
	// ID is the surrogate primary key (UUID)
	ID string `gorm:"column:id;type:uuid;primaryKey"`
	// TokenID is the on-chain NFT token id (string to support large numbers)
	TokenID string `gorm:"column:token_id;not null;uniqueIndex;type:text"`
	// OwnerID references the identity profile of the current owner
	OwnerID string `gorm:"column:owner_id;not null;type:uuid;index"`
	// Make is the vehicle manufacturer
	Make string `gorm:"column:make;not null;type:text"`
	// Model is the vehicle model
	Model string `gorm:"column:model;not null;type:text"`
	// Year is the vehicle model year
	Year int `gorm:"column:year;not null"`
	// VIN is the vehicle identification number
	VIN string `gorm:"column:vin;type:text"`
	// Name is the user-facing vehicle name
	Name string `gorm:"column:name;type:text"`
	// Description is the free-form vehicle description
	Description string `gorm:"column:description;type:text"`
	// Burned indicates the backing token has been destroyed on-chain
	Burned bool `gorm:"column:burned;not null;default:false"`
	// CreatedAt is the timestamp when this profile was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this profile was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Owner          *IdentityProfile       `gorm:"foreignKey:OwnerID"`
	Media          []VehicleMedia         `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Specifications []VehicleSpecification `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Links          []VehicleLink          `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Videos         []VehicleVideo         `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	AuditLogs      []VehicleAuditLog      `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the VehicleProfile model
func (VehicleProfile) TableName() string {
	return "vehicle_profiles"
}
