package schema

import "time"

// VehicleMedia represents the vehicle_media table - images attached to a
// vehicle profile
type VehicleMedia struct {
	ID string `gorm:"column:id;type:uuid;primaryKey"`
	// VehicleID references the owning vehicle profile
	VehicleID string `gorm:"column:vehicle_id;not null;type:uuid;index"`
	// URL points at the hosted media asset
	URL string `gorm:"column:url;not null;type:text"`
	// ContentType is the sniffed MIME type of the asset
	ContentType string `gorm:"column:content_type;type:text"`
	// Caption is the optional user-supplied caption
	Caption string `gorm:"column:caption;type:text"`
	// IsFeatured marks the profile's primary image
	IsFeatured bool      `gorm:"column:is_featured;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the VehicleMedia model
func (VehicleMedia) TableName() string {
	return "vehicle_media"
}
