package schema

import "time"

// SocialLink represents the social_links table - external profile links
// attached to an identity
type SocialLink struct {
	ID string `gorm:"column:id;type:uuid;primaryKey"`
	// IdentityID references the owning identity profile
	IdentityID string `gorm:"column:identity_id;not null;type:uuid;index"`
	// Platform names the service the link points at (e.g., "instagram")
	Platform string `gorm:"column:platform;not null;type:text"`
	// URL is the full profile URL
	URL       string    `gorm:"column:url;not null;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the SocialLink model
func (SocialLink) TableName() string {
	return "social_links"
}
