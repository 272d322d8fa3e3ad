package schema

import (
	"time"
)

// IdentityProfile represents the identity_registry table - one profile per
// wallet, keyed for joins by the lower-cased normalized wallet address
type IdentityProfile struct {
	// ID is the surrogate primary key (UUID)
	ID string `gorm:"column:id;type:uuid;primaryKey"`
	// WalletAddress is the wallet address as supplied by the client
	WalletAddress string `gorm:"column:wallet_address;not null;type:text"`
	// NormalizedWallet is the lower-cased wallet address, the canonical join key
	NormalizedWallet string `gorm:"column:normalized_wallet;not null;uniqueIndex;type:text"`
	// Username is globally unique; nil until the user picks one
	Username *string `gorm:"column:username;uniqueIndex;type:text"`
	// DisplayName is the free-form display name
	DisplayName string `gorm:"column:display_name;type:text"`
	// Bio is the free-form profile text
	Bio string `gorm:"column:bio;type:text"`
	// ProfileImageURL points at the hosted profile image
	ProfileImageURL string `gorm:"column:profile_image_url;type:text"`
	// ENSName is the resolved ENS name, if any
	ENSName string `gorm:"column:ens_name;type:text"`
	// CreatedAt is the timestamp when this profile was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this profile was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	SocialLinks []SocialLink     `gorm:"foreignKey:IdentityID;constraint:OnDelete:CASCADE"`
	Vehicles    []VehicleProfile `gorm:"foreignKey:OwnerID"`
}

// TableName specifies the table name for the IdentityProfile model
func (IdentityProfile) TableName() string {
	return "identity_registry"
}
