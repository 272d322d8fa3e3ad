package schema

import "time"

// Follow represents the follows table - a (follower, followed) wallet pair.
// Uniqueness is enforced by a composite constraint rather than a pre-insert
// existence check.
type Follow struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// FollowerWallet is the normalized wallet of the follower
	FollowerWallet string `gorm:"column:follower_wallet;not null;type:text;uniqueIndex:idx_follows_pair,priority:1"`
	// FollowedWallet is the normalized wallet being followed
	FollowedWallet string    `gorm:"column:followed_wallet;not null;type:text;uniqueIndex:idx_follows_pair,priority:2;index"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Follow model
func (Follow) TableName() string {
	return "follows"
}
