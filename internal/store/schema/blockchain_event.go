package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
)

// BlockchainEvent represents the blockchain_events table - one row per
// observed chain log or client-submitted mint confirmation.
//
// Lifecycle: pending -> processing -> completed | failed. Failed rows are
// not re-queued by the pending sweep; they stay terminal until an operator
// resets them.
type BlockchainEvent struct {
	// ID is a ULID, time-sortable for oldest-first sweeps
	ID string `gorm:"column:id;type:text;primaryKey"`
	// EventType identifies the kind of chain event (mint, transfer, burn)
	EventType domain.EventType `gorm:"column:event_type;not null;type:text"`
	// TokenID is the on-chain NFT token id
	TokenID string `gorm:"column:token_id;not null;type:text;index"`
	// FromAddress is the sender wallet (nil for mint)
	FromAddress *string `gorm:"column:from_address;type:text"`
	// ToAddress is the recipient wallet (nil for burn)
	ToAddress *string `gorm:"column:to_address;type:text"`
	// TxHash is the transaction hash that produced this event
	TxHash string `gorm:"column:transaction_hash;not null;type:text;index"`
	// BlockNumber is the block the event was observed in, when known
	BlockNumber *uint64 `gorm:"column:block_number;type:bigint"`
	// Status is the processing state (pending, processing, completed, failed)
	Status domain.EventStatus `gorm:"column:status;not null;type:text;index:idx_blockchain_events_status_created,priority:1"`
	// RetryCount is incremented each time processing fails
	RetryCount int `gorm:"column:retry_count;not null;default:0"`
	// LastError records the most recent processing failure
	LastError *string `gorm:"column:last_error;type:text"`
	// Metadata carries the optional vehicle payload attached to mint events
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// CreatedAt is the timestamp when this event was ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_blockchain_events_status_created,priority:2"`
	// ProcessedAt is set when the event reaches a terminal status
	ProcessedAt *time.Time `gorm:"column:processed_at;type:timestamptz"`
}

// TableName specifies the table name for the BlockchainEvent model
func (BlockchainEvent) TableName() string {
	return "blockchain_events"
}
