package store

import (
	"context"

	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store/schema"
)

// CreateVehicleMintInput bundles everything written when a vehicle profile is
// materialized from a mint: the profile itself, an audit entry, and an
// optional media row, applied in a single transaction.
type CreateVehicleMintInput struct {
	Vehicle schema.VehicleProfile
	// ActorWallet is the minting wallet recorded in the audit entry
	ActorWallet *string
	// TxHash is the mint transaction recorded in the audit entry
	TxHash string
	// Media, when non-nil, is inserted alongside the profile
	Media *schema.VehicleMedia
}

// UpdateVehicleInput carries the mutable profile fields; nil means unchanged
type UpdateVehicleInput struct {
	Make        *string
	Model       *string
	Year        *int
	VIN         *string
	Name        *string
	Description *string
}

// UpdateIdentityInput carries the mutable identity fields; nil means unchanged
type UpdateIdentityInput struct {
	Username        *string
	DisplayName     *string
	Bio             *string
	ProfileImageURL *string
	ENSName         *string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// VerifySchema migrates/verifies all backing tables; called once at
	// process start so missing tables fail fast instead of being probed
	// per call
	VerifySchema(ctx context.Context) error

	// CreateIdentity inserts a new identity profile, assigning its UUID
	CreateIdentity(ctx context.Context, identity *schema.IdentityProfile) error
	// GetIdentityByWallet retrieves an identity by its normalized wallet
	GetIdentityByWallet(ctx context.Context, normalizedWallet string) (*schema.IdentityProfile, error)
	// GetIdentityByUsername retrieves an identity by exact username match
	GetIdentityByUsername(ctx context.Context, username string) (*schema.IdentityProfile, error)
	// GetIdentityByID retrieves an identity by its UUID
	GetIdentityByID(ctx context.Context, id string) (*schema.IdentityProfile, error)
	// UpdateIdentity applies the given field updates to an identity profile
	UpdateIdentity(ctx context.Context, id string, input UpdateIdentityInput) error

	// CreateFollow inserts a follow pair; returns domain.ErrAlreadyFollowing
	// when the pair exists
	CreateFollow(ctx context.Context, followerWallet, followedWallet string) error
	// DeleteFollow removes a follow pair
	DeleteFollow(ctx context.Context, followerWallet, followedWallet string) error
	// ListFollowers lists wallets following the given wallet
	ListFollowers(ctx context.Context, wallet string, limit, offset int) ([]schema.Follow, error)
	// ListFollowing lists wallets the given wallet follows
	ListFollowing(ctx context.Context, wallet string, limit, offset int) ([]schema.Follow, error)

	// CreateVehicleMint creates a vehicle profile with its audit entry and
	// optional media row in one transaction. Returns created=false when a
	// profile for the token already exists (ON CONFLICT DO NOTHING).
	CreateVehicleMint(ctx context.Context, input CreateVehicleMintInput) (created bool, vehicle *schema.VehicleProfile, err error)
	// GetVehicleByTokenID retrieves a vehicle profile with its child rows
	GetVehicleByTokenID(ctx context.Context, tokenID string) (*schema.VehicleProfile, error)
	// GetVehicleByID retrieves a vehicle profile by its UUID
	GetVehicleByID(ctx context.Context, id string) (*schema.VehicleProfile, error)
	// ListVehiclesByOwner lists vehicle profiles owned by an identity
	ListVehiclesByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*schema.VehicleProfile, error)
	// UpdateVehicle applies profile field updates and records an audit entry
	UpdateVehicle(ctx context.Context, id string, input UpdateVehicleInput, actorWallet *string) error
	// TransferVehicleOwner re-points ownership and records an audit entry in
	// one transaction
	TransferVehicleOwner(ctx context.Context, tokenID, newOwnerID string, actorWallet *string, txHash string) error
	// MarkVehicleBurned flags the profile for a destroyed token
	MarkVehicleBurned(ctx context.Context, tokenID string, actorWallet *string, txHash string) error

	// CreateVehicleMedia inserts a media row, assigning its UUID
	CreateVehicleMedia(ctx context.Context, media *schema.VehicleMedia) error
	// ListVehicleMedia lists media rows for a vehicle
	ListVehicleMedia(ctx context.Context, vehicleID string) ([]schema.VehicleMedia, error)
	// DeleteVehicleMedia removes a media row belonging to a vehicle
	DeleteVehicleMedia(ctx context.Context, vehicleID, mediaID string) error

	// CreateBlockchainEvent inserts an event row with status=pending and
	// retry_count=0, assigning its ULID
	CreateBlockchainEvent(ctx context.Context, event *schema.BlockchainEvent) error
	// GetBlockchainEventByID retrieves an event row
	GetBlockchainEventByID(ctx context.Context, id string) (*schema.BlockchainEvent, error)
	// GetPendingEvents returns up to limit rows with status=pending, oldest
	// first
	GetPendingEvents(ctx context.Context, limit int) ([]*schema.BlockchainEvent, error)
	// UpdateEventStatus sets the status, stamping processed_at for terminal
	// statuses; a non-nil procErr increments retry_count and records
	// last_error
	UpdateEventStatus(ctx context.Context, id string, status domain.EventStatus, procErr *string) error
	// ResetFailedEvents re-queues failed events to pending and returns the
	// number of rows reset
	ResetFailedEvents(ctx context.Context) (int64, error)

	// GetBlockCursor retrieves the last processed block number for a chain
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error
}
