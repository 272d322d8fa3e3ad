package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// auditDetails marshals action data into a jsonb column value. Marshal
// failure degrades to an empty object rather than aborting the transaction.
func auditDetails(data map[string]interface{}) datatypes.JSON {
	b, err := json.Marshal(data)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(b)
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// VerifySchema migrates all backing tables. Runs once at process start so a
// missing table fails fast instead of being probed on every write.
func (s *pgStore) VerifySchema(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&schema.IdentityProfile{},
		&schema.SocialLink{},
		&schema.VehicleProfile{},
		&schema.VehicleMedia{},
		&schema.VehicleSpecification{},
		&schema.VehicleLink{},
		&schema.VehicleVideo{},
		&schema.VehicleAuditLog{},
		&schema.BlockchainEvent{},
		&schema.Follow{},
		&schema.KeyValueStore{},
	)
	if err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}
	return nil
}

// CreateIdentity inserts a new identity profile, assigning its UUID
func (s *pgStore) CreateIdentity(ctx context.Context, identity *schema.IdentityProfile) error {
	if identity.ID == "" {
		identity.ID = uuid.New().String()
	}
	if err := s.db.WithContext(ctx).Create(identity).Error; err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}
	return nil
}

// GetIdentityByWallet retrieves an identity by its normalized wallet
func (s *pgStore) GetIdentityByWallet(ctx context.Context, normalizedWallet string) (*schema.IdentityProfile, error) {
	var identity schema.IdentityProfile
	err := s.db.WithContext(ctx).Where("normalized_wallet = ?", normalizedWallet).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by wallet: %w", err)
	}
	return &identity, nil
}

// GetIdentityByUsername retrieves an identity by exact username match
func (s *pgStore) GetIdentityByUsername(ctx context.Context, username string) (*schema.IdentityProfile, error) {
	var identity schema.IdentityProfile
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by username: %w", err)
	}
	return &identity, nil
}

// GetIdentityByID retrieves an identity by its UUID
func (s *pgStore) GetIdentityByID(ctx context.Context, id string) (*schema.IdentityProfile, error) {
	var identity schema.IdentityProfile
	err := s.db.WithContext(ctx).Preload("SocialLinks").Where("id = ?", id).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by id: %w", err)
	}
	return &identity, nil
}

// UpdateIdentity applies the given field updates to an identity profile
func (s *pgStore) UpdateIdentity(ctx context.Context, id string, input UpdateIdentityInput) error {
	updates := map[string]interface{}{}
	if input.Username != nil {
		updates["username"] = *input.Username
	}
	if input.DisplayName != nil {
		updates["display_name"] = *input.DisplayName
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.ProfileImageURL != nil {
		updates["profile_image_url"] = *input.ProfileImageURL
	}
	if input.ENSName != nil {
		updates["ens_name"] = *input.ENSName
	}
	if len(updates) == 0 {
		return nil
	}

	result := s.db.WithContext(ctx).Model(&schema.IdentityProfile{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update identity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

// CreateFollow inserts a follow pair; the composite unique index enforces
// at-most-once rather than a read-then-insert check
func (s *pgStore) CreateFollow(ctx context.Context, followerWallet, followedWallet string) error {
	follow := schema.Follow{
		FollowerWallet: followerWallet,
		FollowedWallet: followedWallet,
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_wallet"}, {Name: "followed_wallet"}},
		DoNothing: true,
	}).Create(&follow)
	if result.Error != nil {
		return fmt.Errorf("failed to create follow: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlreadyFollowing
	}
	return nil
}

// DeleteFollow removes a follow pair
func (s *pgStore) DeleteFollow(ctx context.Context, followerWallet, followedWallet string) error {
	err := s.db.WithContext(ctx).
		Where("follower_wallet = ? AND followed_wallet = ?", followerWallet, followedWallet).
		Delete(&schema.Follow{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

// ListFollowers lists wallets following the given wallet
func (s *pgStore) ListFollowers(ctx context.Context, wallet string, limit, offset int) ([]schema.Follow, error) {
	var follows []schema.Follow
	err := s.db.WithContext(ctx).
		Where("followed_wallet = ?", wallet).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&follows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return follows, nil
}

// ListFollowing lists wallets the given wallet follows
func (s *pgStore) ListFollowing(ctx context.Context, wallet string, limit, offset int) ([]schema.Follow, error) {
	var follows []schema.Follow
	err := s.db.WithContext(ctx).
		Where("follower_wallet = ?", wallet).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&follows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return follows, nil
}

// CreateVehicleMint creates a vehicle profile with its audit entry and
// optional media row in one transaction. ON CONFLICT DO NOTHING on token_id
// makes concurrent mints for the same token settle to a single profile.
func (s *pgStore) CreateVehicleMint(ctx context.Context, input CreateVehicleMintInput) (bool, *schema.VehicleProfile, error) {
	vehicle := input.Vehicle
	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	}

	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_id"}},
			DoNothing: true,
		}).Create(&vehicle)
		if result.Error != nil {
			return fmt.Errorf("failed to create vehicle profile: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			// Token already has a profile; fetch it so the caller sees the
			// existing row
			if err := tx.Where("token_id = ?", vehicle.TokenID).First(&vehicle).Error; err != nil {
				return fmt.Errorf("failed to get existing vehicle profile: %w", err)
			}
			return nil
		}
		created = true

		audit := schema.VehicleAuditLog{
			VehicleID:   vehicle.ID,
			Action:      schema.AuditActionMint,
			ActorWallet: input.ActorWallet,
			Details:     auditDetails(map[string]interface{}{"token_id": vehicle.TokenID, "tx_hash": input.TxHash}),
		}
		if err := tx.Create(&audit).Error; err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}

		if input.Media != nil {
			media := *input.Media
			if media.ID == "" {
				media.ID = uuid.New().String()
			}
			media.VehicleID = vehicle.ID
			if err := tx.Create(&media).Error; err != nil {
				return fmt.Errorf("failed to create media row: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return false, nil, err
	}

	return created, &vehicle, nil
}

// GetVehicleByTokenID retrieves a vehicle profile with its child rows
func (s *pgStore) GetVehicleByTokenID(ctx context.Context, tokenID string) (*schema.VehicleProfile, error) {
	var vehicle schema.VehicleProfile
	err := s.db.WithContext(ctx).
		Preload("Media").
		Preload("Specifications").
		Preload("Links").
		Preload("Videos").
		Where("token_id = ?", tokenID).
		First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vehicle by token id: %w", err)
	}
	return &vehicle, nil
}

// GetVehicleByID retrieves a vehicle profile by its UUID
func (s *pgStore) GetVehicleByID(ctx context.Context, id string) (*schema.VehicleProfile, error) {
	var vehicle schema.VehicleProfile
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vehicle by id: %w", err)
	}
	return &vehicle, nil
}

// ListVehiclesByOwner lists vehicle profiles owned by an identity
func (s *pgStore) ListVehiclesByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*schema.VehicleProfile, error) {
	var vehicles []*schema.VehicleProfile
	err := s.db.WithContext(ctx).
		Preload("Media").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles by owner: %w", err)
	}
	return vehicles, nil
}

// UpdateVehicle applies profile field updates and records an audit entry
func (s *pgStore) UpdateVehicle(ctx context.Context, id string, input UpdateVehicleInput, actorWallet *string) error {
	updates := map[string]interface{}{}
	if input.Make != nil {
		updates["make"] = *input.Make
	}
	if input.Model != nil {
		updates["model"] = *input.Model
	}
	if input.Year != nil {
		updates["year"] = *input.Year
	}
	if input.VIN != nil {
		updates["vin"] = *input.VIN
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if len(updates) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.VehicleProfile{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to update vehicle: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrVehicleNotFound
		}

		audit := schema.VehicleAuditLog{
			VehicleID:   id,
			Action:      schema.AuditActionUpdate,
			ActorWallet: actorWallet,
			Details:     auditDetails(updates),
		}
		if err := tx.Create(&audit).Error; err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}
		return nil
	})
}

// TransferVehicleOwner re-points ownership and records an audit entry in one
// transaction
func (s *pgStore) TransferVehicleOwner(ctx context.Context, tokenID, newOwnerID string, actorWallet *string, txHash string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle schema.VehicleProfile
		if err := tx.Where("token_id = ?", tokenID).First(&vehicle).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrVehicleNotFound
			}
			return fmt.Errorf("failed to get vehicle for transfer: %w", err)
		}

		previousOwner := vehicle.OwnerID
		if err := tx.Model(&schema.VehicleProfile{}).
			Where("id = ?", vehicle.ID).
			Update("owner_id", newOwnerID).Error; err != nil {
			return fmt.Errorf("failed to update vehicle owner: %w", err)
		}

		audit := schema.VehicleAuditLog{
			VehicleID:   vehicle.ID,
			Action:      schema.AuditActionTransfer,
			ActorWallet: actorWallet,
			Details: auditDetails(map[string]interface{}{
				"from_owner_id": previousOwner,
				"to_owner_id":   newOwnerID,
				"tx_hash":       txHash,
			}),
		}
		if err := tx.Create(&audit).Error; err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}
		return nil
	})
}

// MarkVehicleBurned flags the profile for a destroyed token
func (s *pgStore) MarkVehicleBurned(ctx context.Context, tokenID string, actorWallet *string, txHash string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle schema.VehicleProfile
		if err := tx.Where("token_id = ?", tokenID).First(&vehicle).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrVehicleNotFound
			}
			return fmt.Errorf("failed to get vehicle for burn: %w", err)
		}

		if err := tx.Model(&schema.VehicleProfile{}).
			Where("id = ?", vehicle.ID).
			Update("burned", true).Error; err != nil {
			return fmt.Errorf("failed to mark vehicle burned: %w", err)
		}

		audit := schema.VehicleAuditLog{
			VehicleID:   vehicle.ID,
			Action:      schema.AuditActionBurn,
			ActorWallet: actorWallet,
			Details:     auditDetails(map[string]interface{}{"tx_hash": txHash}),
		}
		if err := tx.Create(&audit).Error; err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}
		return nil
	})
}

// CreateVehicleMedia inserts a media row, assigning its UUID
func (s *pgStore) CreateVehicleMedia(ctx context.Context, media *schema.VehicleMedia) error {
	if media.ID == "" {
		media.ID = uuid.New().String()
	}
	if err := s.db.WithContext(ctx).Create(media).Error; err != nil {
		return fmt.Errorf("failed to create vehicle media: %w", err)
	}
	return nil
}

// ListVehicleMedia lists media rows for a vehicle
func (s *pgStore) ListVehicleMedia(ctx context.Context, vehicleID string) ([]schema.VehicleMedia, error) {
	var media []schema.VehicleMedia
	err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at ASC").
		Find(&media).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle media: %w", err)
	}
	return media, nil
}

// DeleteVehicleMedia removes a media row belonging to a vehicle
func (s *pgStore) DeleteVehicleMedia(ctx context.Context, vehicleID, mediaID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND vehicle_id = ?", mediaID, vehicleID).
		Delete(&schema.VehicleMedia{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle media: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// CreateBlockchainEvent inserts an event row with status=pending and
// retry_count=0, assigning its ULID
func (s *pgStore) CreateBlockchainEvent(ctx context.Context, event *schema.BlockchainEvent) error {
	if event.ID == "" {
		event.ID = ulid.Make().String()
	}
	event.Status = domain.EventStatusPending
	event.RetryCount = 0
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create blockchain event: %w", err)
	}
	return nil
}

// GetBlockchainEventByID retrieves an event row
func (s *pgStore) GetBlockchainEventByID(ctx context.Context, id string) (*schema.BlockchainEvent, error) {
	var event schema.BlockchainEvent
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blockchain event: %w", err)
	}
	return &event, nil
}

// GetPendingEvents returns up to limit rows with status=pending, oldest first
func (s *pgStore) GetPendingEvents(ctx context.Context, limit int) ([]*schema.BlockchainEvent, error) {
	var events []*schema.BlockchainEvent
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.EventStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending events: %w", err)
	}
	return events, nil
}

// UpdateEventStatus sets the status, stamping processed_at for terminal
// statuses; a non-nil procErr increments retry_count and records last_error
func (s *pgStore) UpdateEventStatus(ctx context.Context, id string, status domain.EventStatus, procErr *string) error {
	updates := map[string]interface{}{"status": status}
	if status.Terminal() {
		updates["processed_at"] = time.Now()
	}
	if procErr != nil {
		updates["retry_count"] = gorm.Expr("retry_count + 1")
		updates["last_error"] = *procErr
	}

	result := s.db.WithContext(ctx).Model(&schema.BlockchainEvent{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update event status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// ResetFailedEvents re-queues failed events to pending and returns the number
// of rows reset
func (s *pgStore) ResetFailedEvents(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Model(&schema.BlockchainEvent{}).
		Where("status = ?", domain.EventStatusFailed).
		Updates(map[string]interface{}{
			"status":       domain.EventStatusPending,
			"processed_at": nil,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reset failed events: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// GetBlockCursor retrieves the last processed block number for a chain
func (s *pgStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	key := fmt.Sprintf("block_cursor:%s", chain)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

// SetBlockCursor stores the last processed block number for a chain
func (s *pgStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	kv := schema.KeyValueStore{
		Key:   fmt.Sprintf("block_cursor:%s", chain),
		Value: strconv.FormatUint(blockNumber, 10),
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}
	return nil
}
