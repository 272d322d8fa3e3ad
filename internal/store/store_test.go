package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestIdentity creates an identity profile for the given wallet
func buildTestIdentity(wallet string) *schema.IdentityProfile {
	return &schema.IdentityProfile{
		WalletAddress:    wallet,
		NormalizedWallet: domain.NormalizeWallet(wallet),
		DisplayName:      "Test Driver",
	}
}

// buildTestVehicle creates a vehicle profile owned by the given identity
func buildTestVehicle(tokenID, ownerID string) schema.VehicleProfile {
	return schema.VehicleProfile{
		TokenID:     tokenID,
		OwnerID:     ownerID,
		Make:        "Porsche",
		Model:       "911 GT3",
		Year:        2022,
		VIN:         fmt.Sprintf("WP0TEST%s", tokenID),
		Name:        "Track Car",
		Description: "weekend build",
	}
}

// buildTestEvent creates a mint event for the given token
func buildTestEvent(tokenID, recipient string) *schema.BlockchainEvent {
	return &schema.BlockchainEvent{
		EventType: domain.EventTypeMint,
		TokenID:   tokenID,
		ToAddress: &recipient,
		TxHash:    fmt.Sprintf("0xmint%s", tokenID),
	}
}

func strPtr(s string) *string {
	return &s
}

// =============================================================================
// Test: Identity
// =============================================================================

func testIdentity(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and fetch by wallet, username, id", func(t *testing.T) {
		wallet := "0xAbCd000000000000000000000000000000000001"
		identity := buildTestIdentity(wallet)
		identity.Username = strPtr("driver_one")

		err := store.CreateIdentity(ctx, identity)
		require.NoError(t, err)
		require.NotEmpty(t, identity.ID)

		byWallet, err := store.GetIdentityByWallet(ctx, domain.NormalizeWallet(wallet))
		require.NoError(t, err)
		require.NotNil(t, byWallet)
		assert.Equal(t, identity.ID, byWallet.ID)
		assert.Equal(t, wallet, byWallet.WalletAddress)

		byUsername, err := store.GetIdentityByUsername(ctx, "driver_one")
		require.NoError(t, err)
		require.NotNil(t, byUsername)
		assert.Equal(t, identity.ID, byUsername.ID)

		byID, err := store.GetIdentityByID(ctx, identity.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, domain.NormalizeWallet(wallet), byID.NormalizedWallet)
	})

	t.Run("unknown wallet returns nil without error", func(t *testing.T) {
		identity, err := store.GetIdentityByWallet(ctx, "0xdoesnotexist")
		require.NoError(t, err)
		assert.Nil(t, identity)
	})

	t.Run("duplicate normalized wallet is rejected", func(t *testing.T) {
		err := store.CreateIdentity(ctx, buildTestIdentity("0xAbCd000000000000000000000000000000000002"))
		require.NoError(t, err)

		// Same wallet, different casing
		err = store.CreateIdentity(ctx, buildTestIdentity("0xABCD000000000000000000000000000000000002"))
		assert.Error(t, err)
	})

	t.Run("update applies only the provided fields", func(t *testing.T) {
		identity := buildTestIdentity("0xAbCd000000000000000000000000000000000003")
		require.NoError(t, store.CreateIdentity(ctx, identity))

		err := store.UpdateIdentity(ctx, identity.ID, UpdateIdentityInput{
			Bio:      strPtr("since 2020"),
			Username: strPtr("driver_three"),
		})
		require.NoError(t, err)

		updated, err := store.GetIdentityByID(ctx, identity.ID)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "since 2020", updated.Bio)
		require.NotNil(t, updated.Username)
		assert.Equal(t, "driver_three", *updated.Username)
		assert.Equal(t, "Test Driver", updated.DisplayName)
	})

	t.Run("update of missing identity returns not found", func(t *testing.T) {
		err := store.UpdateIdentity(ctx, "00000000-0000-0000-0000-000000000000", UpdateIdentityInput{
			Bio: strPtr("nope"),
		})
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})
}

// =============================================================================
// Test: Follows
// =============================================================================

func testFollows(t *testing.T, store Store) {
	ctx := context.Background()

	alice := "0xaaaa000000000000000000000000000000000001"
	bob := "0xbbbb000000000000000000000000000000000001"
	carol := "0xcccc000000000000000000000000000000000001"

	t.Run("follow, duplicate, unfollow", func(t *testing.T) {
		require.NoError(t, store.CreateFollow(ctx, alice, bob))

		err := store.CreateFollow(ctx, alice, bob)
		assert.ErrorIs(t, err, domain.ErrAlreadyFollowing)

		require.NoError(t, store.DeleteFollow(ctx, alice, bob))

		// Re-follow after unfollow succeeds
		require.NoError(t, store.CreateFollow(ctx, alice, bob))
	})

	t.Run("listing both directions", func(t *testing.T) {
		require.NoError(t, store.CreateFollow(ctx, carol, bob))

		followers, err := store.ListFollowers(ctx, bob, 10, 0)
		require.NoError(t, err)
		assert.Len(t, followers, 2)

		following, err := store.ListFollowing(ctx, alice, 10, 0)
		require.NoError(t, err)
		require.Len(t, following, 1)
		assert.Equal(t, bob, following[0].FollowedWallet)
	})
}

// =============================================================================
// Test: CreateVehicleMint
// =============================================================================

func testCreateVehicleMint(t *testing.T, store Store) {
	ctx := context.Background()

	owner := buildTestIdentity("0x1111000000000000000000000000000000000001")
	require.NoError(t, store.CreateIdentity(ctx, owner))

	t.Run("mint creates profile and media", func(t *testing.T) {
		created, vehicle, err := store.CreateVehicleMint(ctx, CreateVehicleMintInput{
			Vehicle:     buildTestVehicle("100", owner.ID),
			ActorWallet: strPtr(owner.NormalizedWallet),
			TxHash:      "0xmint100",
			Media: &schema.VehicleMedia{
				URL:         "https://cdn.example.com/100.jpg",
				ContentType: "image/jpeg",
				IsFeatured:  true,
			},
		})
		require.NoError(t, err)
		assert.True(t, created)
		require.NotNil(t, vehicle)
		require.NotEmpty(t, vehicle.ID)

		media, err := store.ListVehicleMedia(ctx, vehicle.ID)
		require.NoError(t, err)
		require.Len(t, media, 1)
		assert.True(t, media[0].IsFeatured)
	})

	t.Run("duplicate token settles to the existing profile", func(t *testing.T) {
		created, first, err := store.CreateVehicleMint(ctx, CreateVehicleMintInput{
			Vehicle: buildTestVehicle("101", owner.ID),
			TxHash:  "0xmint101",
		})
		require.NoError(t, err)
		require.True(t, created)

		created, second, err := store.CreateVehicleMint(ctx, CreateVehicleMintInput{
			Vehicle: buildTestVehicle("101", owner.ID),
			TxHash:  "0xmint101-replay",
		})
		require.NoError(t, err)
		assert.False(t, created)
		require.NotNil(t, second)
		assert.Equal(t, first.ID, second.ID)
	})
}

// =============================================================================
// Test: Vehicle lifecycle
// =============================================================================

func testVehicleLifecycle(t *testing.T, store Store) {
	ctx := context.Background()

	owner := buildTestIdentity("0x2222000000000000000000000000000000000001")
	require.NoError(t, store.CreateIdentity(ctx, owner))
	newOwner := buildTestIdentity("0x2222000000000000000000000000000000000002")
	require.NoError(t, store.CreateIdentity(ctx, newOwner))

	_, vehicle, err := store.CreateVehicleMint(ctx, CreateVehicleMintInput{
		Vehicle: buildTestVehicle("200", owner.ID),
		TxHash:  "0xmint200",
	})
	require.NoError(t, err)

	t.Run("update fields", func(t *testing.T) {
		err := store.UpdateVehicle(ctx, vehicle.ID, UpdateVehicleInput{
			Name:        strPtr("Street Car"),
			Description: strPtr("daily driver"),
		}, strPtr(owner.NormalizedWallet))
		require.NoError(t, err)

		got, err := store.GetVehicleByID(ctx, vehicle.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Street Car", got.Name)
		assert.Equal(t, "Porsche", got.Make)
	})

	t.Run("transfer re-points the owner", func(t *testing.T) {
		err := store.TransferVehicleOwner(ctx, "200", newOwner.ID, strPtr(owner.NormalizedWallet), "0xtx200")
		require.NoError(t, err)

		got, err := store.GetVehicleByTokenID(ctx, "200")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, newOwner.ID, got.OwnerID)

		listed, err := store.ListVehiclesByOwner(ctx, newOwner.ID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("transfer of unknown token returns not found", func(t *testing.T) {
		err := store.TransferVehicleOwner(ctx, "999999", newOwner.ID, nil, "0xtx")
		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})

	t.Run("burn flags the profile", func(t *testing.T) {
		err := store.MarkVehicleBurned(ctx, "200", strPtr(newOwner.NormalizedWallet), "0xburn200")
		require.NoError(t, err)

		got, err := store.GetVehicleByTokenID(ctx, "200")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Burned)
	})
}

// =============================================================================
// Test: Vehicle media
// =============================================================================

func testVehicleMedia(t *testing.T, store Store) {
	ctx := context.Background()

	owner := buildTestIdentity("0x3333000000000000000000000000000000000001")
	require.NoError(t, store.CreateIdentity(ctx, owner))
	_, vehicle, err := store.CreateVehicleMint(ctx, CreateVehicleMintInput{
		Vehicle: buildTestVehicle("300", owner.ID),
		TxHash:  "0xmint300",
	})
	require.NoError(t, err)

	media := &schema.VehicleMedia{
		VehicleID:   vehicle.ID,
		URL:         "https://cdn.example.com/300-engine.jpg",
		ContentType: "image/jpeg",
		Caption:     "engine bay",
	}
	require.NoError(t, store.CreateVehicleMedia(ctx, media))
	require.NotEmpty(t, media.ID)

	listed, err := store.ListVehicleMedia(ctx, vehicle.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "engine bay", listed[0].Caption)

	require.NoError(t, store.DeleteVehicleMedia(ctx, vehicle.ID, media.ID))

	listed, err = store.ListVehicleMedia(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = store.DeleteVehicleMedia(ctx, vehicle.ID, media.ID)
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

// =============================================================================
// Test: Blockchain events
// =============================================================================

func testBlockchainEvents(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create defaults to pending", func(t *testing.T) {
		event := buildTestEvent("400", "0x4444000000000000000000000000000000000001")
		require.NoError(t, store.CreateBlockchainEvent(ctx, event))
		require.NotEmpty(t, event.ID)

		got, err := store.GetBlockchainEventByID(ctx, event.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.EventStatusPending, got.Status)
		assert.Equal(t, 0, got.RetryCount)
		assert.Nil(t, got.ProcessedAt)
	})

	t.Run("pending sweep is oldest-first and bounded", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			event := buildTestEvent(fmt.Sprintf("41%d", i), "0x4444000000000000000000000000000000000002")
			require.NoError(t, store.CreateBlockchainEvent(ctx, event))
		}

		events, err := store.GetPendingEvents(ctx, 3)
		require.NoError(t, err)
		require.Len(t, events, 3)
		for i := 1; i < len(events); i++ {
			assert.False(t, events[i].CreatedAt.Before(events[i-1].CreatedAt))
		}
	})

	t.Run("completed stamps processed_at", func(t *testing.T) {
		event := buildTestEvent("420", "0x4444000000000000000000000000000000000003")
		require.NoError(t, store.CreateBlockchainEvent(ctx, event))

		require.NoError(t, store.UpdateEventStatus(ctx, event.ID, domain.EventStatusCompleted, nil))

		got, err := store.GetBlockchainEventByID(ctx, event.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.EventStatusCompleted, got.Status)
		require.NotNil(t, got.ProcessedAt)
		assert.WithinDuration(t, time.Now(), *got.ProcessedAt, time.Minute)
	})

	t.Run("failure records the error and increments retry count", func(t *testing.T) {
		event := buildTestEvent("421", "0x4444000000000000000000000000000000000004")
		require.NoError(t, store.CreateBlockchainEvent(ctx, event))

		require.NoError(t, store.UpdateEventStatus(ctx, event.ID, domain.EventStatusFailed, strPtr("token metadata unavailable")))

		got, err := store.GetBlockchainEventByID(ctx, event.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.EventStatusFailed, got.Status)
		assert.Equal(t, 1, got.RetryCount)
		require.NotNil(t, got.LastError)
		assert.Equal(t, "token metadata unavailable", *got.LastError)

		// Failed rows are excluded from the pending sweep
		pending, err := store.GetPendingEvents(ctx, 100)
		require.NoError(t, err)
		for _, p := range pending {
			assert.NotEqual(t, event.ID, p.ID)
		}
	})

	t.Run("reset failed requeues to pending", func(t *testing.T) {
		event := buildTestEvent("422", "0x4444000000000000000000000000000000000005")
		require.NoError(t, store.CreateBlockchainEvent(ctx, event))
		require.NoError(t, store.UpdateEventStatus(ctx, event.ID, domain.EventStatusFailed, strPtr("boom")))

		n, err := store.ResetFailedEvents(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(1))

		got, err := store.GetBlockchainEventByID(ctx, event.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.EventStatusPending, got.Status)
		assert.Nil(t, got.ProcessedAt)
		// The retry history survives the reset
		assert.Equal(t, 1, got.RetryCount)
	})

	t.Run("update of unknown event returns not found", func(t *testing.T) {
		err := store.UpdateEventStatus(ctx, "01UNKNOWNEVENTIDXXXXXXXXXX", domain.EventStatusCompleted, nil)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})
}

// =============================================================================
// Test: Block cursor
// =============================================================================

func testBlockCursor(t *testing.T, store Store) {
	ctx := context.Background()

	cursor, err := store.GetBlockCursor(ctx, "base-sepolia")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cursor)

	require.NoError(t, store.SetBlockCursor(ctx, "base-sepolia", 12345))

	cursor, err = store.GetBlockCursor(ctx, "base-sepolia")
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), cursor)

	// Overwrite moves the cursor forward
	require.NoError(t, store.SetBlockCursor(ctx, "base-sepolia", 12400))

	cursor, err = store.GetBlockCursor(ctx, "base-sepolia")
	require.NoError(t, err)
	assert.Equal(t, uint64(12400), cursor)

	// Cursors are per chain
	other, err := store.GetBlockCursor(ctx, "base-mainnet")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), other)
}

// =============================================================================
// Test Suite Runner
// =============================================================================

// RunStoreTests runs all store tests against a Store implementation.
// initDB is called before each test group to get a clean store instance.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Identity", testIdentity},
		{"Follows", testFollows},
		{"CreateVehicleMint", testCreateVehicleMint},
		{"VehicleLifecycle", testVehicleLifecycle},
		{"VehicleMedia", testVehicleMedia},
		{"BlockchainEvents", testBlockchainEvents},
		{"BlockCursor", testBlockCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
