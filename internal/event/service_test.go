package event_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThePeregrineCo/carstarz-registry/internal/adapter"
	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/event"
	"github.com/ThePeregrineCo/carstarz-registry/internal/logger"
	"github.com/ThePeregrineCo/carstarz-registry/internal/mocks"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const (
	recipientWallet = "0xAbCd000000000000000000000000000000000001"
	senderWallet    = "0xAbCd000000000000000000000000000000000002"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// pngHeader is a minimal PNG payload, enough for content sniffing
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

type fixture struct {
	store *mocks.MockStore
	clock *mocks.MockClock
	svc   event.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(fixedNow).AnyTimes()

	return &fixture{
		store: mockStore,
		clock: mockClock,
		svc:   event.NewService(mockStore, adapter.NewJSON(), mockClock),
	}
}

func strPtr(s string) *string {
	return &s
}

func mintEvent(vehicle *domain.VehicleData) *domain.ChainEvent {
	return &domain.ChainEvent{
		EventType: domain.EventTypeMint,
		TokenID:   "42",
		ToAddress: strPtr(recipientWallet),
		TxHash:    "0xmint42",
		Vehicle:   vehicle,
	}
}

func recipient() *schema.IdentityProfile {
	return &schema.IdentityProfile{
		ID:               "recipient-id",
		NormalizedWallet: domain.NormalizeWallet(recipientWallet),
	}
}

// expectIngest wires the row creation and the pending -> processing
// transition shared by every ingestion test
func (f *fixture) expectIngest(ctx context.Context) {
	f.store.EXPECT().CreateBlockchainEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, row *schema.BlockchainEvent) error {
			row.ID = "event-1"
			row.Status = domain.EventStatusPending
			return nil
		})
	f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusProcessing, nil).Return(nil)
}

func TestProcessMintEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("creates profile with placeholder fallbacks", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().GetIdentityByWallet(ctx, domain.NormalizeWallet(recipientWallet)).Return(recipient(), nil)
		f.store.EXPECT().GetVehicleByTokenID(ctx, "42").Return(nil, nil)
		f.store.EXPECT().CreateVehicleMint(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, input store.CreateVehicleMintInput) (bool, *schema.VehicleProfile, error) {
				assert.Equal(t, "Unknown", input.Vehicle.Make)
				assert.Equal(t, "Unknown", input.Vehicle.Model)
				assert.Equal(t, 2025, input.Vehicle.Year)
				assert.Equal(t, "AUTO-GENERATED-42", input.Vehicle.VIN)
				assert.Equal(t, "Vehicle #42", input.Vehicle.Name)
				assert.Nil(t, input.Media)
				return true, &input.Vehicle, nil
			})
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusCompleted, nil).Return(nil)

		row, err := f.svc.ProcessMintEvent(ctx, mintEvent(nil))
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusCompleted, row.Status)
	})

	t.Run("uses supplied metadata and image url", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().GetIdentityByWallet(ctx, gomock.Any()).Return(recipient(), nil)
		f.store.EXPECT().GetVehicleByTokenID(ctx, "42").Return(nil, nil)
		f.store.EXPECT().CreateVehicleMint(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, input store.CreateVehicleMintInput) (bool, *schema.VehicleProfile, error) {
				assert.Equal(t, "Toyota", input.Vehicle.Make)
				assert.Equal(t, "Supra", input.Vehicle.Model)
				assert.Equal(t, 1994, input.Vehicle.Year)
				require.NotNil(t, input.Media)
				assert.Equal(t, "https://cdn.example.com/42.jpg", input.Media.URL)
				assert.True(t, input.Media.IsFeatured)
				return true, &input.Vehicle, nil
			})
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusCompleted, nil).Return(nil)

		row, err := f.svc.ProcessMintEvent(ctx, mintEvent(&domain.VehicleData{
			Make:     "Toyota",
			Model:    "Supra",
			Year:     1994,
			VIN:      "JZA80-001",
			ImageURL: "https://cdn.example.com/42.jpg",
		}))
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusCompleted, row.Status)
	})

	t.Run("decodes base64 image payload into media", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().GetIdentityByWallet(ctx, gomock.Any()).Return(recipient(), nil)
		f.store.EXPECT().GetVehicleByTokenID(ctx, "42").Return(nil, nil)
		f.store.EXPECT().CreateVehicleMint(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, input store.CreateVehicleMintInput) (bool, *schema.VehicleProfile, error) {
				require.NotNil(t, input.Media)
				assert.Equal(t, "image/png", input.Media.ContentType)
				return true, &input.Vehicle, nil
			})
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusCompleted, nil).Return(nil)

		row, err := f.svc.ProcessMintEvent(ctx, mintEvent(&domain.VehicleData{
			ImageData: base64.StdEncoding.EncodeToString(pngHeader),
		}))
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusCompleted, row.Status)
	})

	t.Run("recipient without identity completes without a profile", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().GetIdentityByWallet(ctx, gomock.Any()).Return(nil, nil)
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusCompleted, nil).Return(nil)

		row, err := f.svc.ProcessMintEvent(ctx, mintEvent(nil))
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusCompleted, row.Status)
	})

	t.Run("existing profile makes the mint a no-op", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().GetIdentityByWallet(ctx, gomock.Any()).Return(recipient(), nil)
		f.store.EXPECT().GetVehicleByTokenID(ctx, "42").Return(&schema.VehicleProfile{ID: "existing"}, nil)
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusCompleted, nil).Return(nil)

		row, err := f.svc.ProcessMintEvent(ctx, mintEvent(nil))
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusCompleted, row.Status)
	})

	t.Run("store failure marks the event failed without propagating", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().GetIdentityByWallet(ctx, gomock.Any()).Return(nil, errors.New("connection reset"))
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusFailed, gomock.Any()).Return(nil)

		row, err := f.svc.ProcessMintEvent(ctx, mintEvent(nil))
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusFailed, row.Status)
		require.NotNil(t, row.LastError)
		assert.Contains(t, *row.LastError, "connection reset")
	})

	t.Run("invalid event is rejected before a row is written", func(t *testing.T) {
		f := newFixture(t)

		row, err := f.svc.ProcessMintEvent(ctx, &domain.ChainEvent{
			EventType: domain.EventTypeMint,
			TokenID:   "not-a-number",
			ToAddress: strPtr(recipientWallet),
			TxHash:    "0x",
		})
		assert.Error(t, err)
		assert.Nil(t, row)
	})
}

func TestProcessTransferEvent(t *testing.T) {
	ctx := context.Background()

	transferEvent := &domain.ChainEvent{
		EventType:   domain.EventTypeTransfer,
		TokenID:     "42",
		FromAddress: strPtr(senderWallet),
		ToAddress:   strPtr(recipientWallet),
		TxHash:      "0xtx42",
	}

	t.Run("re-points ownership", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().GetIdentityByWallet(ctx, domain.NormalizeWallet(recipientWallet)).Return(recipient(), nil)
		f.store.EXPECT().TransferVehicleOwner(ctx, "42", "recipient-id", gomock.Any(), "0xtx42").Return(nil)
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusCompleted, nil).Return(nil)

		row, err := f.svc.ProcessTransferEvent(ctx, transferEvent)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusCompleted, row.Status)
	})

	t.Run("recipient without identity fails the event", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().GetIdentityByWallet(ctx, gomock.Any()).Return(nil, nil)
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusFailed, gomock.Any()).Return(nil)

		row, err := f.svc.ProcessTransferEvent(ctx, transferEvent)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusFailed, row.Status)
	})
}

func TestProcessBurnEvent(t *testing.T) {
	ctx := context.Background()

	burnEvent := &domain.ChainEvent{
		EventType:   domain.EventTypeBurn,
		TokenID:     "42",
		FromAddress: strPtr(senderWallet),
		TxHash:      "0xburn42",
	}

	t.Run("marks vehicle burned", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().MarkVehicleBurned(ctx, "42", gomock.Any(), "0xburn42").Return(nil)
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusCompleted, nil).Return(nil)

		row, err := f.svc.ProcessBurnEvent(ctx, burnEvent)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusCompleted, row.Status)
	})

	t.Run("unknown vehicle fails the event", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().MarkVehicleBurned(ctx, "42", gomock.Any(), "0xburn42").Return(domain.ErrVehicleNotFound)
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusFailed, gomock.Any()).Return(nil)

		row, err := f.svc.ProcessBurnEvent(ctx, burnEvent)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusFailed, row.Status)
	})
}

func TestProcessMintServerSide(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves owner by pre-resolved identity id", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().GetIdentityByID(ctx, "identity-1").Return(recipient(), nil)
		f.store.EXPECT().GetVehicleByTokenID(ctx, "42").Return(nil, nil)
		f.store.EXPECT().CreateVehicleMint(ctx, gomock.Any()).Return(true, &schema.VehicleProfile{}, nil)
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusCompleted, nil).Return(nil)

		row, err := f.svc.ProcessMintServerSide(ctx, event.ServerMintInput{
			TokenID:     "42",
			TxHash:      "0xmint42",
			OwnerWallet: recipientWallet,
			IdentityID:  "identity-1",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusCompleted, row.Status)
	})

	t.Run("resolves the wallet from the identity when only the id is supplied", func(t *testing.T) {
		f := newFixture(t)
		owner := recipient()
		owner.WalletAddress = recipientWallet
		f.store.EXPECT().GetIdentityByID(ctx, "identity-1").Return(owner, nil).Times(2)
		f.expectIngest(ctx)
		f.store.EXPECT().GetVehicleByTokenID(ctx, "42").Return(nil, nil)
		f.store.EXPECT().CreateVehicleMint(ctx, gomock.Any()).Return(true, &schema.VehicleProfile{}, nil)
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusCompleted, nil).Return(nil)

		row, err := f.svc.ProcessMintServerSide(ctx, event.ServerMintInput{
			TokenID:    "42",
			TxHash:     "0xmint42",
			IdentityID: "identity-1",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusCompleted, row.Status)
		require.NotNil(t, row.ToAddress)
		assert.Equal(t, recipientWallet, *row.ToAddress)
	})

	t.Run("rejects an unknown identity id before ingesting", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetIdentityByID(ctx, "identity-missing").Return(nil, nil)

		row, err := f.svc.ProcessMintServerSide(ctx, event.ServerMintInput{
			TokenID:    "42",
			TxHash:     "0xmint42",
			IdentityID: "identity-missing",
		})
		require.ErrorIs(t, err, domain.ErrIdentityNotFound)
		assert.Nil(t, row)
	})

	t.Run("falls back to wallet lookup and fails without identity", func(t *testing.T) {
		f := newFixture(t)
		f.expectIngest(ctx)
		f.store.EXPECT().GetIdentityByWallet(ctx, domain.NormalizeWallet(recipientWallet)).Return(nil, nil)
		f.store.EXPECT().UpdateEventStatus(ctx, "event-1", domain.EventStatusFailed, gomock.Any()).Return(nil)

		row, err := f.svc.ProcessMintServerSide(ctx, event.ServerMintInput{
			TokenID:     "42",
			TxHash:      "0xmint42",
			OwnerWallet: recipientWallet,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusFailed, row.Status)
	})
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	pendingRow := func(id, tokenID string) *schema.BlockchainEvent {
		return &schema.BlockchainEvent{
			ID:          id,
			EventType:   domain.EventTypeTransfer,
			TokenID:     tokenID,
			FromAddress: strPtr(senderWallet),
			ToAddress:   strPtr(recipientWallet),
			TxHash:      "0xtx" + tokenID,
			Status:      domain.EventStatusPending,
		}
	}

	t.Run("counts only completed events", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetPendingEvents(ctx, 10).Return([]*schema.BlockchainEvent{
			pendingRow("ev-1", "1"),
			pendingRow("ev-2", "2"),
		}, nil)

		// ev-1 completes
		f.store.EXPECT().UpdateEventStatus(ctx, "ev-1", domain.EventStatusProcessing, nil).Return(nil)
		f.store.EXPECT().GetIdentityByWallet(ctx, gomock.Any()).Return(recipient(), nil)
		f.store.EXPECT().TransferVehicleOwner(ctx, "1", "recipient-id", gomock.Any(), "0xtx1").Return(nil)
		f.store.EXPECT().UpdateEventStatus(ctx, "ev-1", domain.EventStatusCompleted, nil).Return(nil)

		// ev-2 fails but the batch continues
		f.store.EXPECT().UpdateEventStatus(ctx, "ev-2", domain.EventStatusProcessing, nil).Return(nil)
		f.store.EXPECT().GetIdentityByWallet(ctx, gomock.Any()).Return(nil, errors.New("timeout"))
		f.store.EXPECT().UpdateEventStatus(ctx, "ev-2", domain.EventStatusFailed, gomock.Any()).Return(nil)

		processed, err := f.svc.ProcessPendingEvents(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, processed)
	})

	t.Run("defaults the limit", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetPendingEvents(ctx, event.DefaultSweepLimit).Return(nil, nil)

		processed, err := f.svc.ProcessPendingEvents(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, processed)
	})

	t.Run("replays stored mint metadata", func(t *testing.T) {
		metadata, err := json.Marshal(&domain.VehicleData{Make: "Mazda", Model: "RX-7"})
		require.NoError(t, err)

		row := &schema.BlockchainEvent{
			ID:        "ev-3",
			EventType: domain.EventTypeMint,
			TokenID:   "3",
			ToAddress: strPtr(recipientWallet),
			TxHash:    "0xtx3",
			Status:    domain.EventStatusPending,
			Metadata:  metadata,
		}

		f := newFixture(t)
		f.store.EXPECT().GetPendingEvents(ctx, 10).Return([]*schema.BlockchainEvent{row}, nil)
		f.store.EXPECT().UpdateEventStatus(ctx, "ev-3", domain.EventStatusProcessing, nil).Return(nil)
		f.store.EXPECT().GetIdentityByWallet(ctx, gomock.Any()).Return(recipient(), nil)
		f.store.EXPECT().GetVehicleByTokenID(ctx, "3").Return(nil, nil)
		f.store.EXPECT().CreateVehicleMint(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, input store.CreateVehicleMintInput) (bool, *schema.VehicleProfile, error) {
				assert.Equal(t, "Mazda", input.Vehicle.Make)
				assert.Equal(t, "RX-7", input.Vehicle.Model)
				return true, &input.Vehicle, nil
			})
		f.store.EXPECT().UpdateEventStatus(ctx, "ev-3", domain.EventStatusCompleted, nil).Return(nil)

		processed, err := f.svc.ProcessPendingEvents(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, processed)
	})
}

func TestResetFailedEvents(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.store.EXPECT().ResetFailedEvents(ctx).Return(int64(3), nil)

	n, err := f.svc.ResetFailedEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
