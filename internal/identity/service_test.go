package identity_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/identity"
	"github.com/ThePeregrineCo/carstarz-registry/internal/mocks"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store/schema"
)

const (
	testWallet      = "0xAbCd000000000000000000000000000000000001"
	testWalletNorm  = "0xabcd000000000000000000000000000000000001"
	otherWallet     = "0xAbCd000000000000000000000000000000000002"
	otherWalletNorm = "0xabcd000000000000000000000000000000000002"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("creates identity with normalized wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetIdentityByWallet(ctx, testWalletNorm).Return(nil, nil)
		mockStore.EXPECT().CreateIdentity(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, identity *schema.IdentityProfile) error {
				assert.Equal(t, testWallet, identity.WalletAddress)
				assert.Equal(t, testWalletNorm, identity.NormalizedWallet)
				identity.ID = "id-1"
				return nil
			})

		svc := identity.NewService(mockStore)
		created, err := svc.CreateIdentity(ctx, identity.CreateInput{
			WalletAddress: testWallet,
			DisplayName:   "Driver",
		})
		require.NoError(t, err)
		assert.Equal(t, "id-1", created.ID)
	})

	t.Run("rejects second identity for same wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetIdentityByWallet(ctx, testWalletNorm).
			Return(&schema.IdentityProfile{ID: "existing"}, nil)

		svc := identity.NewService(mockStore)
		created, err := svc.CreateIdentity(ctx, identity.CreateInput{WalletAddress: testWallet})
		assert.ErrorIs(t, err, domain.ErrIdentityExists)
		assert.Nil(t, created)
	})

	t.Run("rejects taken username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetIdentityByWallet(ctx, testWalletNorm).Return(nil, nil)
		mockStore.EXPECT().GetIdentityByUsername(ctx, "taken").
			Return(&schema.IdentityProfile{ID: "other"}, nil)

		svc := identity.NewService(mockStore)
		created, err := svc.CreateIdentity(ctx, identity.CreateInput{
			WalletAddress: testWallet,
			Username:      strPtr("taken"),
		})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
		assert.Nil(t, created)
	})

	t.Run("rejects malformed wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := identity.NewService(mocks.NewMockStore(ctrl))
		created, err := svc.CreateIdentity(ctx, identity.CreateInput{WalletAddress: "not-a-wallet"})
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestUpdateIdentity(t *testing.T) {
	ctx := context.Background()

	existing := &schema.IdentityProfile{
		ID:               "id-1",
		WalletAddress:    testWallet,
		NormalizedWallet: testWalletNorm,
		DisplayName:      "Driver",
	}

	t.Run("owner can update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetIdentityByID(ctx, "id-1").Return(existing, nil)
		mockStore.EXPECT().UpdateIdentity(ctx, "id-1", store.UpdateIdentityInput{
			Bio: strPtr("new bio"),
		}).Return(nil)
		updated := *existing
		updated.Bio = "new bio"
		mockStore.EXPECT().GetIdentityByID(ctx, "id-1").Return(&updated, nil)

		svc := identity.NewService(mockStore)
		got, err := svc.UpdateIdentity(ctx, "id-1", testWallet, identity.UpdateInput{
			Bio: strPtr("new bio"),
		})
		require.NoError(t, err)
		assert.Equal(t, "new bio", got.Bio)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetIdentityByID(ctx, "id-1").Return(existing, nil)

		svc := identity.NewService(mockStore)
		got, err := svc.UpdateIdentity(ctx, "id-1", otherWallet, identity.UpdateInput{
			Bio: strPtr("hijack"),
		})
		assert.ErrorIs(t, err, domain.ErrNotOwner)
		assert.Nil(t, got)
	})

	t.Run("username collision with another identity is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetIdentityByID(ctx, "id-1").Return(existing, nil)
		mockStore.EXPECT().GetIdentityByUsername(ctx, "wanted").
			Return(&schema.IdentityProfile{ID: "id-2"}, nil)

		svc := identity.NewService(mockStore)
		got, err := svc.UpdateIdentity(ctx, "id-1", testWallet, identity.UpdateInput{
			Username: strPtr("wanted"),
		})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
		assert.Nil(t, got)
	})

	t.Run("keeping own username is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetIdentityByID(ctx, "id-1").Return(existing, nil)
		mockStore.EXPECT().GetIdentityByUsername(ctx, "mine").
			Return(&schema.IdentityProfile{ID: "id-1"}, nil)
		mockStore.EXPECT().UpdateIdentity(ctx, "id-1", gomock.Any()).Return(nil)
		mockStore.EXPECT().GetIdentityByID(ctx, "id-1").Return(existing, nil)

		svc := identity.NewService(mockStore)
		_, err := svc.UpdateIdentity(ctx, "id-1", testWallet, identity.UpdateInput{
			Username: strPtr("mine"),
		})
		require.NoError(t, err)
	})

	t.Run("unknown identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetIdentityByID(ctx, "missing").Return(nil, nil)

		svc := identity.NewService(mockStore)
		got, err := svc.UpdateIdentity(ctx, "missing", testWallet, identity.UpdateInput{})
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
		assert.Nil(t, got)
	})
}

func TestFollow(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes both wallets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().CreateFollow(ctx, testWalletNorm, otherWalletNorm).Return(nil)

		svc := identity.NewService(mockStore)
		require.NoError(t, svc.Follow(ctx, testWallet, otherWallet))
	})

	t.Run("self-follow is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := identity.NewService(mocks.NewMockStore(ctrl))
		err := svc.Follow(ctx, testWallet, testWallet)
		assert.Error(t, err)
	})

	t.Run("duplicate follow surfaces sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().CreateFollow(ctx, testWalletNorm, otherWalletNorm).
			Return(domain.ErrAlreadyFollowing)

		svc := identity.NewService(mockStore)
		err := svc.Follow(ctx, testWallet, otherWallet)
		assert.ErrorIs(t, err, domain.ErrAlreadyFollowing)
	})
}
