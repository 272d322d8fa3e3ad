package identity

import (
	"context"
	"fmt"

	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store/schema"
)

// CreateInput holds the fields accepted when registering an identity
type CreateInput struct {
	WalletAddress   string
	Username        *string
	DisplayName     string
	Bio             string
	ProfileImageURL string
}

// UpdateInput holds the fields accepted when updating an identity.
// Nil means unchanged.
type UpdateInput struct {
	Username        *string
	DisplayName     *string
	Bio             *string
	ProfileImageURL *string
	ENSName         *string
}

// Service manages wallet identity profiles and the follow graph
//
//go:generate mockgen -source=service.go -destination=../mocks/identity_service.go -package=mocks -mock_names=Service=MockIdentityService
type Service interface {
	// CreateIdentity registers a profile for a wallet. At most one identity
	// per normalized wallet; usernames are globally unique.
	CreateIdentity(ctx context.Context, input CreateInput) (*schema.IdentityProfile, error)

	// UpdateIdentity applies updates to the identity owned by callerWallet
	UpdateIdentity(ctx context.Context, id string, callerWallet string, input UpdateInput) (*schema.IdentityProfile, error)

	GetByWallet(ctx context.Context, wallet string) (*schema.IdentityProfile, error)
	GetByUsername(ctx context.Context, username string) (*schema.IdentityProfile, error)
	GetByID(ctx context.Context, id string) (*schema.IdentityProfile, error)

	// Follow records that followerWallet follows followedWallet
	Follow(ctx context.Context, followerWallet, followedWallet string) error
	Unfollow(ctx context.Context, followerWallet, followedWallet string) error
	ListFollowers(ctx context.Context, wallet string, limit, offset int) ([]schema.Follow, error)
	ListFollowing(ctx context.Context, wallet string, limit, offset int) ([]schema.Follow, error)
}

type service struct {
	store store.Store
}

// NewService creates an identity service backed by the given store
func NewService(s store.Store) Service {
	return &service{store: s}
}

func (s *service) CreateIdentity(ctx context.Context, input CreateInput) (*schema.IdentityProfile, error) {
	if !domain.IsValidWallet(input.WalletAddress) {
		return nil, fmt.Errorf("invalid wallet address: %s", input.WalletAddress)
	}

	normalized := domain.NormalizeWallet(input.WalletAddress)

	existing, err := s.store.GetIdentityByWallet(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing identity: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrIdentityExists
	}

	if input.Username != nil && *input.Username != "" {
		taken, err := s.store.GetIdentityByUsername(ctx, *input.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken != nil {
			return nil, domain.ErrUsernameTaken
		}
	}

	identity := &schema.IdentityProfile{
		WalletAddress:    input.WalletAddress,
		NormalizedWallet: normalized,
		Username:         input.Username,
		DisplayName:      input.DisplayName,
		Bio:              input.Bio,
		ProfileImageURL:  input.ProfileImageURL,
	}

	if err := s.store.CreateIdentity(ctx, identity); err != nil {
		return nil, err
	}

	return identity, nil
}

func (s *service) UpdateIdentity(ctx context.Context, id string, callerWallet string, input UpdateInput) (*schema.IdentityProfile, error) {
	identity, err := s.store.GetIdentityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrIdentityNotFound
	}

	if identity.NormalizedWallet != domain.NormalizeWallet(callerWallet) {
		return nil, domain.ErrNotOwner
	}

	if input.Username != nil && *input.Username != "" {
		taken, err := s.store.GetIdentityByUsername(ctx, *input.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken != nil && taken.ID != id {
			return nil, domain.ErrUsernameTaken
		}
	}

	err = s.store.UpdateIdentity(ctx, id, store.UpdateIdentityInput{
		Username:        input.Username,
		DisplayName:     input.DisplayName,
		Bio:             input.Bio,
		ProfileImageURL: input.ProfileImageURL,
		ENSName:         input.ENSName,
	})
	if err != nil {
		return nil, err
	}

	return s.store.GetIdentityByID(ctx, id)
}

func (s *service) GetByWallet(ctx context.Context, wallet string) (*schema.IdentityProfile, error) {
	return s.store.GetIdentityByWallet(ctx, domain.NormalizeWallet(wallet))
}

func (s *service) GetByUsername(ctx context.Context, username string) (*schema.IdentityProfile, error) {
	return s.store.GetIdentityByUsername(ctx, username)
}

func (s *service) GetByID(ctx context.Context, id string) (*schema.IdentityProfile, error) {
	return s.store.GetIdentityByID(ctx, id)
}

func (s *service) Follow(ctx context.Context, followerWallet, followedWallet string) error {
	follower := domain.NormalizeWallet(followerWallet)
	followed := domain.NormalizeWallet(followedWallet)

	if !domain.IsValidWallet(follower) || !domain.IsValidWallet(followed) {
		return fmt.Errorf("invalid wallet address")
	}
	if follower == followed {
		return fmt.Errorf("cannot follow own wallet")
	}

	return s.store.CreateFollow(ctx, follower, followed)
}

func (s *service) Unfollow(ctx context.Context, followerWallet, followedWallet string) error {
	return s.store.DeleteFollow(ctx,
		domain.NormalizeWallet(followerWallet),
		domain.NormalizeWallet(followedWallet))
}

func (s *service) ListFollowers(ctx context.Context, wallet string, limit, offset int) ([]schema.Follow, error) {
	return s.store.ListFollowers(ctx, domain.NormalizeWallet(wallet), limit, offset)
}

func (s *service) ListFollowing(ctx context.Context, wallet string, limit, offset int) ([]schema.Follow, error) {
	return s.store.ListFollowing(ctx, domain.NormalizeWallet(wallet), limit, offset)
}
