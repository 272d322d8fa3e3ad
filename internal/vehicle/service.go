package vehicle

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store/schema"
)

// CreateInput holds the fields accepted when creating a vehicle profile
type CreateInput struct {
	TokenID     string
	OwnerWallet string
	TxHash      string
	Make        string
	Model       string
	Year        int
	VIN         string
	Name        string
	Description string
	ImageURL    string
}

// UpdateInput holds the profile fields accepted on update. Nil means
// unchanged.
type UpdateInput struct {
	Make        *string
	Model       *string
	Year        *int
	VIN         *string
	Name        *string
	Description *string
}

// MediaInput holds an attachment for a vehicle profile. Either URL or
// base64-encoded Data must be set.
type MediaInput struct {
	URL        string
	Data       string
	Caption    string
	IsFeatured bool
}

// Service manages vehicle profiles and their media
//
//go:generate mockgen -source=service.go -destination=../mocks/vehicle_service.go -package=mocks -mock_names=Service=MockVehicleService
type Service interface {
	// CreateVehicle creates a profile for a minted token. The owner wallet
	// must already have an identity.
	CreateVehicle(ctx context.Context, input CreateInput) (*schema.VehicleProfile, error)

	GetByTokenID(ctx context.Context, tokenID string) (*schema.VehicleProfile, error)
	GetByID(ctx context.Context, id string) (*schema.VehicleProfile, error)

	// ListByOwnerWallet lists vehicles owned by the identity of a wallet
	ListByOwnerWallet(ctx context.Context, wallet string, limit, offset int) ([]*schema.VehicleProfile, error)

	// UpdateVehicle applies profile updates; only the owner wallet may write
	UpdateVehicle(ctx context.Context, tokenID string, callerWallet string, input UpdateInput) (*schema.VehicleProfile, error)

	// TransferOwnership re-points ownership to the identity of toWallet.
	// Fails without touching the profile when toWallet has no identity.
	TransferOwnership(ctx context.Context, tokenID, toWallet, txHash string) error

	// AddMedia attaches an image to a vehicle profile, owner only
	AddMedia(ctx context.Context, tokenID string, callerWallet string, input MediaInput) (*schema.VehicleMedia, error)
	ListMedia(ctx context.Context, tokenID string) ([]schema.VehicleMedia, error)
	DeleteMedia(ctx context.Context, tokenID string, callerWallet string, mediaID string) error
}

type service struct {
	store store.Store
}

// NewService creates a vehicle service backed by the given store
func NewService(s store.Store) Service {
	return &service{store: s}
}

func (s *service) CreateVehicle(ctx context.Context, input CreateInput) (*schema.VehicleProfile, error) {
	owner, err := s.store.GetIdentityByWallet(ctx, domain.NormalizeWallet(input.OwnerWallet))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner identity: %w", err)
	}
	if owner == nil {
		return nil, domain.ErrNoIdentity
	}

	existing, err := s.store.GetVehicleByTokenID(ctx, input.TokenID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrVehicleExists
	}

	var media *schema.VehicleMedia
	if input.ImageURL != "" {
		media = &schema.VehicleMedia{
			URL:        input.ImageURL,
			IsFeatured: true,
		}
	}

	created, vehicle, err := s.store.CreateVehicleMint(ctx, store.CreateVehicleMintInput{
		Vehicle: schema.VehicleProfile{
			TokenID:     input.TokenID,
			OwnerID:     owner.ID,
			Make:        input.Make,
			Model:       input.Model,
			Year:        input.Year,
			VIN:         input.VIN,
			Name:        input.Name,
			Description: input.Description,
		},
		ActorWallet: &owner.NormalizedWallet,
		TxHash:      input.TxHash,
		Media:       media,
	})
	if err != nil {
		return nil, err
	}
	if !created {
		// Lost a race with the event pipeline for the same token
		return nil, domain.ErrVehicleExists
	}

	return vehicle, nil
}

func (s *service) GetByTokenID(ctx context.Context, tokenID string) (*schema.VehicleProfile, error) {
	return s.store.GetVehicleByTokenID(ctx, tokenID)
}

func (s *service) GetByID(ctx context.Context, id string) (*schema.VehicleProfile, error) {
	return s.store.GetVehicleByID(ctx, id)
}

func (s *service) ListByOwnerWallet(ctx context.Context, wallet string, limit, offset int) ([]*schema.VehicleProfile, error) {
	owner, err := s.store.GetIdentityByWallet(ctx, domain.NormalizeWallet(wallet))
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNoIdentity
	}

	return s.store.ListVehiclesByOwner(ctx, owner.ID, limit, offset)
}

func (s *service) UpdateVehicle(ctx context.Context, tokenID string, callerWallet string, input UpdateInput) (*schema.VehicleProfile, error) {
	vehicle, err := s.requireOwnership(ctx, tokenID, callerWallet)
	if err != nil {
		return nil, err
	}

	actor := domain.NormalizeWallet(callerWallet)
	err = s.store.UpdateVehicle(ctx, vehicle.ID, store.UpdateVehicleInput{
		Make:        input.Make,
		Model:       input.Model,
		Year:        input.Year,
		VIN:         input.VIN,
		Name:        input.Name,
		Description: input.Description,
	}, &actor)
	if err != nil {
		return nil, err
	}

	return s.store.GetVehicleByTokenID(ctx, tokenID)
}

func (s *service) TransferOwnership(ctx context.Context, tokenID, toWallet, txHash string) error {
	target, err := s.store.GetIdentityByWallet(ctx, domain.NormalizeWallet(toWallet))
	if err != nil {
		return fmt.Errorf("failed to resolve target identity: %w", err)
	}
	if target == nil {
		return domain.ErrNoIdentity
	}

	return s.store.TransferVehicleOwner(ctx, tokenID, target.ID, &target.NormalizedWallet, txHash)
}

func (s *service) AddMedia(ctx context.Context, tokenID string, callerWallet string, input MediaInput) (*schema.VehicleMedia, error) {
	vehicle, err := s.requireOwnership(ctx, tokenID, callerWallet)
	if err != nil {
		return nil, err
	}

	media := &schema.VehicleMedia{
		VehicleID:  vehicle.ID,
		Caption:    input.Caption,
		IsFeatured: input.IsFeatured,
	}

	switch {
	case input.Data != "":
		payload, err := base64.StdEncoding.DecodeString(input.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode media data: %w", err)
		}

		mtype := mimetype.Detect(payload)
		if !strings.HasPrefix(mtype.String(), "image/") {
			return nil, fmt.Errorf("unsupported media type: %s", mtype.String())
		}

		media.ContentType = mtype.String()
		media.URL = fmt.Sprintf("data:%s;base64,%s", mtype.String(), input.Data)
	case input.URL != "":
		// Remote asset, content type unknown until fetched
		media.URL = input.URL
	default:
		return nil, fmt.Errorf("media requires a url or data payload")
	}

	if err := s.store.CreateVehicleMedia(ctx, media); err != nil {
		return nil, err
	}

	return media, nil
}

func (s *service) ListMedia(ctx context.Context, tokenID string) ([]schema.VehicleMedia, error) {
	vehicle, err := s.store.GetVehicleByTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrVehicleNotFound
	}

	return s.store.ListVehicleMedia(ctx, vehicle.ID)
}

func (s *service) DeleteMedia(ctx context.Context, tokenID string, callerWallet string, mediaID string) error {
	vehicle, err := s.requireOwnership(ctx, tokenID, callerWallet)
	if err != nil {
		return err
	}

	return s.store.DeleteVehicleMedia(ctx, vehicle.ID, mediaID)
}

// requireOwnership resolves the vehicle and checks that callerWallet is the
// current owner's wallet
func (s *service) requireOwnership(ctx context.Context, tokenID string, callerWallet string) (*schema.VehicleProfile, error) {
	vehicle, err := s.store.GetVehicleByTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrVehicleNotFound
	}

	owner, err := s.store.GetIdentityByID(ctx, vehicle.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil || owner.NormalizedWallet != domain.NormalizeWallet(callerWallet) {
		return nil, domain.ErrNotOwner
	}

	return vehicle, nil
}
