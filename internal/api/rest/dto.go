package rest

import (
	"fmt"
	"time"

	apierrors "github.com/ThePeregrineCo/carstarz-registry/internal/api/shared/errors"
	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/event"
	"github.com/ThePeregrineCo/carstarz-registry/internal/identity"
	"github.com/ThePeregrineCo/carstarz-registry/internal/vehicle"
)

// IngestEventRequest represents the request body for ingesting a blockchain event
type IngestEventRequest struct {
	EventType   string              `json:"event_type"`
	TokenID     string              `json:"token_id"`
	FromAddress *string             `json:"from_address,omitempty"`
	ToAddress   *string             `json:"to_address,omitempty"`
	TxHash      string              `json:"tx_hash"`
	BlockNumber uint64              `json:"block_number,omitempty"`
	Timestamp   *time.Time          `json:"timestamp,omitempty"`
	Vehicle     *domain.VehicleData `json:"vehicle,omitempty"`
}

// ToChainEvent converts the request into the normalized event format,
// validating per-event-type field requirements
func (r *IngestEventRequest) ToChainEvent() (*domain.ChainEvent, error) {
	chainEvent := &domain.ChainEvent{
		EventType:   domain.EventType(r.EventType),
		TokenID:     r.TokenID,
		FromAddress: r.FromAddress,
		ToAddress:   r.ToAddress,
		TxHash:      r.TxHash,
		BlockNumber: r.BlockNumber,
		Vehicle:     r.Vehicle,
	}

	if r.Timestamp != nil {
		chainEvent.Timestamp = *r.Timestamp
	} else {
		chainEvent.Timestamp = time.Now().UTC()
	}

	if !chainEvent.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid %s event: check token_id, tx_hash and addresses", r.EventType))
	}

	return chainEvent, nil
}

// ServerMintRequest represents a mint confirmation submitted by the minting client
type ServerMintRequest struct {
	TokenID     string              `json:"token_id"`
	TxHash      string              `json:"tx_hash"`
	OwnerWallet string              `json:"owner_wallet,omitempty"`
	IdentityID  string              `json:"identity_id,omitempty"`
	VehicleData *domain.VehicleData `json:"vehicle_data,omitempty"`
}

// Validate validates the request body
func (r *ServerMintRequest) Validate() error {
	if r.TokenID == "" {
		return apierrors.NewValidationError("token_id is required")
	}
	if r.TxHash == "" {
		return apierrors.NewValidationError("tx_hash is required")
	}
	if r.OwnerWallet == "" && r.IdentityID == "" {
		return apierrors.NewValidationError("one of owner_wallet or identity_id is required")
	}
	if r.OwnerWallet != "" && !domain.IsValidWallet(r.OwnerWallet) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid owner_wallet: %s", r.OwnerWallet))
	}
	return nil
}

// ToInput converts the request into the event service input
func (r *ServerMintRequest) ToInput() event.ServerMintInput {
	return event.ServerMintInput{
		TokenID:     r.TokenID,
		TxHash:      r.TxHash,
		OwnerWallet: r.OwnerWallet,
		IdentityID:  r.IdentityID,
		Vehicle:     r.VehicleData,
	}
}

// CreateProfileRequest represents the request body for registering an identity
type CreateProfileRequest struct {
	Username        *string `json:"username,omitempty"`
	DisplayName     string  `json:"display_name"`
	Bio             string  `json:"bio,omitempty"`
	ProfileImageURL string  `json:"profile_image_url,omitempty"`
}

// ToInput converts the request into the identity service input.
// The wallet comes from the request header, not the body.
func (r *CreateProfileRequest) ToInput(wallet string) identity.CreateInput {
	return identity.CreateInput{
		WalletAddress:   wallet,
		Username:        r.Username,
		DisplayName:     r.DisplayName,
		Bio:             r.Bio,
		ProfileImageURL: r.ProfileImageURL,
	}
}

// UpdateProfileRequest represents the request body for updating an identity.
// Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Username        *string `json:"username,omitempty"`
	DisplayName     *string `json:"display_name,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	ENSName         *string `json:"ens_name,omitempty"`
}

// ToInput converts the request into the identity service input
func (r *UpdateProfileRequest) ToInput() identity.UpdateInput {
	return identity.UpdateInput{
		Username:        r.Username,
		DisplayName:     r.DisplayName,
		Bio:             r.Bio,
		ProfileImageURL: r.ProfileImageURL,
		ENSName:         r.ENSName,
	}
}

// FollowRequest represents the request body for following a wallet
type FollowRequest struct {
	FollowedWallet string `json:"followed_wallet"`
}

// Validate validates the request body
func (r *FollowRequest) Validate() error {
	if r.FollowedWallet == "" {
		return apierrors.NewValidationError("followed_wallet is required")
	}
	if !domain.IsValidWallet(r.FollowedWallet) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid followed_wallet: %s", r.FollowedWallet))
	}
	return nil
}

// CreateVehicleRequest represents the request body for creating a vehicle profile
type CreateVehicleRequest struct {
	TokenID     string `json:"token_id"`
	TxHash      string `json:"tx_hash,omitempty"`
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
	Year        int    `json:"year,omitempty"`
	VIN         string `json:"vin,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Validate validates the request body
func (r *CreateVehicleRequest) Validate() error {
	if r.TokenID == "" {
		return apierrors.NewValidationError("token_id is required")
	}
	return nil
}

// ToInput converts the request into the vehicle service input
func (r *CreateVehicleRequest) ToInput(wallet string) vehicle.CreateInput {
	return vehicle.CreateInput{
		TokenID:     r.TokenID,
		OwnerWallet: wallet,
		TxHash:      r.TxHash,
		Make:        r.Make,
		Model:       r.Model,
		Year:        r.Year,
		VIN:         r.VIN,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// UpdateVehicleRequest represents the request body for updating a vehicle
// profile. Absent fields are left unchanged.
type UpdateVehicleRequest struct {
	Make        *string `json:"make,omitempty"`
	Model       *string `json:"model,omitempty"`
	Year        *int    `json:"year,omitempty"`
	VIN         *string `json:"vin,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ToInput converts the request into the vehicle service input
func (r *UpdateVehicleRequest) ToInput() vehicle.UpdateInput {
	return vehicle.UpdateInput{
		Make:        r.Make,
		Model:       r.Model,
		Year:        r.Year,
		VIN:         r.VIN,
		Name:        r.Name,
		Description: r.Description,
	}
}

// TransferVehicleRequest represents the request body for transferring a vehicle
type TransferVehicleRequest struct {
	ToWallet string `json:"to_wallet"`
	TxHash   string `json:"tx_hash,omitempty"`
}

// Validate validates the request body
func (r *TransferVehicleRequest) Validate() error {
	if r.ToWallet == "" {
		return apierrors.NewValidationError("to_wallet is required")
	}
	if !domain.IsValidWallet(r.ToWallet) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid to_wallet: %s", r.ToWallet))
	}
	return nil
}

// AddMediaRequest represents the request body for attaching vehicle media
type AddMediaRequest struct {
	URL        string `json:"url,omitempty"`
	Data       string `json:"data,omitempty"`
	Caption    string `json:"caption,omitempty"`
	IsFeatured bool   `json:"is_featured,omitempty"`
}

// Validate validates the request body
func (r *AddMediaRequest) Validate() error {
	if r.URL == "" && r.Data == "" {
		return apierrors.NewValidationError("one of url or data is required")
	}
	return nil
}

// ToInput converts the request into the vehicle service input
func (r *AddMediaRequest) ToInput() vehicle.MediaInput {
	return vehicle.MediaInput{
		URL:        r.URL,
		Data:       r.Data,
		Caption:    r.Caption,
		IsFeatured: r.IsFeatured,
	}
}

// SweepResponse reports a pending sweep outcome
type SweepResponse struct {
	ProcessedCount int `json:"processed_count"`
}

// ResetResponse reports how many failed events were re-queued
type ResetResponse struct {
	ResetCount int64 `json:"reset_count"`
}
