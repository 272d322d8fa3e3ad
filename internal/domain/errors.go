package domain

import "errors"

// Sentinel errors returned by the service layer. Callers match them with
// errors.Is instead of inspecting error message substrings.
var (
	// ErrIdentityExists is returned when a wallet already has an identity profile
	ErrIdentityExists = errors.New("wallet already has an identity profile")

	// ErrUsernameTaken is returned when the requested username is already in use
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrIdentityNotFound is returned when no identity profile matches the lookup
	ErrIdentityNotFound = errors.New("identity profile not found")

	// ErrNoIdentity is returned when an operation requires the wallet to have
	// registered an identity profile first
	ErrNoIdentity = errors.New("wallet has no identity profile")

	// ErrVehicleExists is returned when a vehicle profile already exists for a token
	ErrVehicleExists = errors.New("vehicle profile already exists for token")

	// ErrVehicleNotFound is returned when no vehicle profile matches the lookup
	ErrVehicleNotFound = errors.New("vehicle profile not found")

	// ErrNotOwner is returned when the caller wallet does not own the resource
	ErrNotOwner = errors.New("wallet does not own this resource")

	// ErrEventNotFound is returned when a blockchain event record is not found
	ErrEventNotFound = errors.New("blockchain event not found")

	// ErrAlreadyFollowing is returned when the follow pair already exists
	ErrAlreadyFollowing = errors.New("already following this wallet")

	// ErrSubscriptionFailed is returned when subscription to chain events fails
	ErrSubscriptionFailed = errors.New("subscription failed")
)
