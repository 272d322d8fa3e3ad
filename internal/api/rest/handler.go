package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ThePeregrineCo/carstarz-registry/internal/api/middleware"
	"github.com/ThePeregrineCo/carstarz-registry/internal/event"
	"github.com/ThePeregrineCo/carstarz-registry/internal/identity"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store/schema"
	"github.com/ThePeregrineCo/carstarz-registry/internal/vehicle"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// IngestEvent ingests a normalized blockchain event
	// POST /api/v1/blockchain-events
	IngestEvent(c *gin.Context)

	// SweepPendingEvents runs a pending-event sweep
	// GET /api/v1/blockchain-events?limit=<limit>
	SweepPendingEvents(c *gin.Context)

	// GetEvent retrieves a stored event row
	// GET /api/v1/blockchain-events/:id
	GetEvent(c *gin.Context)

	// ResetFailedEvents re-queues failed events (requires authentication)
	// POST /api/v1/blockchain-events/reset
	ResetFailedEvents(c *gin.Context)

	// ServerMint ingests a mint confirmation from the minting client
	// POST /api/v1/process-events
	ServerMint(c *gin.Context)

	// CreateProfile registers an identity for the caller's wallet
	// POST /api/v1/profiles
	CreateProfile(c *gin.Context)

	// GetProfile looks up an identity by wallet or username
	// GET /api/v1/profiles?wallet=<address>|username=<username>
	GetProfile(c *gin.Context)

	// GetProfileByID retrieves an identity by its ID
	// GET /api/v1/profiles/:id
	GetProfileByID(c *gin.Context)

	// UpdateProfile updates the caller's identity
	// PATCH /api/v1/profiles/:id
	UpdateProfile(c *gin.Context)

	// Follow records that the caller follows another wallet
	// POST /api/v1/follows
	Follow(c *gin.Context)

	// Unfollow removes a follow edge
	// DELETE /api/v1/follows/:wallet
	Unfollow(c *gin.Context)

	// ListFollows lists followers of or wallets followed by a wallet
	// GET /api/v1/follows?wallet=<address>&direction=followers|following&limit=<limit>&offset=<offset>
	ListFollows(c *gin.Context)

	// ListVehicles lists vehicles owned by a wallet's identity
	// GET /api/v1/vehicles?owner=<address>&limit=<limit>&offset=<offset>
	ListVehicles(c *gin.Context)

	// CreateVehicle creates a vehicle profile for a minted token
	// POST /api/v1/vehicles
	CreateVehicle(c *gin.Context)

	// GetVehicle retrieves a vehicle profile by token ID
	// GET /api/v1/vehicles/:token_id
	GetVehicle(c *gin.Context)

	// UpdateVehicle updates a vehicle profile, owner only
	// PATCH /api/v1/vehicles/:token_id
	UpdateVehicle(c *gin.Context)

	// TransferVehicle re-points vehicle ownership
	// POST /api/v1/vehicles/:token_id/transfer
	TransferVehicle(c *gin.Context)

	// ListMedia lists a vehicle's media
	// GET /api/v1/vehicles/:token_id/media
	ListMedia(c *gin.Context)

	// AddMedia attaches media to a vehicle, owner only
	// POST /api/v1/vehicles/:token_id/media
	AddMedia(c *gin.Context)

	// DeleteMedia removes a media row, owner only
	// DELETE /api/v1/vehicles/:token_id/media/:media_id
	DeleteMedia(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	identities identity.Service
	vehicles   vehicle.Service
	events     event.Service
}

// NewHandler creates a new REST API handler
func NewHandler(identities identity.Service, vehicles vehicle.Service, events event.Service) Handler {
	return &handler{
		identities: identities,
		vehicles:   vehicles,
		events:     events,
	}
}

// IngestEvent ingests a normalized blockchain event. The processing outcome
// is folded into the returned row's status, so a business failure still
// answers 200 with status=failed.
func (h *handler) IngestEvent(c *gin.Context) {
	var req IngestEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	chainEvent, err := req.ToChainEvent()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	row, err := h.events.ProcessEvent(c.Request.Context(), chainEvent)
	if err != nil && row == nil {
		respondInternalError(c, err, "Failed to ingest event")
		return
	}

	c.JSON(http.StatusOK, row)
}

// SweepPendingEvents runs a bounded pending-event sweep
func (h *handler) SweepPendingEvents(c *gin.Context) {
	limit, err := parseLimit(c, event.DefaultSweepLimit)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	processed, err := h.events.ProcessPendingEvents(c.Request.Context(), limit)
	if err != nil {
		respondInternalError(c, err, "Failed to process pending events")
		return
	}

	c.JSON(http.StatusOK, SweepResponse{ProcessedCount: processed})
}

// GetEvent retrieves a stored event row
func (h *handler) GetEvent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	row, err := h.events.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get event")
		return
	}
	if row == nil {
		respondNotFound(c, "Event not found")
		return
	}

	c.JSON(http.StatusOK, row)
}

// ResetFailedEvents re-queues failed events for the next sweep
func (h *handler) ResetFailedEvents(c *gin.Context) {
	count, err := h.events.ResetFailedEvents(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to reset failed events")
		return
	}

	c.JSON(http.StatusOK, ResetResponse{ResetCount: count})
}

// ServerMint ingests a mint confirmation from the minting client
func (h *handler) ServerMint(c *gin.Context) {
	var req ServerMintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	row, err := h.events.ProcessMintServerSide(c.Request.Context(), req.ToInput())
	if err != nil && row == nil {
		respondDomainError(c, err, "Failed to process mint confirmation")
		return
	}

	c.JSON(http.StatusOK, row)
}

// CreateProfile registers an identity for the caller's wallet
func (h *handler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	profile, err := h.identities.CreateIdentity(c.Request.Context(), req.ToInput(middleware.CallerWallet(c)))
	if err != nil {
		respondDomainError(c, err, "Failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetProfile looks up an identity by wallet or username
func (h *handler) GetProfile(c *gin.Context) {
	wallet := c.Query("wallet")
	username := c.Query("username")

	if wallet == "" && username == "" {
		respondBadRequest(c, "One of wallet or username is required")
		return
	}

	var profile *schema.IdentityProfile
	var err error
	if wallet != "" {
		profile, err = h.identities.GetByWallet(c.Request.Context(), wallet)
	} else {
		profile, err = h.identities.GetByUsername(c.Request.Context(), username)
	}
	if err != nil {
		respondInternalError(c, err, "Failed to get profile")
		return
	}

	h.respondProfile(c, profile)
}

// GetProfileByID retrieves an identity by its ID
func (h *handler) GetProfileByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Profile ID is required")
		return
	}

	profile, err := h.identities.GetByID(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get profile")
		return
	}

	h.respondProfile(c, profile)
}

// UpdateProfile updates the caller's identity
func (h *handler) UpdateProfile(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Profile ID is required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	profile, err := h.identities.UpdateIdentity(c.Request.Context(), id, middleware.CallerWallet(c), req.ToInput())
	if err != nil {
		respondDomainError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Follow records that the caller follows another wallet
func (h *handler) Follow(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.identities.Follow(c.Request.Context(), middleware.CallerWallet(c), req.FollowedWallet); err != nil {
		respondDomainError(c, err, "Failed to follow wallet")
		return
	}

	c.Status(http.StatusNoContent)
}

// Unfollow removes a follow edge
func (h *handler) Unfollow(c *gin.Context) {
	followed := c.Param("wallet")
	if followed == "" {
		respondBadRequest(c, "Wallet is required")
		return
	}

	if err := h.identities.Unfollow(c.Request.Context(), middleware.CallerWallet(c), followed); err != nil {
		respondDomainError(c, err, "Failed to unfollow wallet")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListFollows lists followers of or wallets followed by a wallet
func (h *handler) ListFollows(c *gin.Context) {
	wallet := c.Query("wallet")
	if wallet == "" {
		respondBadRequest(c, "wallet is required")
		return
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	direction := c.DefaultQuery("direction", "followers")
	switch direction {
	case "followers":
		follows, err := h.identities.ListFollowers(c.Request.Context(), wallet, limit, offset)
		if err != nil {
			respondInternalError(c, err, "Failed to list followers")
			return
		}
		c.JSON(http.StatusOK, follows)
	case "following":
		follows, err := h.identities.ListFollowing(c.Request.Context(), wallet, limit, offset)
		if err != nil {
			respondInternalError(c, err, "Failed to list following")
			return
		}
		c.JSON(http.StatusOK, follows)
	default:
		respondValidationError(c, "direction must be followers or following")
	}
}

// ListVehicles lists vehicles owned by a wallet's identity
func (h *handler) ListVehicles(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		respondBadRequest(c, "owner is required")
		return
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	vehicles, err := h.vehicles.ListByOwnerWallet(c.Request.Context(), owner, limit, offset)
	if err != nil {
		respondDomainError(c, err, "Failed to list vehicles")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle creates a vehicle profile for a minted token
func (h *handler) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	profile, err := h.vehicles.CreateVehicle(c.Request.Context(), req.ToInput(middleware.CallerWallet(c)))
	if err != nil {
		respondDomainError(c, err, "Failed to create vehicle")
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetVehicle retrieves a vehicle profile by token ID
func (h *handler) GetVehicle(c *gin.Context) {
	tokenID := c.Param("token_id")
	if tokenID == "" {
		respondBadRequest(c, "Token ID is required")
		return
	}

	profile, err := h.vehicles.GetByTokenID(c.Request.Context(), tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to get vehicle")
		return
	}
	if profile == nil {
		respondNotFound(c, "Vehicle not found")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateVehicle updates a vehicle profile, owner only
func (h *handler) UpdateVehicle(c *gin.Context) {
	tokenID := c.Param("token_id")

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	profile, err := h.vehicles.UpdateVehicle(c.Request.Context(), tokenID, middleware.CallerWallet(c), req.ToInput())
	if err != nil {
		respondDomainError(c, err, "Failed to update vehicle")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// TransferVehicle re-points vehicle ownership
func (h *handler) TransferVehicle(c *gin.Context) {
	tokenID := c.Param("token_id")

	var req TransferVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.vehicles.TransferOwnership(c.Request.Context(), tokenID, req.ToWallet, req.TxHash); err != nil {
		respondDomainError(c, err, "Failed to transfer vehicle")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMedia lists a vehicle's media
func (h *handler) ListMedia(c *gin.Context) {
	tokenID := c.Param("token_id")

	media, err := h.vehicles.ListMedia(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err, "Failed to list media")
		return
	}

	c.JSON(http.StatusOK, media)
}

// AddMedia attaches media to a vehicle, owner only
func (h *handler) AddMedia(c *gin.Context) {
	tokenID := c.Param("token_id")

	var req AddMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	media, err := h.vehicles.AddMedia(c.Request.Context(), tokenID, middleware.CallerWallet(c), req.ToInput())
	if err != nil {
		respondDomainError(c, err, "Failed to add media")
		return
	}

	c.JSON(http.StatusCreated, media)
}

// DeleteMedia removes a media row, owner only
func (h *handler) DeleteMedia(c *gin.Context) {
	tokenID := c.Param("token_id")
	mediaID := c.Param("media_id")

	if err := h.vehicles.DeleteMedia(c.Request.Context(), tokenID, middleware.CallerWallet(c), mediaID); err != nil {
		respondDomainError(c, err, "Failed to delete media")
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "carstarz-registry-api",
	})
}

// respondProfile answers a profile lookup, mapping nil to 404
func (h *handler) respondProfile(c *gin.Context, profile *schema.IdentityProfile) {
	if profile == nil {
		respondNotFound(c, "Profile not found")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// parseLimit parses an optional limit query parameter
func parseLimit(c *gin.Context, fallback int) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("limit must be a positive integer")
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return limit, nil
}

// parsePagination parses optional limit and offset query parameters
func parsePagination(c *gin.Context) (limit int, offset int, err error) {
	limit, err = parseLimit(c, defaultPageLimit)
	if err != nil {
		return 0, 0, err
	}

	rawOffset := c.Query("offset")
	if rawOffset != "" {
		offset, err = strconv.Atoi(rawOffset)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("offset must be a non-negative integer")
		}
	}

	return limit, offset, nil
}
