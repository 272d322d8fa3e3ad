package event

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/ThePeregrineCo/carstarz-registry/internal/adapter"
	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/logger"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store/schema"
)

// ServerMintInput holds the fields of a client-submitted mint confirmation
type ServerMintInput struct {
	TokenID     string
	TxHash      string
	OwnerWallet string
	// IdentityID optionally pre-resolves the owner identity; when empty the
	// owner wallet is looked up instead
	IdentityID string
	Vehicle    *domain.VehicleData
}

// Service ingests chain events and materializes them into the registry.
//
// Each event is processed synchronously inside the ingesting call: the
// returned row is already terminal (completed or failed) unless the store
// itself was unreachable. The pending queue exists for crash recovery, not
// for deferral.
//
//go:generate mockgen -source=service.go -destination=../mocks/event_service.go -package=mocks -mock_names=Service=MockEventService
type Service interface {
	// ProcessMintEvent ingests a mint event. Processing errors are folded
	// into the returned row's status; the error return is reserved for
	// ingestion failures (the event row could not be written).
	ProcessMintEvent(ctx context.Context, event *domain.ChainEvent) (*schema.BlockchainEvent, error)

	// ProcessTransferEvent ingests an ownership transfer event
	ProcessTransferEvent(ctx context.Context, event *domain.ChainEvent) (*schema.BlockchainEvent, error)

	// ProcessBurnEvent ingests a burn event
	ProcessBurnEvent(ctx context.Context, event *domain.ChainEvent) (*schema.BlockchainEvent, error)

	// ProcessEvent dispatches on the event type
	ProcessEvent(ctx context.Context, event *domain.ChainEvent) (*schema.BlockchainEvent, error)

	// ProcessMintServerSide ingests a mint confirmation submitted by the
	// minting client rather than observed on chain
	ProcessMintServerSide(ctx context.Context, input ServerMintInput) (*schema.BlockchainEvent, error)

	// ProcessPendingEvents re-processes up to limit pending events, oldest
	// first, and returns the number that completed. Per-event failures are
	// recorded on the row and do not abort the batch.
	ProcessPendingEvents(ctx context.Context, limit int) (int, error)

	// ProcessStoredEvent re-processes a single stored event row. The
	// outcome is written back to row.Status; undecodable rows are marked
	// failed without retry.
	ProcessStoredEvent(ctx context.Context, row *schema.BlockchainEvent)

	// ResetFailedEvents re-queues failed events to pending. The sweep never
	// retries failed rows on its own; this is the operator path.
	ResetFailedEvents(ctx context.Context) (int64, error)

	// GetEvent returns a stored event row
	GetEvent(ctx context.Context, id string) (*schema.BlockchainEvent, error)
}

// DefaultSweepLimit bounds a pending sweep batch
const DefaultSweepLimit = 10

type service struct {
	store store.Store
	json  adapter.JSON
	clock adapter.Clock
}

// NewService creates an event service backed by the given store
func NewService(s store.Store, jsonAdapter adapter.JSON, clock adapter.Clock) Service {
	return &service{store: s, json: jsonAdapter, clock: clock}
}

func (s *service) ProcessEvent(ctx context.Context, event *domain.ChainEvent) (*schema.BlockchainEvent, error) {
	switch event.EventType {
	case domain.EventTypeMint:
		return s.ProcessMintEvent(ctx, event)
	case domain.EventTypeTransfer:
		return s.ProcessTransferEvent(ctx, event)
	case domain.EventTypeBurn:
		return s.ProcessBurnEvent(ctx, event)
	default:
		return nil, fmt.Errorf("unknown event type: %s", event.EventType)
	}
}

func (s *service) ProcessMintEvent(ctx context.Context, event *domain.ChainEvent) (*schema.BlockchainEvent, error) {
	return s.ingest(ctx, event, s.processMint)
}

func (s *service) ProcessTransferEvent(ctx context.Context, event *domain.ChainEvent) (*schema.BlockchainEvent, error) {
	return s.ingest(ctx, event, s.processTransfer)
}

func (s *service) ProcessBurnEvent(ctx context.Context, event *domain.ChainEvent) (*schema.BlockchainEvent, error) {
	return s.ingest(ctx, event, s.processBurn)
}

// ingest writes the event row, then drives it through the state machine:
// pending -> processing -> completed | failed
func (s *service) ingest(ctx context.Context, event *domain.ChainEvent, process func(context.Context, *domain.ChainEvent) error) (*schema.BlockchainEvent, error) {
	row, err := s.createRow(ctx, event)
	if err != nil {
		return nil, err
	}

	s.run(ctx, row, event, process)
	return row, nil
}

// run transitions an already-persisted row through processing. Status update
// failures are logged but do not mask the processing outcome.
func (s *service) run(ctx context.Context, row *schema.BlockchainEvent, event *domain.ChainEvent, process func(context.Context, *domain.ChainEvent) error) {
	if err := s.store.UpdateEventStatus(ctx, row.ID, domain.EventStatusProcessing, nil); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("event_id", row.ID))
	}
	row.Status = domain.EventStatusProcessing

	if err := process(ctx, event); err != nil {
		logger.WarnCtx(ctx, "event processing failed",
			zap.String("event_id", row.ID),
			zap.String("event_type", string(event.EventType)),
			zap.String("token_id", event.TokenID),
			zap.Error(err))

		msg := err.Error()
		if updateErr := s.store.UpdateEventStatus(ctx, row.ID, domain.EventStatusFailed, &msg); updateErr != nil {
			logger.ErrorCtx(ctx, updateErr, zap.String("event_id", row.ID))
		}
		row.Status = domain.EventStatusFailed
		row.LastError = &msg
		row.RetryCount++
		return
	}

	if err := s.store.UpdateEventStatus(ctx, row.ID, domain.EventStatusCompleted, nil); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("event_id", row.ID))
	}
	row.Status = domain.EventStatusCompleted
}

func (s *service) createRow(ctx context.Context, event *domain.ChainEvent) (*schema.BlockchainEvent, error) {
	if !event.Valid() {
		return nil, fmt.Errorf("invalid %s event for token %q", event.EventType, event.TokenID)
	}

	var metadata datatypes.JSON
	if event.Vehicle != nil {
		data, err := s.json.Marshal(event.Vehicle)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal vehicle metadata: %w", err)
		}
		metadata = datatypes.JSON(data)
	}

	var blockNumber *uint64
	if event.BlockNumber > 0 {
		blockNumber = &event.BlockNumber
	}

	row := &schema.BlockchainEvent{
		EventType:   event.EventType,
		TokenID:     event.TokenID,
		FromAddress: event.FromAddress,
		ToAddress:   event.ToAddress,
		TxHash:      event.TxHash,
		BlockNumber: blockNumber,
		Metadata:    metadata,
	}

	if err := s.store.CreateBlockchainEvent(ctx, row); err != nil {
		return nil, err
	}

	return row, nil
}

// processMint materializes a vehicle profile for a freshly minted token.
// A recipient without an identity is skipped silently: the profile appears
// later when the wallet registers and the token is re-submitted. An existing
// profile for the token makes the mint a no-op.
func (s *service) processMint(ctx context.Context, event *domain.ChainEvent) error {
	recipient, err := s.store.GetIdentityByWallet(ctx, domain.NormalizeWallet(*event.ToAddress))
	if err != nil {
		return fmt.Errorf("failed to resolve recipient identity: %w", err)
	}
	if recipient == nil {
		logger.InfoCtx(ctx, "mint recipient has no identity, skipping profile creation",
			zap.String("token_id", event.TokenID),
			zap.String("to_address", *event.ToAddress))
		return nil
	}

	existing, err := s.store.GetVehicleByTokenID(ctx, event.TokenID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	return s.createProfile(ctx, event.TokenID, event.TxHash, recipient, event.Vehicle)
}

// createProfile builds the vehicle row from mint metadata, filling gaps with
// placeholders so a metadata-less mint still yields a usable profile
func (s *service) createProfile(ctx context.Context, tokenID, txHash string, owner *schema.IdentityProfile, data *domain.VehicleData) error {
	if data == nil {
		data = &domain.VehicleData{}
	}

	profile := schema.VehicleProfile{
		TokenID:     tokenID,
		OwnerID:     owner.ID,
		Make:        data.Make,
		Model:       data.Model,
		Year:        data.Year,
		VIN:         data.VIN,
		Name:        data.Name,
		Description: data.Description,
	}
	if profile.Make == "" {
		profile.Make = "Unknown"
	}
	if profile.Model == "" {
		profile.Model = "Unknown"
	}
	if profile.Year == 0 {
		profile.Year = s.clock.Now().Year()
	}
	if profile.VIN == "" {
		profile.VIN = fmt.Sprintf("AUTO-GENERATED-%s", tokenID)
	}
	if profile.Name == "" {
		profile.Name = fmt.Sprintf("Vehicle #%s", tokenID)
	}

	media, err := mintMedia(data)
	if err != nil {
		return err
	}

	_, _, err = s.store.CreateVehicleMint(ctx, store.CreateVehicleMintInput{
		Vehicle:     profile,
		ActorWallet: &owner.NormalizedWallet,
		TxHash:      txHash,
		Media:       media,
	})
	return err
}

// mintMedia builds the featured media row from mint metadata, if any.
// Base64 payloads are sniffed for an image content type.
func mintMedia(data *domain.VehicleData) (*schema.VehicleMedia, error) {
	switch {
	case data.ImageURL != "":
		return &schema.VehicleMedia{
			URL:        data.ImageURL,
			IsFeatured: true,
		}, nil
	case data.ImageData != "":
		payload, err := base64.StdEncoding.DecodeString(data.ImageData)
		if err != nil {
			return nil, fmt.Errorf("failed to decode mint image data: %w", err)
		}
		mtype := mimetype.Detect(payload)
		if !strings.HasPrefix(mtype.String(), "image/") {
			return nil, fmt.Errorf("unsupported mint image type: %s", mtype.String())
		}
		return &schema.VehicleMedia{
			URL:         fmt.Sprintf("data:%s;base64,%s", mtype.String(), data.ImageData),
			ContentType: mtype.String(),
			IsFeatured:  true,
		}, nil
	default:
		return nil, nil
	}
}

// processTransfer re-points profile ownership to the recipient's identity.
// Unlike mint, a missing recipient identity fails the event: the on-chain
// owner and the registry would otherwise silently diverge.
func (s *service) processTransfer(ctx context.Context, event *domain.ChainEvent) error {
	recipient, err := s.store.GetIdentityByWallet(ctx, domain.NormalizeWallet(*event.ToAddress))
	if err != nil {
		return fmt.Errorf("failed to resolve recipient identity: %w", err)
	}
	if recipient == nil {
		return fmt.Errorf("%w: transfer recipient %s", domain.ErrNoIdentity, *event.ToAddress)
	}

	return s.store.TransferVehicleOwner(ctx, event.TokenID, recipient.ID, &recipient.NormalizedWallet, event.TxHash)
}

func (s *service) processBurn(ctx context.Context, event *domain.ChainEvent) error {
	var actor *string
	if event.FromAddress != nil {
		normalized := domain.NormalizeWallet(*event.FromAddress)
		actor = &normalized
	}

	return s.store.MarkVehicleBurned(ctx, event.TokenID, actor, event.TxHash)
}

func (s *service) ProcessMintServerSide(ctx context.Context, input ServerMintInput) (*schema.BlockchainEvent, error) {
	// Callers may pass a pre-resolved identity id instead of a wallet.
	// The event row always carries the recipient wallet, so resolve it
	// up front before ingesting.
	ownerWallet := input.OwnerWallet
	if ownerWallet == "" {
		owner, err := s.resolveOwner(ctx, input)
		if err != nil {
			return nil, err
		}
		ownerWallet = owner.WalletAddress
	}

	event := &domain.ChainEvent{
		EventType: domain.EventTypeMint,
		TokenID:   input.TokenID,
		ToAddress: &ownerWallet,
		TxHash:    input.TxHash,
		Vehicle:   input.Vehicle,
	}

	row, err := s.createRow(ctx, event)
	if err != nil {
		return nil, err
	}

	s.run(ctx, row, event, func(ctx context.Context, event *domain.ChainEvent) error {
		owner, err := s.resolveOwner(ctx, input)
		if err != nil {
			return err
		}

		existing, err := s.store.GetVehicleByTokenID(ctx, event.TokenID)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}

		return s.createProfile(ctx, event.TokenID, event.TxHash, owner, event.Vehicle)
	})

	return row, nil
}

// resolveOwner resolves the minting identity, preferring the pre-resolved id.
// The server-side path requires an identity: the caller is the minting client
// and its wallet is expected to be registered.
func (s *service) resolveOwner(ctx context.Context, input ServerMintInput) (*schema.IdentityProfile, error) {
	if input.IdentityID != "" {
		owner, err := s.store.GetIdentityByID(ctx, input.IdentityID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, fmt.Errorf("%w: identity %s", domain.ErrIdentityNotFound, input.IdentityID)
		}
		return owner, nil
	}

	owner, err := s.store.GetIdentityByWallet(ctx, domain.NormalizeWallet(input.OwnerWallet))
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, fmt.Errorf("%w: wallet %s", domain.ErrNoIdentity, input.OwnerWallet)
	}
	return owner, nil
}

func (s *service) ProcessPendingEvents(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		limit = DefaultSweepLimit
	}

	rows, err := s.store.GetPendingEvents(ctx, limit)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, row := range rows {
		s.ProcessStoredEvent(ctx, row)
		if row.Status == domain.EventStatusCompleted {
			processed++
		}
	}

	return processed, nil
}

func (s *service) ProcessStoredEvent(ctx context.Context, row *schema.BlockchainEvent) {
	event, err := s.rowToEvent(row)
	if err != nil {
		// Undecodable rows are terminal
		s.failRow(ctx, row, err.Error())
		return
	}

	process := s.processorFor(event.EventType)
	if process == nil {
		s.failRow(ctx, row, fmt.Sprintf("unknown event type: %s", event.EventType))
		return
	}

	s.run(ctx, row, event, process)
}

func (s *service) failRow(ctx context.Context, row *schema.BlockchainEvent, msg string) {
	if err := s.store.UpdateEventStatus(ctx, row.ID, domain.EventStatusFailed, &msg); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("event_id", row.ID))
	}
	row.Status = domain.EventStatusFailed
	row.LastError = &msg
}

func (s *service) processorFor(eventType domain.EventType) func(context.Context, *domain.ChainEvent) error {
	switch eventType {
	case domain.EventTypeMint:
		return s.processMint
	case domain.EventTypeTransfer:
		return s.processTransfer
	case domain.EventTypeBurn:
		return s.processBurn
	default:
		return nil
	}
}

// rowToEvent reconstructs the wire event from a stored row for re-processing
func (s *service) rowToEvent(row *schema.BlockchainEvent) (*domain.ChainEvent, error) {
	event := &domain.ChainEvent{
		EventType:   row.EventType,
		TokenID:     row.TokenID,
		FromAddress: row.FromAddress,
		ToAddress:   row.ToAddress,
		TxHash:      row.TxHash,
	}
	if row.BlockNumber != nil {
		event.BlockNumber = *row.BlockNumber
	}

	if len(row.Metadata) > 0 {
		var vehicle domain.VehicleData
		if err := s.json.Unmarshal(row.Metadata, &vehicle); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vehicle metadata: %w", err)
		}
		event.Vehicle = &vehicle
	}

	return event, nil
}

func (s *service) ResetFailedEvents(ctx context.Context) (int64, error) {
	return s.store.ResetFailedEvents(ctx)
}

func (s *service) GetEvent(ctx context.Context, id string) (*schema.BlockchainEvent, error) {
	return s.store.GetBlockchainEventByID(ctx, id)
}
