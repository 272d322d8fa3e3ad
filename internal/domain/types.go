package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ETHEREUM_ZERO_ADDRESS is the zero address used to signal mint/burn transfers
const ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

// EventType represents the type of blockchain event
type EventType string

const (
	EventTypeMint     EventType = "mint"
	EventTypeTransfer EventType = "transfer"
	EventTypeBurn     EventType = "burn"
)

// EventStatus represents the processing state of an ingested event
type EventStatus string

const (
	EventStatusPending    EventStatus = "pending"
	EventStatusProcessing EventStatus = "processing"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusFailed     EventStatus = "failed"
)

// Terminal reports whether the status is a terminal state
func (s EventStatus) Terminal() bool {
	return s == EventStatusCompleted || s == EventStatusFailed
}

// VehicleData carries the optional vehicle metadata attached to a mint event.
// Fields left empty fall back to placeholder values at profile creation time.
type VehicleData struct {
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
	Year        int    `json:"year,omitempty"`
	VIN         string `json:"vin,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	// ImageURL points at an already-hosted vehicle image
	ImageURL string `json:"image_url,omitempty"`
	// ImageData carries base64-encoded image bytes captured at mint time
	ImageData string `json:"image_data,omitempty"`
}

// ChainEvent represents a normalized vehicle NFT event.
// This is the standard format published to NATS and ingested over HTTP.
type ChainEvent struct {
	EventType   EventType    `json:"event_type"`
	TokenID     string       `json:"token_id"`
	FromAddress *string      `json:"from_address"` // nil for mint
	ToAddress   *string      `json:"to_address"`   // nil for burn
	TxHash      string       `json:"tx_hash"`
	BlockNumber uint64       `json:"block_number,omitempty"`
	Timestamp   time.Time    `json:"timestamp,omitempty"`
	Vehicle     *VehicleData `json:"vehicle,omitempty"`
}

// Valid validates per-event-type field requirements
func (e *ChainEvent) Valid() bool {
	if !validTokenID(e.TokenID) || e.TxHash == "" {
		return false
	}

	switch e.EventType {
	case EventTypeMint:
		// From must be absent or the zero address
		if e.FromAddress != nil && *e.FromAddress != "" && NormalizeWallet(*e.FromAddress) != ETHEREUM_ZERO_ADDRESS {
			return false
		}
		if !validWallet(e.ToAddress) {
			return false
		}
	case EventTypeTransfer:
		if !validWallet(e.ToAddress) {
			return false
		}
		// From may be omitted when the sender is unknown, but a provided
		// value must be a real wallet. A zero-address from is a
		// misclassified mint.
		if e.FromAddress != nil && *e.FromAddress != "" && !validWallet(e.FromAddress) {
			return false
		}
	case EventTypeBurn:
		if !validWallet(e.FromAddress) {
			return false
		}
		if e.ToAddress != nil && *e.ToAddress != "" && NormalizeWallet(*e.ToAddress) != ETHEREUM_ZERO_ADDRESS {
			return false
		}
	default:
		return false
	}

	return true
}

// ClassifyTransfer determines the event type of a raw Transfer log
// from its addresses: from == 0x0 is a mint, to == 0x0 is a burn.
func ClassifyTransfer(from *string, to *string) EventType {
	if from == nil || *from == "" || NormalizeWallet(*from) == ETHEREUM_ZERO_ADDRESS {
		return EventTypeMint
	}
	if to == nil || *to == "" || NormalizeWallet(*to) == ETHEREUM_ZERO_ADDRESS {
		return EventTypeBurn
	}
	return EventTypeTransfer
}

// NormalizeWallet lower-cases a hex wallet address. The normalized form is
// the canonical join key for the identity registry.
func NormalizeWallet(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// IsValidWallet checks that an address is a well-formed hex address
func IsValidWallet(address string) bool {
	return common.IsHexAddress(address)
}

func validWallet(address *string) bool {
	if address == nil || *address == "" {
		return false
	}
	if NormalizeWallet(*address) == ETHEREUM_ZERO_ADDRESS {
		return false
	}
	return common.IsHexAddress(*address)
}

var tokenIDPattern = regexp.MustCompile(`^[0-9]+$`)

func validTokenID(tokenID string) bool {
	return tokenIDPattern.MatchString(tokenID)
}
