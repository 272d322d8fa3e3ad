package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func TestNormalizeWallet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "mixed case address",
			input:    "0xAbC123DEF4567890aBc123def4567890ABC123de",
			expected: "0xabc123def4567890abc123def4567890abc123de",
		},
		{
			name:     "already lower case",
			input:    "0xabc123def4567890abc123def4567890abc123de",
			expected: "0xabc123def4567890abc123def4567890abc123de",
		},
		{
			name:     "surrounding whitespace",
			input:    "  0xABC123DEF4567890ABC123DEF4567890ABC123DE ",
			expected: "0xabc123def4567890abc123def4567890abc123de",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.NormalizeWallet(tt.input))
		})
	}
}

func TestClassifyTransfer(t *testing.T) {
	wallet := stringPtr("0xAbC123DEF4567890aBc123def4567890ABC123de")
	other := stringPtr("0x1111111111111111111111111111111111111111")
	zero := stringPtr(domain.ETHEREUM_ZERO_ADDRESS)

	tests := []struct {
		name     string
		from     *string
		to       *string
		expected domain.EventType
	}{
		{"nil from is mint", nil, wallet, domain.EventTypeMint},
		{"empty from is mint", stringPtr(""), wallet, domain.EventTypeMint},
		{"zero from is mint", zero, wallet, domain.EventTypeMint},
		{"zero to is burn", wallet, zero, domain.EventTypeBurn},
		{"nil to is burn", wallet, nil, domain.EventTypeBurn},
		{"wallet to wallet is transfer", wallet, other, domain.EventTypeTransfer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ClassifyTransfer(tt.from, tt.to))
		})
	}
}

func TestChainEvent_Valid(t *testing.T) {
	wallet := stringPtr("0xAbC123DEF4567890aBc123def4567890ABC123de")
	other := stringPtr("0x1111111111111111111111111111111111111111")
	zero := stringPtr(domain.ETHEREUM_ZERO_ADDRESS)

	tests := []struct {
		name  string
		event domain.ChainEvent
		valid bool
	}{
		{
			name: "valid mint with nil from",
			event: domain.ChainEvent{
				EventType: domain.EventTypeMint,
				TokenID:   "42",
				ToAddress: wallet,
				TxHash:    "0x1",
			},
			valid: true,
		},
		{
			name: "valid mint with zero from",
			event: domain.ChainEvent{
				EventType:   domain.EventTypeMint,
				TokenID:     "42",
				FromAddress: zero,
				ToAddress:   wallet,
				TxHash:      "0x1",
			},
			valid: true,
		},
		{
			name: "mint missing to address",
			event: domain.ChainEvent{
				EventType: domain.EventTypeMint,
				TokenID:   "42",
				TxHash:    "0x1",
			},
			valid: false,
		},
		{
			name: "mint with non-zero from",
			event: domain.ChainEvent{
				EventType:   domain.EventTypeMint,
				TokenID:     "42",
				FromAddress: other,
				ToAddress:   wallet,
				TxHash:      "0x1",
			},
			valid: false,
		},
		{
			name: "valid transfer",
			event: domain.ChainEvent{
				EventType:   domain.EventTypeTransfer,
				TokenID:     "7",
				FromAddress: wallet,
				ToAddress:   other,
				TxHash:      "0x2",
			},
			valid: true,
		},
		{
			name: "transfer with unknown sender",
			event: domain.ChainEvent{
				EventType: domain.EventTypeTransfer,
				TokenID:   "7",
				ToAddress: other,
				TxHash:    "0x2",
			},
			valid: true,
		},
		{
			name: "transfer missing to address",
			event: domain.ChainEvent{
				EventType:   domain.EventTypeTransfer,
				TokenID:     "7",
				FromAddress: wallet,
				TxHash:      "0x2",
			},
			valid: false,
		},
		{
			name: "transfer with malformed sender",
			event: domain.ChainEvent{
				EventType:   domain.EventTypeTransfer,
				TokenID:     "7",
				FromAddress: stringPtr("not-a-wallet"),
				ToAddress:   other,
				TxHash:      "0x2",
			},
			valid: false,
		},
		{
			name: "transfer from zero address",
			event: domain.ChainEvent{
				EventType:   domain.EventTypeTransfer,
				TokenID:     "7",
				FromAddress: zero,
				ToAddress:   other,
				TxHash:      "0x2",
			},
			valid: false,
		},
		{
			name: "valid burn",
			event: domain.ChainEvent{
				EventType:   domain.EventTypeBurn,
				TokenID:     "7",
				FromAddress: wallet,
				TxHash:      "0x3",
			},
			valid: true,
		},
		{
			name: "burn with non-zero to",
			event: domain.ChainEvent{
				EventType:   domain.EventTypeBurn,
				TokenID:     "7",
				FromAddress: wallet,
				ToAddress:   other,
				TxHash:      "0x3",
			},
			valid: false,
		},
		{
			name: "non-numeric token id",
			event: domain.ChainEvent{
				EventType: domain.EventTypeMint,
				TokenID:   "abc",
				ToAddress: wallet,
				TxHash:    "0x1",
			},
			valid: false,
		},
		{
			name: "missing tx hash",
			event: domain.ChainEvent{
				EventType: domain.EventTypeMint,
				TokenID:   "42",
				ToAddress: wallet,
			},
			valid: false,
		},
		{
			name: "unknown event type",
			event: domain.ChainEvent{
				EventType:   domain.EventType("approval"),
				TokenID:     "42",
				FromAddress: wallet,
				ToAddress:   other,
				TxHash:      "0x1",
			},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.event.Valid())
		})
	}
}

func TestEventStatus_Terminal(t *testing.T) {
	assert.False(t, domain.EventStatusPending.Terminal())
	assert.False(t, domain.EventStatusProcessing.Terminal())
	assert.True(t, domain.EventStatusCompleted.Terminal())
	assert.True(t, domain.EventStatusFailed.Terminal())
}
