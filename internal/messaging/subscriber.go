package messaging

import (
	"context"

	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
)

// EventHandler is called for each chain event observed on the wire
type EventHandler func(event *domain.ChainEvent) error

// Subscriber defines the interface for subscribing to vehicle token events
// on chain
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents subscribes to vehicle token transfer logs starting at
	// fromBlock (0 for latest) and invokes handler for each decoded event
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}
