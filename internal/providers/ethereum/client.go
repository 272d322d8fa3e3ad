package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ThePeregrineCo/carstarz-registry/internal/adapter"
	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
)

// transferEventSignature is the ERC721 Transfer(address,address,uint256)
// topic. All three parameters are indexed, so a vehicle token log carries
// four topics.
var transferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// VehicleTokenClient wraps the chain connection with vehicle-token log
// decoding
type VehicleTokenClient interface {
	// ParseTransferLog decodes a raw Transfer log into a normalized chain event.
	// Returns nil for logs that are not ERC721 transfers.
	ParseTransferLog(ctx context.Context, vLog types.Log) (*domain.ChainEvent, error)

	// SubscribeFilterLogs subscribes to filter logs
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)

	// FilterLogs retrieves historical logs matching the filter query
	FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)

	// HeaderByNumber returns a header by number
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// Close closes the connection
	Close()
}

type vehicleTokenClient struct {
	client adapter.EthClient
	clock  adapter.Clock
}

// NewClient creates a vehicle token client on top of a dialed chain connection
func NewClient(client adapter.EthClient, clock adapter.Clock) VehicleTokenClient {
	return &vehicleTokenClient{client: client, clock: clock}
}

func (c *vehicleTokenClient) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.client.SubscribeFilterLogs(ctx, query, ch)
}

func (c *vehicleTokenClient) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	return c.client.FilterLogs(ctx, query)
}

func (c *vehicleTokenClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return c.client.HeaderByNumber(ctx, number)
}

// ParseTransferLog decodes an ERC721 Transfer log. ERC20 transfers share the
// same topic but carry only three topics, so they are skipped rather than
// treated as an error.
func (c *vehicleTokenClient) ParseTransferLog(_ context.Context, vLog types.Log) (*domain.ChainEvent, error) {
	if len(vLog.Topics) == 0 || vLog.Topics[0] != transferEventSignature {
		return nil, nil
	}
	if len(vLog.Topics) != 4 {
		return nil, nil
	}

	from := common.HexToAddress(vLog.Topics[1].Hex()).Hex()
	to := common.HexToAddress(vLog.Topics[2].Hex()).Hex()
	tokenID := new(big.Int).SetBytes(vLog.Topics[3].Bytes())

	if vLog.TxHash == (common.Hash{}) {
		return nil, fmt.Errorf("transfer log missing transaction hash")
	}

	event := &domain.ChainEvent{
		EventType:   domain.ClassifyTransfer(&from, &to),
		TokenID:     tokenID.String(),
		FromAddress: &from,
		ToAddress:   &to,
		TxHash:      vLog.TxHash.Hex(),
		BlockNumber: vLog.BlockNumber,
		Timestamp:   c.clock.Now().UTC(),
	}

	// Mint and burn events drop the zero-address side
	switch event.EventType {
	case domain.EventTypeMint:
		event.FromAddress = nil
	case domain.EventTypeBurn:
		event.ToAddress = nil
	}

	return event, nil
}

// Close closes the underlying connection
func (c *vehicleTokenClient) Close() {
	c.client.Close()
}
