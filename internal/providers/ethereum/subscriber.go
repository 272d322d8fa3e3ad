package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/logger"
	"github.com/ThePeregrineCo/carstarz-registry/internal/messaging"
)

// Config holds the configuration for the vehicle token subscription
type Config struct {
	// WebSocketURL is the chain endpoint (e.g., wss://base-mainnet.infura.io/ws/v3/KEY)
	WebSocketURL string
	// ContractAddress is the vehicle registry NFT contract
	ContractAddress string
}

type ethSubscriber struct {
	client   VehicleTokenClient
	contract common.Address
}

// NewSubscriber creates a chain event subscriber scoped to the vehicle
// registry contract
func NewSubscriber(cfg Config, client VehicleTokenClient) (messaging.Subscriber, error) {
	if !domain.IsValidWallet(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", cfg.ContractAddress)
	}

	return &ethSubscriber{
		client:   client,
		contract: common.HexToAddress(cfg.ContractAddress),
	}, nil
}

// SubscribeEvents replays Transfer logs from fromBlock, then follows the
// live log stream until the context is cancelled or the subscription drops
func (s *ethSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	query := ethereum.FilterQuery{
		Addresses: []common.Address{s.contract},
		Topics:    [][]common.Hash{{transferEventSignature}},
	}

	if fromBlock > 0 {
		if err := s.replayLogs(ctx, fromBlock, query, handler); err != nil {
			return err
		}
	}

	logs := make(chan types.Log)
	sub, err := s.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to filter logs: %w", err)
	}
	defer func() {
		sub.Unsubscribe()
		logger.InfoCtx(ctx, "unsubscribed from vehicle token logs")
	}()

	logger.InfoCtx(ctx, "subscribed to vehicle token logs",
		zap.String("contract", s.contract.Hex()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			if err := s.handleLog(ctx, vLog, handler); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("tx_hash", vLog.TxHash.Hex()))
			}
		}
	}
}

// replayLogs backfills Transfer logs between fromBlock and the chain head.
// Replayed events flow through the same handler as live ones, so a restart
// after downtime catches up before following the stream.
func (s *ethSubscriber) replayLogs(ctx context.Context, fromBlock uint64, query ethereum.FilterQuery, handler messaging.EventHandler) error {
	latest, err := s.GetLatestBlock(ctx)
	if err != nil {
		return err
	}
	if fromBlock > latest {
		return nil
	}

	rangeQuery := query
	rangeQuery.FromBlock = new(big.Int).SetUint64(fromBlock)
	rangeQuery.ToBlock = new(big.Int).SetUint64(latest)

	logs, err := s.client.FilterLogs(ctx, rangeQuery)
	if err != nil {
		return fmt.Errorf("failed to replay logs from block %d: %w", fromBlock, err)
	}

	logger.InfoCtx(ctx, "replaying vehicle token logs",
		zap.Uint64("from_block", fromBlock),
		zap.Uint64("to_block", latest),
		zap.Int("count", len(logs)))

	for _, vLog := range logs {
		if err := s.handleLog(ctx, vLog, handler); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("tx_hash", vLog.TxHash.Hex()))
		}
	}

	return nil
}

func (s *ethSubscriber) handleLog(ctx context.Context, vLog types.Log, handler messaging.EventHandler) error {
	event, err := s.client.ParseTransferLog(ctx, vLog)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to parse log: %w", err)
	}
	if event == nil {
		return nil
	}

	if err := handler(event); err != nil {
		return fmt.Errorf("failed to handle event: %w", err)
	}
	return nil
}

// GetLatestBlock returns the latest block number
func (s *ethSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// Close closes the underlying connection
func (s *ethSubscriber) Close() {
	s.client.Close()
}
