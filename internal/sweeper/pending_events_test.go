package sweeper_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/logger"
	"github.com/ThePeregrineCo/carstarz-registry/internal/mocks"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store/schema"
	"github.com/ThePeregrineCo/carstarz-registry/internal/sweeper"
)

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	events  *mocks.MockEventService
	clock   *mocks.MockClock
	sweeper sweeper.Sweeper
}

func setupTestSweeper(t *testing.T) *testSweeperMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:   ctrl,
		store:  mocks.NewMockStore(ctrl),
		events: mocks.NewMockEventService(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}

	config := &sweeper.PendingEventSweeperConfig{
		Interval:       60 * time.Second,
		BatchSize:      10,
		WorkerPoolSize: 2,
	}

	tm.sweeper = sweeper.NewPendingEventSweeper(
		config,
		tm.store,
		tm.events,
		tm.clock,
	)

	return tm
}

func tearDownTestSweeper(mocks *testSweeperMocks) {
	mocks.ctrl.Finish()
}

// expectClock wires the standard clock expectations: Now/Since freely,
// and After with a short real delay so Stop gets a chance to run.
func expectClock(tm *testSweeperMocks) {
	now := time.Now()
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(50 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()
}

func pendingRow(id string) *schema.BlockchainEvent {
	return &schema.BlockchainEvent{
		ID:        id,
		EventType: domain.EventTypeMint,
		TokenID:   "1",
		TxHash:    "0xabc123",
		Status:    domain.EventStatusPending,
	}
}

func TestPendingEventSweeper_Name(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	assert.Equal(t, "pending-event-sweeper", mocks.sweeper.Name())
}

func TestPendingEventSweeper_ProcessesBatch(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx := context.Background()

	expectClock(mocks)

	rows := []*schema.BlockchainEvent{pendingRow("ev-1"), pendingRow("ev-2")}

	// First cycle returns the batch, subsequent cycles are empty
	gomock.InOrder(
		mocks.store.EXPECT().
			GetPendingEvents(gomock.Any(), 10).
			Return(rows, nil).
			Times(1),
		mocks.store.EXPECT().
			GetPendingEvents(gomock.Any(), 10).
			Return(nil, nil).
			MinTimes(1),
	)

	mocks.events.EXPECT().
		ProcessStoredEvent(gomock.Any(), rows[0]).
		Do(func(ctx context.Context, row *schema.BlockchainEvent) {
			row.Status = domain.EventStatusCompleted
		})
	mocks.events.EXPECT().
		ProcessStoredEvent(gomock.Any(), rows[1]).
		Do(func(ctx context.Context, row *schema.BlockchainEvent) {
			row.Status = domain.EventStatusCompleted
		})

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = mocks.sweeper.Stop(ctx)
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestPendingEventSweeper_FailedEventDoesNotAbortBatch(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx := context.Background()

	expectClock(mocks)

	rows := []*schema.BlockchainEvent{pendingRow("ev-1"), pendingRow("ev-2")}

	gomock.InOrder(
		mocks.store.EXPECT().
			GetPendingEvents(gomock.Any(), 10).
			Return(rows, nil).
			Times(1),
		mocks.store.EXPECT().
			GetPendingEvents(gomock.Any(), 10).
			Return(nil, nil).
			MinTimes(1),
	)

	lastError := "transfer recipient has no identity"
	mocks.events.EXPECT().
		ProcessStoredEvent(gomock.Any(), rows[0]).
		Do(func(ctx context.Context, row *schema.BlockchainEvent) {
			row.Status = domain.EventStatusFailed
			row.LastError = &lastError
		})
	mocks.events.EXPECT().
		ProcessStoredEvent(gomock.Any(), rows[1]).
		Do(func(ctx context.Context, row *schema.BlockchainEvent) {
			row.Status = domain.EventStatusCompleted
		})

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = mocks.sweeper.Stop(ctx)
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestPendingEventSweeper_EmptyBatchSleeps(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx := context.Background()

	expectClock(mocks)

	mocks.store.EXPECT().
		GetPendingEvents(gomock.Any(), 10).
		Return(nil, nil).
		MinTimes(1)

	go func() {
		time.Sleep(150 * time.Millisecond)
		_ = mocks.sweeper.Stop(ctx)
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestPendingEventSweeper_ContextCancellation(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx, cancel := context.WithCancel(context.Background())

	expectClock(mocks)

	mocks.store.EXPECT().
		GetPendingEvents(gomock.Any(), 10).
		Return(nil, nil).
		AnyTimes()

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestPendingEventSweeper_StartTwice(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx := context.Background()

	expectClock(mocks)

	mocks.store.EXPECT().
		GetPendingEvents(gomock.Any(), 10).
		Return(nil, nil).
		AnyTimes()

	started := make(chan struct{})
	go func() {
		close(started)
		_ = mocks.sweeper.Start(ctx)
	}()
	<-started
	time.Sleep(50 * time.Millisecond)

	err := mocks.sweeper.Start(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	_ = mocks.sweeper.Stop(ctx)
}

func TestPendingEventSweeper_StopWithoutStart(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	// Stop on a never-started sweeper is a no-op
	err := mocks.sweeper.Stop(context.Background())
	assert.NoError(t, err)
}
