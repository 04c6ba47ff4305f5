package ws

import (
	"context"
	"errors"
	"testing"
	"time"

	db "github.com/courtwatch/court-auction-BE/internal/db"
	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuctionStore struct {
	auctions map[uuid.UUID]db.Auction
	watchers map[uuid.UUID][]uuid.UUID
	err      error
}

func (s *fakeAuctionStore) GetAuctionByID(_ context.Context, id uuid.UUID) (db.Auction, error) {
	if s.err != nil {
		return db.Auction{}, s.err
	}
	auction, ok := s.auctions[id]
	if !ok {
		return db.Auction{}, db.ErrRecordNotFound
	}
	return auction, nil
}

func (s *fakeAuctionStore) ListAuctionWatchers(_ context.Context, auctionID uuid.UUID) ([]uuid.UUID, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.watchers[auctionID], nil
}

func TestNotifier_DeliversToEveryWatcherConnection(t *testing.T) {
	hub, dial := testHub(t)

	userA := uuid.New()
	userB := uuid.New()

	connA1 := dial(userA.String())
	connA2 := dial(userA.String())
	connB := dial(userB.String())
	require.True(t, waitForConnCount(hub, userA.String(), 2))
	require.True(t, waitForConnCount(hub, userB.String(), 1))

	auctionID := uuid.New()
	store := &fakeAuctionStore{
		auctions: map[uuid.UUID]db.Auction{
			auctionID: {
				ID:          auctionID,
				CaseNumber:  "2026타경12345",
				Court:       "서울중앙지방법원",
				Status:      db.AuctionStatusInProgress,
				MinimumBid:  150000000,
				AuctionDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		watchers: map[uuid.UUID][]uuid.UUID{
			auctionID: {userA},
		},
	}

	notifier := NewNotifier(store, hub)
	notifier.NotifyAuctionChanged(context.Background(), auctionID)

	// Exactly one event per connection of the watching user
	for _, conn := range []*gws.Conn{connA1, connA2} {
		event := readEvent(t, conn)
		require.Equal(t, EventTypeAuctionUpdate, event.Type)

		payload := event.Payload.(map[string]interface{})
		assert.Equal(t, auctionID.String(), payload["auction_id"])
		assert.Equal(t, "2026타경12345", payload["case_number"])
		assert.Equal(t, string(db.AuctionStatusInProgress), payload["status"])
		assert.Equal(t, float64(150000000), payload["minimum_bid"])
		assert.Equal(t, "150,000,000 ₩", payload["minimum_bid_display"])
	}

	// Non-watchers hear nothing
	assertNoEvent(t, connB)
}

func TestNotifier_NoWatchersNoDelivery(t *testing.T) {
	hub, dial := testHub(t)

	userA := uuid.New()
	connA := dial(userA.String())
	require.True(t, waitForConnCount(hub, userA.String(), 1))

	auctionID := uuid.New()
	store := &fakeAuctionStore{
		auctions: map[uuid.UUID]db.Auction{auctionID: {ID: auctionID}},
		watchers: map[uuid.UUID][]uuid.UUID{},
	}

	notifier := NewNotifier(store, hub)
	notifier.NotifyAuctionChanged(context.Background(), auctionID)

	assertNoEvent(t, connA)
}

func TestNotifier_StoreFailureAbandonsFanout(t *testing.T) {
	hub, dial := testHub(t)

	userA := uuid.New()
	connA := dial(userA.String())
	require.True(t, waitForConnCount(hub, userA.String(), 1))

	store := &fakeAuctionStore{err: errors.New("store unavailable")}

	notifier := NewNotifier(store, hub)
	notifier.NotifyAuctionChanged(context.Background(), uuid.New())

	// The fan-out is dropped without touching any connection.
	assertNoEvent(t, connA)
	assert.Len(t, hub.ConnectionsFor(userA.String()), 1)
}
