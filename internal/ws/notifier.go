package ws

import (
	"context"

	db "github.com/courtwatch/court-auction-BE/internal/db"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AuctionStore is the watch-relationship lookup the notifier depends on.
// Satisfied by db.Store.
type AuctionStore interface {
	GetAuctionByID(ctx context.Context, id uuid.UUID) (db.Auction, error)
	ListAuctionWatchers(ctx context.Context, auctionID uuid.UUID) ([]uuid.UUID, error)
}

// Notifier resolves which users should hear about an auction change and
// pushes one event per watcher through the hub.
type Notifier struct {
	store AuctionStore
	hub   *Hub
}

func NewNotifier(store AuctionStore, hub *Hub) *Notifier {
	return &Notifier{
		store: store,
		hub:   hub,
	}
}

// NotifyAuctionChanged is called after the new auction state has been
// committed. Watchers are resolved at call time so the fan-out always
// reflects the current watchlist. Resolution failures are logged and the
// fan-out is abandoned; the triggering write is never rolled back or retried
// because of a notification problem.
func (n *Notifier) NotifyAuctionChanged(ctx context.Context, auctionID uuid.UUID) {
	auction, err := n.store.GetAuctionByID(ctx, auctionID)
	if err != nil {
		log.Error().Err(err).Str("auction_id", auctionID.String()).Msg("failed to load auction for notification")
		return
	}

	watchers, err := n.store.ListAuctionWatchers(ctx, auctionID)
	if err != nil {
		log.Error().Err(err).Str("auction_id", auctionID.String()).Msg("failed to resolve auction watchers")
		return
	}
	if len(watchers) == 0 {
		return
	}

	event := Event{
		Type: EventTypeAuctionUpdate,
		Payload: AuctionUpdatePayload{
			AuctionID:         auction.ID.String(),
			CaseNumber:        auction.CaseNumber,
			Court:             auction.Court,
			Status:            string(auction.Status),
			MinimumBid:        auction.MinimumBid,
			MinimumBidDisplay: humanize.Comma(auction.MinimumBid) + " ₩",
			AuctionDate:       auction.AuctionDate,
		},
	}

	for _, userID := range watchers {
		n.hub.SendToUser(userID.String(), event)
	}

	log.Info().
		Str("auction_id", auctionID.String()).
		Str("case_number", auction.CaseNumber).
		Int("watchers", len(watchers)).
		Msg("auction change fanned out")
}
