package ws

import (
	"time"
)

// Event is the wire format for every frame pushed to clients.
// The payload shape depends on the event type.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	EventTypeAuctionUpdate = "auction_update"
)

type AuctionUpdatePayload struct {
	AuctionID         string    `json:"auction_id"`
	CaseNumber        string    `json:"case_number"`
	Court             string    `json:"court"`
	Status            string    `json:"status"`
	MinimumBid        int64     `json:"minimum_bid"`
	MinimumBidDisplay string    `json:"minimum_bid_display"`
	AuctionDate       time.Time `json:"auction_date"`
}
