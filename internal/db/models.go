package db

import (
	"time"

	"github.com/google/uuid"
)

type AuctionStatus string

const (
	AuctionStatusScheduled  AuctionStatus = "scheduled"
	AuctionStatusInProgress AuctionStatus = "in_progress"
	AuctionStatusSold       AuctionStatus = "sold"
	AuctionStatusFailed     AuctionStatus = "failed"
	AuctionStatusCanceled   AuctionStatus = "canceled"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	FullName       string    `json:"full_name"`
	CreatedAt      time.Time `json:"created_at"`
}

type Auction struct {
	ID             uuid.UUID     `json:"id"`
	CaseNumber     string        `json:"case_number"`
	Court          string        `json:"court"`
	Location       string        `json:"location"`
	Type           string        `json:"type"`
	MinimumBid     int64         `json:"minimum_bid"`
	EstimatedPrice int64         `json:"estimated_price"`
	AuctionDate    time.Time     `json:"auction_date"`
	Status         AuctionStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type AuctionImage struct {
	ID        int64     `json:"id"`
	AuctionID uuid.UUID `json:"auction_id"`
	URL       string    `json:"url"`
}

type AuctionDetail struct {
	ID        int64     `json:"id"`
	AuctionID uuid.UUID `json:"auction_id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
}

type WatchlistItem struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	AuctionID uuid.UUID `json:"auction_id"`
	CreatedAt time.Time `json:"created_at"`
}

type RefreshToken struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
