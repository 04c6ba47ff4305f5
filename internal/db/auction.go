package db

import (
	"context"
	"math"

	"github.com/google/uuid"
)

const listAuctions = `
SELECT id, case_number, court, location, type, minimum_bid, estimated_price, auction_date, status, created_at, updated_at
FROM auctions
WHERE (location ILIKE '%' || $1 || '%' OR case_number ILIKE '%' || $1 || '%' OR type ILIKE '%' || $1 || '%')
  AND ($2 = '' OR court = $2)
  AND ($3 = '' OR type = $3)
  AND minimum_bid BETWEEN $4 AND $5
ORDER BY created_at DESC
`

type ListAuctionsParams struct {
	Query    string
	Court    string
	Type     string
	MinPrice int64
	MaxPrice int64
}

func (store *SQLStore) ListAuctions(ctx context.Context, arg ListAuctionsParams) ([]Auction, error) {
	maxPrice := arg.MaxPrice
	if maxPrice == 0 {
		maxPrice = math.MaxInt64
	}

	rows, err := store.connPool.Query(ctx, listAuctions, arg.Query, arg.Court, arg.Type, arg.MinPrice, maxPrice)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	auctions := []Auction{}
	for rows.Next() {
		var a Auction
		if err = rows.Scan(&a.ID, &a.CaseNumber, &a.Court, &a.Location, &a.Type, &a.MinimumBid,
			&a.EstimatedPrice, &a.AuctionDate, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		auctions = append(auctions, a)
	}

	return auctions, rows.Err()
}

const getAuctionByID = `
SELECT id, case_number, court, location, type, minimum_bid, estimated_price, auction_date, status, created_at, updated_at
FROM auctions
WHERE id = $1
`

func (store *SQLStore) GetAuctionByID(ctx context.Context, id uuid.UUID) (Auction, error) {
	row := store.connPool.QueryRow(ctx, getAuctionByID, id)

	var a Auction
	err := row.Scan(&a.ID, &a.CaseNumber, &a.Court, &a.Location, &a.Type, &a.MinimumBid,
		&a.EstimatedPrice, &a.AuctionDate, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

const listAuctionImages = `
SELECT id, auction_id, url
FROM auction_images
WHERE auction_id = $1
ORDER BY id
`

func (store *SQLStore) ListAuctionImages(ctx context.Context, auctionID uuid.UUID) ([]AuctionImage, error) {
	rows, err := store.connPool.Query(ctx, listAuctionImages, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []AuctionImage{}
	for rows.Next() {
		var img AuctionImage
		if err = rows.Scan(&img.ID, &img.AuctionID, &img.URL); err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

const listAuctionDetails = `
SELECT id, auction_id, key, value
FROM auction_details
WHERE auction_id = $1
ORDER BY id
`

func (store *SQLStore) ListAuctionDetails(ctx context.Context, auctionID uuid.UUID) ([]AuctionDetail, error) {
	rows, err := store.connPool.Query(ctx, listAuctionDetails, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []AuctionDetail{}
	for rows.Next() {
		var d AuctionDetail
		if err = rows.Scan(&d.ID, &d.AuctionID, &d.Key, &d.Value); err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, rows.Err()
}
