package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UpsertAuctionTxParams struct {
	CaseNumber     string
	Court          string
	Location       string
	Type           string
	MinimumBid     int64
	EstimatedPrice int64
	AuctionDate    time.Time
	Status         AuctionStatus
	ImageURLs      []string
	Details        []AuctionDetailParams
}

type AuctionDetailParams struct {
	Key   string
	Value string
}

type UpsertAuctionTxResult struct {
	Auction Auction
	// Created reports that the case number was seen for the first time.
	Created bool
	// StatusChanged reports that an existing auction moved to a new status.
	StatusChanged bool
}

const insertAuction = `
INSERT INTO auctions (id, case_number, court, location, type, minimum_bid, estimated_price, auction_date, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, case_number, court, location, type, minimum_bid, estimated_price, auction_date, status, created_at, updated_at
`

const updateAuction = `
UPDATE auctions
SET court = $2, location = $3, type = $4, minimum_bid = $5, estimated_price = $6, auction_date = $7, status = $8, updated_at = now()
WHERE id = $1
RETURNING id, case_number, court, location, type, minimum_bid, estimated_price, auction_date, status, created_at, updated_at
`

const deleteAuctionImages = `DELETE FROM auction_images WHERE auction_id = $1`
const insertAuctionImage = `INSERT INTO auction_images (auction_id, url) VALUES ($1, $2)`
const deleteAuctionDetails = `DELETE FROM auction_details WHERE auction_id = $1`
const insertAuctionDetail = `INSERT INTO auction_details (auction_id, key, value) VALUES ($1, $2, $3)`

// UpsertAuctionTx stores one crawled auction, replacing its images and detail
// rows, and reports whether the stored status differs from the previous one.
// The caller decides what to do with a status change after the commit.
func (store *SQLStore) UpsertAuctionTx(ctx context.Context, arg UpsertAuctionTxParams) (UpsertAuctionTxResult, error) {
	var result UpsertAuctionTxResult

	err := store.execTx(ctx, func(tx pgx.Tx) error {
		existing, err := store.getAuctionByCaseNumberForUpdate(ctx, tx, arg.CaseNumber)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		var row pgx.Row
		if errors.Is(err, pgx.ErrNoRows) {
			result.Created = true
			row = tx.QueryRow(ctx, insertAuction, uuid.New(), arg.CaseNumber, arg.Court, arg.Location,
				arg.Type, arg.MinimumBid, arg.EstimatedPrice, arg.AuctionDate, arg.Status)
		} else {
			result.StatusChanged = existing.Status != arg.Status
			row = tx.QueryRow(ctx, updateAuction, existing.ID, arg.Court, arg.Location,
				arg.Type, arg.MinimumBid, arg.EstimatedPrice, arg.AuctionDate, arg.Status)
		}

		a := &result.Auction
		if err = row.Scan(&a.ID, &a.CaseNumber, &a.Court, &a.Location, &a.Type, &a.MinimumBid,
			&a.EstimatedPrice, &a.AuctionDate, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return err
		}

		if _, err = tx.Exec(ctx, deleteAuctionImages, a.ID); err != nil {
			return err
		}
		for _, url := range arg.ImageURLs {
			if _, err = tx.Exec(ctx, insertAuctionImage, a.ID, url); err != nil {
				return err
			}
		}

		if _, err = tx.Exec(ctx, deleteAuctionDetails, a.ID); err != nil {
			return err
		}
		for _, detail := range arg.Details {
			if _, err = tx.Exec(ctx, insertAuctionDetail, a.ID, detail.Key, detail.Value); err != nil {
				return err
			}
		}

		return nil
	})

	return result, err
}

const getAuctionByCaseNumberForUpdate = `
SELECT id, case_number, status
FROM auctions
WHERE case_number = $1
FOR UPDATE
`

func (store *SQLStore) getAuctionByCaseNumberForUpdate(ctx context.Context, tx pgx.Tx, caseNumber string) (Auction, error) {
	row := tx.QueryRow(ctx, getAuctionByCaseNumberForUpdate, caseNumber)

	var a Auction
	err := row.Scan(&a.ID, &a.CaseNumber, &a.Status)
	return a, err
}
