package db

import (
	"context"

	"github.com/google/uuid"
)

const listWatchlistItems = `
SELECT id, user_id, auction_id, created_at
FROM watchlist_items
WHERE user_id = $1
ORDER BY created_at DESC
`

func (store *SQLStore) ListWatchlistItems(ctx context.Context, userID uuid.UUID) ([]WatchlistItem, error) {
	rows, err := store.connPool.Query(ctx, listWatchlistItems, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []WatchlistItem{}
	for rows.Next() {
		var item WatchlistItem
		if err = rows.Scan(&item.ID, &item.UserID, &item.AuctionID, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

const getWatchlistItem = `
SELECT id, user_id, auction_id, created_at
FROM watchlist_items
WHERE user_id = $1 AND auction_id = $2
`

func (store *SQLStore) GetWatchlistItem(ctx context.Context, userID uuid.UUID, auctionID uuid.UUID) (WatchlistItem, error) {
	row := store.connPool.QueryRow(ctx, getWatchlistItem, userID, auctionID)

	var item WatchlistItem
	err := row.Scan(&item.ID, &item.UserID, &item.AuctionID, &item.CreatedAt)
	return item, err
}

const addWatchlistItem = `
INSERT INTO watchlist_items (user_id, auction_id)
VALUES ($1, $2)
RETURNING id, user_id, auction_id, created_at
`

type AddWatchlistItemParams struct {
	UserID    uuid.UUID
	AuctionID uuid.UUID
}

func (store *SQLStore) AddWatchlistItem(ctx context.Context, arg AddWatchlistItemParams) (WatchlistItem, error) {
	row := store.connPool.QueryRow(ctx, addWatchlistItem, arg.UserID, arg.AuctionID)

	var item WatchlistItem
	err := row.Scan(&item.ID, &item.UserID, &item.AuctionID, &item.CreatedAt)
	return item, err
}

const deleteWatchlistItem = `
DELETE FROM watchlist_items
WHERE user_id = $1 AND auction_id = $2
`

func (store *SQLStore) DeleteWatchlistItem(ctx context.Context, userID uuid.UUID, auctionID uuid.UUID) error {
	_, err := store.connPool.Exec(ctx, deleteWatchlistItem, userID, auctionID)
	return err
}

const listAuctionWatchers = `
SELECT user_id
FROM watchlist_items
WHERE auction_id = $1
`

// ListAuctionWatchers returns the IDs of every user currently watching the
// auction. It is queried at fan-out time and never cached.
func (store *SQLStore) ListAuctionWatchers(ctx context.Context, auctionID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := store.connPool.Query(ctx, listAuctionWatchers, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	watchers := []uuid.UUID{}
	for rows.Next() {
		var userID uuid.UUID
		if err = rows.Scan(&userID); err != nil {
			return nil, err
		}
		watchers = append(watchers, userID)
	}

	return watchers, rows.Err()
}
