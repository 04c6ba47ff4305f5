package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides all functions to execute db queries and transactions.
type Store interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)

	CreateRefreshToken(ctx context.Context, arg CreateRefreshTokenParams) (RefreshToken, error)
	GetRefreshToken(ctx context.Context, token string) (RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, token string) error

	ListAuctions(ctx context.Context, arg ListAuctionsParams) ([]Auction, error)
	GetAuctionByID(ctx context.Context, id uuid.UUID) (Auction, error)
	ListAuctionImages(ctx context.Context, auctionID uuid.UUID) ([]AuctionImage, error)
	ListAuctionDetails(ctx context.Context, auctionID uuid.UUID) ([]AuctionDetail, error)
	UpsertAuctionTx(ctx context.Context, arg UpsertAuctionTxParams) (UpsertAuctionTxResult, error)

	ListWatchlistItems(ctx context.Context, userID uuid.UUID) ([]WatchlistItem, error)
	GetWatchlistItem(ctx context.Context, userID uuid.UUID, auctionID uuid.UUID) (WatchlistItem, error)
	AddWatchlistItem(ctx context.Context, arg AddWatchlistItemParams) (WatchlistItem, error)
	DeleteWatchlistItem(ctx context.Context, userID uuid.UUID, auctionID uuid.UUID) error
	ListAuctionWatchers(ctx context.Context, auctionID uuid.UUID) ([]uuid.UUID, error)

	Ping(ctx context.Context) error
}

type SQLStore struct {
	connPool *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
	}
}

// Ping checks if the database connection is alive.
func (store *SQLStore) Ping(ctx context.Context) error {
	return store.connPool.Ping(ctx)
}

// execTx executes a function within a database transaction.
func (store *SQLStore) execTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := store.connPool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
