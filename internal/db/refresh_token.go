package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createRefreshToken = `
INSERT INTO refresh_tokens (token, user_id, expires_at)
VALUES ($1, $2, $3)
RETURNING token, user_id, expires_at, created_at
`

type CreateRefreshTokenParams struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

func (store *SQLStore) CreateRefreshToken(ctx context.Context, arg CreateRefreshTokenParams) (RefreshToken, error) {
	row := store.connPool.QueryRow(ctx, createRefreshToken, arg.Token, arg.UserID, arg.ExpiresAt)

	var token RefreshToken
	err := row.Scan(&token.Token, &token.UserID, &token.ExpiresAt, &token.CreatedAt)
	return token, err
}

const getRefreshToken = `
SELECT token, user_id, expires_at, created_at
FROM refresh_tokens
WHERE token = $1
`

func (store *SQLStore) GetRefreshToken(ctx context.Context, token string) (RefreshToken, error) {
	row := store.connPool.QueryRow(ctx, getRefreshToken, token)

	var refreshToken RefreshToken
	err := row.Scan(&refreshToken.Token, &refreshToken.UserID, &refreshToken.ExpiresAt, &refreshToken.CreatedAt)
	return refreshToken, err
}

const deleteRefreshToken = `
DELETE FROM refresh_tokens
WHERE token = $1
`

func (store *SQLStore) DeleteRefreshToken(ctx context.Context, token string) error {
	_, err := store.connPool.Exec(ctx, deleteRefreshToken, token)
	return err
}
