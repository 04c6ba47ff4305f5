package db

import (
	"context"

	"github.com/google/uuid"
)

const createUser = `
INSERT INTO users (id, email, hashed_password, full_name)
VALUES ($1, $2, $3, $4)
RETURNING id, email, hashed_password, full_name, created_at
`

type CreateUserParams struct {
	Email          string
	HashedPassword string
	FullName       string
}

func (store *SQLStore) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := store.connPool.QueryRow(ctx, createUser, uuid.New(), arg.Email, arg.HashedPassword, arg.FullName)

	var user User
	err := row.Scan(&user.ID, &user.Email, &user.HashedPassword, &user.FullName, &user.CreatedAt)
	return user, err
}

const getUserByEmail = `
SELECT id, email, hashed_password, full_name, created_at
FROM users
WHERE email = $1
`

func (store *SQLStore) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := store.connPool.QueryRow(ctx, getUserByEmail, email)

	var user User
	err := row.Scan(&user.ID, &user.Email, &user.HashedPassword, &user.FullName, &user.CreatedAt)
	return user, err
}

const getUserByID = `
SELECT id, email, hashed_password, full_name, created_at
FROM users
WHERE id = $1
`

func (store *SQLStore) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	row := store.connPool.QueryRow(ctx, getUserByID, id)

	var user User
	err := row.Scan(&user.ID, &user.Email, &user.HashedPassword, &user.FullName, &user.CreatedAt)
	return user, err
}
