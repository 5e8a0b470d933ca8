package data

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL *string `json:"avatar_url"` // nil when the user has no avatar
}

type UserStore struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// GetAll retrieves every user ordered by username.
func (s *UserStore) GetAll() ([]User, error) {
	query := `SELECT username, name, avatar_url FROM users ORDER BY username`

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.Username, &user.Name, &user.AvatarURL); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// GetByUsername retrieves a user by their username.
func (s *UserStore) GetByUsername(username string) (*User, error) {
	query := `SELECT username, name, avatar_url FROM users WHERE username = $1`

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var user User
	err := s.db.QueryRow(ctx, query, username).Scan(&user.Username, &user.Name, &user.AvatarURL)
	if err != nil {
		return nil, translateError(err, "user")
	}

	return &user, nil
}
