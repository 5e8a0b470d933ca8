package data

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type TopicStore struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// GetAll retrieves all topics ordered by slug.
func (s *TopicStore) GetAll() ([]Topic, error) {
	query := `SELECT slug, description FROM topics ORDER BY slug`

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := []Topic{}
	for rows.Next() {
		var topic Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return topics, nil
}

// AssertExists returns a NotFoundError when no topic has the given slug.
func (s *TopicStore) AssertExists(slug string) error {
	query := `SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)`

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var exists bool
	if err := s.db.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return translateError(err, "topic")
	}
	if !exists {
		return notFound("topic")
	}

	return nil
}
