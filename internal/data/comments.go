package data

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manas-solves/news-backend/internal/validator"
)

type Comment struct {
	CommentID int64     `json:"comment_id"`
	Body      string    `json:"body"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

func ValidateComment(v *validator.Validator, comment *Comment) {
	v.Check(validator.NotEmptyOrWhitespace(comment.Author), "username must be provided")
	v.Check(validator.NotEmptyOrWhitespace(comment.Body), "body must be provided")
}

// commentsArticleFK is the constraint tying comments to their article. A
// violation means the parent article vanished, not an unknown author.
const commentsArticleFK = "comments_article_id_fkey"

type CommentStore struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// GetByArticleID retrieves all comments for an article, newest first.
func (s *CommentStore) GetByArticleID(articleID int64) ([]Comment, error) {
	query := `
		SELECT comment_id, body, article_id, author, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	rows, err := s.db.Query(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []Comment{}

	for rows.Next() {
		var comment Comment

		err := rows.Scan(
			&comment.CommentID,
			&comment.Body,
			&comment.ArticleID,
			&comment.Author,
			&comment.Votes,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// Insert stores a comment and fills in the database-generated fields. An
// author that is not a known user fails with ErrReferencedEntityNotFound.
func (s *CommentStore) Insert(comment *Comment) (*Comment, error) {
	query := `
		INSERT INTO comments (body, article_id, author)
		VALUES ($1, $2, $3)
		RETURNING comment_id, votes, created_at
	`

	args := []any{comment.Body, comment.ArticleID, comment.Author}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.db.QueryRow(ctx, query, args...).Scan(&comment.CommentID, &comment.Votes, &comment.CreatedAt)
	if err != nil {
		return nil, insertCommentError(err)
	}

	return comment, nil
}

// insertCommentError translates a failed comment insert. Losing the article
// foreign key means the article was deleted after it was checked, which is
// reported like any other missing article.
func insertCommentError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName == commentsArticleFK {
		return notFound("article")
	}
	return translateError(err, "comment")
}

// IncrementVotes adds delta (which may be negative) to the comment's votes and
// returns the updated comment.
func (s *CommentStore) IncrementVotes(id int64, delta int64) (*Comment, error) {
	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, body, article_id, author, votes, created_at
	`

	var comment Comment

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.db.QueryRow(ctx, query, delta, id).Scan(
		&comment.CommentID,
		&comment.Body,
		&comment.ArticleID,
		&comment.Author,
		&comment.Votes,
		&comment.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err, "comment")
	}

	return &comment, nil
}

// DeleteByID removes a comment. The delete's own row count decides whether the
// comment existed.
func (s *CommentStore) DeleteByID(id int64) error {
	query := `DELETE FROM comments WHERE comment_id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	result, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return translateError(err, "comment")
	}

	if result.RowsAffected() == 0 {
		return notFound("comment")
	}

	return nil
}
