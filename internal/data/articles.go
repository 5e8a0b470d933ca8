package data

import (
	"context"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Article struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          *string   `json:"body,omitempty"` // Set only by single-article reads
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// ArticleFilters holds the optional query parameters for listing articles.
type ArticleFilters struct {
	Topic  string // Restrict to articles with this topic slug (exact match)
	SortBy string // One of SortColumns; empty means created_at
	Order  string // asc or desc; empty means desc
}

func (f ArticleFilters) sorting() (SortColumn, SortOrder, error) {
	column, err := ParseSortColumn(f.SortBy)
	if err != nil {
		return "", "", err
	}
	order, err := ParseSortOrder(f.Order)
	if err != nil {
		return "", "", err
	}
	return column, order, nil
}

// articleColumns are the article columns shared by list and single reads. The
// list omits body.
var articleColumns = []string{
	"a.article_id", "a.title", "a.topic", "a.author",
	"a.created_at", "a.votes", "a.article_img_url",
}

// articlesAggregate left-joins comments so articles without comments still
// produce one row with a zero count. Filters on the result go into HAVING so
// they apply after grouping.
func articlesAggregate(columns ...string) sq.SelectBuilder {
	return sq.Select(columns...).
		Column("COUNT(c.comment_id)::INT AS comment_count").
		From("articles a").
		LeftJoin("comments c ON a.article_id = c.article_id").
		GroupBy("a.article_id").
		PlaceholderFormat(sq.Dollar)
}

func listArticlesQuery(topic string, column SortColumn, order SortOrder) sq.SelectBuilder {
	qb := articlesAggregate(articleColumns...)
	if topic != "" {
		qb = qb.Having("a.topic = ?", topic)
	}
	return qb.OrderBy(column.sql() + " " + order.sql())
}

func articleByIDQuery(id int64) sq.SelectBuilder {
	columns := append(slices.Clone(articleColumns), "a.body")
	return articlesAggregate(columns...).Having("a.article_id = ?", id)
}

type ArticleStore struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// List returns articles without their body, ordered as filters request.
// Unknown sort columns or orders fail with ErrInvalidInput before any query runs.
func (s *ArticleStore) List(filters ArticleFilters) ([]Article, error) {
	column, order, err := filters.sorting()
	if err != nil {
		return nil, err
	}

	query, args, err := listArticlesQuery(filters.Topic, column, order).ToSql()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Empty slice rather than nil so the response marshals to [] not null
	articles := []Article{}

	for rows.Next() {
		var article Article

		err := rows.Scan(
			&article.ArticleID,
			&article.Title,
			&article.Topic,
			&article.Author,
			&article.CreatedAt,
			&article.Votes,
			&article.ArticleImgURL,
			&article.CommentCount,
		)
		if err != nil {
			return nil, err
		}

		articles = append(articles, article)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

// GetByID retrieves a single article including its body and comment count.
func (s *ArticleStore) GetByID(id int64) (*Article, error) {
	query, args, err := articleByIDQuery(id).ToSql()
	if err != nil {
		return nil, err
	}

	var article Article

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err = s.db.QueryRow(ctx, query, args...).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.Body,
		&article.CommentCount,
	)
	if err != nil {
		return nil, translateError(err, "article")
	}

	return &article, nil
}

// AssertExists returns a NotFoundError when no article has the given id.
func (s *ArticleStore) AssertExists(id int64) error {
	query := `SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)`

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var exists bool
	err := s.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return translateError(err, "article")
	}
	if !exists {
		return notFound("article")
	}

	return nil
}

// IncrementVotes adds delta (which may be negative) to the article's votes and
// returns the updated article.
func (s *ArticleStore) IncrementVotes(id int64, delta int64) (*Article, error) {
	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url,
		          (SELECT COUNT(*)::INT FROM comments c WHERE c.article_id = articles.article_id)
	`

	var article Article

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.db.QueryRow(ctx, query, delta, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.CommentCount,
	)
	if err != nil {
		return nil, translateError(err, "article")
	}

	return &article, nil
}
