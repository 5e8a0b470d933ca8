package data

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manas-solves/news-backend/internal/validator"
)

type ModelStore struct {
	Topics   TopicStoreInterface
	Users    UserStoreInterface
	Articles ArticleStoreInterface
	Comments CommentStoreInterface
}

func NewModelStore(db *pgxpool.Pool, timeout time.Duration) ModelStore {
	return ModelStore{
		Topics:   &TopicStore{db: db, timeout: timeout},
		Users:    &UserStore{db: db, timeout: timeout},
		Articles: &ArticleStore{db: db, timeout: timeout},
		Comments: &CommentStore{db: db, timeout: timeout},
	}
}

type TopicStoreInterface interface {
	// GetAll retrieves all records from the topics table.
	GetAll() ([]Topic, error)
	// AssertExists fails with a NotFoundError when the slug matches no topic.
	AssertExists(slug string) error
}

type UserStoreInterface interface {
	// GetAll retrieves all records from the users table.
	GetAll() ([]User, error)
	// GetByUsername retrieves a specific record from the users table by username.
	GetByUsername(username string) (*User, error)
}

type ArticleStoreInterface interface {
	// List retrieves articles, without body, filtered and ordered by filters.
	List(filters ArticleFilters) ([]Article, error)
	// GetByID retrieves a specific article with its body and comment count.
	GetByID(id int64) (*Article, error)
	// AssertExists fails with a NotFoundError when the id matches no article.
	AssertExists(id int64) error
	// IncrementVotes adds delta to the article's votes and returns the updated article.
	IncrementVotes(id int64, delta int64) (*Article, error)
}

type CommentStoreInterface interface {
	// GetByArticleID retrieves all comments for an article, newest first.
	GetByArticleID(articleID int64) ([]Comment, error)
	// Insert stores a comment and returns it with generated fields populated.
	Insert(comment *Comment) (*Comment, error)
	// IncrementVotes adds delta to the comment's votes and returns the updated comment.
	IncrementVotes(id int64, delta int64) (*Comment, error)
	// DeleteByID removes the comment with the given id.
	DeleteByID(id int64) error
}

// ListArticles validates the sort parameters, then lists articles. When a
// topic is given the topic existence check runs alongside the listing, so an
// unknown topic is a NotFoundError while a known topic without articles is an
// empty list.
func (m ModelStore) ListArticles(filters ArticleFilters) ([]Article, error) {
	if _, _, err := filters.sorting(); err != nil {
		return nil, err
	}

	if filters.Topic == "" {
		return m.Articles.List(filters)
	}

	var articles []Article
	err := Gate(
		func() error {
			return m.Topics.AssertExists(filters.Topic)
		},
		func() error {
			var err error
			articles, err = m.Articles.List(filters)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	return articles, nil
}

// ListComments returns an article's comments, checking concurrently that the
// article exists.
func (m ModelStore) ListComments(articleID int64) ([]Comment, error) {
	var comments []Comment
	err := Gate(
		func() error {
			return m.Articles.AssertExists(articleID)
		},
		func() error {
			var err error
			comments, err = m.Comments.GetByArticleID(articleID)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// InsertComment validates the comment, confirms its article exists and then
// inserts it. The article check runs first so an unknown article is never
// reported through the insert's foreign key error.
func (m ModelStore) InsertComment(comment *Comment) (*Comment, error) {
	v := validator.New()
	if ValidateComment(v, comment); !v.Valid() {
		return nil, ErrInvalidInput
	}

	if err := m.Articles.AssertExists(comment.ArticleID); err != nil {
		return nil, err
	}

	return m.Comments.Insert(comment)
}
