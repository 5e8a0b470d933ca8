package data

import "github.com/manas-solves/news-backend/internal/validator"

// SortColumn is a column articles may be ordered by. Only the values declared
// below are accepted; each maps to fixed SQL text so request input never
// reaches the ORDER BY clause.
type SortColumn string

const (
	SortByArticleID     SortColumn = "article_id"
	SortByAuthor        SortColumn = "author"
	SortByTitle         SortColumn = "title"
	SortByTopic         SortColumn = "topic"
	SortByCreatedAt     SortColumn = "created_at"
	SortByVotes         SortColumn = "votes"
	SortByArticleImgURL SortColumn = "article_img_url"
	SortByCommentCount  SortColumn = "comment_count"
)

// SortColumns lists every permitted sort column.
var SortColumns = []SortColumn{
	SortByArticleID,
	SortByAuthor,
	SortByTitle,
	SortByTopic,
	SortByCreatedAt,
	SortByVotes,
	SortByArticleImgURL,
	SortByCommentCount,
}

var sortColumnSQL = map[SortColumn]string{
	SortByArticleID:     "a.article_id",
	SortByAuthor:        "a.author",
	SortByTitle:         "a.title",
	SortByTopic:         "a.topic",
	SortByCreatedAt:     "a.created_at",
	SortByVotes:         "a.votes",
	SortByArticleImgURL: "a.article_img_url",
	SortByCommentCount:  "comment_count",
}

const DefaultSortColumn = SortByCreatedAt

// ParseSortColumn resolves a sort_by value. An empty value selects the default.
func ParseSortColumn(s string) (SortColumn, error) {
	if s == "" {
		return DefaultSortColumn, nil
	}
	if !validator.PermittedValue(SortColumn(s), SortColumns...) {
		return "", ErrInvalidInput
	}
	return SortColumn(s), nil
}

func (c SortColumn) sql() string {
	return sortColumnSQL[c]
}

// SortOrder is the direction of an ordering. Matching is case sensitive.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const DefaultSortOrder = SortDesc

// ParseSortOrder resolves an order value. An empty value selects the default.
func ParseSortOrder(s string) (SortOrder, error) {
	if s == "" {
		return DefaultSortOrder, nil
	}
	if !validator.PermittedValue(SortOrder(s), SortAsc, SortDesc) {
		return "", ErrInvalidInput
	}
	return SortOrder(s), nil
}

func (o SortOrder) sql() string {
	if o == SortAsc {
		return "ASC"
	}
	return "DESC"
}
