package main

import (
	"errors"
	"math"
	"net/http"

	"github.com/manas-solves/news-backend/internal/data"
)

func (app *application) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filters := data.ArticleFilters{
		Topic:  qs.Get("topic"),
		SortBy: qs.Get("sort_by"),
		Order:  qs.Get("order"),
	}

	articles, err := app.modelStore.ListArticles(filters)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"articles": articles}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "article_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	article, err := app.modelStore.Articles.GetByID(id)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"article": article}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// votesInput is the body accepted by both vote endpoints. A nil IncVotes
// means the field was missing. JSON strings fail to decode into it.
type votesInput struct {
	IncVotes *float64 `json:"inc_votes"`
}

func (app *application) readVotes(w http.ResponseWriter, r *http.Request) (int64, error) {
	var input votesInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		return 0, err
	}

	if input.IncVotes == nil {
		return 0, errors.New("inc_votes must be provided")
	}

	return voteDelta(*input.IncVotes)
}

// voteDelta accepts whole numbers, including ones written as 7.0, that fit
// the 32-bit votes column.
func voteDelta(f float64) (int64, error) {
	if f != math.Trunc(f) {
		return 0, errors.New("inc_votes must be a whole number")
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, errors.New("inc_votes is out of range")
	}
	return int64(f), nil
}

func (app *application) updateArticleVotesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "article_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	delta, err := app.readVotes(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	article, err := app.modelStore.Articles.IncrementVotes(id, delta)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"article": article}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
