package main

import (
	"net/http"

	"github.com/manas-solves/news-backend/internal/data"
)

func (app *application) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	articleID, err := app.readIDParam(r, "article_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	comments, err := app.modelStore.ListComments(articleID)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comments": comments}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	articleID, err := app.readIDParam(r, "article_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Username string `json:"username"`
		Body     string `json:"body"`
	}

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	comment := &data.Comment{
		ArticleID: articleID,
		Author:    input.Username,
		Body:      input.Body,
	}

	created, err := app.modelStore.InsertComment(comment)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"comment": created}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateCommentVotesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "comment_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	delta, err := app.readVotes(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	comment, err := app.modelStore.Comments.IncrementVotes(id, delta)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comment": comment}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "comment_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.modelStore.Comments.DeleteByID(id)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
