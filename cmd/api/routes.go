package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/manas-solves/news-backend/internal/metrics"
)

// routes returns a new chi router containing the application routes.
func (app *application) routes() *chi.Mux {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID, app.recoverPanic, app.metrics.Middleware, app.logRequest, app.enableCORS)

	r.Method(http.MethodGet, "/metrics", metrics.Handler(app.registry))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", app.getEndpointsHandler)
		r.Get("/healthcheck", app.healthcheckHandler)

		r.Get("/topics", app.listTopicsHandler)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", app.listArticlesHandler)
			r.Get("/{article_id}", app.getArticleHandler)
			r.Patch("/{article_id}", app.updateArticleVotesHandler)
			r.Get("/{article_id}/comments", app.listCommentsHandler)
			r.Post("/{article_id}/comments", app.createCommentHandler)
		})

		r.Route("/comments/{comment_id}", func(r chi.Router) {
			r.Patch("/", app.updateCommentVotesHandler)
			r.Delete("/", app.deleteCommentHandler)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", app.listUsersHandler)
			r.Get("/{username}", app.getUserHandler)
		})
	})

	return r
}
