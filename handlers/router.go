package handlers

import (
	"database/sql"
	"net/http"

	"todoapi/internal/generated/openapi"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter wires the todo handlers, the contract validator and the
// middleware stack onto a chi router. Every route also answers with a
// trailing slash.
func NewRouter(db *sql.DB, logger zerolog.Logger) (*chi.Mux, error) {
	doc, err := loadContract()
	if err != nil {
		return nil, err
	}
	validateBody, err := newBodyValidator(doc)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	openapi.HandlerWithOptions(NewTodoAPIServer(db), openapi.ChiServerOptions{
		BaseRouter:       router,
		Middlewares:      []openapi.MiddlewareFunc{validateBody},
		ErrorHandlerFunc: paramErrorHandler,
	})

	return router, nil
}
