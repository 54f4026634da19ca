package http

import (
	"net/http"

	"bookcatalog/internal/httpx"
)

const apiVersion = "1.0.0"

// NewMux registers the book routes and the root status endpoint.
// Health probes and the middleware chain are wired by the caller.
func NewMux(bookHandler *BookHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONSuccess(w, "Book Catalog API is running", map[string]string{
			"status":  "running",
			"version": apiVersion,
		}, nil)
	})

	mux.HandleFunc("POST /api/v1/books", bookHandler.Create)
	mux.HandleFunc("GET /api/v1/books", bookHandler.List)
	mux.HandleFunc("GET /api/v1/books/{id}", bookHandler.GetByID)
	mux.HandleFunc("PUT /api/v1/books/{id}", bookHandler.Update)
	mux.HandleFunc("PATCH /api/v1/books/{id}", bookHandler.Update)
	mux.HandleFunc("DELETE /api/v1/books/{id}", bookHandler.Delete)

	return mux
}
