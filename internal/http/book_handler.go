package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"bookcatalog/internal/book"
	"bookcatalog/internal/httpx"
)

type BookHandler struct {
	svc *book.Service
}

func NewBookHandler(svc *book.Service) *BookHandler {
	return &BookHandler{svc: svc}
}

// @Summary Create a book
// @Description Add a new book to the catalog
// @Tags books
// @Accept json
// @Produce json
// @Param book body book.CreateInput true "Book fields"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Router /api/v1/books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in book.CreateInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if verrs := ValidateStruct(in); verrs != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation error", toErrorDetails(verrs))
		return
	}

	created, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respondBookError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, "Book created successfully", created)
}

// @Summary List books
// @Description Get all books with optional filters and pagination
// @Tags books
// @Produce json
// @Param author query string false "Filter by author"
// @Param q query string false "Search query"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} httpx.SuccessResponse
// @Router /api/v1/books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := book.Query{
		Author: r.URL.Query().Get("author"),
		Q:      r.URL.Query().Get("q"),
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	q.Limit = pageSize
	q.Offset = (page - 1) * pageSize

	books, total, err := h.svc.List(r.Context(), q)
	if err != nil {
		respondBookError(w, r, err)
		return
	}
	if books == nil {
		books = []book.Book{}
	}

	httpx.JSONSuccess(w, "Books retrieved successfully", books, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// @Summary Get book by id
// @Description Get a single book by its id
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/books/{id} [get]
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondBookError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Book retrieved successfully", b, nil)
}

// @Summary Update a book
// @Description Apply a partial or full update to a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book id"
// @Param book body book.UpdateInput true "Fields to update"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Router /api/v1/books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in book.UpdateInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if verrs := ValidateStruct(in); verrs != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation error", toErrorDetails(verrs))
		return
	}

	updated, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		respondBookError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Book updated successfully", updated, nil)
}

// @Summary Delete a book
// @Description Remove a book from the catalog permanently
// @Tags books
// @Param id path int true "Book id"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondBookError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation error", []httpx.ErrorDetail{
			{Field: "id", Message: "id must be an integer"},
		})
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation error", []httpx.ErrorDetail{
			{Field: "body", Message: "request body must be valid JSON"},
		})
		return false
	}
	return true
}

func toErrorDetails(verrs []ValidationError) []httpx.ErrorDetail {
	details := make([]httpx.ErrorDetail, 0, len(verrs))
	for _, v := range verrs {
		details = append(details, httpx.ErrorDetail{Field: v.Field, Message: v.Message})
	}
	return details
}

// respondBookError maps repository errors onto the HTTP error envelope.
// Anything unexpected becomes a logged 500 without leaking internals.
func respondBookError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, book.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.Is(err, book.ErrDuplicateISBN):
		httpx.JSONError(w, http.StatusConflict, "DUPLICATE_ISBN", "A book with this ISBN already exists", []httpx.ErrorDetail{
			{Field: "isbn", Message: "isbn must be unique"},
		})
	default:
		log.Printf("book handler error: request_id=%s method=%s path=%s error=%v",
			httpx.RequestIDFrom(r), r.Method, r.URL.Path, err)
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
