package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateISBN is returned when a write would reuse another book's ISBN.
var ErrDuplicateISBN = errors.New("isbn already exists")

// Book represents a book entity.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
	PublishedYear int       `json:"published_year"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateInput holds the fields a client supplies when creating a book.
// The id is assigned by storage.
type CreateInput struct {
	Title         string `json:"title" validate:"required,max=500"`
	Author        string `json:"author" validate:"required,max=500"`
	ISBN          string `json:"isbn" validate:"required,isbn"`
	PublishedYear int    `json:"published_year" validate:"required,pubyear"`
	Description   string `json:"description" validate:"omitempty,max=5000"`
}

// UpdateInput holds the fields a client may supply when updating a book.
// Pointer fields distinguish "not supplied" (nil) from "set to empty";
// only non-nil fields are applied.
type UpdateInput struct {
	Title         *string `json:"title" validate:"omitempty,min=1,max=500"`
	Author        *string `json:"author" validate:"omitempty,min=1,max=500"`
	ISBN          *string `json:"isbn" validate:"omitempty,isbn"`
	PublishedYear *int    `json:"published_year" validate:"omitempty,pubyear"`
	Description   *string `json:"description" validate:"omitempty,max=5000"`
}

// Query defines filters and pagination for listing books.
type Query struct {
	Author string
	Q      string
	Limit  int
	Offset int
}
