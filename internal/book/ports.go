package book

import (
	"context"
)

// Repository defines the contract for book data storage.
type Repository interface {
	// Create inserts a new book and returns it with the assigned id.
	Create(ctx context.Context, in CreateInput) (Book, error)
	// GetByID returns a book by its id.
	GetByID(ctx context.Context, id int64) (Book, error)
	// List returns books matching the query in id order, plus the total count.
	List(ctx context.Context, q Query) ([]Book, int, error)
	// Update applies the non-nil fields of in to the book with the given id.
	Update(ctx context.Context, id int64, in UpdateInput) (Book, error)
	// Delete removes the book with the given id permanently.
	Delete(ctx context.Context, id int64) error
}
