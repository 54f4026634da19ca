package book

import (
	"context"
	"strings"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NormalizeISBN strips hyphens and spaces and upcases the check digit, so
// "978-0-441-17271-9" and "9780441172719" count as the same ISBN.
func NormalizeISBN(isbn string) string {
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")
	return strings.ToUpper(isbn)
}

// Create inserts a new book.
func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	in.ISBN = NormalizeISBN(in.ISBN)
	return s.repo.Create(ctx, in)
}

// GetByID returns a book by its id.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns books matching the query.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, q)
}

// Update applies the supplied fields to an existing book.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Book, error) {
	if in.ISBN != nil {
		normalized := NormalizeISBN(*in.ISBN)
		in.ISBN = &normalized
	}
	return s.repo.Update(ctx, id, in)
}

// Delete removes a book permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
