package book

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-memdb"
)

const bookTable = "book"

// MemDBRepo is an in-memory Repository used for local development and tests.
// It enforces the same id assignment and ISBN uniqueness as the Postgres repo.
type MemDBRepo struct {
	db *memdb.MemDB

	mu     sync.Mutex
	nextID int64
}

func NewMemDBRepo() (*MemDBRepo, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			bookTable: {
				Name: bookTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					"isbn": {
						Name:    "isbn",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ISBN"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("memdb schema: %w", err)
	}
	return &MemDBRepo{db: db, nextID: 1}, nil
}

func (r *MemDBRepo) Create(_ context.Context, in CreateInput) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(bookTable, "isbn", in.ISBN)
	if err != nil {
		return Book{}, err
	}
	if existing != nil {
		return Book{}, ErrDuplicateISBN
	}

	now := time.Now().UTC()
	b := Book{
		ID:            r.nextID,
		Title:         in.Title,
		Author:        in.Author,
		ISBN:          in.ISBN,
		PublishedYear: in.PublishedYear,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := txn.Insert(bookTable, &b); err != nil {
		return Book{}, err
	}
	txn.Commit()
	r.nextID++
	return b, nil
}

func (r *MemDBRepo) GetByID(_ context.Context, id int64) (Book, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(bookTable, "id", id)
	if err != nil {
		return Book{}, err
	}
	if raw == nil {
		return Book{}, ErrNotFound
	}
	return *raw.(*Book), nil
}

func (r *MemDBRepo) List(_ context.Context, q Query) ([]Book, int, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	// The id index iterates in ascending numeric order.
	it, err := txn.Get(bookTable, "id")
	if err != nil {
		return nil, 0, err
	}

	matched := []Book{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		b := *raw.(*Book)
		if q.Author != "" && b.Author != q.Author {
			continue
		}
		if q.Q != "" && !matchesQuery(b, q.Q) {
			continue
		}
		matched = append(matched, b)
	}

	total := len(matched)
	if q.Offset > 0 {
		if q.Offset >= total {
			return []Book{}, total, nil
		}
		matched = matched[q.Offset:]
	}
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, total, nil
}

func matchesQuery(b Book, q string) bool {
	q = strings.ToLower(q)
	for _, field := range []string{b.Title, b.Author, b.ISBN, b.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (r *MemDBRepo) Update(_ context.Context, id int64, in UpdateInput) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn := r.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(bookTable, "id", id)
	if err != nil {
		return Book{}, err
	}
	if raw == nil {
		return Book{}, ErrNotFound
	}

	// Objects in memdb must not be mutated in place.
	b := *raw.(*Book)

	if in.ISBN != nil && *in.ISBN != b.ISBN {
		existing, err := txn.First(bookTable, "isbn", *in.ISBN)
		if err != nil {
			return Book{}, err
		}
		if existing != nil {
			return Book{}, ErrDuplicateISBN
		}
		b.ISBN = *in.ISBN
	}
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.PublishedYear != nil {
		b.PublishedYear = *in.PublishedYear
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	b.UpdatedAt = time.Now().UTC()

	if err := txn.Insert(bookTable, &b); err != nil {
		return Book{}, err
	}
	txn.Commit()
	return b, nil
}

func (r *MemDBRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn := r.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(bookTable, "id", id)
	if err != nil {
		return err
	}
	if raw == nil {
		return ErrNotFound
	}
	if err := txn.Delete(bookTable, raw); err != nil {
		return err
	}
	txn.Commit()
	return nil
}
