package http

import (
	"testing"
	"time"

	"bookcatalog/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateInput() book.CreateInput {
	return book.CreateInput{
		Title:         "Dune",
		Author:        "Frank Herbert",
		ISBN:          "9780441172719",
		PublishedYear: 1965,
	}
}

func TestValidateStruct_ValidCreateInput(t *testing.T) {
	assert.Nil(t, ValidateStruct(validCreateInput()))
}

func TestValidateStruct_MissingRequiredFields(t *testing.T) {
	verrs := ValidateStruct(book.CreateInput{})
	require.NotNil(t, verrs)

	fields := map[string]bool{}
	for _, v := range verrs {
		fields[v.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["author"])
	assert.True(t, fields["isbn"])
	assert.True(t, fields["published_year"])
}

func TestValidateStruct_ISBN(t *testing.T) {
	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{"isbn-13", "9780441172719", true},
		{"isbn-13 with hyphens", "978-0-441-17271-9", true},
		{"isbn-10", "0441172717", true},
		{"isbn-10 with X check digit", "019853453X", true},
		{"too short", "12345", false},
		{"letters", "97804411727AB", false},
		{"isbn-13 with X", "978044117271X", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			in.ISBN = tt.isbn
			verrs := ValidateStruct(in)
			if tt.valid {
				assert.Nil(t, verrs)
			} else {
				require.Len(t, verrs, 1)
				assert.Equal(t, "isbn", verrs[0].Field)
			}
		})
	}
}

func TestValidateStruct_PublishedYear(t *testing.T) {
	currentYear := time.Now().Year()

	tests := []struct {
		name  string
		year  int
		valid bool
	}{
		{"lower bound", 1450, true},
		{"current year", currentYear, true},
		{"typical", 1965, true},
		{"before print", 1449, false},
		{"future", currentYear + 1, false},
		{"far future", 3000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			in.PublishedYear = tt.year
			verrs := ValidateStruct(in)
			if tt.valid {
				assert.Nil(t, verrs)
			} else {
				require.Len(t, verrs, 1)
				assert.Equal(t, "published_year", verrs[0].Field)
			}
		})
	}
}

func TestValidateStruct_UpdateInputOmitsUnset(t *testing.T) {
	// A fully empty partial update is valid: nothing to check.
	assert.Nil(t, ValidateStruct(book.UpdateInput{}))

	empty := ""
	verrs := ValidateStruct(book.UpdateInput{Title: &empty})
	require.Len(t, verrs, 1)
	assert.Equal(t, "title", verrs[0].Field)

	badYear := 3000
	verrs = ValidateStruct(book.UpdateInput{PublishedYear: &badYear})
	require.Len(t, verrs, 1)
	assert.Equal(t, "published_year", verrs[0].Field)
}
