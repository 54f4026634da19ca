package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/internal/book"
	apphttp "bookcatalog/internal/http"
	"bookcatalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo, err := book.NewMemDBRepo()
	require.NoError(t, err)
	handler := apphttp.NewBookHandler(book.NewService(repo))
	srv := httptest.NewServer(apphttp.NewMux(handler))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) testutil.RecordResponse {
	t.Helper()
	r := testutil.NewRequest(method, srv.URL+path, body)
	r.RequestURI = ""

	resp, err := srv.Client().Do(r)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		require.NoError(t, json.Unmarshal(bodyBytes, &bodyMap))
	}

	return testutil.RecordResponse{
		Code:   resp.StatusCode,
		Header: resp.Header,
		Body:   bodyMap,
	}
}

func TestBookLifecycle(t *testing.T) {
	srv := newTestServer(t)

	dune := map[string]any{
		"title":          "Dune",
		"author":         "Frank Herbert",
		"isbn":           "9780441172719",
		"published_year": 1965,
	}

	created := do(t, srv, http.MethodPost, "/api/v1/books", dune)
	require.Equal(t, http.StatusCreated, created.Code)
	data := created.Data()
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Dune", data["title"])
	assert.Equal(t, "Frank Herbert", data["author"])
	assert.Equal(t, "9780441172719", data["isbn"])
	assert.Equal(t, float64(1965), data["published_year"])

	got := do(t, srv, http.MethodGet, "/api/v1/books/1", nil)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, data["id"], got.Data()["id"])
	assert.Equal(t, data["title"], got.Data()["title"])
	assert.Equal(t, data["isbn"], got.Data()["isbn"])

	deleted := do(t, srv, http.MethodDelete, "/api/v1/books/1", nil)
	assert.Equal(t, http.StatusNoContent, deleted.Code)

	gone := do(t, srv, http.MethodGet, "/api/v1/books/1", nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestCreateRejectsFutureYear(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/v1/books", map[string]any{
		"title":          "From the Future",
		"author":         "Nobody Yet",
		"isbn":           "9780441172719",
		"published_year": 3000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.ErrorFields(), "published_year")
}

func TestDuplicateISBNConflict(t *testing.T) {
	srv := newTestServer(t)

	dune := map[string]any{
		"title":          "Dune",
		"author":         "Frank Herbert",
		"isbn":           "9780441172719",
		"published_year": 1965,
	}
	first := do(t, srv, http.MethodPost, "/api/v1/books", dune)
	require.Equal(t, http.StatusCreated, first.Code)

	second := do(t, srv, http.MethodPost, "/api/v1/books", dune)
	assert.Equal(t, http.StatusConflict, second.Code)

	// Hyphenated form of the same ISBN is also a conflict.
	dune["isbn"] = "978-0-441-17271-9"
	third := do(t, srv, http.MethodPost, "/api/v1/books", dune)
	assert.Equal(t, http.StatusConflict, third.Code)
}

func TestPartialUpdateViaPatch(t *testing.T) {
	srv := newTestServer(t)

	created := do(t, srv, http.MethodPost, "/api/v1/books", map[string]any{
		"title":          "Dune",
		"author":         "Frank Herbert",
		"isbn":           "9780441172719",
		"published_year": 1965,
		"description":    "Desert planet.",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	updated := do(t, srv, http.MethodPatch, "/api/v1/books/1", map[string]any{
		"title": "Dune Messiah",
	})
	require.Equal(t, http.StatusOK, updated.Code)
	data := updated.Data()
	assert.Equal(t, "Dune Messiah", data["title"])
	assert.Equal(t, "Frank Herbert", data["author"])
	assert.Equal(t, "9780441172719", data["isbn"])
	assert.Equal(t, float64(1965), data["published_year"])
	assert.Equal(t, "Desert planet.", data["description"])
}

func TestFullUpdateViaPut(t *testing.T) {
	srv := newTestServer(t)

	created := do(t, srv, http.MethodPost, "/api/v1/books", map[string]any{
		"title":          "Dune",
		"author":         "Frank Herbert",
		"isbn":           "9780441172719",
		"published_year": 1965,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	updated := do(t, srv, http.MethodPut, "/api/v1/books/1", map[string]any{
		"title":          "Neuromancer",
		"author":         "William Gibson",
		"isbn":           "9780441569595",
		"published_year": 1984,
	})
	require.Equal(t, http.StatusOK, updated.Code)
	data := updated.Data()
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Neuromancer", data["title"])
	assert.Equal(t, "William Gibson", data["author"])
	assert.Equal(t, "9780441569595", data["isbn"])
}

func TestListAfterCreates(t *testing.T) {
	srv := newTestServer(t)

	empty := do(t, srv, http.MethodGet, "/api/v1/books", nil)
	require.Equal(t, http.StatusOK, empty.Code)
	assert.Len(t, empty.DataList(), 0)

	titles := []string{"Dune", "Neuromancer", "Hyperion"}
	isbns := []string{"9780441172719", "9780441569595", "9780553283686"}
	for i, title := range titles {
		resp := do(t, srv, http.MethodPost, "/api/v1/books", map[string]any{
			"title":          title,
			"author":         "Author",
			"isbn":           isbns[i],
			"published_year": 1980 + i,
		})
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	listed := do(t, srv, http.MethodGet, "/api/v1/books", nil)
	require.Equal(t, http.StatusOK, listed.Code)
	items := listed.DataList()
	require.Len(t, items, len(titles))
	for i, raw := range items {
		item := raw.(map[string]any)
		assert.Equal(t, float64(i+1), item["id"])
		assert.Equal(t, titles[i], item["title"])
	}
}

func TestUpdateAbsentBook(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPut, "/api/v1/books/42", map[string]any{"title": "X"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteAbsentBook(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodDelete, "/api/v1/books/42", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRootStatusEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, true, resp.Body["success"])
	assert.Equal(t, "running", resp.Data()["status"])
}
