package photo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	items      []Image
	nextCursor string
	err        error

	gotStatus string
	gotLimit  int
	gotCursor string
	calls     int
}

func (s *stubLister) List(_ context.Context, status string, limit int, cursor string) ([]Image, string, error) {
	s.calls++
	s.gotStatus = status
	s.gotLimit = limit
	s.gotCursor = cursor
	return s.items, s.nextCursor, s.err
}

func getPhotos(t *testing.T, h *Handler, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/photos"+query, nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	return rec
}

func TestList_Defaults(t *testing.T) {
	stub := &stubLister{items: []Image{
		{ID: uuid.NewString(), URL: "http://cdn/a.jpg", Status: StatusProcessed, CreatedAt: time.Now()},
	}}
	h := NewHandler(stub)

	rec := getPhotos(t, h, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusProcessed, stub.gotStatus)
	assert.Equal(t, defaultLimit, stub.gotLimit)
	assert.Empty(t, stub.gotCursor)

	var resp listResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Items, 1)
	assert.Empty(t, resp.NextCursor)
}

func TestList_NextCursorPassedThrough(t *testing.T) {
	next := uuid.NewString()
	stub := &stubLister{nextCursor: next, items: []Image{}}
	h := NewHandler(stub)

	cursor := uuid.NewString()
	rec := getPhotos(t, h, "?status=queued&limit=5&cursor="+cursor)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusQueued, stub.gotStatus)
	assert.Equal(t, 5, stub.gotLimit)
	assert.Equal(t, cursor, stub.gotCursor)
	assert.Contains(t, rec.Body.String(), next)
}

func TestList_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown status", "?status=shiny"},
		{"limit not a number", "?limit=abc"},
		{"limit too small", "?limit=0"},
		{"limit too large", "?limit=61"},
		{"malformed cursor", "?cursor=not-a-uuid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubLister{}
			h := NewHandler(stub)

			rec := getPhotos(t, h, tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, 0, stub.calls)
		})
	}
}

func TestList_RepositoryFailure(t *testing.T) {
	h := NewHandler(&stubLister{err: errors.New("db down")})

	rec := getPhotos(t, h, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
