package album

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Empty(t *testing.T) {
	r := chi.NewRouter()
	h := NewHandler()
	r.Get("/albums", h.List)

	req := httptest.NewRequest(http.MethodGet, "/albums", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Albums)
}

func TestGet_PlaceholderShape(t *testing.T) {
	r := chi.NewRouter()
	h := NewHandler()
	r.Get("/albums/{id}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/albums/cluster-7", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var a Album
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&a))
	assert.Equal(t, "cluster-7", a.ID)
	assert.Nil(t, a.Label)
	assert.Empty(t, a.Photos)
}
