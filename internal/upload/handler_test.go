package upload

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCreator struct {
	targets []Target
	err     error
	calls   int
}

func (s *stubCreator) CreateTargets(_ context.Context, contentTypes []string) ([]Target, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.targets, nil
}

func postUploads(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateTargets(rec, req)
	return rec
}

func TestCreateTargets_OK(t *testing.T) {
	stub := &stubCreator{targets: []Target{
		{Key: "uploads/2026/08/30/a.jpg", PutURL: "http://p/a", GetURL: "http://g/a", ContentType: "image/jpeg"},
		{Key: "uploads/2026/08/30/b.png", PutURL: "http://p/b", GetURL: "http://g/b", ContentType: "image/png"},
	}}
	h := NewHandler(stub)

	rec := postUploads(t, h, `{"count":2,"contentTypes":["image/jpeg","image/png"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var targets []Target
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&targets))
	require.Len(t, targets, 2)
	assert.Equal(t, "image/jpeg", targets[0].ContentType)
	assert.Equal(t, 1, stub.calls)
}

func TestCreateTargets_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"count":`},
		{"zero count", `{"count":0,"contentTypes":[]}`},
		{"negative count", `{"count":-3,"contentTypes":[]}`},
		{"count over limit", `{"count":201,"contentTypes":[]}`},
		{"length mismatch", `{"count":2,"contentTypes":["image/jpeg"]}`},
		{"non-image type", `{"count":1,"contentTypes":["video/mp4"]}`},
		{"empty type", `{"count":1,"contentTypes":[""]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCreator{}
			h := NewHandler(stub)

			rec := postUploads(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, 0, stub.calls, "validation failures must not reach the signer")
		})
	}
}

func TestCreateTargets_SignerFailure(t *testing.T) {
	h := NewHandler(&stubCreator{err: errors.New("storage down")})

	rec := postUploads(t, h, `{"count":1,"contentTypes":["image/jpeg"]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
}
