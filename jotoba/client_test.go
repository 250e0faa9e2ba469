package jotoba

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_SearchWords(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/search/words", r.URL.Path)
		assert.Equal(t, "application/json; charset=UTF-8", r.Header.Get("Content-type"))

		var req searchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, searchRequest{Query: "日本", Language: "English"}, req)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(nihonResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", newTestLogger())
	resp, err := c.SearchWords(context.Background(), "日本")
	require.NoError(t, err)
	require.Len(t, resp.Words, 2)
	assert.Equal(t, "日本", resp.Words[0].Reading.Kanji)
	assert.Len(t, resp.Words[0].Senses[1].Pos, 2)
}

func TestClient_SearchWords_RetriesOnServerError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"words":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "German", newTestLogger())
	resp, err := c.SearchWords(context.Background(), "猫")
	require.NoError(t, err)
	assert.Empty(t, resp.Words)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_SearchWords_BadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", newTestLogger())
	_, err := c.SearchWords(context.Background(), "猫")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 400")
}

func TestClient_SearchWords_BadJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"words":`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", newTestLogger())
	_, err := c.SearchWords(context.Background(), "猫")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode json")
}
