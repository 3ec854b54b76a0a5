package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screenlog/movie-catalog-backend/domain"
)

func TestOMDBSearchReturnsRawSummaries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "las", r.URL.Query().Get("s"))
		assert.Equal(t, "movie", r.URL.Query().Get("type"))
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Write([]byte(`{"Search":[{"Title":"Las Vegas","Year":"2003","imdbID":"tt0364828"}],"totalResults":"312","Response":"True"}`))
	}))
	defer srv.Close()

	source := NewOMDBSource(srv.URL, "test-key", time.Second)
	results, err := source.Search(context.Background(), "las", 3)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Las Vegas", results[0]["Title"])
	assert.Equal(t, "tt0364828", results[0]["imdbID"])
}

func TestOMDBSearchEmptyPageIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	defer srv.Close()

	source := NewOMDBSource(srv.URL, "test-key", time.Second)
	results, err := source.Search(context.Background(), "zzzzzz", 1)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestOMDBSearchServerErrorIsFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	source := NewOMDBSource(srv.URL, "test-key", time.Second)
	_, err := source.Search(context.Background(), "las", 1)

	assert.True(t, errors.Is(err, domain.ErrUpstreamFetch))
}

func TestOMDBLookupReturnsDetailPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "The Matrix", r.URL.Query().Get("t"))
		w.Write([]byte(`{"Title":"The Matrix","Year":"1999","Director":"Lana Wachowski, Lilly Wachowski","imdbID":"tt0133093","Response":"True"}`))
	}))
	defer srv.Close()

	source := NewOMDBSource(srv.URL, "test-key", time.Second)
	payload, err := source.Lookup(context.Background(), "The Matrix")

	require.NoError(t, err)
	assert.Equal(t, "The Matrix", payload["Title"])
	assert.Equal(t, "tt0133093", payload["imdbID"])
	assert.NotContains(t, payload, "Response")
}

func TestOMDBLookupNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	defer srv.Close()

	source := NewOMDBSource(srv.URL, "test-key", time.Second)
	_, err := source.Lookup(context.Background(), "No Such Film")

	assert.True(t, errors.Is(err, domain.ErrUpstreamNoMatch))
}

func TestOMDBLookupTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	source := NewOMDBSource(srv.URL, "test-key", time.Second)
	_, err := source.Lookup(context.Background(), "The Matrix")

	assert.True(t, errors.Is(err, domain.ErrUpstreamFetch))
}
