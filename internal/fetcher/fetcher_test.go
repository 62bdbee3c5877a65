package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBustCache(t *testing.T) {
	first, err := BustCache("https://example.com/pub?gid=0&output=csv")
	require.NoError(t, err)
	second, err := BustCache("https://example.com/pub?gid=0&output=csv")
	require.NoError(t, err)

	u, err := url.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, "0", u.Query().Get("gid"))
	assert.Equal(t, "csv", u.Query().Get("output"))
	assert.NotEmpty(t, u.Query().Get(CacheBustParam))
	assert.NotEqual(t, first, second)

	_, err = BustCache("://bad")
	assert.Error(t, err)
}

func TestHTTPFetcher(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []*http.Request
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r)
		mu.Unlock()
		_, _ = w.Write([]byte("id;name\n1;Porter\n"))
	}))
	defer srv.Close()

	f := NewHTTP(srv.Client(), zap.NewNop())
	body, err := f.Fetch(context.Background(), srv.URL+"/pub?output=csv")
	require.NoError(t, err)
	assert.Equal(t, "id;name\n1;Porter\n", body)

	_, err = f.Fetch(context.Background(), srv.URL+"/pub?output=csv")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	for _, r := range seen {
		assert.Equal(t, "no-cache, no-store", r.Header.Get("Cache-Control"))
		assert.Equal(t, "no-cache", r.Header.Get("Pragma"))
		assert.Equal(t, "csv", r.URL.Query().Get("output"))
	}
	assert.NotEqual(t, seen[0].URL.Query().Get(CacheBustParam), seen[1].URL.Query().Get(CacheBustParam))
}

func TestHTTPFetcherStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTP(srv.Client(), zap.NewNop()).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestHTTPFetcherCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTP(nil, zap.NewNop()).Fetch(ctx, "http://127.0.0.1:1/menu.csv")
	assert.ErrorIs(t, err, context.Canceled)
}
