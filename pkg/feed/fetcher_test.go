package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/headlines/pkg/domain"
)

func TestNewHTTPFetcher(t *testing.T) {
	t.Run("valid endpoint", func(t *testing.T) {
		f, err := NewHTTPFetcher("http://127.0.0.1:5000/api/news", 0)
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:5000/api/news", f.Endpoint())
		assert.Equal(t, time.Duration(0), f.client.Timeout)
	})

	t.Run("custom timeout", func(t *testing.T) {
		f, err := NewHTTPFetcher("https://example.com/api/news", 5*time.Second)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, f.client.Timeout)
	})

	t.Run("invalid endpoints", func(t *testing.T) {
		for _, ep := range []string{"", "not a url", "ftp://example.com/news", "http://", "://bad"} {
			_, err := NewHTTPFetcher(ep, 0)
			assert.Error(t, err, "endpoint %q", ep)
		}
	})
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/news", r.URL.Path)
			assert.Contains(t, r.Header.Get("Accept"), "application/json")
			assert.NotEmpty(t, r.Header.Get("User-Agent"))
			assert.NotEmpty(t, r.Header.Get("Accept-Language"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"headlines":[{"title":"First","link":"https://example.com/1"},` +
				`{"title":"Second","link":"https://example.com/2"}],"last_updated":"2025-06-01T10:00:00Z"}`))
		}))
		defer srv.Close()

		f, err := NewHTTPFetcher(srv.URL+"/api/news", 0)
		require.NoError(t, err)
		headlines, err := f.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []domain.Headline{
			{Title: "First", Link: "https://example.com/1"},
			{Title: "Second", Link: "https://example.com/2"},
		}, headlines)
	})

	t.Run("missing headlines field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"other":1}`))
		}))
		defer srv.Close()

		f, err := NewHTTPFetcher(srv.URL, 0)
		require.NoError(t, err)
		headlines, err := f.Fetch(context.Background())
		require.NoError(t, err)
		assert.Nil(t, headlines)
	})

	t.Run("entries without fields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"headlines":[{},{"title":"only title"}]}`))
		}))
		defer srv.Close()

		f, err := NewHTTPFetcher(srv.URL, 0)
		require.NoError(t, err)
		headlines, err := f.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []domain.Headline{{}, {Title: "only title"}}, headlines)
	})

	t.Run("non-success status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"No headlines found"}`))
		}))
		defer srv.Close()

		f, err := NewHTTPFetcher(srv.URL, 0)
		require.NoError(t, err)
		_, err = f.Fetch(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStatus)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("invalid payloads", func(t *testing.T) {
		tbl := []struct {
			name string
			body string
		}{
			{"empty body", ""},
			{"not json", "<html>oops</html>"},
			{"null", "null"},
			{"array", `[{"title":"a","link":"b"}]`},
			{"wrong headlines type", `{"headlines":"nope"}`},
			{"trailing garbage", `{"headlines":[]} extra`},
		}
		for _, tt := range tbl {
			t.Run(tt.name, func(t *testing.T) {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(tt.body))
				}))
				defer srv.Close()

				f, err := NewHTTPFetcher(srv.URL, 0)
				require.NoError(t, err)
				_, err = f.Fetch(context.Background())
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrParse)
			})
		}
	})

	t.Run("server unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		endpoint := srv.URL
		srv.Close()

		f, err := NewHTTPFetcher(endpoint, 0)
		require.NoError(t, err)
		_, err = f.Fetch(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"headlines":[]}`))
		}))
		defer srv.Close()

		f, err := NewHTTPFetcher(srv.URL, 50*time.Millisecond)
		require.NoError(t, err)
		_, err = f.Fetch(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("canceled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"headlines":[]}`))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f, err := NewHTTPFetcher(srv.URL, 0)
		require.NoError(t, err)
		_, err = f.Fetch(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
