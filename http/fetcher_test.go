package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	webcliphttp "github.com/fwojciec/webclip/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := webcliphttp.NewFetcher()
		page, err := f.Fetch(context.Background(), srv.URL+"/post")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, page.StatusCode)
		assert.True(t, page.OK())
		assert.Equal(t, "<html><body>hello</body></html>", page.Text())
		assert.Equal(t, "127.0.0.1", page.Hostname)
	})

	t.Run("non-2xx status is data, not an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		f := webcliphttp.NewFetcher()
		page, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, page.StatusCode)
		assert.False(t, page.OK())
	})

	t.Run("binary body preserved", func(t *testing.T) {
		t.Parallel()

		payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(payload)
		}))
		defer srv.Close()

		f := webcliphttp.NewFetcher()
		page, err := f.Fetch(context.Background(), srv.URL+"/foo.png")

		require.NoError(t, err)
		assert.Equal(t, payload, page.Body)
	})

	t.Run("sends user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := webcliphttp.NewFetcher(webcliphttp.WithUserAgent("webclip/test"))
		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "webclip/test", gotUA)
	})

	t.Run("transport error returned as error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // immediately, so the connection is refused

		f := webcliphttp.NewFetcher(webcliphttp.WithTimeout(time.Second))
		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		block := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-block
		}))
		defer srv.Close()
		defer close(block)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		f := webcliphttp.NewFetcher()
		_, err := f.Fetch(ctx, srv.URL)

		require.Error(t, err)
	})
}
