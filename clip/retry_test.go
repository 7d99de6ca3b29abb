package clip_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/clip"
	"github.com/fwojciec/webclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("attempts exactly the retry budget on persistent failure", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*webclip.Page, error) {
				attempts.Add(1)
				return &webclip.Page{URL: url, StatusCode: 500}, nil
			},
		}

		_, err := clip.DownloadWithRetry(context.Background(), fetcher, "https://example.com/foo.png", 4, 0)

		require.Error(t, err)
		assert.Equal(t, webclip.EUNAVAILABLE, webclip.ErrorCode(err))
		assert.Equal(t, int64(4), attempts.Load())
	})

	t.Run("succeeds mid-budget", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*webclip.Page, error) {
				if attempts.Add(1) < 3 {
					return &webclip.Page{URL: url, StatusCode: 503}, nil
				}
				return &webclip.Page{URL: url, StatusCode: 200, Body: []byte("img")}, nil
			},
		}

		page, err := clip.DownloadWithRetry(context.Background(), fetcher, "https://example.com/foo.png", 4, 0)

		require.NoError(t, err)
		assert.Equal(t, []byte("img"), page.Body)
		assert.Equal(t, int64(3), attempts.Load())
	})

	t.Run("transport errors are retried too", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*webclip.Page, error) {
				attempts.Add(1)
				return nil, errors.New("connection reset")
			},
		}

		_, err := clip.DownloadWithRetry(context.Background(), fetcher, "https://example.com/foo.png", 2, 0)

		require.Error(t, err)
		assert.Equal(t, int64(2), attempts.Load())
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*webclip.Page, error) {
				cancel()
				return &webclip.Page{URL: url, StatusCode: 500}, nil
			},
		}

		_, err := clip.DownloadWithRetry(ctx, fetcher, "https://example.com/foo.png", 4, 0)

		require.Error(t, err)
	})
}
