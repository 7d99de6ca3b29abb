package clip

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fwojciec/webclip"
)

// DownloadWithRetry fetches url with a fixed cooldown between failed
// attempts, bounded at attempts total tries (one initial attempt plus
// attempts-1 retries). A non-2xx status counts as a failed attempt.
// Each call carries its own retry budget; nothing is shared between
// assets.
func DownloadWithRetry(ctx context.Context, fetcher webclip.Fetcher, url string, attempts int, cooldown time.Duration) (*webclip.Page, error) {
	operation := func() (*webclip.Page, error) {
		page, err := fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		if !page.OK() {
			return nil, webclip.Errorf(webclip.EUNAVAILABLE, "HTTP %d for %s", page.StatusCode, url)
		}
		return page, nil
	}

	if attempts < 1 {
		attempts = 1
	}
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(cooldown), uint64(attempts-1)),
		ctx,
	)

	return backoff.RetryWithData(operation, bo)
}
