package source

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/sweepgridgo/internal/ctxlog"
	"resty.dev/v3"
)

const (
	fetchTimeout = 15 * time.Second
	fetchRetries = 2
)

// fetcher wraps the HTTP client used to retrieve grid data from URL sources.
type fetcher struct {
	client *resty.Client
}

func newFetcher() *fetcher {
	client := resty.New().
		SetTimeout(fetchTimeout).
		SetRetryCount(fetchRetries).
		SetRetryWaitTime(500 * time.Millisecond)
	return &fetcher{client: client}
}

func (f *fetcher) Close() error {
	return f.client.Close()
}

// Fetch retrieves the raw body at the given URL. Non-2xx responses are
// errors: a grid source that answers with an error page must not be parsed
// as grid data.
func (f *fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Fetching grid from URL.", "url", url)

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch %s: server responded %s", url, resp.Status())
	}

	logger.Debug("Grid fetched.", "url", url, "bytes", len(resp.Bytes()))
	return resp.Bytes(), nil
}
