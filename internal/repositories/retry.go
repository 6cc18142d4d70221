package repositories

import (
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryingClient retries transport errors and 5xx answers with exponential backoff.
// Only use it for idempotent requests without a body.
type RetryingClient struct {
	next            HTTPClient
	maxRetries      uint64
	initialInterval time.Duration
	maxInterval     time.Duration
}

// NewRetryingClient wraps next. With maxRetries == 0 next is returned unchanged.
func NewRetryingClient(next HTTPClient, maxRetries uint64) HTTPClient {
	if maxRetries == 0 {
		return next
	}
	return &RetryingClient{
		next:            next,
		maxRetries:      maxRetries,
		initialInterval: 200 * time.Millisecond,
		maxInterval:     5 * time.Second,
	}
}

func (c *RetryingClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialInterval
	bo.MaxInterval = c.maxInterval
	bo.MaxElapsedTime = 0

	var last *http.Response

	operation := func() error {
		resp, err := c.next.Do(req.Clone(ctx))
		if err != nil {
			return err
		}
		if last != nil {
			_ = last.Body.Close()
		}
		last = resp

		if resp.StatusCode >= 500 {
			return &serverError{statusCode: resp.StatusCode}
		}
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx))
	if last != nil {
		// The caller reports the final 5xx itself.
		return last, nil
	}
	return nil, err
}

type serverError struct {
	statusCode int
}

func (e *serverError) Error() string {
	return "server error: " + http.StatusText(e.statusCode)
}
