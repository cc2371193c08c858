// Package retry runs an action a bounded number of times with a fixed delay between attempts.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Do invokes action until it succeeds, returns an error for which retryable is false, or has been
// attempted 'attempts' times. The delay between attempts is constant. A nil retryable retries
// every error.
func Do[T any](ctx context.Context, attempts uint, delay time.Duration, action func() (T, error), retryable func(error) bool) (T, error) {
	if attempts == 0 {
		attempts = 1
	}

	operation := func() (T, error) {
		v, err := action()
		if err != nil && retryable != nil && !retryable(err) {
			return v, backoff.Permanent(err)
		}

		return v, err
	}

	v, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(delay)),
		backoff.WithMaxTries(attempts),
		backoff.WithMaxElapsedTime(0))

	// backoff.Retry returns a permanent error from the final attempt still wrapped
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return v, permanent.Unwrap()
	}

	return v, err
}

// Always retries every error.
func Always(error) bool {
	return true
}
