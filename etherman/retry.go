package etherman

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
)

var (
	rateLimitRegex   = regexp.MustCompile(`(?i)rate limit|too many concurrent requests|exceeded|socket hang up`)
	timeoutRegex     = regexp.MustCompile(`(?i)timeout|time-out|time out|timedout|timed out`)
	connectionRegex  = regexp.MustCompile(`ETIMEDOUT|ENETUNREACH|ECONNRESET|ECONNREFUSED|SERVER_ERROR|EPROTO|(?i)connection refused|connection reset|no such host|EOF`)
	badResponseRegex = regexp.MustCompile(`(?i)bad response|response error|missing response|processing response error|invalid json response body|FetchError`)
	revertRegex      = regexp.MustCompile(`(?i)revert`)
	oversizedRegex   = regexp.MustCompile(`(?i)oversized data`)
	bridgeErrRegex   = regexp.MustCompile(`BRG:`)
)

// IsRetryable reports whether err looks like a provider hiccup worth retrying.
// Reverts are final unless the message also carries a connectivity failure.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := err.Error()
	connectivity := connectionRegex.MatchString(msg) || timeoutRegex.MatchString(msg)
	if revertRegex.MatchString(msg) && !connectivity {
		return false
	}
	if oversizedRegex.MatchString(msg) || bridgeErrRegex.MatchString(msg) {
		return false
	}
	return connectivity || rateLimitRegex.MatchString(msg) || badResponseRegex.MatchString(msg)
}

// Retry runs fn until it succeeds, fails with a non retryable error or the attempts run out.
// Each attempt gets its own RPCTimeout. Exhausted retries are wrapped with relay.ErrTransient.
func Retry[T any](
	ctx context.Context, logger *log.Logger, cfg RetryConfig, name string, fn func(ctx context.Context) (T, error),
) (T, error) {
	cfg = cfg.withDefaults()
	var (
		zero    T
		lastErr error
	)
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<(attempt-1)) * cfg.InitialBackoff.Duration
			logger.Debugf("retrying %s in %s (attempt %d/%d): %v", name, backoff, attempt, cfg.MaxRetries, lastErr)
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(backoff):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, cfg.RPCTimeout.Duration)
		res, err := fn(attemptCtx)
		cancel()
		if err == nil {
			return res, nil
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		if !IsRetryable(err) {
			return zero, err
		}
		lastErr = err
	}
	return zero, fmt.Errorf("%w: %s failed after %d attempts: %w", relay.ErrTransient, name, cfg.MaxRetries+1, lastErr)
}
