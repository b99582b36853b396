package service

import (
	"math"
	"time"

	"anime_picker/internal/domain"
)

const DefaultMaxAttempts = 5

// RetryPolicy decides how many times the sampling sequence runs and which failures earn another attempt.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	IsRetryable    func(err error) bool
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		IsRetryable: IsRetryable,
	}
}

// IsRetryable accepts empty pages and gateway failures, including gateway timeouts.
// Missing results and validation failures are final. Cancellation of the caller's
// context is checked by the sampler itself.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if domain.IsNoResultsError(err) || domain.IsValidationError(err) {
		return false
	}
	return domain.IsEmptyPageError(err) || domain.IsGatewayProtocolError(err)
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.IsRetryable == nil {
		p.IsRetryable = IsRetryable
	}
	return p
}

// Backoff returns the wait before the attempt following the given one. Zero means retry at once.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	backoff := p.InitialBackoff
	if backoff <= 0 {
		return 0
	}
	for i := 1; i < attempt; i++ {
		if backoff > math.MaxInt64/2 {
			backoff = math.MaxInt64
			break
		}
		backoff *= 2
		if p.MaxBackoff > 0 && backoff >= p.MaxBackoff {
			break
		}
	}
	if p.MaxBackoff > 0 && backoff > p.MaxBackoff {
		backoff = p.MaxBackoff
	}
	return backoff
}
