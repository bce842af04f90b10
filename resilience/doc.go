// Package resilience retries operations against external sinks and sources
// with exponential backoff and jitter.
//
// By default every error is retried except context cancellation and
// AppErrors whose Retryable flag is false:
//
//	err := resilience.RetryFunc(ctx, resilience.DefaultRetryConfig(), func() error {
//	    return client.RPush(ctx, key, batch...).Err()
//	})
package resilience
