package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() *Config {
	return &Config{
		MaxRetries:    3,
		BackoffFactor: 2,
		InitialDelay:  time.Millisecond,
		MaxDelay:      10 * time.Millisecond,
	}
}

func TestRetry_SuccessOnFirstTry(t *testing.T) {
	counter := 0
	err := NewDefaultRetrier().Do(context.Background(), func() error {
		counter++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, counter)
}

func TestRetry_SuccessAfterRetries(t *testing.T) {
	counter := 0
	err := NewRetrier(fastConfig()).Do(context.Background(), func() error {
		counter++
		if counter < 3 {
			return errors.New("database is locked")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, counter)
}

func TestRetry_MaxRetriesExceeded(t *testing.T) {
	expected := errors.New("permanent error")
	counter := 0
	err := NewRetrier(fastConfig()).Do(context.Background(), func() error {
		counter++
		return expected
	})

	require.ErrorIs(t, err, expected)
	assert.Equal(t, 4, counter) // initial try + 3 retries
}

func TestRetry_NotRetryable(t *testing.T) {
	busy := errors.New("busy")
	broken := errors.New("syntax error")

	cfg := fastConfig()
	cfg.Retryable = func(err error) bool { return errors.Is(err, busy) }

	counter := 0
	err := NewRetrier(cfg).Do(context.Background(), func() error {
		counter++
		if counter == 1 {
			return busy
		}
		return broken
	})

	require.ErrorIs(t, err, broken)
	assert.Equal(t, 2, counter)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	err := NewDefaultRetrier().Do(ctx, func() error {
		cancel()
		return errors.New("operation error after cancel")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetry_Backoff(t *testing.T) {
	cfg := &Config{
		MaxRetries:    2,
		BackoffFactor: 2.0,
		InitialDelay:  20 * time.Millisecond,
		MaxDelay:      time.Second,
	}

	start := time.Now()
	_ = NewRetrier(cfg).Do(context.Background(), func() error { return errors.New("error") })

	// 20ms before the first retry, 40ms before the second
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}
