package upstream

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackendDown = errors.New("backend down")

func failing() error { return errBackendDown }
func succeeding() error { return nil }

func TestBreakerTripsAfterThreshold(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 3, SuccessThreshold: 1, OpenTimeout: time.Minute})

	for i := 0; i < 3; i++ {
		assert.Equal(t, StateClosed, b.State())
		require.ErrorIs(t, b.Execute(failing), errBackendDown)
	}
	assert.Equal(t, StateOpen, b.State())
	assert.ErrorIs(t, b.Execute(succeeding), ErrCircuitOpen)
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 2, SuccessThreshold: 1, OpenTimeout: time.Minute})

	require.Error(t, b.Execute(failing))
	require.NoError(t, b.Execute(succeeding))
	require.Error(t, b.Execute(failing))
	// One failure after a success — still below the threshold.
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerHalfOpenProbe(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, SuccessThreshold: 2, OpenTimeout: 10 * time.Millisecond})

	require.Error(t, b.Execute(failing))
	assert.Equal(t, StateOpen, b.State())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, StateHalfOpen, b.State())

	// Two successful probes close the breaker.
	require.NoError(t, b.Execute(succeeding))
	require.NoError(t, b.Execute(succeeding))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, SuccessThreshold: 2, OpenTimeout: 10 * time.Millisecond})

	require.Error(t, b.Execute(failing))
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, StateHalfOpen, b.State())

	require.ErrorIs(t, b.Execute(failing), errBackendDown)
	assert.Equal(t, StateOpen, b.State())
}
