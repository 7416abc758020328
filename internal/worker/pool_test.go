package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct{ calls int }

func (f *failingHandler) Process(context.Context, json.RawMessage) error {
	f.calls++
	return errors.New("smtp down")
}

func drainOne(t *testing.T, rdb *redis.Client, dlq *DLQ, handlers *Handlers) {
	t.Helper()
	raw, err := rdb.RPop(t.Context(), QueueEmail).Result()
	require.NoError(t, err)
	processJob(t.Context(), rdb, dlq, handlers, QueueEmail, raw)
}

func TestFailingJobRetriesThenBuries(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	dlq := NewDLQ(rdb)

	handler := &failingHandler{}
	handlers := &Handlers{Email: handler}

	dispatcher := NewDispatcher(rdb)
	require.NoError(t, dispatcher.EnqueueEmail(t.Context(), WelcomeEmailPayload{ToEmail: "x@example.com"}))

	// Each pass pops the job, fails it, and re-enqueues with attempts+1 —
	// until the third failure buries it.
	for i := 0; i < maxAttempts; i++ {
		drainOne(t, rdb, dlq, handlers)
	}
	assert.Equal(t, maxAttempts, handler.calls)

	queued, _ := rdb.LLen(t.Context(), QueueEmail).Result()
	assert.Zero(t, queued)
	depth, err := dlq.Depth(t.Context(), QueueEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)
}

func TestRequeueRestoresBuriedJob(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	dlq := NewDLQ(rdb)

	payload, _ := json.Marshal(WelcomeEmailPayload{ToEmail: "x@example.com"})
	dlq.Bury(t.Context(), Job{Type: "email", Payload: payload, Attempts: maxAttempts}, QueueEmail, "smtp down")

	moved, err := dlq.Requeue(t.Context(), QueueEmail, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	depth, _ := dlq.Depth(t.Context(), QueueEmail)
	assert.Zero(t, depth)

	raw, err := rdb.RPop(t.Context(), QueueEmail).Result()
	require.NoError(t, err)
	var job Job
	require.NoError(t, json.Unmarshal([]byte(raw), &job))
	assert.Equal(t, "email", job.Type)
	// Attempt counter is reset so the job gets a full set of retries.
	assert.Zero(t, job.Attempts)
}
