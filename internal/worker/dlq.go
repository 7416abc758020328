package worker

// Jobs that exhaust their retries land in a dead-letter list, one per source
// queue (dlq:{queue}), where they wait for manual inspection or a requeue.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dlqPrefix = "dlq:"

// DeadJob is a failed job plus the context needed to diagnose it.
type DeadJob struct {
	Queue    string          `json:"queue"`
	JobType  string          `json:"jobType"`
	Payload  json.RawMessage `json:"payload"`
	Reason   string          `json:"reason"`
	FailedAt time.Time       `json:"failedAt"`
	Attempts int             `json:"attempts"`
}

// DLQ is the dead-letter store shared by all worker queues.
type DLQ struct {
	rdb *redis.Client
}

func NewDLQ(rdb *redis.Client) *DLQ { return &DLQ{rdb: rdb} }

// Bury records a job that will not be retried again. Burying never fails
// loudly: the job is already lost to its queue, so all we can do is log.
func (q *DLQ) Bury(ctx context.Context, job Job, queue, reason string) {
	dead := DeadJob{
		Queue:    queue,
		JobType:  job.Type,
		Payload:  job.Payload,
		Reason:   reason,
		FailedAt: time.Now().UTC(),
		Attempts: job.Attempts,
	}
	data, err := json.Marshal(dead)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: marshal failed")
		return
	}
	if err := q.rdb.LPush(ctx, dlqPrefix+queue, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: push failed")
		return
	}
	log.Warn().
		Str("queue", queue).
		Str("type", job.Type).
		Str("reason", reason).
		Int("attempts", job.Attempts).
		Msg("job moved to dead letter queue")
}

// Depth reports how many dead jobs a queue has accumulated.
func (q *DLQ) Depth(ctx context.Context, queue string) (int64, error) {
	return q.rdb.LLen(ctx, dlqPrefix+queue).Result()
}

// Requeue moves up to n dead jobs back onto their source queue with a reset
// attempt counter. Returns how many were moved.
func (q *DLQ) Requeue(ctx context.Context, queue string, n int) (int, error) {
	moved := 0
	for ; moved < n; moved++ {
		raw, err := q.rdb.RPop(ctx, dlqPrefix+queue).Result()
		if err == redis.Nil {
			break
		}
		if err != nil {
			return moved, err
		}
		var dead DeadJob
		if err := json.Unmarshal([]byte(raw), &dead); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("dlq: dropping unreadable entry")
			continue
		}
		job, err := json.Marshal(Job{Type: dead.JobType, Payload: dead.Payload})
		if err != nil {
			return moved, err
		}
		if err := q.rdb.LPush(ctx, queue, job).Err(); err != nil {
			return moved, err
		}
	}
	return moved, nil
}
