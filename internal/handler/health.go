package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"dealerdesk/internal/upstream"
	"dealerdesk/internal/worker"
)

// Health returns a JSON health check response. Checks DB and Redis
// connectivity and reports the upstream circuit state and dead-letter depth;
// never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client, breaker *upstream.Breaker) gin.HandlerFunc {
	dlq := worker.NewDLQ(rdb)
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		deadEmails, _ := dlq.Depth(ctx, worker.QueueEmail)

		c.JSON(status, gin.H{
			"ok":         status == http.StatusOK,
			"db":         dbStatus,
			"redis":      redisStatus,
			"upstream":   breaker.State().String(),
			"deadEmails": deadEmails,
		})
	}
}
