package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus is the latest backend connectivity snapshot served by /health.
// The memory backend runs with no external services, so both probe lists may
// be empty.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	healthMu      sync.RWMutex
	currentHealth HealthStatus
)

// GetHealthStatus returns the snapshot from the most recent probe cycle.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func probeBackends(ctx context.Context, redisClients []*redis.Client, mongoClient *mongo.Client) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}
	for _, client := range redisClients {
		status.Redis = append(status.Redis, client.Ping(ctx).Err() == nil)
	}
	status.Mongo = mongoClient != nil && mongoClient.Ping(ctx, nil) == nil
	return status
}

// StartHealthMonitor probes the configured backends once immediately and
// then on a fixed interval. Nil clients are reported as down, not probed.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ctx := context.Background()

		update := func() {
			status := probeBackends(ctx, redisClients, mongoClient)
			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
		update()

		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()
		for range ticker.C {
			update()
		}
	}()
}
