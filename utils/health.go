package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Cache     bool      `json:"cache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	monitored     bool
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot. The second value is
// false when no monitor is running.
func GetHealthStatus() (HealthStatus, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth, monitored
}

// StartHealthMonitor pings the cache every interval until ctx is done.
func StartHealthMonitor(ctx context.Context, client *redis.Client, interval time.Duration) {
	if client == nil {
		return
	}
	check := func() {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		healthy := client.Ping(pingCtx).Err() == nil

		mu.Lock()
		currentHealth = HealthStatus{Cache: healthy, CheckedAt: time.Now().UTC()}
		monitored = true
		mu.Unlock()
	}

	check()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				check()
			}
		}
	}()
}
