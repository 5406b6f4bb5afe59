package database

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// statusManager tracks Redis availability for the rest of the service.
type statusManager struct {
	mu             sync.RWMutex
	isRedisHealthy bool
	lastKnownRunID string
	log            *logrus.Logger
}

var globalStatus = &statusManager{
	isRedisHealthy: true,
}

// SetStatusLogger wires the shared logger into status transitions.
func SetStatusLogger(log *logrus.Logger) {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()
	globalStatus.log = log
}

// IsRedisHealthy reports the last observed Redis health.
func IsRedisHealthy() bool {
	globalStatus.mu.RLock()
	defer globalStatus.mu.RUnlock()
	return globalStatus.isRedisHealthy
}

// SetInitialRunID records the Redis run_id observed at startup.
func SetInitialRunID(runID string) {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()
	globalStatus.lastKnownRunID = runID
}

// UpdateStatus records a new health observation.
func UpdateStatus(isHealthy bool, newRunID string) {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()

	if globalStatus.isRedisHealthy != isHealthy {
		globalStatus.isRedisHealthy = isHealthy
		if globalStatus.log != nil {
			if isHealthy {
				globalStatus.log.Info("health: redis is available again")
			} else {
				globalStatus.log.Warn("health: redis is unavailable")
			}
		}
	}

	if isHealthy {
		globalStatus.lastKnownRunID = newRunID
	}
}

// GetLastKnownRunID returns the last run_id seen while healthy.
func GetLastKnownRunID() string {
	globalStatus.mu.RLock()
	defer globalStatus.mu.RUnlock()
	return globalStatus.lastKnownRunID
}
