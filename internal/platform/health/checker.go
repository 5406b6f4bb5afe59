package health

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/startup"
	"github.com/lydiaandcrim/wyshdrop-backend/pkg/lifecycle"
	"github.com/sirupsen/logrus"
)

const (
	checkInterval = 5 * time.Second
	pingTimeout   = 2 * time.Second
)

var runIDPattern = regexp.MustCompile(`run_id:([a-f0-9]+)`)

// getRedisRunID extracts the server run_id from Redis INFO. A changed
// run_id means Redis restarted and volatile caches are gone.
func getRedisRunID() (string, error) {
	ctx, cancel := context.WithTimeout(database.Ctx, pingTimeout)
	defer cancel()
	info, err := database.RDB.Info(ctx, "server").Result()
	if err != nil {
		return "", err
	}
	matches := runIDPattern.FindStringSubmatch(info)
	if len(matches) < 2 {
		return "", fmt.Errorf("run_id not present in Redis INFO")
	}
	return matches[1], nil
}

// InitializeRunID runs once at startup and records the initial run_id.
func InitializeRunID() {
	runID, err := getRedisRunID()
	if err != nil {
		panic(fmt.Sprintf("unable to read Redis run ID at startup: %v", err))
	}
	database.SetInitialRunID(runID)
}

// PerformCheck executes a single health observation. On a detected Redis
// restart it re-warms the session and preference caches before marking
// the system healthy again.
func PerformCheck(log *logrus.Logger) {
	runID, err := getRedisRunID()
	if err != nil {
		database.UpdateStatus(false, "")
		return
	}

	if known := database.GetLastKnownRunID(); known != "" && known != runID {
		log.WithFields(logrus.Fields{"old": known, "new": runID}).Warn("health: redis restart detected, re-warming caches")
		if err := startup.RebuildCache(); err != nil {
			log.WithError(err).Error("health: cache re-warm failed, will retry")
			database.UpdateStatus(false, "")
			return
		}
	}

	database.UpdateStatus(true, runID)
}

// StartRedisHealthCheck runs the periodic checker until shutdown.
func StartRedisHealthCheck(handle *lifecycle.Handle, log *logrus.Logger) {
	defer handle.Close()

	for {
		if err := handle.Sleep(checkInterval); err != nil {
			return
		}
		PerformCheck(log)
	}
}
