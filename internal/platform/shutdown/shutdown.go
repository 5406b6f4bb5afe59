package shutdown

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lydiaandcrim/wyshdrop-backend/pkg/lifecycle"
)

const (
	httpTimeout     = 15 * time.Second
	gracefulTimeout = 30 * time.Second
	forcefulTimeout = time.Second
)

// Coordinator orchestrates graceful shutdown. Background services hold
// handles from the graceful manager; the forceful manager is the second
// broadcast for anything that ignored the first.
type Coordinator struct {
	GracefulManager *lifecycle.Manager
	ForcefulManager *lifecycle.Manager
	Log             *logrus.Logger
}

// NewCoordinator builds a coordinator over externally created managers.
func NewCoordinator(gracefulMgr, forcefulMgr *lifecycle.Manager, log *logrus.Logger) *Coordinator {
	return &Coordinator{GracefulManager: gracefulMgr, ForcefulManager: forcefulMgr, Log: log}
}

// ListenForSignalsAndShutdown blocks until SIGINT/SIGTERM, then drains
// the HTTP server and shuts background services down in two phases.
func (c *Coordinator) ListenForSignalsAndShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	c.Log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		c.Log.WithError(err).Error("http server shutdown error")
	} else {
		c.Log.Info("http server closed")
	}

	c.GracefulManager.Shutdown()
	remaining := c.GracefulManager.WaitWithTimeout(gracefulTimeout)
	if len(remaining) == 0 {
		c.Log.Info("all background services stopped")
	} else {
		c.Log.WithField("services", remaining).Warn("forcing remaining services to stop")
		c.ForcefulManager.Shutdown()
		c.ForcefulManager.WaitWithTimeout(forcefulTimeout)
	}

	c.Log.Info("shutdown complete")
}
