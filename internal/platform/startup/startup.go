package startup

import (
	"github.com/sirupsen/logrus"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/comment"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/contact"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/hint"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/preferences"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/product"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/quiz"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/wishlist"
)

var log = logrus.StandardLogger()

// SetLogger replaces the package logger before initialization runs.
func SetLogger(l *logrus.Logger) {
	log = l
}

// InitializeApplication runs every module's startup entry point:
// migrations, seed data and cache warm-up. Order matters; profiles must
// exist before the preference cache is built from them.
func InitializeApplication() error {
	log.Info("initializing application modules")

	if err := user.PrimeCachedDB(); err != nil {
		return err
	}
	if err := product.PrimeCachedDB(); err != nil {
		return err
	}
	if err := wishlist.PrimeCachedDB(); err != nil {
		return err
	}
	if err := contact.PrimeCachedDB(); err != nil {
		return err
	}
	if err := comment.PrimeCachedDB(); err != nil {
		return err
	}
	if err := hint.PrimeCachedDB(); err != nil {
		return err
	}
	if err := quiz.PrimeCachedDB(); err != nil {
		return err
	}
	if err := preferences.PrimeCachedDB(); err != nil {
		return err
	}

	log.Info("application modules initialized")
	return nil
}

// RebuildCache re-warms the Redis caches after a detected restart. The
// durable stores are untouched; only the volatile copies are rebuilt.
func RebuildCache() error {
	log.Info("rebuilding redis caches")

	if err := user.WarmupCache(); err != nil {
		return err
	}
	if err := preferences.WarmupCache(); err != nil {
		return err
	}

	log.Info("redis caches rebuilt")
	return nil
}
