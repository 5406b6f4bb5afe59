package preferences

import (
	"encoding/json"
	"fmt"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// WarmupCache preloads every profile's preferences into Redis so the
// first read after a restart is a cache hit.
func WarmupCache() error {
	repo := user.NewRepository(database.DB)
	profiles, err := repo.All()
	if err != nil {
		return err
	}

	pipe := database.RDB.Pipeline()
	for i := range profiles {
		raw, err := json.Marshal(fromProfile(&profiles[i]))
		if err != nil {
			return fmt.Errorf("unable to encode preferences for warm-up: %w", err)
		}
		pipe.Set(database.Ctx, key(profiles[i].ID), raw, 0)
	}
	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("unable to warm preference cache: %w", err)
	}
	return nil
}

// PrimeCachedDB is the module's startup entry point.
func PrimeCachedDB() error {
	return WarmupCache()
}
