package user

import (
	"fmt"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
)

// migrateDB migrates the profile table.
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Profile{}); err != nil {
		return fmt.Errorf("unable to migrate profiles table: %w", err)
	}
	return nil
}

// WarmupCache loads every profile UUID into the Redis known-users set.
func WarmupCache() error {
	repo := NewRepository(database.DB)
	ids, err := repo.AllIDs()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = id
	}

	pipe := database.RDB.Pipeline()
	pipe.Del(database.Ctx, KnownUsersKey)
	pipe.SAdd(database.Ctx, KnownUsersKey, members...)
	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("unable to warm known-users cache: %w", err)
	}
	return nil
}

// PrimeCachedDB is the module's startup entry point.
func PrimeCachedDB() error {
	if err := migrateDB(); err != nil {
		return err
	}
	return WarmupCache()
}
