package comment

import (
	"fmt"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
)

// PrimeCachedDB is the module's startup entry point.
func PrimeCachedDB() error {
	if err := database.DB.AutoMigrate(&Comment{}); err != nil {
		return fmt.Errorf("unable to migrate comments table: %w", err)
	}
	return nil
}
