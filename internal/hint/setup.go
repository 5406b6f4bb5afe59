package hint

import (
	"fmt"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
)

// PrimeCachedDB is the module's startup entry point.
func PrimeCachedDB() error {
	if err := database.DB.AutoMigrate(&Hint{}); err != nil {
		return fmt.Errorf("unable to migrate hints table: %w", err)
	}
	return nil
}
