package product

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
)

// seedFile is the JSON catalog fixture loaded when the table is empty.
const seedFile = "assets/products.json"

func migrateDB() error {
	if err := database.DB.AutoMigrate(&Product{}); err != nil {
		return fmt.Errorf("unable to migrate products table: %w", err)
	}
	return nil
}

// seedCatalog loads the fixture into an empty catalog. A missing fixture
// file is not an error; the catalog just starts empty.
func seedCatalog() error {
	repo := NewRepository(database.DB)
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(seedFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("unable to read catalog seed: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return fmt.Errorf("unable to parse catalog seed: %w", err)
	}
	return repo.CreateBatch(products)
}

// PrimeCachedDB is the module's startup entry point.
func PrimeCachedDB() error {
	if err := migrateDB(); err != nil {
		return err
	}
	return seedCatalog()
}
