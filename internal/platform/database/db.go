package database

import (
	"fmt"
	"log"
	"os"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the main database connection using the configured driver.
func InitDB(cfg config.DatabaseConfig) {
	var err error

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent,
			Colorful:      true,
		},
	)

	// TranslateError maps driver unique-constraint failures to
	// gorm.ErrDuplicatedKey, which the wishlist insert fallback matches.
	gormCfg := &gorm.Config{Logger: newLogger, TranslateError: true}

	switch cfg.Driver {
	case "postgres":
		DB, err = gorm.Open(postgres.Open(cfg.DSN), gormCfg)
	default:
		DB, err = gorm.Open(sqlite.Open(cfg.DSN), gormCfg)
	}

	if err != nil {
		panic(fmt.Sprintf("unable to connect to database (%s): %v", cfg.Driver, err))
	}
}
