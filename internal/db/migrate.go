package db

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"rental/internal/model"
)

// Models lists the tables owned by the service, parents first.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Property{},
		&model.Booking{},
	}
}

// Migrate creates or updates the schema. With reset set, existing tables are
// dropped first, children before parents.
func Migrate(gormDB *gorm.DB, reset bool) error {
	models := Models()

	if reset {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
		for i := len(models) - 1; i >= 0; i-- {
			if err := gormDB.Migrator().DropTable(models[i]); err != nil {
				log.Warn().Err(err).Msg("failed to drop table (may not exist)")
			}
		}
	}

	if err := gormDB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
