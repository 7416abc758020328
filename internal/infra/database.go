package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dealerdesk/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and migrates the
// audit schema. The console keeps no business data locally — the only table
// is the audit trail, so AutoMigrate is safe here.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)

	if err := db.AutoMigrate(&model.AuditEvent{}); err != nil {
		return nil, fmt.Errorf("migrate audit schema: %w", err)
	}

	return db, nil
}
