package db

import (
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// PoolConfig bounds the connection pool shared by every repository.
type PoolConfig struct {
	MaxOpenConns int
	MaxIdleConns int
}

// NormalizeDSN makes sure DATE columns scan into time.Time and that UPDATE
// reports matched rows, so an update that changes nothing still counts as
// having found its record.
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}

// GormConfig is the gorm configuration shared by every connection. Driver
// errors are translated to gorm sentinels such as gorm.ErrDuplicatedKey.
func GormConfig(logger zerolog.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:         NewGormLogger(logger),
		TranslateError: true,
	}
}

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string, pool PoolConfig) (*gorm.DB, error) {
	normalized, err := NormalizeDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(mysql.Open(normalized), GormConfig(log.Logger))
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql pool: %w", err)
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
