package db

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"

	// DefaultDSN keeps the database in memory; it disappears with the process.
	DefaultDSN = "file::memory:"
)

// Open connects gorm to SQLite through the pure Go glebarez driver.
// A single connection is kept so in-memory databases are shared by every query.
func Open(dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		dsn = DefaultDSN
	}
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Printf("layer=client component=db method=Open err=%v", err)
		return nil, errors.Join(ErrInternal, err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Printf("layer=client component=db method=Open err=%v", err)
		return nil, errors.Join(ErrInternal, err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	return gdb, nil
}

func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
