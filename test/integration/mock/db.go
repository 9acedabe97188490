// Package mock provides in-memory stand-ins for the API's backing services.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// NewDb opens a shared in-memory sqlite database and migrates the given
// models. The connection is reused across scenarios; call ClearDb between
// them.
func NewDb(models ...any) *gorm.DB {
	dbOnce.Do(func() {
		sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
		if err != nil {
			panic(err)
		}

		// A single connection keeps the shared in-memory schema alive.
		sqlDB.SetMaxOpenConns(1)

		conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			panic("failed to connect to database: " + err.Error())
		}

		if err := conn.AutoMigrate(models...); err != nil {
			panic("failed to migrate database: " + err.Error())
		}

		dbConn = conn
	})

	return dbConn
}

// ClearDb removes all rows so scenarios start from an empty database.
func ClearDb(db *gorm.DB, models ...any) error {
	for _, m := range models {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
