package config

import (
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the database. Postgres is used when DB_URL is set;
// otherwise a local SQLite file (DB_PATH, default wwcrm.sqlite).
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn := os.Getenv("DB_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "wwcrm.sqlite"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Minute)

	return db, nil
}
