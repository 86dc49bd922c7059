package db

import (
	"strings" // For DSN separator handling

	"github.com/mogzealio/rest-api-v3-heroku/internal/config" // Application configuration

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
)

// Open connects to the configured database. When no DB_HOST is set the
// connection falls back to a local SQLite file, with foreign key
// enforcement switched on so dangling item references are rejected.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBHost != "" {
		dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(sqliteDSN(cfg.SQLitePath)), &gorm.Config{})
}

// sqliteDSN appends the foreign key pragma to the configured path, which
// may itself already carry query parameters.
func sqliteDSN(path string) string {
	if strings.ContainsRune(path, '?') {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}
