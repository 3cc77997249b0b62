package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Driver   string // "mysql" or "sqlite"
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Path     string // sqlite file path
}

// Connect opens the configured database. TranslateError is on so unique
// index violations surface as gorm.ErrDuplicatedKey on every driver.
func Connect(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}
	switch cfg.Driver {
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = cfg.DBName + ".db"
		}
		return gorm.Open(sqlite.Open(path), gcfg)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), gcfg)
	}
}
