package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Storage struct {
	Path string
}

type Seed struct {
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

type Config struct {
	HTTP       HTTP
	DB         DB
	JWT        JWT
	Storage    Storage
	Seed       Seed
	BcryptCost int
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("backend.http.host", "127.0.0.1")
	v.SetDefault("backend.http.port", 9400)
	v.SetDefault("backend.db.driver", "mysql")
	v.SetDefault("backend.db.host", "127.0.0.1")
	v.SetDefault("backend.db.port", 3306)
	v.SetDefault("backend.db.user", "root")
	v.SetDefault("backend.db.pass", "")
	v.SetDefault("backend.db.name", "ztna_portal")
	v.SetDefault("backend.db.path", "ztna_portal.db")
	v.SetDefault("backend.storage.path", "uploads")
	v.SetDefault("backend.auth.bcrypt_cost", 10)
	v.SetDefault("backend.seed.admin_email", "admin@example.com")
	v.SetDefault("backend.seed.admin_name", "Admin User")
	v.SetDefault("backend.seed.admin_password", "")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("backend.http.host"), Port: v.GetInt("backend.http.port")},
		DB: DB{
			Driver: v.GetString("backend.db.driver"),
			Host:   v.GetString("backend.db.host"),
			Port:   v.GetInt("backend.db.port"),
			User:   v.GetString("backend.db.user"),
			Pass:   v.GetString("backend.db.pass"),
			Name:   v.GetString("backend.db.name"),
			Path:   v.GetString("backend.db.path"),
		},
		Storage: Storage{Path: v.GetString("backend.storage.path")},
		Seed: Seed{
			AdminEmail:    v.GetString("backend.seed.admin_email"),
			AdminName:     v.GetString("backend.seed.admin_name"),
			AdminPassword: v.GetString("backend.seed.admin_password"),
		},
		BcryptCost: v.GetInt("backend.auth.bcrypt_cost"),
	}
	cfg.JWT.Secret = v.GetString("backend.jwt.secret")
	cfg.JWT.Issuer = v.GetString("backend.jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "ztna-portal"
	}
	cfg.JWT.ExpMin = v.GetInt("backend.jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 30
	}
	return cfg, nil
}
