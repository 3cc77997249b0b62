package initialize

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"ztna-portal/backend/app/controllers"
	"ztna-portal/backend/app/db"
	"ztna-portal/backend/app/guard"
	jwtutil "ztna-portal/backend/app/jwt"
	"ztna-portal/backend/app/middleware"
	"ztna-portal/backend/app/models"
	"ztna-portal/backend/app/password"
	"ztna-portal/backend/app/repo"
	"ztna-portal/backend/app/services"
	"ztna-portal/backend/app/storage"
	"ztna-portal/backend/config"
	"ztna-portal/backend/global"
	"ztna-portal/backend/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler
	Users  *services.UserService
	Audit  *services.AuditService
	Files  *services.FileService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, Path: cfg.DB.Path})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.AuditLog{}, &models.FileRecord{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Token signing secret comes from config so tokens survive restarts.
	// When unset, a fresh random secret is generated and every token issued
	// by previous processes stops verifying.
	secret := cfg.JWT.Secret
	if secret == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return nil, fmt.Errorf("generate secret: %w", err)
		}
		secret = hex.EncodeToString(b)
		global.Logger.Warn().Msg("jwt secret not configured, generated ephemeral secret: outstanding tokens are now invalid")
	}
	signer := &jwtutil.Signer{Secret: []byte(secret), Issuer: cfg.JWT.Issuer, TTL: time.Duration(cfg.JWT.ExpMin) * time.Minute}

	blobs, err := storage.NewDisk(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	userRepo := repo.NewUserRepository(gdb)
	auditRepo := repo.NewAuditLogRepository(gdb)
	fileRepo := repo.NewFileRepository(gdb)

	hasher := password.NewHasher(cfg.BcryptCost)
	userSvc := services.NewUserService(gdb, userRepo, auditRepo, hasher, signer)
	auditSvc := services.NewAuditService(auditRepo)
	fileSvc := services.NewFileService(gdb, fileRepo, auditRepo, blobs)

	if cfg.Seed.AdminPassword != "" {
		if err := userSvc.EnsureAdmin(cfg.Seed.AdminEmail, cfg.Seed.AdminName, cfg.Seed.AdminPassword); err != nil {
			global.Logger.Error().Err(err).Msg("seed admin failed")
		}
	}

	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc)
	adminCtrl := controllers.NewAdminController(userSvc)
	auditCtrl := controllers.NewAuditController(auditSvc)
	fileCtrl := controllers.NewFileController(fileSvc)
	mw := &middleware.Auth{Guard: guard.New(signer, userRepo)}

	h := router.NewRouter(httpCtrl, authCtrl, adminCtrl, auditCtrl, fileCtrl, mw)
	h = middleware.CORS(h)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Users: userSvc, Audit: auditSvc, Files: fileSvc}, nil
}
