package router

import (
	"net/http"

	"ztna-portal/backend/app/controllers"
	"ztna-portal/backend/app/middleware"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, adminCtrl *controllers.AdminController, auditCtrl *controllers.AuditController, fileCtrl *controllers.FileController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("/ping", httpCtrl.Ping)
	mux.HandleFunc("/login", authCtrl.Login)
	mux.HandleFunc("/register", authCtrl.Register)

	// any active authenticated user
	mux.Handle("/api/users/me", mw.RequireActive(http.HandlerFunc(authCtrl.Me)))
	mux.Handle("/api/files", mw.RequireActive(http.HandlerFunc(fileCtrl.Handle)))
	mux.Handle("/api/files/download", mw.RequireActive(http.HandlerFunc(fileCtrl.Download)))

	// admin only
	mux.Handle("/api/admin/users", mw.RequireAdmin(http.HandlerFunc(adminCtrl.Handle)))
	mux.Handle("/api/admin/logs", mw.RequireAdmin(http.HandlerFunc(auditCtrl.List)))

	return mux
}
