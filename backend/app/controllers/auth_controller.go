package controllers

import (
	"encoding/json"
	"net/http"

	"ztna-portal/backend/app/dto"
	"ztna-portal/backend/app/middleware"
	"ztna-portal/backend/app/services"
)

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing credentials"})
		return
	}
	token, _, err := c.Users.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing email or password"})
		return
	}
	u, err := c.Users.Register(req.Email, req.FullName, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, userView(u))
}

// Me returns the authenticated caller resolved by the auth middleware.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	if u == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, userView(u))
}
