package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ztna-portal/backend/app/dto"
	"ztna-portal/backend/app/middleware"
	"ztna-portal/backend/app/services"
)

type AdminController struct{ Users *services.UserService }

func NewAdminController(users *services.UserService) *AdminController {
	return &AdminController{Users: users}
}

// Handle dispatches /api/admin/users by method.
func (c *AdminController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.ListUsers(w, r)
	case http.MethodPost:
		c.CreateUser(w, r)
	case http.MethodDelete:
		c.DeleteUser(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.List()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userView(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *AdminController) CreateUser(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetUser(r.Context())
	var req dto.CreateUserRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing email or password"})
		return
	}
	u, err := c.Users.AdminCreateUser(caller, req.Email, req.FullName, req.Password, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, userView(u))
}

func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetUser(r.Context())
	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := c.Users.DeleteUser(caller, uint(id)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
