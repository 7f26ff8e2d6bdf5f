package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

type UserHandler struct {
	users services.UserStore
	// assignRoles keeps a role sent at signup. Off under strict auth, where
	// roles only change through UpdateRole.
	assignRoles bool
}

func NewUserHandler(users services.UserStore, assignRoles bool) *UserHandler {
	return &UserHandler{users: users, assignRoles: assignRoles}
}

// CreateUser handles POST /users. Signing up twice with the same email
// writes nothing the second time.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decodeBody(w, r, &user) {
		return
	}
	if !h.assignRoles {
		user.Role = ""
	}

	id, ok, err := h.users.InsertIfAbsent(r.Context(), &user)
	if err != nil {
		writeFailure(w, "create user", err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, models.InsertResult{Message: "user already exist"})
		return
	}
	writeJSON(w, http.StatusOK, inserted(id))
}

// GetUsers handles GET /users.
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeFailure(w, "fetch users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GetUserRole handles GET /user/{email}. An unknown email has an empty role.
func (h *UserHandler) GetUserRole(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeFailure(w, "fetch user", err)
		return
	}
	role := ""
	if user != nil {
		role = user.Role
	}
	writeJSON(w, http.StatusOK, map[string]string{"role": role})
}

type roleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UpdateRole handles PATCH /users/{email}.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.users.SetRole(r.Context(), mux.Vars(r)["email"], req.Role)
	if err != nil {
		writeFailure(w, "update role", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// DeleteUser handles DELETE /users/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.users.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, "delete user", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
