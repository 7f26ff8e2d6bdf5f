package handlers

import (
	"encoding/json"
	"net/http"
)

type TokenHandler struct {
	tokens TokenIssuer
}

func NewTokenHandler(tokens TokenIssuer) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// CreateToken handles POST /jwt. Every field of the body becomes a claim;
// email is required.
func (h *TokenHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	var claims map[string]any
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	email, _ := claims["email"].(string)
	if err := validate.Var(email, "required,email"); err != nil {
		writeError(w, http.StatusBadRequest, "email claim is required")
		return
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		writeFailure(w, "issue token", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
