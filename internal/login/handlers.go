package login

import (
	"encoding/json"
	"net/http"

	"github.com/conradreeve/crm-service/internal/apperr"
	"github.com/conradreeve/crm-service/internal/users"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// writeToken sends the issued token back with 201, mirroring the created
// session resource.
func writeToken(w http.ResponseWriter, token string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email or password has not been provided", http.StatusBadRequest)
		return
	}

	token, err := h.svc.Login(req)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	writeToken(w, token)
}

func (h *Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req users.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email or password has not been provided", http.StatusBadRequest)
		return
	}

	token, err := h.svc.Signup(req)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	writeToken(w, token)
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		apperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
