package sessions

import (
	"encoding/json"
	"net/http"

	"github.com/conradreeve/crm-service/internal/apperr"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.All()
	if err != nil {
		apperr.Write(w, err)
		return
	}
	if list == nil {
		list = []Session{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		apperr.Write(w, err)
		return
	}
	if session == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(session); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Delete(chi.URLParam(r, "id")); err != nil {
		apperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteAllForCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.DeleteAllForCurrentUser(r.Context()); err != nil {
		apperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
