package leads

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

func (h *Handler) ForCustomerHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ForCustomer(chi.URLParam(r, "customerId"))
	if err != nil {
		apperr.Write(w, err)
		return
	}
	if list == nil {
		list = []Lead{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	lead, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		apperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(lead); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var model Lead
	if err := json.NewDecoder(r.Body).Decode(&model); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.svc.Create(model)
	if err != nil {
		apperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var model Lead
	if err := json.NewDecoder(r.Body).Decode(&model); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.Update(chi.URLParam(r, "id"), model); err != nil {
		apperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
