package customers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/conradreeve/crm-service/internal/apperr"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := SearchRequest{
		SortBy:        q.Get("sort_by"),
		SortDirection: q.Get("sort_direction"),
		SearchText:    q.Get("search_text"),
	}
	if raw := q.Get("status_filter"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "status_filter must be numeric", http.StatusBadRequest)
			return
		}
		req.StatusFilter = &n
	}

	list, err := h.svc.Search(req)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	if list == nil {
		list = []Customer{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	customer, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		apperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(customer); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var model Customer
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
	var model Customer
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

func (h *Handler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(chi.URLParam(r, "id"), req); err != nil {
		apperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(chi.URLParam(r, "id")); err != nil {
		apperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
