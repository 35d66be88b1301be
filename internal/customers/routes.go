package customers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes(svc *Service) http.Handler {
	r := chi.NewRouter()
	h := NewHandler(svc)

	r.Get("/search", h.SearchHandler)
	r.Get("/{id}", h.GetHandler)
	r.Post("/", h.CreateHandler)
	r.Put("/{id}", h.UpdateHandler)
	r.Patch("/{id}", h.UpdateStatusHandler)
	r.Delete("/{id}", h.DeleteHandler)

	return r
}
