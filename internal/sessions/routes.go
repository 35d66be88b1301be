package sessions

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes(svc *Service) http.Handler {
	r := chi.NewRouter()
	h := NewHandler(svc)

	r.Get("/", h.ListHandler)
	r.Get("/{id}", h.GetHandler)
	r.Delete("/", h.DeleteAllForCurrentUserHandler)
	r.Delete("/{id}", h.DeleteHandler)

	return r
}
