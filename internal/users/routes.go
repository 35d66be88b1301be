package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes(svc *Service) http.Handler {
	r := chi.NewRouter()
	h := NewHandler(svc)

	r.Get("/", h.ListHandler)
	r.Get("/{id}", h.GetHandler)
	r.Put("/{id}", h.UpdateHandler)
	r.Patch("/{id}", h.ChangePasswordHandler)
	r.Delete("/{id}", h.DeleteHandler)

	return r
}
