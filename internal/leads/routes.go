package leads

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes(svc *Service) http.Handler {
	r := chi.NewRouter()
	h := NewHandler(svc)

	r.Get("/customer/{customerId}", h.ForCustomerHandler)
	r.Get("/{id}", h.GetHandler)
	r.Post("/", h.CreateHandler)
	r.Put("/{id}", h.UpdateHandler)

	return r
}
