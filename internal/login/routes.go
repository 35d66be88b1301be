package login

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes attaches the credential endpoints to the parent router.
// Login and signup are anonymous; logout alone needs the auth middleware,
// since it revokes the caller's own session. Login is throttled.
func RegisterRoutes(r chi.Router, svc *Service, requireToken, throttle func(http.Handler) http.Handler) {
	h := NewHandler(svc)

	r.With(throttle).Post("/login", h.LoginHandler)
	r.With(requireToken).Delete("/login", h.LogoutHandler)
	r.Post("/signup", h.SignupHandler)
}
