package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/conradreeve/crm-service/internal/auth"
	"github.com/conradreeve/crm-service/internal/config"
	"github.com/conradreeve/crm-service/internal/customers"
	"github.com/conradreeve/crm-service/internal/leads"
	"github.com/conradreeve/crm-service/internal/login"
	"github.com/conradreeve/crm-service/internal/middleware"
	"github.com/conradreeve/crm-service/internal/sessions"
	"github.com/conradreeve/crm-service/internal/store"
	"github.com/conradreeve/crm-service/internal/users"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "OK")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load(os.Getenv("CRM_CONFIG"))
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: ", err)
	}

	db, err := store.Open(cfg.Database.File, cfg.Database.MinifyJSON)
	if err != nil {
		log.Fatal("Failed to open data store: ", err)
	}
	log.Printf("Opened data store %s", cfg.Database.File)

	issuer := auth.NewTokenIssuer(cfg.Token)
	expiry := time.Duration(cfg.Token.ExpiryHours) * time.Hour

	userSvc := users.NewService(users.NewRepository(db), cfg.PlatformSecret)
	sessionSvc := sessions.NewService(sessions.NewRepository(db), userSvc, issuer, expiry)
	loginSvc := login.NewService(userSvc, sessionSvc)
	customerSvc := customers.NewService(customers.NewRepository(db))
	leadSvc := leads.NewService(leads.NewRepository(db))

	requireToken := middleware.RequireToken(issuer)
	loginThrottle := middleware.NewThrottle(rate.Every(time.Second), 5)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/health", HealthHandler)

	r.Route("/api", func(r chi.Router) {
		login.RegisterRoutes(r, loginSvc, requireToken, loginThrottle.Middleware)

		r.Group(func(r chi.Router) {
			r.Use(requireToken)
			r.Mount("/session", sessions.SetupRoutes(sessionSvc))
			r.Mount("/user", users.SetupRoutes(userSvc))
			r.Mount("/customer", customers.SetupRoutes(customerSvc))
			r.Mount("/leads", leads.SetupRoutes(leadSvc))
		})
	})

	log.Printf("Server listening on port :%s...", port)
	if err := http.ListenAndServe("0.0.0.0:"+port, r); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
