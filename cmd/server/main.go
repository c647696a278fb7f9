package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/framecraft/framepos/internal/catalog"
	"github.com/framecraft/framepos/internal/config"
	"github.com/framecraft/framepos/internal/db"
	"github.com/framecraft/framepos/internal/migrations"
	"github.com/framecraft/framepos/internal/seed"
)

type server struct {
	auth  *authService
	db    *sql.DB
	store *catalog.Store
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	auth := newAuthService(database, cfg.SessionSecret)
	if err := auth.ensureAdminUser(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	stats, err := seed.Run(database)
	if err != nil {
		log.Fatalf("failed to run startup seed: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("startup seed inserted %d rows", stats.Inserts)
	}

	srv := &server{auth: auth, db: database, store: catalog.NewStore(database)}

	r := chi.NewRouter()
	r.Use(srv.authMiddleware)

	r.Post("/api/login", srv.handleLogin)
	r.Post("/api/logout", srv.handleLogout)

	r.Get("/api/frames", srv.handleFramesList)
	r.Post("/api/frames", srv.handleFramesCreate)
	r.Post("/api/frames/{id}", srv.handleFramesUpdate)
	r.Get("/api/mats", srv.handleMatsList)
	r.Post("/api/mats", srv.handleMatsCreate)
	r.Post("/api/mats/{id}", srv.handleMatsUpdate)
	r.Get("/api/glazing", srv.handleGlazingList)
	r.Post("/api/glazing", srv.handleGlazingCreate)
	r.Post("/api/glazing/{id}", srv.handleGlazingUpdate)
	r.Get("/api/services", srv.handleServicesList)
	r.Post("/api/services", srv.handleServicesCreate)
	r.Post("/api/services/{id}", srv.handleServicesUpdate)

	r.Get("/api/pricing-config", srv.handlePricingConfigGet)
	r.Put("/api/pricing-config", srv.handlePricingConfigUpdate)

	r.Post("/api/quote", srv.handleQuote)
	r.Post("/api/orders", srv.handleOrderCreate)
	r.Get("/api/orders", srv.handleOrdersList)
	r.Get("/api/orders/{id}/invoice", srv.handleOrderInvoice)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
