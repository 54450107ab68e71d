package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skyfleet/drone-ops/authenticator"
	"github.com/skyfleet/drone-ops/authz"
	"github.com/skyfleet/drone-ops/controllers"
	"github.com/skyfleet/drone-ops/database"
	authmiddleware "github.com/skyfleet/drone-ops/middleware"
	"github.com/skyfleet/drone-ops/repositories"
	"github.com/skyfleet/drone-ops/services"
)

func main() {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "drone_ops.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos)
	ctrl := controllers.NewControllers(srvs, jwtSecret)

	// Bootstrap the admin account when configured
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		if err := srvs.Users.EnsureAdmin(context.Background(), adminEmail, adminPassword); err != nil {
			log.Fatalf("Failed to bootstrap admin account: %v", err)
		}
	}

	// The OpenID Connect provider is optional. Without it only the
	// token endpoint (email/password) is available for login.
	var auth authenticator.Provider
	if issuer := os.Getenv("OIDC_ISSUER"); issuer != "" {
		auth, err = authenticator.NewOpenIDProvider(authenticator.OpenIDConfig{
			IssuerURL:    issuer,
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			CallbackURL:  os.Getenv("OIDC_CALLBACK_URL"),
		})
		if err != nil {
			log.Fatalf("Failed to initialize OpenID Connect provider: %v", err)
		}
	} else {
		log.Println("OIDC_ISSUER not set, web login disabled")
	}

	r, err := setupRouter(ctrl, auth, jwtSecret)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Drone ops server starting on port %s (database: %s)", port, dbPath)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, auth authenticator.Provider, jwtSecret string) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))

	useSecureCookies := os.Getenv("USE_HTTPS") == "true"

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "drone_ops_session",
		Secure:         useSecureCookies,
		Gclifetime:     3600, // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "drone-ops"}`)
	})
	r.Post("/auth/token", ctrl.Auth.Token)
	if auth != nil {
		r.Get("/login", ctrl.Auth.Login(auth))
		r.Get("/callback", ctrl.Auth.Callback(auth))
		r.Get("/logout", ctrl.Auth.Logout)
	}

	// PROTECTED ROUTES (authentication required)
	r.Route("/api", func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth(jwtSecret))

		// Roster routes; listing is open to all members, mutations are
		// gated in the service layer too
		r.Route("/users", func(r chi.Router) {
			r.Get("/", ctrl.Users.Index)
			r.Get("/me", ctrl.Users.Me)
			r.Get("/{id}", ctrl.Users.Show)
			r.Put("/{id}/password", ctrl.Users.SetPassword)

			r.Group(func(r chi.Router) {
				r.Use(authmiddleware.RequireRole(authz.CanManageUsers))
				r.Post("/", ctrl.Users.Create)
				r.Put("/{id}", ctrl.Users.Update)
				r.Delete("/{id}", ctrl.Users.Deactivate)
			})
		})

		// Drone inventory and claim workflow routes
		r.Route("/drones", func(r chi.Router) {
			r.Get("/", ctrl.Drones.Index)
			r.Get("/{id}", ctrl.Drones.Show)
			r.Get("/{id}/claim", ctrl.Claims.Active)
			r.Get("/{id}/claimable", ctrl.Claims.Claimable)
			r.Get("/{id}/claims", ctrl.Claims.History)
			r.Get("/{id}/flights", ctrl.Flights.ByDrone)
			r.Post("/{id}/claim", ctrl.Claims.Claim)

			r.Group(func(r chi.Router) {
				r.Use(authmiddleware.RequireRole(authz.CanForceClaim))
				r.Post("/{id}/claim/override", ctrl.Claims.Override)
			})

			r.Group(func(r chi.Router) {
				r.Use(authmiddleware.RequireRole(authz.CanManageDrones))
				r.Post("/", ctrl.Drones.Create)
				r.Put("/{id}", ctrl.Drones.Update)
				r.Delete("/{id}", ctrl.Drones.Delete)
				r.Post("/{id}/restore", ctrl.Drones.Restore)
			})
		})

		r.Route("/claims", func(r chi.Router) {
			r.Post("/{id}/release", ctrl.Claims.Release)
		})

		// Flight log routes
		r.Route("/flights", func(r chi.Router) {
			r.Get("/mine", ctrl.Flights.Mine)
			r.Get("/{id}", ctrl.Flights.Show)
			r.Post("/", ctrl.Flights.Create)
			r.Put("/{id}", ctrl.Flights.Update)
			r.Delete("/{id}", ctrl.Flights.Delete)
		})

		// Checklist template routes
		r.Route("/checklists", func(r chi.Router) {
			r.Get("/", ctrl.Checklists.Index)
			r.Get("/{id}", ctrl.Checklists.Show)

			r.Group(func(r chi.Router) {
				r.Use(authmiddleware.RequireRole(authz.CanManageDrones))
				r.Post("/", ctrl.Checklists.Create)
				r.Put("/{id}", ctrl.Checklists.Update)
				r.Delete("/{id}", ctrl.Checklists.Delete)
				r.Post("/{id}/restore", ctrl.Checklists.Restore)
			})
		})

		// Task routes
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", ctrl.Tasks.Index)
			r.Get("/mine", ctrl.Tasks.Mine)
			r.Get("/{id}", ctrl.Tasks.Show)
			r.Put("/{id}/status", ctrl.Tasks.SetStatus)

			r.Group(func(r chi.Router) {
				r.Use(authmiddleware.RequireRole(authz.CanAssignTasks))
				r.Post("/", ctrl.Tasks.Create)
				r.Put("/{id}", ctrl.Tasks.Update)
				r.Delete("/{id}", ctrl.Tasks.Delete)
			})
		})

		// Audit trail routes
		r.Group(func(r chi.Router) {
			r.Use(authmiddleware.RequireRole(authz.CanViewAuditLog))
			r.Get("/audit", ctrl.Audit.Index)
		})
	})

	return r, nil
}
