package api

import (
	"github.com/gorilla/mux"

	"github.com/carbonwakeup/server/internal/account"
	"github.com/carbonwakeup/server/internal/config"
	"github.com/carbonwakeup/server/internal/db"
	"github.com/carbonwakeup/server/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, logger)

	// Services
	accounts := account.NewService(repo, repo, cfg.BcryptCost)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(accounts, cfg.JWTSecret, cfg.TokenDuration)
	accountsHandler := NewAccountsHandler(accounts)
	calculatorHandler := NewCalculatorHandler()
	emissionsHandler := NewEmissionsHandler(repo)
	activitiesHandler := NewActivitiesHandler(repo, repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")
	r.HandleFunc("/v1/calculator/footprint", calculatorHandler.Calculate).Methods("POST")

	// Emissions dataset is public read-only; specific routes go first so mux
	// does not swallow them with the {country}/{year} pattern.
	r.HandleFunc("/v1/emissions", emissionsHandler.ListAll).Methods("GET")
	r.HandleFunc("/v1/emissions/compare/years", emissionsHandler.CompareYears).Methods("GET")
	r.HandleFunc("/v1/emissions/compare/countries", emissionsHandler.CompareCountries).Methods("GET")
	r.HandleFunc("/v1/emissions/year/{year}", emissionsHandler.ListByYear).Methods("GET")
	r.HandleFunc("/v1/emissions/country/{country}", emissionsHandler.ListByCountry).Methods("GET")
	r.HandleFunc("/v1/emissions/{country}/{year}", emissionsHandler.GetByCountryAndYear).Methods("GET")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Auth endpoints
	authV1 := apiV1.PathPrefix("/auth").Subrouter()
	authV1.HandleFunc("/signout", authHandler.Signout).Methods("POST")

	// Account management
	apiV1.HandleFunc("/users/{userID}/type", accountsHandler.GetType).Methods("GET")
	apiV1.HandleFunc("/users/{userID}/type", accountsHandler.SetType).Methods("PUT")
	apiV1.HandleFunc("/users/{userID}/password", accountsHandler.SetPassword).Methods("POST")
	apiV1.HandleFunc("/users/{userID}", accountsHandler.Delete).Methods("DELETE")

	// Dataset administration
	apiV1.HandleFunc("/emissions/import", emissionsHandler.Import).Methods("POST")

	// Activity endpoints
	apiV1.HandleFunc("/donations", activitiesHandler.RecordDonation).Methods("POST")
	apiV1.HandleFunc("/donations/{userID}", activitiesHandler.DonationHistory).Methods("GET")
	apiV1.HandleFunc("/footprints", activitiesHandler.RecordFootprint).Methods("POST")
	apiV1.HandleFunc("/footprints/{userID}", activitiesHandler.FootprintHistory).Methods("GET")

	return r
}
