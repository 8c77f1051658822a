package http

import (
	"net/http"

	"ayurcare/internal/delivery/http/handler"
	"ayurcare/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	patientHandler  *handler.PatientHandler
	backupHandler   *handler.BackupHandler
	settingsHandler *handler.SettingsHandler
	chatHandler     *handler.ChatHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	backupHandler *handler.BackupHandler,
	settingsHandler *handler.SettingsHandler,
	chatHandler *handler.ChatHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		patientHandler:  patientHandler,
		backupHandler:   backupHandler,
		settingsHandler: settingsHandler,
		chatHandler:     chatHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Patient routes (protected)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)

	// Fixed paths must be registered before the {id} routes.
	patients.HandleFunc("/analyze", r.patientHandler.Analyze).Methods(http.MethodPost)
	patients.HandleFunc("/export", r.backupHandler.Export).Methods(http.MethodGet)
	patients.HandleFunc("/import", r.backupHandler.Import).Methods(http.MethodPost)
	patients.HandleFunc("/stats", r.patientHandler.Stats).Methods(http.MethodGet)

	patients.HandleFunc("", r.patientHandler.List).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPatch)
	patients.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Settings routes (protected)
	settings := api.PathPrefix("/settings").Subrouter()
	settings.Use(r.authMiddleware.Authenticate)
	settings.HandleFunc("", r.settingsHandler.Get).Methods(http.MethodGet)
	settings.HandleFunc("", r.settingsHandler.Update).Methods(http.MethodPatch)

	// Chat routes (protected)
	chat := api.PathPrefix("/chat").Subrouter()
	chat.Use(r.authMiddleware.Authenticate)
	chat.HandleFunc("", r.chatHandler.Send).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
