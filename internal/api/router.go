package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ewhitmore/scorepad-go/internal/api/handler"
	"github.com/ewhitmore/scorepad-go/internal/api/middleware"
	"github.com/ewhitmore/scorepad-go/internal/api/sse"
	"github.com/ewhitmore/scorepad-go/internal/dependencies/clock"
	"github.com/ewhitmore/scorepad-go/internal/services/access"
	"github.com/ewhitmore/scorepad-go/internal/services/table"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	Clock           clock.Clock
	AccessService   *access.Service
	TableController *table.Controller
	HubManager      *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	broadcaster := sse.NewBroadcaster(cfg.HubManager, cfg.Clock, cfg.Logger)
	tableHandler := handler.NewTableHandler(cfg.TableController, cfg.AccessService, broadcaster)
	gameHandler := handler.NewGameHandler(cfg.TableController, cfg.HubManager, broadcaster)

	// Create middleware
	keyMiddleware := middleware.TableKey(cfg.AccessService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Open routes: creating a table, viewing it, and claiming a key
	api.HandleFunc("/tables", tableHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/tables/{code}", tableHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/tables/{code}/claim", tableHandler.Claim).Methods(http.MethodPost)

	// Command routes require a table key bound to {code}
	tables := api.PathPrefix("/tables").Subrouter()
	tables.Use(keyMiddleware)
	tables.HandleFunc("/{code}/players", tableHandler.AddPlayer).Methods(http.MethodPost)
	tables.HandleFunc("/{code}/players/{index}", tableHandler.RemovePlayer).Methods(http.MethodDelete)
	tables.HandleFunc("/{code}/start", gameHandler.Start).Methods(http.MethodPost)
	tables.HandleFunc("/{code}/dice/{die}", gameHandler.SetDie).Methods(http.MethodPut)
	tables.HandleFunc("/{code}/dice", gameHandler.ClearDice).Methods(http.MethodDelete)
	tables.HandleFunc("/{code}/score", gameHandler.Score).Methods(http.MethodPost)
	tables.HandleFunc("/{code}/end", gameHandler.End).Methods(http.MethodPost)
	tables.HandleFunc("/{code}/reset", gameHandler.Reset).Methods(http.MethodPost)
	tables.HandleFunc("/{code}/events", gameHandler.Events).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
