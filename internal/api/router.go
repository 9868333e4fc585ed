package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/edgeguard/internal/api/apierr"
	"github.com/mcoot/edgeguard/internal/api/handler"
	"github.com/mcoot/edgeguard/internal/api/response"
	"github.com/mcoot/edgeguard/internal/middleware"
	"github.com/mcoot/edgeguard/internal/model"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger  *slog.Logger
	History handler.HistoryReader
	// ActiveSession reports the session of the game in progress (optional)
	ActiveSession func() *model.Session
}

// NewRouter creates the read-only status router
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.Write(w, apierr.NewNotFoundError())
	})

	sessionHandler := handler.NewSessionHandler(cfg.History)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, writePanic))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler(cfg.ActiveSession)).Methods(http.MethodGet)

	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/turns", sessionHandler.Turns).Methods(http.MethodGet)

	return r
}

func writePanic(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.Write(w, apierr.NewInternalError())
}

func healthHandler(active func() *model.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := response.Health{Status: "ok"}
		if active != nil {
			if s := active(); s != nil {
				id := string(s.ID)
				resp.ActiveSession = &id
			}
		}
		response.JSON(w, http.StatusOK, resp)
	}
}
