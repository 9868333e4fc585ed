package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/edgeguard/internal/api/apierr"
	"github.com/mcoot/edgeguard/internal/api/request"
	"github.com/mcoot/edgeguard/internal/api/response"
	"github.com/mcoot/edgeguard/internal/model"
)

// HistoryReader is the read side of the turn history
type HistoryReader interface {
	ListSessions(ctx context.Context, limit int) ([]*model.Session, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	GetTurns(ctx context.Context, id model.SessionID) ([]model.TurnRecord, error)
}

// SessionHandler handles session history endpoints
type SessionHandler struct {
	history HistoryReader
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(history HistoryReader) *SessionHandler {
	return &SessionHandler{history: history}
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := request.Limit(r)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	sessions, err := h.history.ListSessions(r.Context(), limit)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionListFromModel(sessions))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	session, err := h.history.GetSession(r.Context(), id)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// Turns handles GET /api/v1/sessions/{id}/turns
func (h *SessionHandler) Turns(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	turns, err := h.history.GetTurns(r.Context(), id)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TurnListFromModel(id, turns))
}
