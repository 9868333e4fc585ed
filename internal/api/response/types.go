package response

import (
	"time"

	"github.com/mcoot/edgeguard/internal/model"
)

// Health is the response for the health endpoint
type Health struct {
	Status        string  `json:"status"`
	ActiveSession *string `json:"active_session,omitempty"`
}

// SessionResult represents how a game ended
type SessionResult struct {
	Turn        int       `json:"turn"`
	SelfHealth  float64   `json:"self_health"`
	EnemyHealth float64   `json:"enemy_health"`
	Won         bool      `json:"won"`
	EndedAt     time.Time `json:"ended_at"`
}

// Session represents a played game in API responses
type Session struct {
	ID           string            `json:"id"`
	ConfigDigest string            `json:"config_digest"`
	Layout       string            `json:"layout"`
	Bindings     map[string]string `json:"bindings"`
	StartedAt    time.Time         `json:"started_at"`
	Result       *SessionResult    `json:"result,omitempty"`
}

// SessionFromModel converts model.Session
func SessionFromModel(s *model.Session) Session {
	bindings := make(map[string]string, len(s.Bindings))
	for role, kind := range s.Bindings {
		bindings[string(role)] = string(kind)
	}

	var result *SessionResult
	if s.Result != nil {
		result = &SessionResult{
			Turn:        s.Result.Turn,
			SelfHealth:  s.Result.SelfHealth,
			EnemyHealth: s.Result.EnemyHealth,
			Won:         s.Result.Won(),
			EndedAt:     s.Result.EndedAt,
		}
	}

	return Session{
		ID:           string(s.ID),
		ConfigDigest: s.ConfigDigest,
		Layout:       s.Layout,
		Bindings:     bindings,
		StartedAt:    s.StartedAt,
		Result:       result,
	}
}

// SessionList is the response for listing sessions
type SessionList struct {
	Sessions []Session `json:"sessions"`
}

// SessionListFromModel converts a slice of sessions
func SessionListFromModel(sessions []*model.Session) SessionList {
	out := make([]Session, len(sessions))
	for i, s := range sessions {
		out[i] = SessionFromModel(s)
	}
	return SessionList{Sessions: out}
}

// Action represents a single spawn
type Action struct {
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Turn represents one recorded turn
type Turn struct {
	Turn            int       `json:"turn"`
	Structural      float64   `json:"structural"`
	Mobile          float64   `json:"mobile"`
	RebuildSignaled bool      `json:"rebuild_signaled"`
	Builds          []Action  `json:"builds"`
	Deploys         []Action  `json:"deploys"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// TurnFromModel converts model.TurnRecord
func TurnFromModel(t model.TurnRecord) Turn {
	return Turn{
		Turn:            t.Turn,
		Structural:      t.Structural,
		Mobile:          t.Mobile,
		RebuildSignaled: t.RebuildSignaled,
		Builds:          actionsFromModel(t.Builds),
		Deploys:         actionsFromModel(t.Deploys),
		SubmittedAt:     t.SubmittedAt,
	}
}

func actionsFromModel(actions []model.Action) []Action {
	out := make([]Action, len(actions))
	for i, a := range actions {
		out[i] = Action{Kind: string(a.Kind), X: a.At.X, Y: a.At.Y}
	}
	return out
}

// TurnList is the response for a session's turns
type TurnList struct {
	SessionID string `json:"session_id"`
	Turns     []Turn `json:"turns"`
}

// TurnListFromModel converts a session's turn records
func TurnListFromModel(id model.SessionID, turns []model.TurnRecord) TurnList {
	out := make([]Turn, len(turns))
	for i, t := range turns {
		out[i] = TurnFromModel(t)
	}
	return TurnList{SessionID: string(id), Turns: out}
}
