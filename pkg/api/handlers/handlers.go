package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/cbodonnell/bomberman/client/session"
	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
	"github.com/cbodonnell/bomberman/pkg/identity"
	"github.com/cbodonnell/bomberman/pkg/log"
)

// SessionController is the part of the session the debug endpoints use.
type SessionController interface {
	View() *session.View
	RequestReconnect(ctx context.Context) error
	UpdateIdentity(ctx context.Context, next identity.Identity) (bool, error)
}

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func HandleStatus(s SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.View())
	}
}

func reconnectStatus(err error) int {
	if errors.Is(err, session.ErrReconnectNotAllowed) || errors.Is(err, session.ErrReconnectInProgress) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func HandleReconnect(s SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.RequestReconnect(r.Context()); err != nil {
			status := reconnectStatus(err)
			if status == http.StatusInternalServerError {
				log.Error("failed to request reconnect: %v", err)
			}
			http.Error(w, err.Error(), status)
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]bool{"reconnecting": true})
	}
}

type updateIdentityRequest struct {
	Name  string           `json:"name"`
	Color *gametypes.Color `json:"color,omitempty"`
}

// HandleUpdateIdentity saves a new name or color and reconnects when allowed.
func HandleUpdateIdentity(s SessionController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := updateIdentityRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.Name != "" {
			if len(req.Name) > 16 {
				http.Error(w, "Name must be between 1 and 16 characters", http.StatusBadRequest)
				return
			}
			if !nameRegex.MatchString(req.Name) {
				http.Error(w, "Name cannot contain special characters", http.StatusBadRequest)
				return
			}
		}
		if req.Color != nil && !req.Color.Valid() {
			http.Error(w, "Color channels must be between 0 and 1", http.StatusBadRequest)
			return
		}

		reconnecting, err := s.UpdateIdentity(r.Context(), identity.Identity{Name: req.Name, Color: req.Color})
		if err != nil {
			log.Error("failed to update identity: %v", err)
			http.Error(w, "Failed to update identity", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"reconnecting": reconnecting})
	}
}
