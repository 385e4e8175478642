package session

import (
	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
	"github.com/cbodonnell/bomberman/pkg/identity"
)

// View is an immutable copy of the session state for consumers outside the loop.
type View struct {
	Phase        gametypes.Phase      `json:"phase"`
	Reconnecting bool                 `json:"reconnecting"`
	Connected    bool                 `json:"connected"`
	Generation   uint64               `json:"generation"`
	PlayerID     string               `json:"playerId,omitempty"`
	Round        int                  `json:"round"`
	JoinsSent    int                  `json:"joinsSent"`
	Identity     identity.Identity    `json:"identity"`
	State        *gametypes.GameState `json:"state"`
	Grid         gametypes.Grid       `json:"-"`
}

func (v *View) Rows() int {
	return v.Grid.Rows()
}

func (v *View) Cols() int {
	return v.Grid.Cols()
}

// LocalPlayer returns this client's player from the latest snapshot.
func (v *View) LocalPlayer() (gametypes.Player, bool) {
	if v.PlayerID == "" {
		return gametypes.Player{}, false
	}
	return v.State.Player(v.PlayerID)
}

// IsLocalPlayerAlive treats a player missing from the snapshot as alive.
func (v *View) IsLocalPlayerAlive() bool {
	player, ok := v.LocalPlayer()
	if !ok {
		return true
	}
	return player.Alive
}

// ShouldShowSpectatorBadge is true for an eliminated player while the match
// is still being contested by others.
func (v *View) ShouldShowSpectatorBadge() bool {
	return !v.IsLocalPlayerAlive() && v.State.AliveCount() >= 2 && len(v.State.Players) > 2
}
