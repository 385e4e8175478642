package identity

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
	"github.com/cbodonnell/bomberman/pkg/log"
	"github.com/cbodonnell/bomberman/pkg/messages"
	"github.com/cbodonnell/bomberman/pkg/repositories"
)

// Preference keys
const (
	KeyPlayerName       = "playerName"
	KeyPlayerColorRed   = "playerColorRed"
	KeyPlayerColorGreen = "playerColorGreen"
	KeyPlayerColorBlue  = "playerColorBlue"
)

// DefaultColor is used when no color has been stored.
var DefaultColor = gametypes.Color{Red: 1, Green: 0, Blue: 0}

// Identity is the durable player identity sent with every join request.
type Identity struct {
	Name  string
	Color *gametypes.Color
	Role  string
}

// JoinRole defaults to the player role.
func (i Identity) JoinRole() string {
	if i.Role == "" {
		return messages.RolePlayer
	}
	return i.Role
}

// Normalized returns the identity with surrounding whitespace removed from the name.
func (i Identity) Normalized() Identity {
	i.Name = strings.TrimSpace(i.Name)
	return i
}

// Diff reports which parts of the identity changed. Names are compared after
// trimming and colors per channel against gametypes.ColorEpsilon.
func Diff(prev, next Identity) (nameChanged bool, colorChanged bool) {
	nameChanged = strings.TrimSpace(prev.Name) != strings.TrimSpace(next.Name)
	switch {
	case prev.Color == nil && next.Color == nil:
		colorChanged = false
	case prev.Color == nil || next.Color == nil:
		colorChanged = true
	default:
		colorChanged = !prev.Color.Equal(*next.Color)
	}
	return nameChanged, colorChanged
}

// Changed reports whether a reconnect is warranted for next.
func Changed(prev, next Identity) bool {
	nameChanged, colorChanged := Diff(prev, next)
	return nameChanged || colorChanged
}

// Store loads and saves the identity through a preference repository.
type Store struct {
	repository repositories.Repository
	randIntn   func(n int) int
}

func NewStore(repository repositories.Repository) *Store {
	return &Store{
		repository: repository,
		randIntn:   rand.Intn,
	}
}

// GenerateName returns a default display name like Player123.
func (s *Store) GenerateName() string {
	return fmt.Sprintf("Player%d", 100+s.randIntn(900))
}

// Load reads the stored identity. Missing values are generated once and
// written back so the same defaults are used on the next launch.
func (s *Store) Load(ctx context.Context) (Identity, error) {
	name, err := s.repository.GetPreference(ctx, KeyPlayerName)
	if err != nil && !repositories.IsNotFound(err) {
		return Identity{}, fmt.Errorf("failed to load player name: %v", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.GenerateName()
		log.Info("Generated default player name %s", name)
		if err := s.repository.SetPreference(ctx, KeyPlayerName, name); err != nil {
			return Identity{}, fmt.Errorf("failed to save player name: %v", err)
		}
	}

	red, err := s.loadChannel(ctx, KeyPlayerColorRed, DefaultColor.Red)
	if err != nil {
		return Identity{}, err
	}
	green, err := s.loadChannel(ctx, KeyPlayerColorGreen, DefaultColor.Green)
	if err != nil {
		return Identity{}, err
	}
	blue, err := s.loadChannel(ctx, KeyPlayerColorBlue, DefaultColor.Blue)
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		Name:  name,
		Color: &gametypes.Color{Red: red, Green: green, Blue: blue},
		Role:  messages.RolePlayer,
	}, nil
}

func (s *Store) loadChannel(ctx context.Context, key string, fallback float64) (float64, error) {
	raw, err := s.repository.GetPreference(ctx, key)
	if err != nil {
		if !repositories.IsNotFound(err) {
			return 0, fmt.Errorf("failed to load %s: %v", key, err)
		}
		if err := s.repository.SetPreference(ctx, key, formatChannel(fallback)); err != nil {
			return 0, fmt.Errorf("failed to save %s: %v", key, err)
		}
		return fallback, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warn("Ignoring invalid stored value for %s: %q", key, raw)
		return fallback, nil
	}
	return value, nil
}

// Save persists the identity. An empty name keeps the stored one.
func (s *Store) Save(ctx context.Context, identity Identity) error {
	name := strings.TrimSpace(identity.Name)
	if name != "" {
		if err := s.repository.SetPreference(ctx, KeyPlayerName, name); err != nil {
			return fmt.Errorf("failed to save player name: %v", err)
		}
	}
	if identity.Color == nil {
		return nil
	}

	channels := []struct {
		key   string
		value float64
	}{
		{KeyPlayerColorRed, identity.Color.Red},
		{KeyPlayerColorGreen, identity.Color.Green},
		{KeyPlayerColorBlue, identity.Color.Blue},
	}
	for _, c := range channels {
		if err := s.repository.SetPreference(ctx, c.key, formatChannel(c.value)); err != nil {
			return fmt.Errorf("failed to save %s: %v", c.key, err)
		}
	}
	return nil
}

func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
