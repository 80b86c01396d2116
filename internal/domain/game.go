package domain

import (
	"time"

	"github.com/google/uuid"
)

// Game is a named game definition. Names are unique across all games.
type Game struct {
	ID          uuid.UUID
	Name        string
	CreatorName string
	CreatedAt   time.Time
}

// GamePatch holds the optional fields of a partial game update.
// A nil field keeps the stored value.
type GamePatch struct {
	Name        *string
	CreatorName *string
}

// NewGame constructs a game with a freshly generated identifier.
// CreatedAt is left for the store to assign.
func NewGame(name, creatorName string) *Game {
	return &Game{
		ID:          uuid.New(),
		Name:        name,
		CreatorName: creatorName,
	}
}

// Apply returns a copy of g with every provided patch field replaced.
func (g Game) Apply(p GamePatch) Game {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.CreatorName != nil {
		g.CreatorName = *p.CreatorName
	}
	return g
}

// IsEmpty reports whether the patch changes nothing.
func (p GamePatch) IsEmpty() bool {
	return p.Name == nil && p.CreatorName == nil
}
