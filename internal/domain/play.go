package domain

import (
	"time"

	"github.com/google/uuid"
)

// Play is one session of a game being played.
type Play struct {
	ID        uuid.UUID
	GameID    uuid.UUID
	CreatedAt time.Time
}

// PlayUpdate replaces every mutable field of a play.
type PlayUpdate struct {
	GameID uuid.UUID
}

func NewPlay(gameID uuid.UUID) *Play {
	return &Play{
		ID:     uuid.New(),
		GameID: gameID,
	}
}

func (p Play) Apply(u PlayUpdate) Play {
	p.GameID = u.GameID
	return p
}
