package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player is a participant identity. At most one player may be the owner.
type Player struct {
	ID        uuid.UUID
	Name      string
	IsOwner   bool
	CreatedAt time.Time
}

type PlayerPatch struct {
	Name    *string
	IsOwner *bool
}

func NewPlayer(name string, isOwner bool) *Player {
	return &Player{
		ID:      uuid.New(),
		Name:    name,
		IsOwner: isOwner,
	}
}

func (p Player) Apply(patch PlayerPatch) Player {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.IsOwner != nil {
		p.IsOwner = *patch.IsOwner
	}
	return p
}

func (p PlayerPatch) IsEmpty() bool {
	return p.Name == nil && p.IsOwner == nil
}
