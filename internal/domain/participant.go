package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ParticipantKey identifies a play participant. The pair is the primary key.
type ParticipantKey struct {
	PlayID   uuid.UUID
	PlayerID uuid.UUID
}

func (k ParticipantKey) String() string {
	return fmt.Sprintf("(%s,%s)", k.PlayID, k.PlayerID)
}

// PlayParticipant links a player to a play they took part in.
type PlayParticipant struct {
	PlayID    uuid.UUID
	PlayerID  uuid.UUID
	CreatedAt time.Time
}

// ParticipantPatch re-points either half of a participant key.
type ParticipantPatch struct {
	PlayID   *uuid.UUID
	PlayerID *uuid.UUID
}

func NewPlayParticipant(playID, playerID uuid.UUID) *PlayParticipant {
	return &PlayParticipant{
		PlayID:   playID,
		PlayerID: playerID,
	}
}

func (p PlayParticipant) Key() ParticipantKey {
	return ParticipantKey{PlayID: p.PlayID, PlayerID: p.PlayerID}
}

// Apply returns the key the participant ends up with after the patch.
func (k ParticipantKey) Apply(p ParticipantPatch) ParticipantKey {
	if p.PlayID != nil {
		k.PlayID = *p.PlayID
	}
	if p.PlayerID != nil {
		k.PlayerID = *p.PlayerID
	}
	return k
}
