package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/domain"
)

type PlayResponse struct {
	ID        uuid.UUID `json:"id"`
	GameID    uuid.UUID `json:"game_id"`
	CreatedAt time.Time `json:"created_at"`
}

func PlayToApi(p *domain.Play) *PlayResponse {
	return &PlayResponse{
		ID:        p.ID,
		GameID:    p.GameID,
		CreatedAt: p.CreatedAt,
	}
}

func PlaysToApi(plays []*domain.Play) []*PlayResponse {
	out := make([]*PlayResponse, 0, len(plays))
	for _, p := range plays {
		out = append(out, PlayToApi(p))
	}
	return out
}

type ParticipantResponse struct {
	PlayID    uuid.UUID `json:"play_id"`
	PlayerID  uuid.UUID `json:"player_id"`
	CreatedAt time.Time `json:"created_at"`
}

func ParticipantToApi(p *domain.PlayParticipant) *ParticipantResponse {
	return &ParticipantResponse{
		PlayID:    p.PlayID,
		PlayerID:  p.PlayerID,
		CreatedAt: p.CreatedAt,
	}
}

func ParticipantsToApi(participants []*domain.PlayParticipant) []*ParticipantResponse {
	out := make([]*ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		out = append(out, ParticipantToApi(p))
	}
	return out
}
