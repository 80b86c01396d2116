package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/domain"
)

type PlayerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsOwner   bool      `json:"is_owner"`
	CreatedAt time.Time `json:"created_at"`
}

func PlayerToApi(p *domain.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:        p.ID,
		Name:      p.Name,
		IsOwner:   p.IsOwner,
		CreatedAt: p.CreatedAt,
	}
}

func PlayersToApi(players []*domain.Player) []*PlayerResponse {
	out := make([]*PlayerResponse, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerToApi(p))
	}
	return out
}
