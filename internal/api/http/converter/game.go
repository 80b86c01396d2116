package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/domain"
)

type GameResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CreatorName string    `json:"creator_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func GameToApi(g *domain.Game) *GameResponse {
	return &GameResponse{
		ID:          g.ID,
		Name:        g.Name,
		CreatorName: g.CreatorName,
		CreatedAt:   g.CreatedAt,
	}
}

func GamesToApi(games []*domain.Game) []*GameResponse {
	out := make([]*GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, GameToApi(g))
	}
	return out
}
