package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Every method runs a single statement. Lookup misses return ErrNotFound,
// every other failure a *StoreError.

type GameRepository interface {
	Create(ctx context.Context, game *domain.Game) (*domain.Game, error)
	List(ctx context.Context) ([]*domain.Game, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	Update(ctx context.Context, game *domain.Game) (*domain.Game, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Game, error)
}

type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) (*domain.Player, error)
	List(ctx context.Context) ([]*domain.Player, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	Update(ctx context.Context, player *domain.Player) (*domain.Player, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Player, error)
}

type PlayRepository interface {
	Create(ctx context.Context, play *domain.Play) (*domain.Play, error)
	List(ctx context.Context) ([]*domain.Play, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Play, error)
	Update(ctx context.Context, play *domain.Play) (*domain.Play, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Play, error)
}

type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.PlayParticipant) (*domain.PlayParticipant, error)
	List(ctx context.Context) ([]*domain.PlayParticipant, error)
	ListByPlay(ctx context.Context, playID uuid.UUID) ([]*domain.PlayParticipant, error)
	Get(ctx context.Context, key domain.ParticipantKey) (*domain.PlayParticipant, error)
	Update(ctx context.Context, key domain.ParticipantKey, next domain.ParticipantKey) (*domain.PlayParticipant, error)
	Delete(ctx context.Context, key domain.ParticipantKey) (*domain.PlayParticipant, error)
}

var (
	_ GameRepository        = (*PostgresGameRepository)(nil)
	_ PlayerRepository      = (*PostgresPlayerRepository)(nil)
	_ PlayRepository        = (*PostgresPlayRepository)(nil)
	_ ParticipantRepository = (*PostgresParticipantRepository)(nil)

	_ GameRepository        = (*InMemoryGameRepository)(nil)
	_ PlayerRepository      = (*InMemoryPlayerRepository)(nil)
	_ PlayRepository        = (*InMemoryPlayRepository)(nil)
	_ ParticipantRepository = (*InMemoryParticipantRepository)(nil)
)
