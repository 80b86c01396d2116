package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/domain"
)

const (
	entityGame        = "Game"
	entityPlayer      = "Player"
	entityPlay        = "Play"
	entityParticipant = "Play participant"
)

type GameInteractor interface {
	CreateGame(ctx context.Context, name, creatorName string) (*domain.Game, error)
	ListGames(ctx context.Context) ([]*domain.Game, error)
	GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	UpdateGame(ctx context.Context, id uuid.UUID, patch domain.GamePatch) (*domain.Game, error)
	DeleteGame(ctx context.Context, id uuid.UUID) (*domain.Game, error)
}

type PlayerInteractor interface {
	CreatePlayer(ctx context.Context, name string, isOwner bool) (*domain.Player, error)
	ListPlayers(ctx context.Context) ([]*domain.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, id uuid.UUID, patch domain.PlayerPatch) (*domain.Player, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error)
}

type PlayInteractor interface {
	CreatePlay(ctx context.Context, gameID uuid.UUID) (*domain.Play, error)
	ListPlays(ctx context.Context) ([]*domain.Play, error)
	GetPlay(ctx context.Context, id uuid.UUID) (*domain.Play, error)
	UpdatePlay(ctx context.Context, id uuid.UUID, update domain.PlayUpdate) (*domain.Play, error)
	DeletePlay(ctx context.Context, id uuid.UUID) (*domain.Play, error)
}

type ParticipantInteractor interface {
	AddParticipant(ctx context.Context, playID, playerID uuid.UUID) (*domain.PlayParticipant, error)
	ListParticipants(ctx context.Context) ([]*domain.PlayParticipant, error)
	ListPlayParticipants(ctx context.Context, playID uuid.UUID) ([]*domain.PlayParticipant, error)
	GetParticipant(ctx context.Context, key domain.ParticipantKey) (*domain.PlayParticipant, error)
	UpdateParticipant(ctx context.Context, key domain.ParticipantKey, patch domain.ParticipantPatch) (*domain.PlayParticipant, error)
	RemoveParticipant(ctx context.Context, key domain.ParticipantKey) (*domain.PlayParticipant, error)
}

var (
	_ GameInteractor        = (*GameService)(nil)
	_ PlayerInteractor      = (*PlayerService)(nil)
	_ PlayInteractor        = (*PlayService)(nil)
	_ ParticipantInteractor = (*ParticipantService)(nil)
)
