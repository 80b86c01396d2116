package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/domain"
	"github.com/immxrtalbeast/playlog/internal/repository"
)

type PlayerService struct {
	players repository.PlayerRepository
	log     *slog.Logger
}

func NewPlayerService(players repository.PlayerRepository, log *slog.Logger) *PlayerService {
	if log == nil {
		log = slog.Default()
	}
	return &PlayerService{players: players, log: log}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, name string, isOwner bool) (*domain.Player, error) {
	const op = "service.player.create"
	log := s.log.With(slog.String("op", op))

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}

	player, err := s.players.Create(ctx, domain.NewPlayer(name, isOwner))
	if err != nil {
		err = translate(err, entityPlayer, "")
		logFailure(log, "failed to create player", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("player created",
		slog.String("player_id", player.ID.String()),
		slog.Bool("is_owner", player.IsOwner),
	)
	return player, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]*domain.Player, error) {
	const op = "service.player.list"

	players, err := s.players.List(ctx)
	if err != nil {
		logFailure(s.log.With(slog.String("op", op)), "failed to list players", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	const op = "service.player.get"

	player, err := s.players.GetByID(ctx, id)
	if err != nil {
		err = translate(err, entityPlayer, id.String())
		logFailure(s.log.With(slog.String("op", op)), "failed to get player", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return player, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id uuid.UUID, patch domain.PlayerPatch) (*domain.Player, error) {
	const op = "service.player.update"
	log := s.log.With(
		slog.String("op", op),
		slog.String("player_id", id.String()),
	)

	current, err := s.players.GetByID(ctx, id)
	if err != nil {
		err = translate(err, entityPlayer, id.String())
		logFailure(log, "failed to load player", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if patch.IsEmpty() {
		return current, nil
	}

	next := current.Apply(patch)
	next.Name = strings.TrimSpace(next.Name)
	if next.Name == "" {
		return nil, invalid("name must not be blank")
	}

	updated, err := s.players.Update(ctx, &next)
	if err != nil {
		err = translate(err, entityPlayer, id.String())
		logFailure(log, "failed to update player", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("player updated")
	return updated, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	const op = "service.player.delete"
	log := s.log.With(
		slog.String("op", op),
		slog.String("player_id", id.String()),
	)

	player, err := s.players.Delete(ctx, id)
	if err != nil {
		err = translate(err, entityPlayer, id.String())
		logFailure(log, "failed to delete player", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("player deleted")
	return player, nil
}
