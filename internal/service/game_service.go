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

type GameService struct {
	games repository.GameRepository
	log   *slog.Logger
}

func NewGameService(games repository.GameRepository, log *slog.Logger) *GameService {
	if log == nil {
		log = slog.Default()
	}
	return &GameService{games: games, log: log}
}

func (s *GameService) CreateGame(ctx context.Context, name, creatorName string) (*domain.Game, error) {
	const op = "service.game.create"
	log := s.log.With(slog.String("op", op))

	name, creatorName = strings.TrimSpace(name), strings.TrimSpace(creatorName)
	if name == "" {
		return nil, invalid("name is required")
	}
	if creatorName == "" {
		return nil, invalid("creator_name is required")
	}

	game, err := s.games.Create(ctx, domain.NewGame(name, creatorName))
	if err != nil {
		err = translate(err, entityGame, "")
		logFailure(log, "failed to create game", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("game created", slog.String("game_id", game.ID.String()))
	return game, nil
}

func (s *GameService) ListGames(ctx context.Context) ([]*domain.Game, error) {
	const op = "service.game.list"

	games, err := s.games.List(ctx)
	if err != nil {
		logFailure(s.log.With(slog.String("op", op)), "failed to list games", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return games, nil
}

func (s *GameService) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	const op = "service.game.get"

	game, err := s.games.GetByID(ctx, id)
	if err != nil {
		err = translate(err, entityGame, id.String())
		logFailure(s.log.With(slog.String("op", op)), "failed to get game", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return game, nil
}

func (s *GameService) UpdateGame(ctx context.Context, id uuid.UUID, patch domain.GamePatch) (*domain.Game, error) {
	const op = "service.game.update"
	log := s.log.With(
		slog.String("op", op),
		slog.String("game_id", id.String()),
	)

	current, err := s.games.GetByID(ctx, id)
	if err != nil {
		err = translate(err, entityGame, id.String())
		logFailure(log, "failed to load game", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if patch.IsEmpty() {
		return current, nil
	}

	next := current.Apply(patch)
	next.Name, next.CreatorName = strings.TrimSpace(next.Name), strings.TrimSpace(next.CreatorName)
	if next.Name == "" || next.CreatorName == "" {
		return nil, invalid("name and creator_name must not be blank")
	}

	updated, err := s.games.Update(ctx, &next)
	if err != nil {
		err = translate(err, entityGame, id.String())
		logFailure(log, "failed to update game", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("game updated")
	return updated, nil
}

func (s *GameService) DeleteGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	const op = "service.game.delete"
	log := s.log.With(
		slog.String("op", op),
		slog.String("game_id", id.String()),
	)

	game, err := s.games.Delete(ctx, id)
	if err != nil {
		err = translate(err, entityGame, id.String())
		logFailure(log, "failed to delete game", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("game deleted")
	return game, nil
}
