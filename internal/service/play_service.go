package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/domain"
	"github.com/immxrtalbeast/playlog/internal/repository"
)

type PlayService struct {
	plays repository.PlayRepository
	log   *slog.Logger
}

func NewPlayService(plays repository.PlayRepository, log *slog.Logger) *PlayService {
	if log == nil {
		log = slog.Default()
	}
	return &PlayService{plays: plays, log: log}
}

func (s *PlayService) CreatePlay(ctx context.Context, gameID uuid.UUID) (*domain.Play, error) {
	const op = "service.play.create"
	log := s.log.With(
		slog.String("op", op),
		slog.String("game_id", gameID.String()),
	)

	if gameID == uuid.Nil {
		return nil, invalid("game_id is required")
	}

	play, err := s.plays.Create(ctx, domain.NewPlay(gameID))
	if err != nil {
		err = translate(err, entityPlay, "")
		logFailure(log, "failed to create play", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("play created", slog.String("play_id", play.ID.String()))
	return play, nil
}

func (s *PlayService) ListPlays(ctx context.Context) ([]*domain.Play, error) {
	const op = "service.play.list"

	plays, err := s.plays.List(ctx)
	if err != nil {
		logFailure(s.log.With(slog.String("op", op)), "failed to list plays", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return plays, nil
}

func (s *PlayService) GetPlay(ctx context.Context, id uuid.UUID) (*domain.Play, error) {
	const op = "service.play.get"

	play, err := s.plays.GetByID(ctx, id)
	if err != nil {
		err = translate(err, entityPlay, id.String())
		logFailure(s.log.With(slog.String("op", op)), "failed to get play", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return play, nil
}

// UpdatePlay replaces the game the play belongs to.
func (s *PlayService) UpdatePlay(ctx context.Context, id uuid.UUID, update domain.PlayUpdate) (*domain.Play, error) {
	const op = "service.play.update"
	log := s.log.With(
		slog.String("op", op),
		slog.String("play_id", id.String()),
	)

	if update.GameID == uuid.Nil {
		return nil, invalid("game_id is required")
	}

	current, err := s.plays.GetByID(ctx, id)
	if err != nil {
		err = translate(err, entityPlay, id.String())
		logFailure(log, "failed to load play", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	next := current.Apply(update)
	updated, err := s.plays.Update(ctx, &next)
	if err != nil {
		err = translate(err, entityPlay, id.String())
		logFailure(log, "failed to update play", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("play updated", slog.String("game_id", updated.GameID.String()))
	return updated, nil
}

func (s *PlayService) DeletePlay(ctx context.Context, id uuid.UUID) (*domain.Play, error) {
	const op = "service.play.delete"
	log := s.log.With(
		slog.String("op", op),
		slog.String("play_id", id.String()),
	)

	play, err := s.plays.Delete(ctx, id)
	if err != nil {
		err = translate(err, entityPlay, id.String())
		logFailure(log, "failed to delete play", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("play deleted")
	return play, nil
}
