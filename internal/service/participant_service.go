package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/domain"
	"github.com/immxrtalbeast/playlog/internal/repository"
)

type ParticipantService struct {
	participants repository.ParticipantRepository
	log          *slog.Logger
}

func NewParticipantService(participants repository.ParticipantRepository, log *slog.Logger) *ParticipantService {
	if log == nil {
		log = slog.Default()
	}
	return &ParticipantService{participants: participants, log: log}
}

func (s *ParticipantService) AddParticipant(ctx context.Context, playID, playerID uuid.UUID) (*domain.PlayParticipant, error) {
	const op = "service.participant.add"
	key := domain.ParticipantKey{PlayID: playID, PlayerID: playerID}
	log := s.log.With(
		slog.String("op", op),
		slog.String("key", key.String()),
	)

	if playID == uuid.Nil || playerID == uuid.Nil {
		return nil, invalid("play_id and player_id are required")
	}

	participant, err := s.participants.Create(ctx, domain.NewPlayParticipant(playID, playerID))
	if err != nil {
		err = translate(err, entityParticipant, key.String())
		logFailure(log, "failed to add participant", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("participant added")
	return participant, nil
}

func (s *ParticipantService) ListParticipants(ctx context.Context) ([]*domain.PlayParticipant, error) {
	const op = "service.participant.list"

	participants, err := s.participants.List(ctx)
	if err != nil {
		logFailure(s.log.With(slog.String("op", op)), "failed to list participants", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return participants, nil
}

// ListPlayParticipants returns an empty list for a play without participants,
// including one that does not exist.
func (s *ParticipantService) ListPlayParticipants(ctx context.Context, playID uuid.UUID) ([]*domain.PlayParticipant, error) {
	const op = "service.participant.listByPlay"

	participants, err := s.participants.ListByPlay(ctx, playID)
	if err != nil {
		log := s.log.With(slog.String("op", op), slog.String("play_id", playID.String()))
		logFailure(log, "failed to list play participants", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return participants, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, key domain.ParticipantKey) (*domain.PlayParticipant, error) {
	const op = "service.participant.get"

	participant, err := s.participants.Get(ctx, key)
	if err != nil {
		err = translate(err, entityParticipant, key.String())
		logFailure(s.log.With(slog.String("op", op)), "failed to get participant", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return participant, nil
}

// UpdateParticipant re-points the participant to another play and/or player.
func (s *ParticipantService) UpdateParticipant(ctx context.Context, key domain.ParticipantKey, patch domain.ParticipantPatch) (*domain.PlayParticipant, error) {
	const op = "service.participant.update"
	log := s.log.With(
		slog.String("op", op),
		slog.String("key", key.String()),
	)

	next := key.Apply(patch)
	if next.PlayID == uuid.Nil || next.PlayerID == uuid.Nil {
		return nil, invalid("play_id and player_id must not be empty")
	}
	if next == key {
		return s.GetParticipant(ctx, key)
	}

	updated, err := s.participants.Update(ctx, key, next)
	if err != nil {
		err = translate(err, entityParticipant, key.String())
		logFailure(log, "failed to update participant", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("participant updated", slog.String("next", next.String()))
	return updated, nil
}

func (s *ParticipantService) RemoveParticipant(ctx context.Context, key domain.ParticipantKey) (*domain.PlayParticipant, error) {
	const op = "service.participant.remove"
	log := s.log.With(
		slog.String("op", op),
		slog.String("key", key.String()),
	)

	participant, err := s.participants.Delete(ctx, key)
	if err != nil {
		err = translate(err, entityParticipant, key.String())
		logFailure(log, "failed to remove participant", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("participant removed")
	return participant, nil
}
