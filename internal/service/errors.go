package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/immxrtalbeast/playlog/internal/repository"
	"github.com/immxrtalbeast/playlog/lib/logger/sl"
)

var ErrInvalidInput = errors.New("invalid input")

// NotFoundError reports a key lookup miss for one entity.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID: %s not found", e.Entity, e.Key)
}

// ConflictError reports a uniqueness violation. Reason is safe to show to clients.
type ConflictError struct {
	Reason string
	Err    error
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

var conflictReasons = map[string]string{
	repository.ConstraintGameName:       "Game already exists",
	repository.ConstraintPlayerName:     "Player name already exists",
	repository.ConstraintSingleOwner:    "Only one owner is allowed",
	repository.ConstraintParticipantKey: "Play participant already exists",
}

// translate turns a repository outcome into the service taxonomy.
// Anything that is neither a miss nor a known unique violation is returned as is.
func translate(err error, entity, key string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Entity: entity, Key: key}
	}
	if constraint, ok := repository.UniqueViolation(err); ok {
		reason, known := conflictReasons[constraint]
		if !known {
			reason = entity + " already exists"
		}
		return &ConflictError{Reason: reason, Err: err}
	}
	return err
}

// logFailure logs expected outcomes at info and store failures at error.
func logFailure(log *slog.Logger, msg string, err error) {
	var notFound *NotFoundError
	var conflict *ConflictError
	if errors.As(err, &notFound) || errors.As(err, &conflict) || errors.Is(err, ErrInvalidInput) {
		log.Info(msg, sl.Err(err))
		return
	}
	log.Error(msg, sl.Err(err))
}
