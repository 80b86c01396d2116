package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Constraint names declared by the schema migrations.
const (
	ConstraintGameName          = "games_name_key"
	ConstraintPlayerName        = "players_name_key"
	ConstraintSingleOwner       = "uniq_single_owner"
	ConstraintPlayGame          = "plays_game_id_fkey"
	ConstraintParticipantKey    = "play_participants_pkey"
	ConstraintParticipantPlay   = "play_participants_play_id_fkey"
	ConstraintParticipantPlayer = "play_participants_player_id_fkey"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindUniqueViolation
	KindForeignKeyViolation
)

func (k ErrorKind) String() string {
	switch k {
	case KindUniqueViolation:
		return "unique violation"
	case KindForeignKeyViolation:
		return "foreign key violation"
	default:
		return "store failure"
	}
}

// StoreError is any store failure other than a key lookup miss.
// Constraint is set for unique and foreign key violations.
type StoreError struct {
	Kind       ErrorKind
	Constraint string
	Err        error
}

func (e *StoreError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s on %s: %v", e.Kind, e.Constraint, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Classify maps a driver or ORM error onto ErrNotFound or a *StoreError.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &StoreError{Kind: KindUniqueViolation, Constraint: pgErr.ConstraintName, Err: err}
		case pgForeignKeyViolation:
			return &StoreError{Kind: KindForeignKeyViolation, Constraint: pgErr.ConstraintName, Err: err}
		}
	}

	return &StoreError{Kind: KindOther, Err: err}
}

// UniqueViolation reports the violated constraint when err is a unique violation.
func UniqueViolation(err error) (string, bool) {
	var storeErr *StoreError
	if errors.As(err, &storeErr) && storeErr.Kind == KindUniqueViolation {
		return storeErr.Constraint, true
	}
	return "", false
}
