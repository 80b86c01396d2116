package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: ConstraintSingleOwner, Message: "duplicate key value violates unique constraint"}
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: ConstraintPlayGame}
	otherPgErr := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}

	tests := []struct {
		name           string
		err            error
		wantNotFound   bool
		wantKind       ErrorKind
		wantConstraint string
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound, wantNotFound: true},
		{name: "wrapped record not found", err: fmt.Errorf("take: %w", gorm.ErrRecordNotFound), wantNotFound: true},
		{name: "unique violation", err: uniqueErr, wantKind: KindUniqueViolation, wantConstraint: ConstraintSingleOwner},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", uniqueErr), wantKind: KindUniqueViolation, wantConstraint: ConstraintSingleOwner},
		{name: "foreign key violation", err: fkErr, wantKind: KindForeignKeyViolation, wantConstraint: ConstraintPlayGame},
		{name: "other postgres error", err: otherPgErr, wantKind: KindOther},
		{name: "context canceled", err: context.Canceled, wantKind: KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if tt.wantNotFound {
				assert.ErrorIs(t, got, ErrNotFound)
				return
			}

			var storeErr *StoreError
			require.ErrorAs(t, got, &storeErr)
			assert.Equal(t, tt.wantKind, storeErr.Kind)
			assert.Equal(t, tt.wantConstraint, storeErr.Constraint)
			assert.ErrorIs(t, got, tt.err, "original error stays reachable")
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, Classify(nil))
}

func TestClassifyKeepsStoreError(t *testing.T) {
	original := &StoreError{Kind: KindForeignKeyViolation, Constraint: ConstraintParticipantPlay, Err: errors.New("boom")}

	got := Classify(original)

	assert.Same(t, original, got)
}

func TestUniqueViolation(t *testing.T) {
	constraint, ok := UniqueViolation(Classify(&pgconn.PgError{Code: "23505", ConstraintName: ConstraintGameName}))
	assert.True(t, ok)
	assert.Equal(t, ConstraintGameName, constraint)

	_, ok = UniqueViolation(Classify(&pgconn.PgError{Code: "23503", ConstraintName: ConstraintPlayGame}))
	assert.False(t, ok)

	_, ok = UniqueViolation(ErrNotFound)
	assert.False(t, ok)
}

func TestStoreErrorMessage(t *testing.T) {
	err := &StoreError{Kind: KindUniqueViolation, Constraint: ConstraintGameName, Err: errors.New("duplicate")}
	assert.Equal(t, "unique violation on games_name_key: duplicate", err.Error())

	err = &StoreError{Kind: KindOther, Err: errors.New("connection refused")}
	assert.Equal(t, "store failure: connection refused", err.Error())
}
