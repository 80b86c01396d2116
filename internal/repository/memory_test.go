package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireStoreError(t *testing.T, err error, kind ErrorKind, constraint string) {
	t.Helper()
	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, kind, storeErr.Kind)
	assert.Equal(t, constraint, storeErr.Constraint)
}

func TestInMemoryGames(t *testing.T) {
	ctx := context.Background()
	games := NewInMemoryStore().Games()

	listed, err := games.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)

	catan, err := games.Create(ctx, domain.NewGame("Catan", "Klaus"))
	require.NoError(t, err)
	assert.False(t, catan.CreatedAt.IsZero())

	_, err = games.Create(ctx, domain.NewGame("Azul", "Michael"))
	require.NoError(t, err)

	_, err = games.Create(ctx, domain.NewGame("Catan", "Someone"))
	requireStoreError(t, err, KindUniqueViolation, ConstraintGameName)

	got, err := games.GetByID(ctx, catan.ID)
	require.NoError(t, err)
	assert.Equal(t, catan, got)

	listed, err = games.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Azul", listed[0].Name)
	assert.Equal(t, "Catan", listed[1].Name)

	renamed := *catan
	renamed.Name = "Azul"
	_, err = games.Update(ctx, &renamed)
	requireStoreError(t, err, KindUniqueViolation, ConstraintGameName)

	renamed.Name = "Catan 5th"
	updated, err := games.Update(ctx, &renamed)
	require.NoError(t, err)
	assert.Equal(t, "Catan 5th", updated.Name)
	assert.Equal(t, catan.CreatedAt, updated.CreatedAt)

	deleted, err := games.Delete(ctx, catan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Catan 5th", deleted.Name)

	_, err = games.GetByID(ctx, catan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = games.Delete(ctx, catan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = games.Update(ctx, &renamed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryPlayersSingleOwner(t *testing.T) {
	ctx := context.Background()
	players := NewInMemoryStore().Players()

	owner, err := players.Create(ctx, domain.NewPlayer("Ada", true))
	require.NoError(t, err)

	_, err = players.Create(ctx, domain.NewPlayer("Grace", true))
	requireStoreError(t, err, KindUniqueViolation, ConstraintSingleOwner)

	_, err = players.Create(ctx, domain.NewPlayer("Ada", false))
	requireStoreError(t, err, KindUniqueViolation, ConstraintPlayerName)

	grace, err := players.Create(ctx, domain.NewPlayer("Grace", false))
	require.NoError(t, err)

	promoted := *grace
	promoted.IsOwner = true
	_, err = players.Update(ctx, &promoted)
	requireStoreError(t, err, KindUniqueViolation, ConstraintSingleOwner)

	// Re-saving the current owner does not collide with itself.
	same, err := players.Update(ctx, owner)
	require.NoError(t, err)
	assert.True(t, same.IsOwner)
}

func TestInMemoryPlayersNameViolationWinsOverOwner(t *testing.T) {
	ctx := context.Background()
	players := NewInMemoryStore().Players()

	_, err := players.Create(ctx, domain.NewPlayer("Ada", true))
	require.NoError(t, err)
	for _, name := range []string{"Bo", "Cy", "Di", "Ed", "Fa", "Gu"} {
		_, err = players.Create(ctx, domain.NewPlayer(name, false))
		require.NoError(t, err)
	}
	grace, err := players.Create(ctx, domain.NewPlayer("Grace", false))
	require.NoError(t, err)

	// Map iteration order varies, so repeat to catch an order-dependent answer.
	for i := 0; i < 50; i++ {
		_, err = players.Create(ctx, domain.NewPlayer("Bo", true))
		requireStoreError(t, err, KindUniqueViolation, ConstraintPlayerName)

		both := *grace
		both.Name = "Cy"
		both.IsOwner = true
		_, err = players.Update(ctx, &both)
		requireStoreError(t, err, KindUniqueViolation, ConstraintPlayerName)
	}
}

func TestInMemoryPlayRequiresGame(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	_, err := store.Plays().Create(ctx, domain.NewPlay(uuid.New()))
	requireStoreError(t, err, KindForeignKeyViolation, ConstraintPlayGame)

	game, err := store.Games().Create(ctx, domain.NewGame("Catan", "Klaus"))
	require.NoError(t, err)
	play, err := store.Plays().Create(ctx, domain.NewPlay(game.ID))
	require.NoError(t, err)

	moved := *play
	moved.GameID = uuid.New()
	_, err = store.Plays().Update(ctx, &moved)
	requireStoreError(t, err, KindForeignKeyViolation, ConstraintPlayGame)

	// A game with plays cannot be deleted.
	_, err = store.Games().Delete(ctx, game.ID)
	requireStoreError(t, err, KindForeignKeyViolation, ConstraintPlayGame)
}

func TestInMemoryParticipants(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	participants := store.Participants()

	game, err := store.Games().Create(ctx, domain.NewGame("Catan", "Klaus"))
	require.NoError(t, err)
	first, err := store.Plays().Create(ctx, domain.NewPlay(game.ID))
	require.NoError(t, err)
	second, err := store.Plays().Create(ctx, domain.NewPlay(game.ID))
	require.NoError(t, err)
	ada, err := store.Players().Create(ctx, domain.NewPlayer("Ada", false))
	require.NoError(t, err)
	grace, err := store.Players().Create(ctx, domain.NewPlayer("Grace", false))
	require.NoError(t, err)

	_, err = participants.Create(ctx, domain.NewPlayParticipant(first.ID, ada.ID))
	require.NoError(t, err)
	_, err = participants.Create(ctx, domain.NewPlayParticipant(first.ID, grace.ID))
	require.NoError(t, err)
	_, err = participants.Create(ctx, domain.NewPlayParticipant(second.ID, ada.ID))
	require.NoError(t, err)

	_, err = participants.Create(ctx, domain.NewPlayParticipant(first.ID, ada.ID))
	requireStoreError(t, err, KindUniqueViolation, ConstraintParticipantKey)
	_, err = participants.Create(ctx, domain.NewPlayParticipant(uuid.New(), ada.ID))
	requireStoreError(t, err, KindForeignKeyViolation, ConstraintParticipantPlay)
	_, err = participants.Create(ctx, domain.NewPlayParticipant(first.ID, uuid.New()))
	requireStoreError(t, err, KindForeignKeyViolation, ConstraintParticipantPlayer)

	all, err := participants.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ada.ID, all[0].PlayerID, "insertion order")
	assert.Equal(t, grace.ID, all[1].PlayerID)

	byPlay, err := participants.ListByPlay(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, byPlay, 2)

	// Re-pointing onto an existing pair collides with the primary key.
	_, err = participants.Update(ctx,
		domain.ParticipantKey{PlayID: second.ID, PlayerID: ada.ID},
		domain.ParticipantKey{PlayID: first.ID, PlayerID: ada.ID})
	requireStoreError(t, err, KindUniqueViolation, ConstraintParticipantKey)

	moved, err := participants.Update(ctx,
		domain.ParticipantKey{PlayID: second.ID, PlayerID: ada.ID},
		domain.ParticipantKey{PlayID: second.ID, PlayerID: grace.ID})
	require.NoError(t, err)
	assert.Equal(t, grace.ID, moved.PlayerID)

	_, err = participants.Get(ctx, domain.ParticipantKey{PlayID: second.ID, PlayerID: ada.ID})
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a play cascades to its participants.
	_, err = store.Plays().Delete(ctx, first.ID)
	require.NoError(t, err)
	byPlay, err = participants.ListByPlay(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, byPlay)
	_, err = participants.Get(ctx, domain.ParticipantKey{PlayID: first.ID, PlayerID: ada.ID})
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a player cascades too.
	_, err = store.Players().Delete(ctx, grace.ID)
	require.NoError(t, err)
	all, err = participants.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = participants.Delete(ctx, domain.ParticipantKey{PlayID: second.ID, PlayerID: grace.ID})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryHonoursCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewInMemoryStore().Games().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
