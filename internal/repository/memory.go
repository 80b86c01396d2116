package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/domain"
)

// InMemoryStore holds all four tables behind one lock so that uniqueness and
// foreign key rules can be checked the way the Postgres schema checks them.
type InMemoryStore struct {
	mu           sync.RWMutex
	games        map[uuid.UUID]domain.Game
	players      map[uuid.UUID]domain.Player
	plays        map[uuid.UUID]domain.Play
	participants []domain.PlayParticipant
	now          func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		games:   make(map[uuid.UUID]domain.Game),
		players: make(map[uuid.UUID]domain.Player),
		plays:   make(map[uuid.UUID]domain.Play),
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (s *InMemoryStore) Games() *InMemoryGameRepository {
	return &InMemoryGameRepository{s: s}
}

func (s *InMemoryStore) Players() *InMemoryPlayerRepository {
	return &InMemoryPlayerRepository{s: s}
}

func (s *InMemoryStore) Plays() *InMemoryPlayRepository {
	return &InMemoryPlayRepository{s: s}
}

func (s *InMemoryStore) Participants() *InMemoryParticipantRepository {
	return &InMemoryParticipantRepository{s: s}
}

func uniqueViolation(constraint string) error {
	return &StoreError{
		Kind:       KindUniqueViolation,
		Constraint: constraint,
		Err:        fmt.Errorf("duplicate key value violates unique constraint %q", constraint),
	}
}

func foreignKeyViolation(constraint string) error {
	return &StoreError{
		Kind:       KindForeignKeyViolation,
		Constraint: constraint,
		Err:        fmt.Errorf("violates foreign key constraint %q", constraint),
	}
}

type InMemoryGameRepository struct {
	s *InMemoryStore
}

func (r *InMemoryGameRepository) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errors.New("game is nil")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.games[game.ID]; ok {
		return nil, uniqueViolation("games_pkey")
	}
	if err := r.checkName(game.ID, game.Name); err != nil {
		return nil, err
	}

	row := *game
	row.CreatedAt = r.s.now()
	r.s.games[row.ID] = row
	return &row, nil
}

func (r *InMemoryGameRepository) List(ctx context.Context) ([]*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*domain.Game, 0, len(r.s.games))
	for _, game := range r.s.games {
		row := game
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *InMemoryGameRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	game, ok := r.s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &game, nil
}

func (r *InMemoryGameRepository) Update(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errors.New("game is nil")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.games[game.ID]
	if !ok {
		return nil, ErrNotFound
	}
	if err := r.checkName(game.ID, game.Name); err != nil {
		return nil, err
	}

	row.Name = game.Name
	row.CreatorName = game.CreatorName
	r.s.games[row.ID] = row
	return &row, nil
}

func (r *InMemoryGameRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	game, ok := r.s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	for _, play := range r.s.plays {
		if play.GameID == id {
			return nil, foreignKeyViolation(ConstraintPlayGame)
		}
	}

	delete(r.s.games, id)
	return &game, nil
}

func (r *InMemoryGameRepository) checkName(id uuid.UUID, name string) error {
	for _, other := range r.s.games {
		if other.ID != id && other.Name == name {
			return uniqueViolation(ConstraintGameName)
		}
	}
	return nil
}

type InMemoryPlayerRepository struct {
	s *InMemoryStore
}

func (r *InMemoryPlayerRepository) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if player == nil {
		return nil, errors.New("player is nil")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.players[player.ID]; ok {
		return nil, uniqueViolation("players_pkey")
	}
	if err := r.checkUnique(*player); err != nil {
		return nil, err
	}

	row := *player
	row.CreatedAt = r.s.now()
	r.s.players[row.ID] = row
	return &row, nil
}

func (r *InMemoryPlayerRepository) List(ctx context.Context) ([]*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*domain.Player, 0, len(r.s.players))
	for _, player := range r.s.players {
		row := player
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *InMemoryPlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	player, ok := r.s.players[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &player, nil
}

func (r *InMemoryPlayerRepository) Update(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if player == nil {
		return nil, errors.New("player is nil")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.players[player.ID]
	if !ok {
		return nil, ErrNotFound
	}
	if err := r.checkUnique(*player); err != nil {
		return nil, err
	}

	row.Name = player.Name
	row.IsOwner = player.IsOwner
	r.s.players[row.ID] = row
	return &row, nil
}

// Delete removes the player together with its participant rows.
func (r *InMemoryPlayerRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	player, ok := r.s.players[id]
	if !ok {
		return nil, ErrNotFound
	}

	delete(r.s.players, id)
	r.s.removeParticipants(func(p domain.PlayParticipant) bool { return p.PlayerID == id })
	return &player, nil
}

// checkUnique reports the name violation ahead of the owner one, in the
// order the schema declares the constraints.
func (r *InMemoryPlayerRepository) checkUnique(player domain.Player) error {
	ownerTaken := false
	for _, other := range r.s.players {
		if other.ID == player.ID {
			continue
		}
		if other.Name == player.Name {
			return uniqueViolation(ConstraintPlayerName)
		}
		if other.IsOwner {
			ownerTaken = true
		}
	}
	if player.IsOwner && ownerTaken {
		return uniqueViolation(ConstraintSingleOwner)
	}
	return nil
}

type InMemoryPlayRepository struct {
	s *InMemoryStore
}

func (r *InMemoryPlayRepository) Create(ctx context.Context, play *domain.Play) (*domain.Play, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if play == nil {
		return nil, errors.New("play is nil")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.plays[play.ID]; ok {
		return nil, uniqueViolation("plays_pkey")
	}
	if _, ok := r.s.games[play.GameID]; !ok {
		return nil, foreignKeyViolation(ConstraintPlayGame)
	}

	row := *play
	row.CreatedAt = r.s.now()
	r.s.plays[row.ID] = row
	return &row, nil
}

func (r *InMemoryPlayRepository) List(ctx context.Context) ([]*domain.Play, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*domain.Play, 0, len(r.s.plays))
	for _, play := range r.s.plays {
		row := play
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].GameID.String() < result[j].GameID.String()
	})
	return result, nil
}

func (r *InMemoryPlayRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Play, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	play, ok := r.s.plays[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &play, nil
}

func (r *InMemoryPlayRepository) Update(ctx context.Context, play *domain.Play) (*domain.Play, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if play == nil {
		return nil, errors.New("play is nil")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.plays[play.ID]
	if !ok {
		return nil, ErrNotFound
	}
	if _, ok := r.s.games[play.GameID]; !ok {
		return nil, foreignKeyViolation(ConstraintPlayGame)
	}

	row.GameID = play.GameID
	r.s.plays[row.ID] = row
	return &row, nil
}

// Delete removes the play together with its participant rows.
func (r *InMemoryPlayRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Play, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	play, ok := r.s.plays[id]
	if !ok {
		return nil, ErrNotFound
	}

	delete(r.s.plays, id)
	r.s.removeParticipants(func(p domain.PlayParticipant) bool { return p.PlayID == id })
	return &play, nil
}

type InMemoryParticipantRepository struct {
	s *InMemoryStore
}

func (r *InMemoryParticipantRepository) Create(ctx context.Context, participant *domain.PlayParticipant) (*domain.PlayParticipant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, errors.New("participant is nil")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkKey(participant.Key(), -1); err != nil {
		return nil, err
	}

	row := *participant
	row.CreatedAt = r.s.now()
	r.s.participants = append(r.s.participants, row)
	return &row, nil
}

func (r *InMemoryParticipantRepository) List(ctx context.Context) ([]*domain.PlayParticipant, error) {
	return r.filter(ctx, func(domain.PlayParticipant) bool { return true })
}

func (r *InMemoryParticipantRepository) ListByPlay(ctx context.Context, playID uuid.UUID) ([]*domain.PlayParticipant, error) {
	return r.filter(ctx, func(p domain.PlayParticipant) bool { return p.PlayID == playID })
}

func (r *InMemoryParticipantRepository) Get(ctx context.Context, key domain.ParticipantKey) (*domain.PlayParticipant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	idx := r.s.participantIndex(key)
	if idx < 0 {
		return nil, ErrNotFound
	}
	row := r.s.participants[idx]
	return &row, nil
}

func (r *InMemoryParticipantRepository) Update(ctx context.Context, key domain.ParticipantKey, next domain.ParticipantKey) (*domain.PlayParticipant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := r.s.participantIndex(key)
	if idx < 0 {
		return nil, ErrNotFound
	}
	if err := r.checkKey(next, idx); err != nil {
		return nil, err
	}

	r.s.participants[idx].PlayID = next.PlayID
	r.s.participants[idx].PlayerID = next.PlayerID
	row := r.s.participants[idx]
	return &row, nil
}

func (r *InMemoryParticipantRepository) Delete(ctx context.Context, key domain.ParticipantKey) (*domain.PlayParticipant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := r.s.participantIndex(key)
	if idx < 0 {
		return nil, ErrNotFound
	}
	row := r.s.participants[idx]
	r.s.participants = append(r.s.participants[:idx], r.s.participants[idx+1:]...)
	return &row, nil
}

// checkKey validates key for the row at position self (-1 for a new row).
func (r *InMemoryParticipantRepository) checkKey(key domain.ParticipantKey, self int) error {
	if idx := r.s.participantIndex(key); idx >= 0 && idx != self {
		return uniqueViolation(ConstraintParticipantKey)
	}
	if _, ok := r.s.plays[key.PlayID]; !ok {
		return foreignKeyViolation(ConstraintParticipantPlay)
	}
	if _, ok := r.s.players[key.PlayerID]; !ok {
		return foreignKeyViolation(ConstraintParticipantPlayer)
	}
	return nil
}

func (r *InMemoryParticipantRepository) filter(ctx context.Context, keep func(domain.PlayParticipant) bool) ([]*domain.PlayParticipant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*domain.PlayParticipant, 0, len(r.s.participants))
	for _, p := range r.s.participants {
		if keep(p) {
			row := p
			result = append(result, &row)
		}
	}
	return result, nil
}

// participantIndex must be called with the lock held.
func (s *InMemoryStore) participantIndex(key domain.ParticipantKey) int {
	for i, p := range s.participants {
		if p.PlayID == key.PlayID && p.PlayerID == key.PlayerID {
			return i
		}
	}
	return -1
}

// removeParticipants must be called with the write lock held.
func (s *InMemoryStore) removeParticipants(drop func(domain.PlayParticipant) bool) {
	kept := s.participants[:0]
	for _, p := range s.participants {
		if !drop(p) {
			kept = append(kept, p)
		}
	}
	s.participants = kept
}
