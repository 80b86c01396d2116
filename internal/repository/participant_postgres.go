package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/domain"
	"github.com/immxrtalbeast/playlog/internal/repository/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const participantKeyClause = "play_id = ? AND player_id = ?"

type PostgresParticipantRepository struct {
	db *gorm.DB
}

func NewPostgresParticipantRepository(db *gorm.DB) *PostgresParticipantRepository {
	return &PostgresParticipantRepository{db: db}
}

func (r *PostgresParticipantRepository) Create(ctx context.Context, participant *domain.PlayParticipant) (*domain.PlayParticipant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, errors.New("participant is nil")
	}

	row := &model.PlayParticipant{
		PlayID:   participant.PlayID,
		PlayerID: participant.PlayerID,
	}
	err := r.db.WithContext(ctx).Clauses(clause.Returning{}).
		Select("PlayID", "PlayerID").
		Create(row).Error
	if err != nil {
		return nil, Classify(err)
	}
	return toDomainParticipant(row), nil
}

// List returns participants in insertion order.
func (r *PostgresParticipantRepository) List(ctx context.Context) ([]*domain.PlayParticipant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []model.PlayParticipant
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, Classify(err)
	}
	return toDomainParticipants(rows), nil
}

func (r *PostgresParticipantRepository) ListByPlay(ctx context.Context, playID uuid.UUID) ([]*domain.PlayParticipant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []model.PlayParticipant
	err := r.db.WithContext(ctx).
		Where("play_id = ?", playID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, Classify(err)
	}
	return toDomainParticipants(rows), nil
}

func (r *PostgresParticipantRepository) Get(ctx context.Context, key domain.ParticipantKey) (*domain.PlayParticipant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var row model.PlayParticipant
	if err := r.db.WithContext(ctx).Take(&row, participantKeyClause, key.PlayID, key.PlayerID).Error; err != nil {
		return nil, Classify(err)
	}
	return toDomainParticipant(&row), nil
}

// Update re-points the row identified by key to next. Both halves are written.
func (r *PostgresParticipantRepository) Update(ctx context.Context, key domain.ParticipantKey, next domain.ParticipantKey) (*domain.PlayParticipant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var row model.PlayParticipant
	res := r.db.WithContext(ctx).Model(&row).Clauses(clause.Returning{}).
		Where(participantKeyClause, key.PlayID, key.PlayerID).
		Updates(map[string]any{
			"play_id":   next.PlayID,
			"player_id": next.PlayerID,
		})
	if res.Error != nil {
		return nil, Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return toDomainParticipant(&row), nil
}

func (r *PostgresParticipantRepository) Delete(ctx context.Context, key domain.ParticipantKey) (*domain.PlayParticipant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var row model.PlayParticipant
	res := r.db.WithContext(ctx).Clauses(clause.Returning{}).
		Where(participantKeyClause, key.PlayID, key.PlayerID).
		Delete(&row)
	if res.Error != nil {
		return nil, Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return toDomainParticipant(&row), nil
}

func toDomainParticipant(row *model.PlayParticipant) *domain.PlayParticipant {
	return &domain.PlayParticipant{
		PlayID:    row.PlayID,
		PlayerID:  row.PlayerID,
		CreatedAt: row.CreatedAt.UTC(),
	}
}

func toDomainParticipants(rows []model.PlayParticipant) []*domain.PlayParticipant {
	result := make([]*domain.PlayParticipant, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainParticipant(&rows[i]))
	}
	return result
}
