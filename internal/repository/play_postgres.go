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

type PostgresPlayRepository struct {
	db *gorm.DB
}

func NewPostgresPlayRepository(db *gorm.DB) *PostgresPlayRepository {
	return &PostgresPlayRepository{db: db}
}

func (r *PostgresPlayRepository) Create(ctx context.Context, play *domain.Play) (*domain.Play, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if play == nil {
		return nil, errors.New("play is nil")
	}

	row := toModelPlay(play)
	err := r.db.WithContext(ctx).Clauses(clause.Returning{}).
		Select("ID", "GameID").
		Create(row).Error
	if err != nil {
		return nil, Classify(err)
	}
	return toDomainPlay(row), nil
}

func (r *PostgresPlayRepository) List(ctx context.Context) ([]*domain.Play, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []model.Play
	if err := r.db.WithContext(ctx).Order("game_id").Find(&rows).Error; err != nil {
		return nil, Classify(err)
	}

	result := make([]*domain.Play, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainPlay(&rows[i]))
	}
	return result, nil
}

func (r *PostgresPlayRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Play, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var row model.Play
	if err := r.db.WithContext(ctx).Take(&row, "id = ?", id).Error; err != nil {
		return nil, Classify(err)
	}
	return toDomainPlay(&row), nil
}

func (r *PostgresPlayRepository) Update(ctx context.Context, play *domain.Play) (*domain.Play, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if play == nil {
		return nil, errors.New("play is nil")
	}

	var row model.Play
	res := r.db.WithContext(ctx).Model(&row).Clauses(clause.Returning{}).
		Where("id = ?", play.ID).
		Update("game_id", play.GameID)
	if res.Error != nil {
		return nil, Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return toDomainPlay(&row), nil
}

// Delete removes the play; its participant rows go with it (ON DELETE CASCADE).
func (r *PostgresPlayRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Play, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var row model.Play
	res := r.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&row)
	if res.Error != nil {
		return nil, Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return toDomainPlay(&row), nil
}

func toModelPlay(play *domain.Play) *model.Play {
	return &model.Play{
		ID:        play.ID,
		GameID:    play.GameID,
		CreatedAt: play.CreatedAt,
	}
}

func toDomainPlay(row *model.Play) *domain.Play {
	return &domain.Play{
		ID:        row.ID,
		GameID:    row.GameID,
		CreatedAt: row.CreatedAt.UTC(),
	}
}
