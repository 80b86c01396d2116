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

type PostgresGameRepository struct {
	db *gorm.DB
}

func NewPostgresGameRepository(db *gorm.DB) *PostgresGameRepository {
	return &PostgresGameRepository{db: db}
}

func (r *PostgresGameRepository) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errors.New("game is nil")
	}

	row := toModelGame(game)
	err := r.db.WithContext(ctx).Clauses(clause.Returning{}).
		Select("ID", "Name", "CreatorName").
		Create(row).Error
	if err != nil {
		return nil, Classify(err)
	}
	return toDomainGame(row), nil
}

func (r *PostgresGameRepository) List(ctx context.Context) ([]*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []model.Game
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, Classify(err)
	}

	result := make([]*domain.Game, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainGame(&rows[i]))
	}
	return result, nil
}

func (r *PostgresGameRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var row model.Game
	if err := r.db.WithContext(ctx).Take(&row, "id = ?", id).Error; err != nil {
		return nil, Classify(err)
	}
	return toDomainGame(&row), nil
}

func (r *PostgresGameRepository) Update(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errors.New("game is nil")
	}

	var row model.Game
	res := r.db.WithContext(ctx).Model(&row).Clauses(clause.Returning{}).
		Where("id = ?", game.ID).
		Updates(map[string]any{
			"name":         game.Name,
			"creator_name": game.CreatorName,
		})
	if res.Error != nil {
		return nil, Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return toDomainGame(&row), nil
}

func (r *PostgresGameRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var row model.Game
	res := r.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&row)
	if res.Error != nil {
		return nil, Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return toDomainGame(&row), nil
}

func toModelGame(game *domain.Game) *model.Game {
	return &model.Game{
		ID:          game.ID,
		Name:        game.Name,
		CreatorName: game.CreatorName,
		CreatedAt:   game.CreatedAt,
	}
}

func toDomainGame(row *model.Game) *domain.Game {
	return &domain.Game{
		ID:          row.ID,
		Name:        row.Name,
		CreatorName: row.CreatorName,
		CreatedAt:   row.CreatedAt.UTC(),
	}
}
