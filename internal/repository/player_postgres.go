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

type PostgresPlayerRepository struct {
	db *gorm.DB
}

func NewPostgresPlayerRepository(db *gorm.DB) *PostgresPlayerRepository {
	return &PostgresPlayerRepository{db: db}
}

func (r *PostgresPlayerRepository) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if player == nil {
		return nil, errors.New("player is nil")
	}

	row := toModelPlayer(player)
	// created_at comes from the column default.
	err := r.db.WithContext(ctx).Clauses(clause.Returning{}).
		Select("ID", "Name", "IsOwner").
		Create(row).Error
	if err != nil {
		return nil, Classify(err)
	}
	return toDomainPlayer(row), nil
}

func (r *PostgresPlayerRepository) List(ctx context.Context) ([]*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []model.Player
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, Classify(err)
	}

	result := make([]*domain.Player, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainPlayer(&rows[i]))
	}
	return result, nil
}

func (r *PostgresPlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var row model.Player
	if err := r.db.WithContext(ctx).Take(&row, "id = ?", id).Error; err != nil {
		return nil, Classify(err)
	}
	return toDomainPlayer(&row), nil
}

func (r *PostgresPlayerRepository) Update(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if player == nil {
		return nil, errors.New("player is nil")
	}

	var row model.Player
	res := r.db.WithContext(ctx).Model(&row).Clauses(clause.Returning{}).
		Where("id = ?", player.ID).
		Updates(map[string]any{
			"name":     player.Name,
			"is_owner": player.IsOwner,
		})
	if res.Error != nil {
		return nil, Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return toDomainPlayer(&row), nil
}

func (r *PostgresPlayerRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var row model.Player
	res := r.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&row)
	if res.Error != nil {
		return nil, Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return toDomainPlayer(&row), nil
}

func toModelPlayer(player *domain.Player) *model.Player {
	return &model.Player{
		ID:        player.ID,
		Name:      player.Name,
		IsOwner:   player.IsOwner,
		CreatedAt: player.CreatedAt,
	}
}

func toDomainPlayer(row *model.Player) *domain.Player {
	return &domain.Player{
		ID:        row.ID,
		Name:      row.Name,
		IsOwner:   row.IsOwner,
		CreatedAt: row.CreatedAt.UTC(),
	}
}
