package model

import (
	"time"

	"github.com/google/uuid"
)

// The schema itself is owned by the SQL migrations; tags mirror it.

type Game struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:text;not null;uniqueIndex:games_name_key"`
	CreatorName string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
}

func (Game) TableName() string { return "games" }

type Player struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;not null;uniqueIndex:players_name_key"`
	IsOwner   bool      `gorm:"not null;default:false;uniqueIndex:uniq_single_owner,where:is_owner"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (Player) TableName() string { return "players" }

type Play struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GameID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Game      *Game     `gorm:"constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (Play) TableName() string { return "plays" }

type PlayParticipant struct {
	PlayID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlayerID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Play      *Play     `gorm:"constraint:OnDelete:CASCADE"`
	Player    *Player   `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (PlayParticipant) TableName() string { return "play_participants" }
