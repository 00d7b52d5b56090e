package model

import "time"

type Pick struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"not null"`
	Slug        string `gorm:"not null;uniqueIndex"`
	Description *string
	CreatedBy   *uint
}

// MoviePick is the join entity between movies and picks.
type MoviePick struct {
	MovieID   uint `gorm:"primaryKey;autoIncrement:false"`
	PickID    uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
	AddedBy   *uint

	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Pick  *Pick  `gorm:"foreignKey:PickID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
