package model

import "time"

type Favorite struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	MovieID   uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time

	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
