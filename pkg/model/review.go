package model

import "time"

type Review struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	MovieID    uint    `gorm:"not null;index"`
	AuthorID   *uint   `gorm:"index"`
	AuthorName *string
	Score      float64 `gorm:"not null;check:score >= 0 AND score <= 10"`
	Text       string  `gorm:"not null"`

	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type ReviewUpdate struct {
	Score      *float64
	Text       *string
	AuthorName *string
}

func (u ReviewUpdate) Columns() map[string]any {
	columns := make(map[string]any)

	if u.Score != nil {
		columns["score"] = *u.Score
	}

	if u.Text != nil {
		columns["text"] = *u.Text
	}

	if u.AuthorName != nil {
		columns["author_name"] = *u.AuthorName
	}

	return columns
}
