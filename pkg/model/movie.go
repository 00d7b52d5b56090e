package model

import (
	"time"
)

type Movie struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string  `gorm:"not null;index"`
	Year      int     `gorm:"not null"`
	Genre     string  `gorm:"not null;index"`
	Rating    float64 `gorm:"not null;check:rating >= 0 AND rating <= 10"`
	PosterURL *string
	Overview  *string
	CreatedBy *uint `gorm:"index"`
	Views     int64 `gorm:"not null;default:0"`

	MoviePicks []MoviePick `gorm:"foreignKey:MovieID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// PickSlugs is the many-to-many view over the movie's MoviePick rows.
func (m *Movie) PickSlugs() []string {
	slugs := make([]string, 0, len(m.MoviePicks))
	seen := make(map[string]struct{}, len(m.MoviePicks))

	for _, moviePick := range m.MoviePicks {
		if moviePick.Pick == nil {
			continue
		}

		if _, found := seen[moviePick.Pick.Slug]; found {
			continue
		}

		seen[moviePick.Pick.Slug] = struct{}{}
		slugs = append(slugs, moviePick.Pick.Slug)
	}

	return slugs
}

// MovieUpdate carries a partial update; nil fields are left untouched. Rating is not
// updatable, it is owned by the review transactions.
type MovieUpdate struct {
	Title     *string
	Year      *int
	Genre     *string
	PosterURL *string
	Overview  *string
}

func (u MovieUpdate) Columns() map[string]any {
	columns := make(map[string]any)

	if u.Title != nil {
		columns["title"] = *u.Title
	}

	if u.Year != nil {
		columns["year"] = *u.Year
	}

	if u.Genre != nil {
		columns["genre"] = *u.Genre
	}

	if u.PosterURL != nil {
		columns["poster_url"] = *u.PosterURL
	}

	if u.Overview != nil {
		columns["overview"] = *u.Overview
	}

	return columns
}

type MovieFilter struct {
	Genre     string
	Year      *int
	Search    string
	RatingMin *float64
	RatingMax *float64
	PickSlug  string
}

type MovieStats struct {
	MovieID       uint
	Rating        float64
	Views         int64
	ReviewCount   int64
	PickCount     int64
	FavoriteCount int64
}

// Page is an offset/limit window, already clamped by the caller.
type Page struct {
	Skip  int
	Limit int
}
