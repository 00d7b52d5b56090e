package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/MovieCatalog/pkg/model"
)

type PickRepository interface {
	AddPick(ctx context.Context, pick model.Pick) (*model.Pick, error)
	AttachPick(ctx context.Context, movieID uint, slug string, addedBy *uint) (*model.MoviePick, error)
	DeletePick(ctx context.Context, slug string) error
	DetachPick(ctx context.Context, movieID uint, slug string) (bool, error)
	GetMoviesForPick(ctx context.Context, slug string, page model.Page) ([]*model.Movie, error)
	GetPickBySlug(ctx context.Context, slug string) (*model.Pick, error)
	GetPicks(ctx context.Context) ([]*model.Pick, error)
	GetPicksForMovie(ctx context.Context, movieID uint) ([]*model.Pick, error)
	UpdatePick(ctx context.Context, slug string, name *string, description *string) (*model.Pick, error)
}

func pickBySlug(tx *gorm.DB, slug string) (*model.Pick, error) {
	var pick model.Pick

	if err := tx.Where("slug = ?", slug).First(&pick).Error; err != nil {
		return nil, notFound(err, "pick %q", slug)
	}

	return &pick, nil
}

func movieExists(tx *gorm.DB, movieID uint) error {
	var movie model.Movie

	if err := tx.Select("id").First(&movie, movieID).Error; err != nil {
		return notFound(err, "movie %d", movieID)
	}

	return nil
}

// AddPick inserts the pick, reporting ErrConflict when the slug is taken.
func (r *Repository) AddPick(ctx context.Context, pick model.Pick) (*model.Pick, error) {
	result := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).
		Create(&pick)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: pick %q", ErrConflict, pick.Slug)
	}

	return &pick, nil
}

func (r *Repository) GetPickBySlug(ctx context.Context, slug string) (*model.Pick, error) {
	return pickBySlug(r.DB.WithContext(ctx), slug)
}

func (r *Repository) GetPicks(ctx context.Context) ([]*model.Pick, error) {
	var picks []*model.Pick

	result := r.DB.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&picks)
	if result.Error != nil {
		return nil, result.Error
	}

	return picks, nil
}

func (r *Repository) UpdatePick(ctx context.Context, slug string, name *string, description *string) (*model.Pick, error) {
	var pick *model.Pick

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if pick, err = pickBySlug(tx, slug); err != nil {
			return err
		}

		columns := make(map[string]any)
		if name != nil {
			columns["name"] = *name
		}

		if description != nil {
			columns["description"] = *description
		}

		if len(columns) == 0 {
			return nil
		}

		return tx.Model(pick).Updates(columns).Error
	})
	if err != nil {
		return nil, err
	}

	return pick, nil
}

// DeletePick removes the pick and its memberships in one transaction.
func (r *Repository) DeletePick(ctx context.Context, slug string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pick, err := pickBySlug(tx, slug)
		if err != nil {
			return err
		}

		if err := tx.Where("pick_id = ?", pick.ID).Delete(&model.MoviePick{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(pick).Error; err != nil {
			r.Logger.Error("error deleting pick", zap.String("slug", slug), zap.Error(err))

			return err
		}

		return nil
	})
}

// AttachPick adds the movie to the pick. An existing membership is reported as ErrConflict.
func (r *Repository) AttachPick(ctx context.Context, movieID uint, slug string, addedBy *uint) (*model.MoviePick, error) {
	var moviePick model.MoviePick

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := movieExists(tx, movieID); err != nil {
			return err
		}

		pick, err := pickBySlug(tx, slug)
		if err != nil {
			return err
		}

		moviePick = model.MoviePick{MovieID: movieID, PickID: pick.ID, AddedBy: addedBy}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&moviePick)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: movie %d is already in pick %q", ErrConflict, movieID, slug)
		}

		moviePick.Pick = pick

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &moviePick, nil
}

// DetachPick removes the membership and reports whether there was one.
func (r *Repository) DetachPick(ctx context.Context, movieID uint, slug string) (bool, error) {
	var removed bool

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := movieExists(tx, movieID); err != nil {
			return err
		}

		pick, err := pickBySlug(tx, slug)
		if err != nil {
			return err
		}

		result := tx.Where("movie_id = ? AND pick_id = ?", movieID, pick.ID).Delete(&model.MoviePick{})
		if result.Error != nil {
			return result.Error
		}

		removed = result.RowsAffected > 0

		return nil
	})

	return removed, err
}

func (r *Repository) GetPicksForMovie(ctx context.Context, movieID uint) ([]*model.Pick, error) {
	var picks []*model.Pick

	db := r.DB.WithContext(ctx)
	if err := movieExists(db, movieID); err != nil {
		return nil, err
	}

	result := db.Joins("INNER JOIN movie_picks ON movie_picks.pick_id = picks.id").
		Where("movie_picks.movie_id = ?", movieID).
		Order("picks.name ASC").
		Order("picks.id ASC").
		Find(&picks)
	if result.Error != nil {
		return nil, result.Error
	}

	return picks, nil
}

func (r *Repository) GetMoviesForPick(ctx context.Context, slug string, page model.Page) ([]*model.Movie, error) {
	var movies []*model.Movie

	db := r.DB.WithContext(ctx)

	pick, err := pickBySlug(db, slug)
	if err != nil {
		return nil, err
	}

	result := db.Scopes(withPicks, catalogOrder, paginate(page)).
		Where("movies.id IN (SELECT movie_id FROM movie_picks WHERE pick_id = ?)", pick.ID).
		Find(&movies)
	if result.Error != nil {
		return nil, result.Error
	}

	return movies, nil
}
