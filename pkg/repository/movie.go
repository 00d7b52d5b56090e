package repository

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/MovieCatalog/pkg/model"
)

// AllPicks is the pick filter value meaning "no pick filter".
const AllPicks = "all"

type MovieRepository interface {
	AddMovie(ctx context.Context, movie model.Movie) (*model.Movie, error)
	DeleteMovie(ctx context.Context, movieID uint) error
	FindMovieByTitle(ctx context.Context, title string) (*model.Movie, error)
	GetMovieByID(ctx context.Context, movieID uint) (*model.Movie, error)
	GetMovieStats(ctx context.Context, movieID uint) (*model.MovieStats, error)
	IncrementViews(ctx context.Context, movieID uint) (int64, error)
	QueryMovies(ctx context.Context, filter model.MovieFilter, page model.Page) ([]*model.Movie, int64, error)
	SearchMovies(ctx context.Context, term string, page model.Page) ([]*model.Movie, error)
	UpdateMovie(ctx context.Context, movieID uint, update model.MovieUpdate) (*model.Movie, error)
}

func withPicks(db *gorm.DB) *gorm.DB {
	return db.Preload("MoviePicks", func(db *gorm.DB) *gorm.DB {
		return db.Order("movie_picks.created_at ASC")
	}).Preload("MoviePicks.Pick")
}

func catalogOrder(db *gorm.DB) *gorm.DB {
	return db.Order("movies.rating DESC").Order("movies.created_at DESC").Order("movies.id DESC")
}

func paginate(page model.Page) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page.Skip).Limit(page.Limit)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func matchingText(term string) func(db *gorm.DB) *gorm.DB {
	pattern := containsPattern(term)

	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(movies.title ILIKE ? OR COALESCE(movies.overview, '') ILIKE ? OR movies.genre ILIKE ?)",
			pattern, pattern, pattern)
	}
}

func matchingFilter(filter model.MovieFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Genre != "" {
			db = db.Where("movies.genre ILIKE ?", containsPattern(filter.Genre))
		}

		if filter.Year != nil {
			db = db.Where("movies.year = ?", *filter.Year)
		}

		if filter.Search != "" {
			db = db.Scopes(matchingText(filter.Search))
		}

		if filter.RatingMin != nil {
			db = db.Where("movies.rating >= ?", *filter.RatingMin)
		}

		if filter.RatingMax != nil {
			db = db.Where("movies.rating <= ?", *filter.RatingMax)
		}

		if filter.PickSlug != "" && filter.PickSlug != AllPicks {
			db = db.Where("movies.id IN (SELECT mp.movie_id FROM movie_picks mp "+
				"INNER JOIN picks p ON p.id = mp.pick_id WHERE p.slug = ?)", filter.PickSlug)
		}

		return db
	}
}

func (r *Repository) AddMovie(ctx context.Context, movie model.Movie) (*model.Movie, error) {
	if result := r.DB.WithContext(ctx).Omit("MoviePicks").Create(&movie); result.Error != nil {
		return nil, result.Error
	}

	return &movie, nil
}

func (r *Repository) GetMovieByID(ctx context.Context, movieID uint) (*model.Movie, error) {
	var movie model.Movie

	result := r.DB.WithContext(ctx).Scopes(withPicks).First(&movie, movieID)
	if result.Error != nil {
		return nil, notFound(result.Error, "movie %d", movieID)
	}

	return &movie, nil
}

func (r *Repository) FindMovieByTitle(ctx context.Context, title string) (*model.Movie, error) {
	var movie model.Movie

	result := r.DB.WithContext(ctx).Where("LOWER(title) = LOWER(?)", title).First(&movie)
	if result.Error != nil {
		return nil, notFound(result.Error, "movie %q", title)
	}

	return &movie, nil
}

func (r *Repository) UpdateMovie(ctx context.Context, movieID uint, update model.MovieUpdate) (*model.Movie, error) {
	var movie model.Movie

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&movie, movieID).Error; err != nil {
			return notFound(err, "movie %d", movieID)
		}

		if columns := update.Columns(); len(columns) > 0 {
			if err := tx.Model(&movie).Updates(columns).Error; err != nil {
				return err
			}
		}

		return tx.Scopes(withPicks).First(&movie, movieID).Error
	})
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// DeleteMovie removes the movie and everything hanging off it in one transaction.
func (r *Repository) DeleteMovie(ctx context.Context, movieID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var movie model.Movie
		if err := tx.First(&movie, movieID).Error; err != nil {
			return notFound(err, "movie %d", movieID)
		}

		if err := tx.Where("movie_id = ?", movieID).Delete(&model.Review{}).Error; err != nil {
			return err
		}

		if err := tx.Where("movie_id = ?", movieID).Delete(&model.MoviePick{}).Error; err != nil {
			return err
		}

		if err := tx.Where("movie_id = ?", movieID).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&movie).Error; err != nil {
			r.Logger.Error("error deleting movie", zap.Uint("movie_id", movieID), zap.Error(err))

			return err
		}

		return nil
	})
}

func (r *Repository) SearchMovies(ctx context.Context, term string, page model.Page) ([]*model.Movie, error) {
	var movies []*model.Movie

	result := r.DB.WithContext(ctx).
		Scopes(withPicks, matchingText(term), catalogOrder, paginate(page)).
		Find(&movies)
	if result.Error != nil {
		return nil, result.Error
	}

	return movies, nil
}

// QueryMovies returns one page of movies matching the filter together with the total match count.
func (r *Repository) QueryMovies(ctx context.Context, filter model.MovieFilter, page model.Page) ([]*model.Movie, int64, error) {
	var (
		movies []*model.Movie
		total  int64
	)

	result := r.DB.WithContext(ctx).Model(&model.Movie{}).Scopes(matchingFilter(filter)).Count(&total)
	if result.Error != nil {
		r.Logger.Error("error counting movies", zap.Any("filter", filter), zap.Error(result.Error))

		return nil, 0, result.Error
	}

	if total == 0 {
		return []*model.Movie{}, 0, nil
	}

	result = r.DB.WithContext(ctx).
		Scopes(withPicks, matchingFilter(filter), catalogOrder, paginate(page)).
		Find(&movies)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return movies, total, nil
}

func (r *Repository) GetMovieStats(ctx context.Context, movieID uint) (*model.MovieStats, error) {
	var stats model.MovieStats

	result := r.DB.WithContext(ctx).Table("movies as m").
		Select("m.id as movie_id, "+
			"m.rating as rating, "+
			"m.views as views, "+
			"(select count(*) from reviews r where r.movie_id = m.id) as review_count, "+
			"(select count(*) from movie_picks mp where mp.movie_id = m.id) as pick_count, "+
			"(select count(*) from favorites f where f.movie_id = m.id) as favorite_count").
		Where("m.id = ?", movieID).
		Take(&stats)
	if result.Error != nil {
		return nil, notFound(result.Error, "movie %d", movieID)
	}

	return &stats, nil
}

// IncrementViews bumps the movie's view counter and returns the new count.
func (r *Repository) IncrementViews(ctx context.Context, movieID uint) (int64, error) {
	var views int64

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Movie{}).Where("id = ?", movieID).UpdateColumn("views", gorm.Expr("views + ?", 1))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
		}

		return tx.Model(&model.Movie{}).Where("id = ?", movieID).Pluck("views", &views).Error
	})
	if err != nil {
		return 0, err
	}

	return views, nil
}
