package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/rating"
)

type ReviewRepository interface {
	AddReview(ctx context.Context, review model.Review) (*model.Review, error)
	DeleteReview(ctx context.Context, reviewID uint) (*model.Movie, error)
	GetReviewByID(ctx context.Context, reviewID uint) (*model.Review, error)
	GetReviewsByAuthor(ctx context.Context, authorID uint, page model.Page) ([]*model.Review, error)
	GetReviewsByMovie(ctx context.Context, movieID uint, page model.Page) ([]*model.Review, error)
	RecomputeRating(ctx context.Context, movieID uint) (float64, error)
	UpdateReview(ctx context.Context, reviewID uint, update model.ReviewUpdate) (*model.Review, error)
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("reviews.created_at DESC").Order("reviews.id DESC")
}

// lockMovie loads the movie row FOR UPDATE so review writers on one movie serialize.
func lockMovie(tx *gorm.DB, movieID uint) (*model.Movie, error) {
	var movie model.Movie

	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&movie, movieID).Error; err != nil {
		return nil, notFound(err, "movie %d", movieID)
	}

	return &movie, nil
}

// recomputeRating derives the movie rating from its current reviews and stores it on the movie.
func recomputeRating(tx *gorm.DB, movie *model.Movie) error {
	var scores []float64

	if err := tx.Model(&model.Review{}).Where("movie_id = ?", movie.ID).Pluck("score", &scores).Error; err != nil {
		return err
	}

	value := rating.Average(scores)
	if err := tx.Model(&model.Movie{}).Where("id = ?", movie.ID).UpdateColumn("rating", value).Error; err != nil {
		return err
	}

	movie.Rating = value

	return nil
}

// AddReview stores the review and refreshes the movie rating in the same transaction.
func (r *Repository) AddReview(ctx context.Context, review model.Review) (*model.Review, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		movie, err := lockMovie(tx, review.MovieID)
		if err != nil {
			return err
		}

		if err := tx.Omit("Movie").Create(&review).Error; err != nil {
			return err
		}

		if err := recomputeRating(tx, movie); err != nil {
			return err
		}

		review.Movie = movie

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *Repository) UpdateReview(ctx context.Context, reviewID uint, update model.ReviewUpdate) (*model.Review, error) {
	var review model.Review

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, reviewID).Error; err != nil {
			return notFound(err, "review %d", reviewID)
		}

		movie, err := lockMovie(tx, review.MovieID)
		if err != nil {
			return err
		}

		if columns := update.Columns(); len(columns) > 0 {
			if err := tx.Model(&review).Omit("Movie").Updates(columns).Error; err != nil {
				return err
			}
		}

		if err := recomputeRating(tx, movie); err != nil {
			return err
		}

		review.Movie = movie

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// DeleteReview removes the review and returns its movie with the refreshed rating.
func (r *Repository) DeleteReview(ctx context.Context, reviewID uint) (*model.Movie, error) {
	var movie *model.Movie

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review model.Review
		if err := tx.First(&review, reviewID).Error; err != nil {
			return notFound(err, "review %d", reviewID)
		}

		var err error
		if movie, err = lockMovie(tx, review.MovieID); err != nil {
			return err
		}

		if err := tx.Delete(&review).Error; err != nil {
			r.Logger.Error("error deleting review", zap.Uint("review_id", reviewID), zap.Error(err))

			return err
		}

		return recomputeRating(tx, movie)
	})
	if err != nil {
		return nil, err
	}

	return movie, nil
}

// RecomputeRating refreshes a movie's rating from its reviews under the movie row lock.
func (r *Repository) RecomputeRating(ctx context.Context, movieID uint) (float64, error) {
	var value float64

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		movie, err := lockMovie(tx, movieID)
		if err != nil {
			return err
		}

		if err := recomputeRating(tx, movie); err != nil {
			return err
		}

		value = movie.Rating

		return nil
	})

	return value, err
}

func (r *Repository) GetReviewByID(ctx context.Context, reviewID uint) (*model.Review, error) {
	var review model.Review

	result := r.DB.WithContext(ctx).Joins("Movie").First(&review, reviewID)
	if result.Error != nil {
		return nil, notFound(result.Error, "review %d", reviewID)
	}

	return &review, nil
}

func (r *Repository) GetReviewsByMovie(ctx context.Context, movieID uint, page model.Page) ([]*model.Review, error) {
	var reviews []*model.Review

	db := r.DB.WithContext(ctx)
	if err := movieExists(db, movieID); err != nil {
		return nil, err
	}

	result := db.Where("reviews.movie_id = ?", movieID).
		Scopes(newestFirst, paginate(page)).
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}

func (r *Repository) GetReviewsByAuthor(ctx context.Context, authorID uint, page model.Page) ([]*model.Review, error) {
	var reviews []*model.Review

	result := r.DB.WithContext(ctx).
		Joins("Movie").
		Where("reviews.author_id = ?", authorID).
		Scopes(newestFirst, paginate(page)).
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}
