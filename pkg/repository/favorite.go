package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/MovieCatalog/pkg/model"
)

type FavoriteRepository interface {
	AddFavorite(ctx context.Context, userID uint, movieID uint) (*model.Favorite, error)
	GetFavorites(ctx context.Context, userID uint, page model.Page) ([]*model.Movie, error)
	IsFavorite(ctx context.Context, userID uint, movieID uint) (bool, error)
	RemoveFavorite(ctx context.Context, userID uint, movieID uint) error
}

func (r *Repository) AddFavorite(ctx context.Context, userID uint, movieID uint) (*model.Favorite, error) {
	favorite := model.Favorite{UserID: userID, MovieID: movieID}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := movieExists(tx, movieID); err != nil {
			return err
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: movie %d is already a favorite", ErrConflict, movieID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &favorite, nil
}

func (r *Repository) RemoveFavorite(ctx context.Context, userID uint, movieID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := movieExists(tx, movieID); err != nil {
			return err
		}

		result := tx.Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&model.Favorite{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: movie %d is not a favorite", ErrNotFound, movieID)
		}

		return nil
	})
}

// GetFavorites lists the user's favorite movies, most recently favorited first.
func (r *Repository) GetFavorites(ctx context.Context, userID uint, page model.Page) ([]*model.Movie, error) {
	var movies []*model.Movie

	result := r.DB.WithContext(ctx).
		Scopes(withPicks).
		Joins("INNER JOIN favorites ON favorites.movie_id = movies.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Order("movies.id DESC").
		Scopes(paginate(page)).
		Find(&movies)
	if result.Error != nil {
		return nil, result.Error
	}

	return movies, nil
}

func (r *Repository) IsFavorite(ctx context.Context, userID uint, movieID uint) (bool, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
