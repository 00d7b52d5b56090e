package catalog

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

type FavoritesIndex struct {
	favorites repository.FavoriteRepository
	validator *Validator
	logger    *zap.Logger
}

func NewFavoritesIndex(favorites repository.FavoriteRepository, validator *Validator, logger *zap.Logger) *FavoritesIndex {
	return &FavoritesIndex{favorites: favorites, validator: validator, logger: logger}
}

// Add marks the movie as a favorite of the user. Adding twice is a conflict.
func (f *FavoritesIndex) Add(ctx context.Context, userID uint, movieID uint) (*model.Favorite, error) {
	favorite, err := f.favorites.AddFavorite(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("favorite added", zap.Uint("user_id", userID), zap.Uint("movie_id", movieID))

	return favorite, nil
}

// Remove fails with ErrNotFound when the movie was not a favorite.
func (f *FavoritesIndex) Remove(ctx context.Context, userID uint, movieID uint) (bool, error) {
	if err := f.favorites.RemoveFavorite(ctx, userID, movieID); err != nil {
		return false, err
	}

	return true, nil
}

// List returns the user's favorite movies, most recently added first.
func (f *FavoritesIndex) List(ctx context.Context, userID uint, page model.Page) ([]*model.Movie, error) {
	return f.favorites.GetFavorites(ctx, userID, f.validator.Page(page))
}

func (f *FavoritesIndex) IsFavorite(ctx context.Context, userID uint, movieID uint) (bool, error) {
	return f.favorites.IsFavorite(ctx, userID, movieID)
}
