package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

type FavoritesIndexTestSuite struct {
	CatalogSuite
}

func TestFavoritesIndexTestSuite(t *testing.T) {
	suite.Run(t, new(FavoritesIndexTestSuite))
}

func (suite *FavoritesIndexTestSuite) TestAddTwice() {
	ctx := context.Background()
	suite.favoriteRepo.EXPECT().AddFavorite(ctx, uint(2), uint(4)).Return(&model.Favorite{UserID: 2, MovieID: 4}, nil).Once()
	suite.favoriteRepo.EXPECT().AddFavorite(ctx, uint(2), uint(4)).Return(nil, repository.ErrConflict).Once()

	favorite, err := suite.catalog.Favorites.Add(ctx, 2, 4)
	suite.Require().NoError(err)
	suite.Equal(uint(4), favorite.MovieID)

	_, err = suite.catalog.Favorites.Add(ctx, 2, 4)
	suite.ErrorIs(err, repository.ErrConflict)
}

func (suite *FavoritesIndexTestSuite) TestRemove() {
	ctx := context.Background()
	suite.favoriteRepo.EXPECT().RemoveFavorite(ctx, uint(2), uint(4)).Return(nil).Once()
	suite.favoriteRepo.EXPECT().RemoveFavorite(ctx, uint(2), uint(4)).Return(repository.ErrNotFound).Once()

	removed, err := suite.catalog.Favorites.Remove(ctx, 2, 4)
	suite.Require().NoError(err)
	suite.True(removed)

	removed, err = suite.catalog.Favorites.Remove(ctx, 2, 4)
	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.False(removed)
}

func (suite *FavoritesIndexTestSuite) TestListAndIsFavorite() {
	ctx := context.Background()
	suite.favoriteRepo.EXPECT().GetFavorites(ctx, uint(2), model.Page{Skip: 0, Limit: 100}).
		Return([]*model.Movie{{ID: 5}, {ID: 4}}, nil)
	suite.favoriteRepo.EXPECT().IsFavorite(ctx, uint(2), uint(4)).Return(true, nil)

	movies, err := suite.catalog.Favorites.List(ctx, 2, model.Page{})
	suite.Require().NoError(err)
	suite.Equal(uint(5), movies[0].ID)

	favorite, err := suite.catalog.Favorites.IsFavorite(ctx, 2, 4)
	suite.Require().NoError(err)
	suite.True(favorite)
}
