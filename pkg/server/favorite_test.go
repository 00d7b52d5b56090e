package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
	"droscher.com/MovieCatalog/pkg/server"
	apiv1 "droscher.com/MovieCatalog/pkg/server/api/v1"
)

type FavoriteServerTestSuite struct {
	suite.Suite
	repos   repositoryMocks
	service *server.FavoriteServer
}

func TestFavoriteServerTestSuite(t *testing.T) {
	suite.Run(t, new(FavoriteServerTestSuite))
}

func (suite *FavoriteServerTestSuite) SetupTest() {
	logger := zaptest.NewLogger(suite.T(), zaptest.Level(zap.WarnLevel))

	c, repos := newCatalog(suite.T(), logger)
	suite.repos = repos
	suite.service = server.NewFavoriteServer(c.Favorites, logger)
}

func (suite *FavoriteServerTestSuite) TestAddFavorite_Twice() {
	ctx := asUser(memberUser())
	added := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	suite.repos.favorites.EXPECT().AddFavorite(ctx, uint(2), uint(4)).
		Return(&model.Favorite{UserID: 2, MovieID: 4, CreatedAt: added}, nil).Once()
	suite.repos.favorites.EXPECT().AddFavorite(ctx, uint(2), uint(4)).
		Return(nil, repository.ErrConflict).Once()

	response, err := suite.service.AddFavorite(ctx, connect.NewRequest(&apiv1.AddFavoriteRequest{MovieID: 4}))
	suite.Require().NoError(err)
	suite.Equal(added, response.Msg.Favorite.CreatedAt)

	_, err = suite.service.AddFavorite(ctx, connect.NewRequest(&apiv1.AddFavoriteRequest{MovieID: 4}))
	suite.Equal(connect.CodeAlreadyExists, connect.CodeOf(err))
}

func (suite *FavoriteServerTestSuite) TestRemoveFavorite_NotAFavorite() {
	ctx := asUser(memberUser())
	suite.repos.favorites.EXPECT().RemoveFavorite(ctx, uint(2), uint(4)).Return(repository.ErrNotFound)

	_, err := suite.service.RemoveFavorite(ctx, connect.NewRequest(&apiv1.RemoveFavoriteRequest{MovieID: 4}))

	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *FavoriteServerTestSuite) TestListFavorites() {
	ctx := asUser(memberUser())
	suite.repos.favorites.EXPECT().GetFavorites(ctx, uint(2), model.Page{Skip: 0, Limit: 20}).
		Return([]*model.Movie{{ID: 5, Title: "Heat"}, {ID: 4, Title: "Alien"}}, nil)

	response, err := suite.service.ListFavorites(ctx, connect.NewRequest(&apiv1.ListFavoritesRequest{Limit: 20}))

	suite.Require().NoError(err)
	suite.Equal("Heat", response.Msg.Movies[0].Title)
}

func (suite *FavoriteServerTestSuite) TestIsFavorite() {
	ctx := asUser(memberUser())
	suite.repos.favorites.EXPECT().IsFavorite(ctx, uint(2), uint(4)).Return(true, nil)

	response, err := suite.service.IsFavorite(ctx, connect.NewRequest(&apiv1.IsFavoriteRequest{MovieID: 4}))

	suite.Require().NoError(err)
	suite.True(response.Msg.Favorite)
}

func (suite *FavoriteServerTestSuite) TestFavorites_Anonymous() {
	_, err := suite.service.ListFavorites(context.Background(), connect.NewRequest(&apiv1.ListFavoritesRequest{}))

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}
