package server_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/MovieCatalog/mocks"
	"droscher.com/MovieCatalog/pkg/integrations"
	"droscher.com/MovieCatalog/pkg/loader"
	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
	"droscher.com/MovieCatalog/pkg/server"
	apiv1 "droscher.com/MovieCatalog/pkg/server/api/v1"
)

type MovieServerTestSuite struct {
	suite.Suite
	repos        repositoryMocks
	imdb         *mocks.MovieIntegration
	other        *mocks.MovieIntegration
	service      *server.MovieServer
	observedLogs *observer.ObservedLogs
}

func TestMovieServerTestSuite(t *testing.T) {
	suite.Run(t, new(MovieServerTestSuite))
}

func (suite *MovieServerTestSuite) SetupTest() {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	observedLogger := zap.New(observedZapCore)

	c, repos := newCatalog(suite.T(), observedLogger)
	suite.repos = repos
	suite.imdb = mocks.NewMovieIntegration(suite.T())
	suite.other = mocks.NewMovieIntegration(suite.T())

	importer := loader.New(c.Movies, c.Picks, observedLogger)
	suite.service = server.NewMovieServer(c, importer, []integrations.MovieIntegration{suite.imdb, suite.other}, observedLogger)
}

func (suite *MovieServerTestSuite) TestListMovies_FiltersAndClampsLimit() {
	ctx := context.Background()
	expectedFilter := model.MovieFilter{Genre: "Sci-Fi", RatingMin: pointy.Float64(7)}
	movies := []*model.Movie{
		{ID: 1, Title: "Alien", Genre: "Sci-Fi", Rating: 8.0},
		{ID: 2, Title: "Solaris", Genre: "Sci-Fi", Rating: 7.5},
	}

	suite.repos.movies.EXPECT().QueryMovies(ctx, expectedFilter, model.Page{Skip: 0, Limit: 500}).Return(movies, int64(2), nil)

	response, err := suite.service.ListMovies(ctx, connect.NewRequest(&apiv1.ListMoviesRequest{
		Genre:     pointy.String(" Sci-Fi "),
		RatingMin: pointy.Float64(7),
		Skip:      -3,
		Limit:     10000,
	}))

	suite.Require().NoError(err)
	suite.Len(response.Msg.Movies, 2)
	suite.Equal(int64(2), response.Msg.Total)
	suite.Equal(int32(0), response.Msg.Skip)
	suite.Equal(int32(500), response.Msg.Limit)
	suite.Equal("Alien", response.Msg.Movies[0].Title)
}

func (suite *MovieServerTestSuite) TestListMovies_InvertedRatingBounds() {
	_, err := suite.service.ListMovies(context.Background(), connect.NewRequest(&apiv1.ListMoviesRequest{
		RatingMin: pointy.Float64(8),
		RatingMax: pointy.Float64(6),
	}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
	suite.ErrorIs(err, repository.ErrValidation)
}

func (suite *MovieServerTestSuite) TestGetMovie_NotFound() {
	ctx := context.Background()
	suite.repos.movies.EXPECT().GetMovieByID(ctx, uint(404)).Return(nil, repository.ErrNotFound)

	response, err := suite.service.GetMovie(ctx, connect.NewRequest(&apiv1.GetMovieRequest{MovieID: 404}))

	suite.Nil(response)
	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *MovieServerTestSuite) TestGetMovie_InternalErrorIsLogged() {
	ctx := context.Background()
	suite.repos.movies.EXPECT().GetMovieByID(ctx, uint(1)).Return(nil, errors.New("connection reset by peer"))

	_, err := suite.service.GetMovie(ctx, connect.NewRequest(&apiv1.GetMovieRequest{MovieID: 1}))

	suite.Equal(connect.CodeInternal, connect.CodeOf(err))
	suite.NotContains(err.Error(), "connection reset")
	suite.Equal(1, suite.observedLogs.FilterMessage("request failed").Len())
}

func (suite *MovieServerTestSuite) TestSearchMovies_ShortTermIsEmpty() {
	response, err := suite.service.SearchMovies(context.Background(), connect.NewRequest(&apiv1.SearchMoviesRequest{Query: " a "}))

	suite.Require().NoError(err)
	suite.Empty(response.Msg.Movies)
}

func (suite *MovieServerTestSuite) TestCreateMovie_RequiresIdentity() {
	_, err := suite.service.CreateMovie(context.Background(), connect.NewRequest(&apiv1.CreateMovieRequest{Title: "Alien"}))

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *MovieServerTestSuite) TestCreateMovie_RequiresAdmin() {
	_, err := suite.service.CreateMovie(asUser(memberUser()), connect.NewRequest(&apiv1.CreateMovieRequest{Title: "Alien"}))

	suite.Equal(connect.CodePermissionDenied, connect.CodeOf(err))
}

func (suite *MovieServerTestSuite) TestCreateMovie_Success() {
	ctx := asUser(adminUser())

	suite.repos.movies.EXPECT().AddMovie(ctx, mock.MatchedBy(func(movie model.Movie) bool {
		return movie.Title == "Alien" && movie.Rating == 0 && movie.CreatedBy != nil && *movie.CreatedBy == 1
	})).Return(&model.Movie{ID: 11, Title: "Alien", Year: 1979, Genre: "Sci-Fi", CreatedBy: pointy.Uint(1)}, nil)

	response, err := suite.service.CreateMovie(ctx, connect.NewRequest(&apiv1.CreateMovieRequest{
		Title:  "Alien",
		Year:   1979,
		Genre:  "Sci-Fi",
		Rating: pointy.Float64(9),
	}))

	suite.Require().NoError(err)
	suite.Equal(uint64(11), response.Msg.Movie.ID)
	suite.InDelta(0.0, response.Msg.Movie.Rating, 0.001)
	suite.Empty(response.Msg.Movie.Picks)
}

func (suite *MovieServerTestSuite) TestCreateMovie_Invalid() {
	_, err := suite.service.CreateMovie(asUser(adminUser()), connect.NewRequest(&apiv1.CreateMovieRequest{
		Title:  "  ",
		Year:   1979,
		Genre:  "Sci-Fi",
		Rating: pointy.Float64(11),
	}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *MovieServerTestSuite) TestUpdateMovie_OnlySuppliedFields() {
	ctx := asUser(adminUser())
	update := model.MovieUpdate{Genre: pointy.String("Horror")}

	suite.repos.movies.EXPECT().UpdateMovie(ctx, uint(11), update).
		Return(&model.Movie{ID: 11, Title: "Alien", Genre: "Horror"}, nil)

	response, err := suite.service.UpdateMovie(ctx, connect.NewRequest(&apiv1.UpdateMovieRequest{
		MovieID: 11,
		Genre:   pointy.String("Horror "),
	}))

	suite.Require().NoError(err)
	suite.Equal("Horror", response.Msg.Movie.Genre)
}

func (suite *MovieServerTestSuite) TestDeleteMovie() {
	ctx := asUser(adminUser())
	suite.repos.movies.EXPECT().DeleteMovie(ctx, uint(11)).Return(nil)
	suite.repos.movies.EXPECT().DeleteMovie(ctx, uint(12)).Return(repository.ErrNotFound)

	response, err := suite.service.DeleteMovie(ctx, connect.NewRequest(&apiv1.DeleteMovieRequest{MovieID: 11}))
	suite.Require().NoError(err)
	suite.True(response.Msg.Deleted)

	_, err = suite.service.DeleteMovie(ctx, connect.NewRequest(&apiv1.DeleteMovieRequest{MovieID: 12}))
	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *MovieServerTestSuite) TestGetMovieStats() {
	ctx := context.Background()
	suite.repos.movies.EXPECT().GetMovieStats(ctx, uint(11)).Return(&model.MovieStats{
		MovieID: 11, Rating: 8.0, Views: 17, ReviewCount: 2, PickCount: 1, FavoriteCount: 3,
	}, nil)

	response, err := suite.service.GetMovieStats(ctx, connect.NewRequest(&apiv1.GetMovieStatsRequest{MovieID: 11}))

	suite.Require().NoError(err)
	suite.Equal(int64(2), response.Msg.Stats.ReviewCount)
	suite.Equal(int64(3), response.Msg.Stats.FavoriteCount)
	suite.Equal(int64(17), response.Msg.Stats.Views)
}

func (suite *MovieServerTestSuite) TestIncrementMovieViews_Anonymous() {
	ctx := context.Background()
	suite.repos.movies.EXPECT().IncrementViews(ctx, uint(11)).Return(18, nil)

	response, err := suite.service.IncrementMovieViews(ctx, connect.NewRequest(&apiv1.IncrementMovieViewsRequest{MovieID: 11}))

	suite.Require().NoError(err)
	suite.Equal(int64(18), response.Msg.Views)
}

func (suite *MovieServerTestSuite) TestIncrementMovieViews_UnknownMovie() {
	ctx := context.Background()
	suite.repos.movies.EXPECT().IncrementViews(ctx, uint(99)).Return(0, errNotFound())

	_, err := suite.service.IncrementMovieViews(ctx, connect.NewRequest(&apiv1.IncrementMovieViewsRequest{MovieID: 99}))

	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *MovieServerTestSuite) TestFindMovieMetadata_PartialFailure() {
	ctx := asUser(adminUser())
	suite.imdb.EXPECT().SearchMovies(ctx, "alien").Return([]*model.MovieMetadata{
		{Source: "imdb_web", ExternalID: "tt0078748", Title: "Alien", Year: 1979, Genre: "Horror, Sci-Fi"},
	}, nil)
	suite.other.EXPECT().SearchMovies(ctx, "alien").Return(nil, errors.New("status 503"))

	response, err := suite.service.FindMovieMetadata(ctx, connect.NewRequest(&apiv1.FindMovieMetadataRequest{Query: " alien "}))

	suite.Require().NoError(err)
	suite.Require().Len(response.Msg.Candidates, 1)
	suite.Equal("tt0078748", response.Msg.Candidates[0].ExternalID)
	suite.Equal(1, suite.observedLogs.FilterMessage("metadata integration failed").Len())
}

func (suite *MovieServerTestSuite) TestFindMovieMetadata_AllFail() {
	ctx := asUser(adminUser())
	suite.imdb.EXPECT().SearchMovies(ctx, "alien").Return(nil, errors.New("timeout"))
	suite.other.EXPECT().SearchMovies(ctx, "alien").Return(nil, errors.New("status 503"))

	_, err := suite.service.FindMovieMetadata(ctx, connect.NewRequest(&apiv1.FindMovieMetadataRequest{Query: "alien"}))

	suite.Equal(connect.CodeUnavailable, connect.CodeOf(err))
}

func (suite *MovieServerTestSuite) TestFindMovieMetadata_EmptyQuery() {
	_, err := suite.service.FindMovieMetadata(asUser(adminUser()), connect.NewRequest(&apiv1.FindMovieMetadataRequest{Query: "  "}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *MovieServerTestSuite) TestImportMovies() {
	ctx := asUser(adminUser())

	suite.repos.movies.EXPECT().FindMovieByTitle(ctx, "Alien").Return(&model.Movie{ID: 1, Title: "Alien"}, nil)
	suite.repos.movies.EXPECT().FindMovieByTitle(ctx, "Heat").Return(nil, repository.ErrNotFound)
	suite.repos.movies.EXPECT().FindMovieByTitle(ctx, "Ran").Return(nil, repository.ErrNotFound)
	suite.repos.movies.EXPECT().AddMovie(ctx, mock.MatchedBy(func(movie model.Movie) bool {
		return movie.Title == "Heat"
	})).Return(&model.Movie{ID: 2, Title: "Heat"}, nil)
	suite.repos.picks.EXPECT().AttachPick(ctx, uint(2), "crime", pointy.Uint(1)).
		Return(&model.MoviePick{MovieID: 2, PickID: 4}, nil)

	response, err := suite.service.ImportMovies(ctx, connect.NewRequest(&apiv1.ImportMoviesRequest{Movies: []*apiv1.ImportMovie{
		{Title: "Alien", Year: 1979, Genre: "Sci-Fi"},
		{Title: "Heat", Year: 1995, Genre: "Crime", Picks: []string{"crime"}},
		{Title: "Ran", Year: 1700, Genre: "Drama"},
	}}))

	suite.Require().NoError(err)
	report := response.Msg.Report
	suite.Equal(int32(3), report.Total)
	suite.Equal(int32(1), report.Loaded)
	suite.Equal(int32(1), report.Skipped)
	suite.Require().Len(report.Errors, 1)
	suite.Contains(report.Errors[0], "Ran")
}
