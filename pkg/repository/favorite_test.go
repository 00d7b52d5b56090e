package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

type FavoriteTestSuite struct {
	RepositorySuite
}

func TestFavoriteTestSuite(t *testing.T) {
	suite.Run(t, new(FavoriteTestSuite))
}

func (suite *FavoriteTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *FavoriteTestSuite) expectMovie(movieID uint) {
	suite.mock.ExpectQuery(`^SELECT "id" FROM "movies"`).
		WithArgs(movieID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(movieID))
}

func (suite *FavoriteTestSuite) TestAddFavorite_Adds() {
	suite.mock.ExpectBegin()
	suite.expectMovie(8)
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "favorites" ("user_id","movie_id","created_at") VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`)).
		WithArgs(2, 8, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	result, err := suite.repository.AddFavorite(context.Background(), 2, 8)

	suite.Require().NoError(err)
	suite.Equal(uint(2), result.UserID)
	suite.Equal(uint(8), result.MovieID)
}

func (suite *FavoriteTestSuite) TestAddFavorite_DuplicateConflicts() {
	suite.mock.ExpectBegin()
	suite.expectMovie(8)
	suite.mock.ExpectExec(`^INSERT INTO "favorites"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectRollback()

	result, err := suite.repository.AddFavorite(context.Background(), 2, 8)

	suite.Nil(result)
	suite.ErrorIs(err, repository.ErrConflict)
}

func (suite *FavoriteTestSuite) TestAddFavorite_UnknownMovie() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT "id" FROM "movies"`).
		WithArgs(8, 1).
		WillReturnError(gorm.ErrRecordNotFound)
	suite.mock.ExpectRollback()

	result, err := suite.repository.AddFavorite(context.Background(), 2, 8)

	suite.Nil(result)
	suite.ErrorIs(err, repository.ErrNotFound)
}

func (suite *FavoriteTestSuite) TestRemoveFavorite_Removes() {
	suite.mock.ExpectBegin()
	suite.expectMovie(8)
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE user_id = $1 AND movie_id = $2`)).
		WithArgs(2, 8).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.RemoveFavorite(context.Background(), 2, 8))
}

func (suite *FavoriteTestSuite) TestRemoveFavorite_AbsentIsNotFound() {
	suite.mock.ExpectBegin()
	suite.expectMovie(8)
	suite.mock.ExpectExec(`^DELETE FROM "favorites"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectRollback()

	err := suite.repository.RemoveFavorite(context.Background(), 2, 8)

	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.EqualError(err, "not found: movie 8 is not a favorite")
}

func (suite *FavoriteTestSuite) TestGetFavorites_NewestFavoritedFirst() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "movies" INNER JOIN favorites ON favorites.movie_id = movies.id WHERE favorites.user_id = \$1 ORDER BY favorites.created_at DESC,movies.id DESC LIMIT \$2`).
		WithArgs(2, 50).
		WillReturnRows(movieRows().
			AddRow(8, time.Now(), "Heat", 1995, "Crime", 8.3).
			AddRow(3, time.Now(), "Alien", 1979, "Sci-Fi", 8.5))
	suite.mock.ExpectQuery(`^SELECT \* FROM "movie_picks" WHERE "movie_picks"."movie_id" IN \(\$1,\$2\)`).
		WithArgs(8, 3).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "pick_id"}))

	results, err := suite.repository.GetFavorites(context.Background(), 2, model.Page{Limit: 50})

	suite.Require().NoError(err)
	suite.Len(results, 2)
	suite.Equal("Heat", results[0].Title)
	suite.Empty(results[0].PickSlugs())
}

func (suite *FavoriteTestSuite) TestIsFavorite_CountsRow() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "favorites" WHERE user_id = $1 AND movie_id = $2`)).
		WithArgs(2, 8).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	favorite, err := suite.repository.IsFavorite(context.Background(), 2, 8)

	suite.Require().NoError(err)
	suite.True(favorite)
}
