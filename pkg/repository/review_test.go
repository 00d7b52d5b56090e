package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

type ReviewTestSuite struct {
	RepositorySuite
}

func TestReviewTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewTestSuite))
}

func (suite *ReviewTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func reviewRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "movie_id", "author_id", "score", "text"})
}

func (suite *ReviewTestSuite) expectLockedMovie(movieID uint, current float64) {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "movies" WHERE "movies"."id" = $1 ORDER BY "movies"."id" LIMIT $2 FOR UPDATE`)).
		WithArgs(movieID, 1).
		WillReturnRows(movieRows().AddRow(movieID, time.Now(), "Drama", 1994, "Drama", current))
}

func (suite *ReviewTestSuite) expectRecompute(movieID uint, want float64, scores ...float64) {
	rows := sqlmock.NewRows([]string{"score"})
	for _, score := range scores {
		rows.AddRow(score)
	}

	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT "score" FROM "reviews" WHERE movie_id = $1`)).
		WithArgs(movieID).
		WillReturnRows(rows)
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "movies" SET "rating"=$1 WHERE id = $2`)).
		WithArgs(want, movieID).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func (suite *ReviewTestSuite) TestAddReview_RecomputesRatingInTransaction() {
	suite.mock.ExpectBegin()
	suite.expectLockedMovie(10, 9.0)
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "reviews" ("created_at","updated_at","movie_id","author_id","author_name","score","text") VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 10, 3, nil, 7.0, "Solid").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	suite.expectRecompute(10, 8.0, 9, 7)
	suite.mock.ExpectCommit()

	result, err := suite.repository.AddReview(context.Background(), model.Review{
		MovieID:  10,
		AuthorID: pointy.Uint(3),
		Score:    7,
		Text:     "Solid",
	})

	suite.Require().NoError(err)
	suite.Equal(uint(21), result.ID)
	suite.Require().NotNil(result.Movie)
	suite.InDelta(8.0, result.Movie.Rating, 0.001)
}

func (suite *ReviewTestSuite) TestAddReview_UnknownMovieRollsBack() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT \* FROM "movies" (.+) FOR UPDATE`).
		WithArgs(10, 1).
		WillReturnError(gorm.ErrRecordNotFound)
	suite.mock.ExpectRollback()

	result, err := suite.repository.AddReview(context.Background(), model.Review{MovieID: 10, Score: 7, Text: "Solid"})

	suite.Nil(result)
	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.EqualError(err, "not found: movie 10")
}

func (suite *ReviewTestSuite) TestAddReview_FailedRecomputeRollsBack() {
	suite.mock.ExpectBegin()
	suite.expectLockedMovie(10, 0)
	suite.mock.ExpectQuery(`^INSERT INTO "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	suite.mock.ExpectQuery(`^SELECT "score" FROM "reviews"`).
		WillReturnError(gorm.ErrInvalidTransaction)
	suite.mock.ExpectRollback()

	result, err := suite.repository.AddReview(context.Background(), model.Review{MovieID: 10, Score: 7, Text: "Solid"})

	suite.Nil(result)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *ReviewTestSuite) TestUpdateReview_RecomputesWithNewScore() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reviews" WHERE "reviews"."id" = $1 ORDER BY "reviews"."id" LIMIT $2`)).
		WithArgs(21, 1).
		WillReturnRows(reviewRows().AddRow(21, time.Now(), 10, 3, 7.0, "Solid"))
	suite.expectLockedMovie(10, 8.0)
	suite.mock.ExpectExec(`^UPDATE "reviews" SET "score"=\$1,"updated_at"=\$2 WHERE (.+)`).
		WithArgs(5.0, sqlmock.AnyArg(), 21).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.expectRecompute(10, 7.0, 9, 5)
	suite.mock.ExpectCommit()

	result, err := suite.repository.UpdateReview(context.Background(), 21, model.ReviewUpdate{Score: pointy.Float64(5)})

	suite.Require().NoError(err)
	suite.InDelta(5.0, result.Score, 0.001)
	suite.Equal("Solid", result.Text)
	suite.InDelta(7.0, result.Movie.Rating, 0.001)
}

func (suite *ReviewTestSuite) TestUpdateReview_NotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT \* FROM "reviews"`).
		WithArgs(21, 1).
		WillReturnError(gorm.ErrRecordNotFound)
	suite.mock.ExpectRollback()

	result, err := suite.repository.UpdateReview(context.Background(), 21, model.ReviewUpdate{Score: pointy.Float64(5)})

	suite.Nil(result)
	suite.EqualError(err, "not found: review 21")
}

func (suite *ReviewTestSuite) TestDeleteReview_SurvivingScoreBecomesRating() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT \* FROM "reviews"`).
		WithArgs(22, 1).
		WillReturnRows(reviewRows().AddRow(22, time.Now(), 10, 4, 9.0, "Great"))
	suite.expectLockedMovie(10, 8.0)
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "reviews" WHERE "reviews"."id" = $1`)).
		WithArgs(22).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.expectRecompute(10, 7.0, 7)
	suite.mock.ExpectCommit()

	movie, err := suite.repository.DeleteReview(context.Background(), 22)

	suite.Require().NoError(err)
	suite.Equal(uint(10), movie.ID)
	suite.InDelta(7.0, movie.Rating, 0.001)
}

func (suite *ReviewTestSuite) TestDeleteReview_LastReviewResetsRating() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT \* FROM "reviews"`).
		WithArgs(22, 1).
		WillReturnRows(reviewRows().AddRow(22, time.Now(), 10, 4, 9.0, "Great"))
	suite.expectLockedMovie(10, 9.0)
	suite.mock.ExpectExec(`^DELETE FROM "reviews"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.expectRecompute(10, 0.0)
	suite.mock.ExpectCommit()

	movie, err := suite.repository.DeleteReview(context.Background(), 22)

	suite.Require().NoError(err)
	suite.InDelta(0.0, movie.Rating, 0.001)
}

func (suite *ReviewTestSuite) TestRecomputeRating_StoresRoundedMean() {
	suite.mock.ExpectBegin()
	suite.expectLockedMovie(10, 0)
	suite.expectRecompute(10, 7.7, 7, 8, 8)
	suite.mock.ExpectCommit()

	value, err := suite.repository.RecomputeRating(context.Background(), 10)

	suite.Require().NoError(err)
	suite.InDelta(7.7, value, 0.001)
}

func (suite *ReviewTestSuite) TestRecomputeRating_TiesRoundToEven() {
	suite.mock.ExpectBegin()
	suite.expectLockedMovie(10, 0)
	suite.expectRecompute(10, 8.2, 8, 8, 8, 9)
	suite.mock.ExpectCommit()

	value, err := suite.repository.RecomputeRating(context.Background(), 10)

	suite.Require().NoError(err)
	suite.InDelta(8.2, value, 0.001)
}

func (suite *ReviewTestSuite) TestGetReviewsByMovie_NewestFirst() {
	suite.mock.ExpectQuery(`^SELECT "id" FROM "movies"`).
		WithArgs(10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reviews" WHERE reviews.movie_id = $1 ORDER BY reviews.created_at DESC,reviews.id DESC LIMIT $2 OFFSET $3`)).
		WithArgs(10, 5, 5).
		WillReturnRows(reviewRows().
			AddRow(23, time.Now(), 10, 3, 6.0, "Fine").
			AddRow(21, time.Now().Add(-time.Hour), 10, 4, 9.0, "Great"))

	results, err := suite.repository.GetReviewsByMovie(context.Background(), 10, model.Page{Skip: 5, Limit: 5})

	suite.Require().NoError(err)
	suite.Len(results, 2)
	suite.Equal(uint(23), results[0].ID)
}

func (suite *ReviewTestSuite) TestGetReviewsByMovie_UnknownMovie() {
	suite.mock.ExpectQuery(`^SELECT "id" FROM "movies"`).
		WithArgs(10, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	results, err := suite.repository.GetReviewsByMovie(context.Background(), 10, model.Page{Limit: 5})

	suite.Nil(results)
	suite.ErrorIs(err, repository.ErrNotFound)
}

func (suite *ReviewTestSuite) TestGetReviewsByAuthor_JoinsMovie() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "reviews" LEFT JOIN "movies" "Movie" ON "reviews"."movie_id" = "Movie"."id" WHERE reviews.author_id = \$1 ORDER BY reviews.created_at DESC,reviews.id DESC LIMIT \$2`).
		WithArgs(3, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "movie_id", "author_id", "score", "text", "Movie__id", "Movie__title"}).
			AddRow(21, 10, 3, 7.0, "Solid", 10, "Heat"))

	results, err := suite.repository.GetReviewsByAuthor(context.Background(), 3, model.Page{Limit: 20})

	suite.Require().NoError(err)
	suite.Len(results, 1)
	suite.Require().NotNil(results[0].Movie)
	suite.Equal("Heat", results[0].Movie.Title)
}
