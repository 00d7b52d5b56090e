package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/MovieCatalog/configs"
	"droscher.com/MovieCatalog/mocks"
	"droscher.com/MovieCatalog/pkg/catalog"
	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

// CatalogSuite builds every component over repository mocks.
type CatalogSuite struct {
	suite.Suite
	movieRepo    *mocks.MovieRepository
	pickRepo     *mocks.PickRepository
	reviewRepo   *mocks.ReviewRepository
	favoriteRepo *mocks.FavoriteRepository
	catalog      *catalog.Catalog
	observedLogs *observer.ObservedLogs
}

func testLimits() configs.Catalog {
	return configs.Catalog{
		DefaultPageSize: 100,
		MaxPageSize:     500,
		MinSearchLength: 2,
		MinScore:        0,
		MaxScore:        10,
		MinYear:         1890,
		MaxYearsAhead:   5,
	}
}

func (suite *CatalogSuite) SetupTest() {
	suite.movieRepo = mocks.NewMovieRepository(suite.T())
	suite.pickRepo = mocks.NewPickRepository(suite.T())
	suite.reviewRepo = mocks.NewReviewRepository(suite.T())
	suite.favoriteRepo = mocks.NewFavoriteRepository(suite.T())

	observedZapCore, observedLogs := observer.New(zap.DebugLevel)
	suite.observedLogs = observedLogs

	var err error

	suite.catalog, err = catalog.New(catalog.Repositories{
		Movies:    suite.movieRepo,
		Picks:     suite.pickRepo,
		Reviews:   suite.reviewRepo,
		Favorites: suite.favoriteRepo,
	}, testLimits(), zap.New(observedZapCore))
	suite.Require().NoError(err)
}

type ValidatorTestSuite struct {
	suite.Suite
	validator *catalog.Validator
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (suite *ValidatorTestSuite) SetupTest() {
	var err error

	suite.validator, err = catalog.NewValidator(testLimits())
	suite.Require().NoError(err)
}

func (suite *ValidatorTestSuite) TestPage() {
	suite.Equal(model.Page{Skip: 0, Limit: 100}, suite.validator.Page(model.Page{Skip: -4, Limit: 0}))
	suite.Equal(model.Page{Skip: 10, Limit: 100}, suite.validator.Page(model.Page{Skip: 10, Limit: -1}))
	suite.Equal(model.Page{Skip: 0, Limit: 500}, suite.validator.Page(model.Page{Limit: 501}))
	suite.Equal(model.Page{Skip: 3, Limit: 25}, suite.validator.Page(model.Page{Skip: 3, Limit: 25}))
}

func (suite *ValidatorTestSuite) TestStruct_JoinsMessages() {
	err := suite.validator.Struct(catalog.MovieInput{Title: " ", Year: 1700, Genre: "Drama"})

	suite.Require().ErrorIs(err, repository.ErrValidation)
	suite.ErrorContains(err, "Title is required")
	suite.ErrorContains(err, "Year must be between 1890 and")
}

func (suite *ValidatorTestSuite) TestStruct_YearBounds() {
	nextYears := time.Now().Year() + 5

	suite.NoError(suite.validator.Struct(catalog.MovieInput{Title: "Soon", Year: nextYears, Genre: "Drama"}))
	suite.Error(suite.validator.Struct(catalog.MovieInput{Title: "Later", Year: nextYears + 1, Genre: "Drama"}))
	suite.NoError(suite.validator.Struct(catalog.MovieInput{Title: "Early", Year: 1890, Genre: "Drama"}))
}

func (suite *ValidatorTestSuite) TestStruct_ScoreBoundsInclusive() {
	for _, score := range []float64{0, 10, 5.5} {
		suite.NoError(suite.validator.Struct(catalog.ReviewInput{MovieID: 1, Score: score, Text: "ok"}), "score %v", score)
	}

	for _, score := range []float64{-0.1, 10.01} {
		suite.ErrorIs(suite.validator.Struct(catalog.ReviewInput{MovieID: 1, Score: score, Text: "ok"}), repository.ErrValidation, "score %v", score)
	}
}

func (suite *ValidatorTestSuite) TestNewValidator_RegistersCatalogTags() {
	validator, err := catalog.NewValidator(testLimits())
	suite.Require().NoError(err)

	suite.NoError(validator.Struct(catalog.PickInput{Name: "Classics", Slug: "classics"}))

	err = validator.Struct(catalog.PickInput{Name: " ", Slug: "Not A Slug"})
	suite.Require().ErrorIs(err, repository.ErrValidation)
	suite.ErrorContains(err, "Name is required")
	suite.ErrorContains(err, `Slug "Not A Slug" must be lowercase letters and digits`)
}

func (suite *ValidatorTestSuite) TestSlugify() {
	suite.Equal("best-of-2023", catalog.Slugify("Best of 2023!"))
	suite.Equal("space-horror", catalog.Slugify("  Space -- Horror  "))
	suite.Equal("", catalog.Slugify("!!!"))
}
