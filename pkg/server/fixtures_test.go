package server_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/MovieCatalog/configs"
	"droscher.com/MovieCatalog/mocks"
	"droscher.com/MovieCatalog/pkg/auth"
	"droscher.com/MovieCatalog/pkg/catalog"
	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

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

type repositoryMocks struct {
	movies    *mocks.MovieRepository
	picks     *mocks.PickRepository
	reviews   *mocks.ReviewRepository
	favorites *mocks.FavoriteRepository
}

func newCatalog(t *testing.T, logger *zap.Logger) (*catalog.Catalog, repositoryMocks) {
	repos := repositoryMocks{
		movies:    mocks.NewMovieRepository(t),
		picks:     mocks.NewPickRepository(t),
		reviews:   mocks.NewReviewRepository(t),
		favorites: mocks.NewFavoriteRepository(t),
	}

	c, err := catalog.New(catalog.Repositories{
		Movies:    repos.movies,
		Picks:     repos.picks,
		Reviews:   repos.reviews,
		Favorites: repos.favorites,
	}, testLimits(), logger)
	require.NoError(t, err)

	return c, repos
}

func adminUser() *model.User {
	return &model.User{Model: gorm.Model{ID: 1}, Username: "admin", Roles: []model.Role{{Name: model.AdminRole}}}
}

func memberUser() *model.User {
	return &model.User{Model: gorm.Model{ID: 2}, Username: "ripley"}
}

func asUser(user *model.User) context.Context {
	return context.WithValue(context.Background(), auth.UserKey{}, user)
}

func errNotFound() error {
	return fmt.Errorf("%w: movie 404", repository.ErrNotFound)
}
