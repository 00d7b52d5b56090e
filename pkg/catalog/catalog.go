// Package catalog holds the movie catalog components: the movie store, the pick registry and its
// movie memberships, the review ledger, the favorites index and the catalog query service.
//
// Components validate and normalize their input, then delegate to the repository, which runs every
// multi-statement mutation in a single transaction. Failures are reported with the repository
// sentinels ErrNotFound, ErrConflict and ErrValidation.
package catalog

import (
	"go.uber.org/zap"

	"droscher.com/MovieCatalog/configs"
	"droscher.com/MovieCatalog/pkg/repository"
)

// Repositories groups the storage the catalog components need.
type Repositories struct {
	Movies    repository.MovieRepository
	Picks     repository.PickRepository
	Reviews   repository.ReviewRepository
	Favorites repository.FavoriteRepository
}

// Catalog wires every component over one set of repositories and limits.
type Catalog struct {
	Movies    *MovieStore
	Picks     *PickRegistry
	Reviews   *ReviewLedger
	Favorites *FavoritesIndex
	Query     *QueryService
}

func New(repos Repositories, limits configs.Catalog, logger *zap.Logger) (*Catalog, error) {
	validator, err := NewValidator(limits)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Movies:    NewMovieStore(repos.Movies, validator, logger),
		Picks:     NewPickRegistry(repos.Picks, validator, logger),
		Reviews:   NewReviewLedger(repos.Reviews, validator, logger),
		Favorites: NewFavoritesIndex(repos.Favorites, validator, logger),
		Query:     NewQueryService(repos.Movies, validator, logger),
	}, nil
}
