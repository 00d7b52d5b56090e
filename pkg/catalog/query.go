package catalog

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

type queryRules struct {
	RatingMin *float64 `validate:"omitnil,score"`
	RatingMax *float64 `validate:"omitnil,score"`
}

// Result is one page of a catalog query.
type Result struct {
	Movies []*model.Movie
	Total  int64
	Page   model.Page
}

// QueryService answers filtered, paginated listings of the catalog ordered by rating, then by
// creation time, newest first.
type QueryService struct {
	movies    repository.MovieRepository
	validator *Validator
	logger    *zap.Logger
}

func NewQueryService(movies repository.MovieRepository, validator *Validator, logger *zap.Logger) *QueryService {
	return &QueryService{movies: movies, validator: validator, logger: logger}
}

// Query applies every supplied filter. A search term below the minimum length matches nothing.
func (q *QueryService) Query(ctx context.Context, filter model.MovieFilter, page model.Page) (*Result, error) {
	page = q.validator.Page(page)

	if err := q.validator.Struct(queryRules{RatingMin: filter.RatingMin, RatingMax: filter.RatingMax}); err != nil {
		return nil, err
	}

	if filter.RatingMin != nil && filter.RatingMax != nil && *filter.RatingMin > *filter.RatingMax {
		return nil, invalid("RatingMin %v is greater than RatingMax %v", *filter.RatingMin, *filter.RatingMax)
	}

	filter.Genre = strings.TrimSpace(filter.Genre)
	filter.PickSlug = strings.TrimSpace(filter.PickSlug)
	filter.Search = strings.TrimSpace(filter.Search)

	if filter.Search != "" && utf8.RuneCountInString(filter.Search) < q.validator.limits.MinSearchLength {
		return &Result{Movies: []*model.Movie{}, Page: page}, nil
	}

	movies, total, err := q.movies.QueryMovies(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	q.logger.Debug("catalog query", zap.Int64("total", total), zap.Int("returned", len(movies)))

	return &Result{Movies: movies, Total: total, Page: page}, nil
}
