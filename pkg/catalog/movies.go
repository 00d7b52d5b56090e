package catalog

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/rating"
	"droscher.com/MovieCatalog/pkg/repository"
)

// MovieInput is a catalog entry submission.
type MovieInput struct {
	Title     string   `validate:"notblank"`
	Year      int      `validate:"release_year"`
	Genre     string   `validate:"notblank"`
	Rating    *float64 `validate:"omitnil,score"`
	PosterURL *string
	Overview  *string
}

type movieUpdateRules struct {
	Title *string `validate:"omitnil,notblank"`
	Year  *int    `validate:"omitnil,release_year"`
	Genre *string `validate:"omitnil,notblank"`
}

type MovieStore struct {
	movies    repository.MovieRepository
	validator *Validator
	logger    *zap.Logger
}

func NewMovieStore(movies repository.MovieRepository, validator *Validator, logger *zap.Logger) *MovieStore {
	return &MovieStore{movies: movies, validator: validator, logger: logger}
}

// Create adds a movie. A supplied rating is range checked but the stored rating always starts at
// the default, since only reviews move it.
func (s *MovieStore) Create(ctx context.Context, input MovieInput, createdBy *uint) (*model.Movie, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Genre = strings.TrimSpace(input.Genre)

	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	movie, err := s.movies.AddMovie(ctx, model.Movie{
		Title:     input.Title,
		Year:      input.Year,
		Genre:     input.Genre,
		Rating:    rating.Default,
		PosterURL: input.PosterURL,
		Overview:  input.Overview,
		CreatedBy: createdBy,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("movie created", zap.Uint("movie_id", movie.ID), zap.String("title", movie.Title))

	return movie, nil
}

func (s *MovieStore) Get(ctx context.Context, movieID uint) (*model.Movie, error) {
	return s.movies.GetMovieByID(ctx, movieID)
}

// Update changes the supplied fields only.
func (s *MovieStore) Update(ctx context.Context, movieID uint, update model.MovieUpdate) (*model.Movie, error) {
	update.Title = trimmed(update.Title)
	update.Genre = trimmed(update.Genre)

	rules := movieUpdateRules{Title: update.Title, Year: update.Year, Genre: update.Genre}
	if err := s.validator.Struct(rules); err != nil {
		return nil, err
	}

	return s.movies.UpdateMovie(ctx, movieID, update)
}

// Delete removes the movie with its reviews, pick memberships and favorites.
func (s *MovieStore) Delete(ctx context.Context, movieID uint) (bool, error) {
	if err := s.movies.DeleteMovie(ctx, movieID); err != nil {
		return false, err
	}

	s.logger.Info("movie deleted", zap.Uint("movie_id", movieID))

	return true, nil
}

// Search matches title, overview and genre case-insensitively. Terms shorter than the configured
// minimum return no movies.
func (s *MovieStore) Search(ctx context.Context, query string, page model.Page) ([]*model.Movie, error) {
	term := strings.TrimSpace(query)
	if utf8.RuneCountInString(term) < s.validator.limits.MinSearchLength {
		return []*model.Movie{}, nil
	}

	return s.movies.SearchMovies(ctx, term, s.validator.Page(page))
}

func (s *MovieStore) Stats(ctx context.Context, movieID uint) (*model.MovieStats, error) {
	return s.movies.GetMovieStats(ctx, movieID)
}

// RecordView counts one view of the movie and returns the new total.
func (s *MovieStore) RecordView(ctx context.Context, movieID uint) (int64, error) {
	views, err := s.movies.IncrementViews(ctx, movieID)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("movie viewed", zap.Uint("movie_id", movieID), zap.Int64("views", views))

	return views, nil
}

// FindByTitle looks a movie up by exact title, ignoring case.
func (s *MovieStore) FindByTitle(ctx context.Context, title string) (*model.Movie, error) {
	return s.movies.FindMovieByTitle(ctx, strings.TrimSpace(title))
}
