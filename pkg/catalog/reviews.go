package catalog

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

type ReviewInput struct {
	MovieID    uint `validate:"required"`
	AuthorID   *uint
	AuthorName *string
	Score      float64 `validate:"score"`
	Text       string  `validate:"notblank"`
}

type reviewUpdateRules struct {
	Score *float64 `validate:"omitnil,score"`
	Text  *string  `validate:"omitnil,notblank"`
}

// ReviewLedger records reviews. Every write refreshes the movie rating before it returns.
type ReviewLedger struct {
	reviews   repository.ReviewRepository
	validator *Validator
	logger    *zap.Logger
}

func NewReviewLedger(reviews repository.ReviewRepository, validator *Validator, logger *zap.Logger) *ReviewLedger {
	return &ReviewLedger{reviews: reviews, validator: validator, logger: logger}
}

// Create stores the review. The returned review carries its movie with the refreshed rating.
func (l *ReviewLedger) Create(ctx context.Context, input ReviewInput) (*model.Review, error) {
	input.AuthorName = trimmed(input.AuthorName)

	if err := l.validator.Struct(input); err != nil {
		return nil, err
	}

	review, err := l.reviews.AddReview(ctx, model.Review{
		MovieID:    input.MovieID,
		AuthorID:   input.AuthorID,
		AuthorName: input.AuthorName,
		Score:      input.Score,
		Text:       input.Text,
	})
	if err != nil {
		return nil, err
	}

	l.logRating("review created", review.MovieID, review.Movie)

	return review, nil
}

// Update changes the supplied fields. Whether the caller may do so is decided by the caller.
func (l *ReviewLedger) Update(ctx context.Context, reviewID uint, update model.ReviewUpdate) (*model.Review, error) {
	update.AuthorName = trimmed(update.AuthorName)

	if err := l.validator.Struct(reviewUpdateRules{Score: update.Score, Text: update.Text}); err != nil {
		return nil, err
	}

	review, err := l.reviews.UpdateReview(ctx, reviewID, update)
	if err != nil {
		return nil, err
	}

	l.logRating("review updated", review.MovieID, review.Movie)

	return review, nil
}

func (l *ReviewLedger) Delete(ctx context.Context, reviewID uint) (bool, error) {
	movie, err := l.reviews.DeleteReview(ctx, reviewID)
	if err != nil {
		return false, err
	}

	l.logRating("review deleted", movie.ID, movie)

	return true, nil
}

func (l *ReviewLedger) Get(ctx context.Context, reviewID uint) (*model.Review, error) {
	return l.reviews.GetReviewByID(ctx, reviewID)
}

// ListByMovie returns the movie's reviews, newest first.
func (l *ReviewLedger) ListByMovie(ctx context.Context, movieID uint, page model.Page) ([]*model.Review, error) {
	return l.reviews.GetReviewsByMovie(ctx, movieID, l.validator.Page(page))
}

func (l *ReviewLedger) ListByAuthor(ctx context.Context, authorID uint, page model.Page) ([]*model.Review, error) {
	return l.reviews.GetReviewsByAuthor(ctx, authorID, l.validator.Page(page))
}

// Recompute rebuilds a movie rating from its reviews.
func (l *ReviewLedger) Recompute(ctx context.Context, movieID uint) (float64, error) {
	return l.reviews.RecomputeRating(ctx, movieID)
}

func (l *ReviewLedger) logRating(message string, movieID uint, movie *model.Movie) {
	fields := []zap.Field{zap.Uint("movie_id", movieID)}
	if movie != nil {
		fields = append(fields, zap.Float64("rating", movie.Rating))
	}

	l.logger.Debug(message, fields...)
}
