package server

import (
	"context"
	"fmt"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/auth"
	"droscher.com/MovieCatalog/pkg/catalog"
	"droscher.com/MovieCatalog/pkg/model"
	apiv1 "droscher.com/MovieCatalog/pkg/server/api/v1"
	"droscher.com/MovieCatalog/pkg/server/api/v1/apiv1connect"
	"droscher.com/MovieCatalog/pkg/server/convert"
)

type ReviewServer struct {
	apiv1connect.UnimplementedReviewServiceHandler
	reviews *catalog.ReviewLedger
	logger  *zap.Logger
}

func NewReviewServer(reviews *catalog.ReviewLedger, logger *zap.Logger) *ReviewServer {
	return &ReviewServer{reviews: reviews, logger: logger}
}

func movieRating(review *model.Review) float64 {
	if review.Movie == nil {
		return 0
	}

	return review.Movie.Rating
}

// authorize loads the review and checks the caller may change it.
func (r *ReviewServer) authorize(ctx context.Context, procedure string, reviewID uint) error {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return err
	}

	review, err := r.reviews.Get(ctx, reviewID)
	if err != nil {
		return toConnectError(r.logger, procedure, err)
	}

	if user.IsPrivileged() || (review.AuthorID != nil && *review.AuthorID == user.ID) {
		return nil
	}

	return connect.NewError(connect.CodePermissionDenied, ErrNotAuthor)
}

func (r *ReviewServer) CreateReview(ctx context.Context, request *connect.Request[apiv1.CreateReviewRequest]) (*connect.Response[apiv1.CreateReviewResponse], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	msg := request.Msg

	authorName := msg.AuthorName
	if authorName == nil || *authorName == "" {
		authorName = &user.Username
	}

	review, err := r.reviews.Create(ctx, catalog.ReviewInput{
		MovieID:    uint(msg.MovieID),
		AuthorID:   &user.ID,
		AuthorName: authorName,
		Score:      msg.Score,
		Text:       msg.Text,
	})
	if err != nil {
		return nil, toConnectError(r.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.CreateReviewResponse{
		Review:      convert.ReviewFromModel(review),
		MovieRating: movieRating(review),
	}), nil
}

func (r *ReviewServer) UpdateReview(ctx context.Context, request *connect.Request[apiv1.UpdateReviewRequest]) (*connect.Response[apiv1.UpdateReviewResponse], error) {
	msg := request.Msg

	if err := r.authorize(ctx, request.Spec().Procedure, uint(msg.ReviewID)); err != nil {
		return nil, err
	}

	review, err := r.reviews.Update(ctx, uint(msg.ReviewID), model.ReviewUpdate{Score: msg.Score, Text: msg.Text})
	if err != nil {
		return nil, toConnectError(r.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.UpdateReviewResponse{
		Review:      convert.ReviewFromModel(review),
		MovieRating: movieRating(review),
	}), nil
}

func (r *ReviewServer) DeleteReview(ctx context.Context, request *connect.Request[apiv1.DeleteReviewRequest]) (*connect.Response[apiv1.DeleteReviewResponse], error) {
	reviewID := uint(request.Msg.ReviewID)

	if err := r.authorize(ctx, request.Spec().Procedure, reviewID); err != nil {
		return nil, err
	}

	deleted, err := r.reviews.Delete(ctx, reviewID)
	if err != nil {
		return nil, toConnectError(r.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.DeleteReviewResponse{Deleted: deleted}), nil
}

func (r *ReviewServer) GetReview(ctx context.Context, request *connect.Request[apiv1.GetReviewRequest]) (*connect.Response[apiv1.GetReviewResponse], error) {
	review, err := r.reviews.Get(ctx, uint(request.Msg.ReviewID))
	if err != nil {
		return nil, toConnectError(r.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.GetReviewResponse{Review: convert.ReviewFromModel(review)}), nil
}

func (r *ReviewServer) ListMovieReviews(ctx context.Context, request *connect.Request[apiv1.ListMovieReviewsRequest]) (*connect.Response[apiv1.ListMovieReviewsResponse], error) {
	msg := request.Msg

	reviews, err := r.reviews.ListByMovie(ctx, uint(msg.MovieID), convert.Page(msg.Skip, msg.Limit))
	if err != nil {
		return nil, toConnectError(r.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.ListMovieReviewsResponse{Reviews: convert.ReviewsFromModel(reviews)}), nil
}

func (r *ReviewServer) ListAuthorReviews(ctx context.Context, request *connect.Request[apiv1.ListAuthorReviewsRequest]) (*connect.Response[apiv1.ListAuthorReviewsResponse], error) {
	msg := request.Msg

	var authorID uint

	switch user, found := auth.UserFromContext(ctx); {
	case msg.AuthorID != nil:
		authorID = uint(*msg.AuthorID)
	case found:
		authorID = user.ID
	default:
		return nil, connect.NewError(connect.CodeUnauthenticated,
			fmt.Errorf("%w: authorId is required for anonymous calls", auth.ErrNoIdentity))
	}

	reviews, err := r.reviews.ListByAuthor(ctx, authorID, convert.Page(msg.Skip, msg.Limit))
	if err != nil {
		return nil, toConnectError(r.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.ListAuthorReviewsResponse{Reviews: convert.ReviewsFromModel(reviews)}), nil
}
