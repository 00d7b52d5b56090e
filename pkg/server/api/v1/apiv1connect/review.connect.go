package apiv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"

	v1 "droscher.com/MovieCatalog/pkg/server/api/v1"
)

// ReviewServiceName is the fully-qualified name of the ReviewService service.
const ReviewServiceName = "catalog.v1.ReviewService"

const (
	ReviewServiceCreateReviewProcedure      = "/catalog.v1.ReviewService/CreateReview"
	ReviewServiceUpdateReviewProcedure      = "/catalog.v1.ReviewService/UpdateReview"
	ReviewServiceDeleteReviewProcedure      = "/catalog.v1.ReviewService/DeleteReview"
	ReviewServiceGetReviewProcedure         = "/catalog.v1.ReviewService/GetReview"
	ReviewServiceListMovieReviewsProcedure  = "/catalog.v1.ReviewService/ListMovieReviews"
	ReviewServiceListAuthorReviewsProcedure = "/catalog.v1.ReviewService/ListAuthorReviews"
)

// ReviewServiceClient is a client for the catalog.v1.ReviewService service.
type ReviewServiceClient interface {
	CreateReview(context.Context, *connect.Request[v1.CreateReviewRequest]) (*connect.Response[v1.CreateReviewResponse], error)
	UpdateReview(context.Context, *connect.Request[v1.UpdateReviewRequest]) (*connect.Response[v1.UpdateReviewResponse], error)
	DeleteReview(context.Context, *connect.Request[v1.DeleteReviewRequest]) (*connect.Response[v1.DeleteReviewResponse], error)
	GetReview(context.Context, *connect.Request[v1.GetReviewRequest]) (*connect.Response[v1.GetReviewResponse], error)
	ListMovieReviews(context.Context, *connect.Request[v1.ListMovieReviewsRequest]) (*connect.Response[v1.ListMovieReviewsResponse], error)
	ListAuthorReviews(context.Context, *connect.Request[v1.ListAuthorReviewsRequest]) (*connect.Response[v1.ListAuthorReviewsResponse], error)
}

// NewReviewServiceClient constructs a client for the catalog.v1.ReviewService service. The JSON codec is used unless
// another codec option is supplied.
func NewReviewServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReviewServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &reviewServiceClient{
		createReview: connect.NewClient[v1.CreateReviewRequest, v1.CreateReviewResponse](
			httpClient,
			baseURL+ReviewServiceCreateReviewProcedure,
			opts...,
		),
		updateReview: connect.NewClient[v1.UpdateReviewRequest, v1.UpdateReviewResponse](
			httpClient,
			baseURL+ReviewServiceUpdateReviewProcedure,
			opts...,
		),
		deleteReview: connect.NewClient[v1.DeleteReviewRequest, v1.DeleteReviewResponse](
			httpClient,
			baseURL+ReviewServiceDeleteReviewProcedure,
			opts...,
		),
		getReview: connect.NewClient[v1.GetReviewRequest, v1.GetReviewResponse](
			httpClient,
			baseURL+ReviewServiceGetReviewProcedure,
			opts...,
		),
		listMovieReviews: connect.NewClient[v1.ListMovieReviewsRequest, v1.ListMovieReviewsResponse](
			httpClient,
			baseURL+ReviewServiceListMovieReviewsProcedure,
			opts...,
		),
		listAuthorReviews: connect.NewClient[v1.ListAuthorReviewsRequest, v1.ListAuthorReviewsResponse](
			httpClient,
			baseURL+ReviewServiceListAuthorReviewsProcedure,
			opts...,
		),
	}
}

type reviewServiceClient struct {
	createReview      *connect.Client[v1.CreateReviewRequest, v1.CreateReviewResponse]
	updateReview      *connect.Client[v1.UpdateReviewRequest, v1.UpdateReviewResponse]
	deleteReview      *connect.Client[v1.DeleteReviewRequest, v1.DeleteReviewResponse]
	getReview         *connect.Client[v1.GetReviewRequest, v1.GetReviewResponse]
	listMovieReviews  *connect.Client[v1.ListMovieReviewsRequest, v1.ListMovieReviewsResponse]
	listAuthorReviews *connect.Client[v1.ListAuthorReviewsRequest, v1.ListAuthorReviewsResponse]
}

func (c *reviewServiceClient) CreateReview(ctx context.Context, req *connect.Request[v1.CreateReviewRequest]) (*connect.Response[v1.CreateReviewResponse], error) {
	return c.createReview.CallUnary(ctx, req)
}

func (c *reviewServiceClient) UpdateReview(ctx context.Context, req *connect.Request[v1.UpdateReviewRequest]) (*connect.Response[v1.UpdateReviewResponse], error) {
	return c.updateReview.CallUnary(ctx, req)
}

func (c *reviewServiceClient) DeleteReview(ctx context.Context, req *connect.Request[v1.DeleteReviewRequest]) (*connect.Response[v1.DeleteReviewResponse], error) {
	return c.deleteReview.CallUnary(ctx, req)
}

func (c *reviewServiceClient) GetReview(ctx context.Context, req *connect.Request[v1.GetReviewRequest]) (*connect.Response[v1.GetReviewResponse], error) {
	return c.getReview.CallUnary(ctx, req)
}

func (c *reviewServiceClient) ListMovieReviews(ctx context.Context, req *connect.Request[v1.ListMovieReviewsRequest]) (*connect.Response[v1.ListMovieReviewsResponse], error) {
	return c.listMovieReviews.CallUnary(ctx, req)
}

func (c *reviewServiceClient) ListAuthorReviews(ctx context.Context, req *connect.Request[v1.ListAuthorReviewsRequest]) (*connect.Response[v1.ListAuthorReviewsResponse], error) {
	return c.listAuthorReviews.CallUnary(ctx, req)
}

// ReviewServiceHandler is an implementation of the catalog.v1.ReviewService service.
type ReviewServiceHandler interface {
	CreateReview(context.Context, *connect.Request[v1.CreateReviewRequest]) (*connect.Response[v1.CreateReviewResponse], error)
	UpdateReview(context.Context, *connect.Request[v1.UpdateReviewRequest]) (*connect.Response[v1.UpdateReviewResponse], error)
	DeleteReview(context.Context, *connect.Request[v1.DeleteReviewRequest]) (*connect.Response[v1.DeleteReviewResponse], error)
	GetReview(context.Context, *connect.Request[v1.GetReviewRequest]) (*connect.Response[v1.GetReviewResponse], error)
	ListMovieReviews(context.Context, *connect.Request[v1.ListMovieReviewsRequest]) (*connect.Response[v1.ListMovieReviewsResponse], error)
	ListAuthorReviews(context.Context, *connect.Request[v1.ListAuthorReviewsRequest]) (*connect.Response[v1.ListAuthorReviewsResponse], error)
}

// NewReviewServiceHandler builds an HTTP handler from the service implementation. It returns the path on
// which to mount the handler and the handler itself.
func NewReviewServiceHandler(svc ReviewServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ReviewServiceCreateReviewProcedure, connect.NewUnaryHandler(
		ReviewServiceCreateReviewProcedure,
		svc.CreateReview,
		opts...,
	))
	mux.Handle(ReviewServiceUpdateReviewProcedure, connect.NewUnaryHandler(
		ReviewServiceUpdateReviewProcedure,
		svc.UpdateReview,
		opts...,
	))
	mux.Handle(ReviewServiceDeleteReviewProcedure, connect.NewUnaryHandler(
		ReviewServiceDeleteReviewProcedure,
		svc.DeleteReview,
		opts...,
	))
	mux.Handle(ReviewServiceGetReviewProcedure, connect.NewUnaryHandler(
		ReviewServiceGetReviewProcedure,
		svc.GetReview,
		opts...,
	))
	mux.Handle(ReviewServiceListMovieReviewsProcedure, connect.NewUnaryHandler(
		ReviewServiceListMovieReviewsProcedure,
		svc.ListMovieReviews,
		opts...,
	))
	mux.Handle(ReviewServiceListAuthorReviewsProcedure, connect.NewUnaryHandler(
		ReviewServiceListAuthorReviewsProcedure,
		svc.ListAuthorReviews,
		opts...,
	))

	return "/catalog.v1.ReviewService/", mux
}

// UnimplementedReviewServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedReviewServiceHandler struct{}

func (UnimplementedReviewServiceHandler) CreateReview(context.Context, *connect.Request[v1.CreateReviewRequest]) (*connect.Response[v1.CreateReviewResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.ReviewService.CreateReview is not implemented"))
}

func (UnimplementedReviewServiceHandler) UpdateReview(context.Context, *connect.Request[v1.UpdateReviewRequest]) (*connect.Response[v1.UpdateReviewResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.ReviewService.UpdateReview is not implemented"))
}

func (UnimplementedReviewServiceHandler) DeleteReview(context.Context, *connect.Request[v1.DeleteReviewRequest]) (*connect.Response[v1.DeleteReviewResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.ReviewService.DeleteReview is not implemented"))
}

func (UnimplementedReviewServiceHandler) GetReview(context.Context, *connect.Request[v1.GetReviewRequest]) (*connect.Response[v1.GetReviewResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.ReviewService.GetReview is not implemented"))
}

func (UnimplementedReviewServiceHandler) ListMovieReviews(context.Context, *connect.Request[v1.ListMovieReviewsRequest]) (*connect.Response[v1.ListMovieReviewsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.ReviewService.ListMovieReviews is not implemented"))
}

func (UnimplementedReviewServiceHandler) ListAuthorReviews(context.Context, *connect.Request[v1.ListAuthorReviewsRequest]) (*connect.Response[v1.ListAuthorReviewsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.ReviewService.ListAuthorReviews is not implemented"))
}
