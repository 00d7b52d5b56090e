package apiv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"

	v1 "droscher.com/MovieCatalog/pkg/server/api/v1"
)

// MovieServiceName is the fully-qualified name of the MovieService service.
const MovieServiceName = "catalog.v1.MovieService"

const (
	MovieServiceListMoviesProcedure          = "/catalog.v1.MovieService/ListMovies"
	MovieServiceGetMovieProcedure            = "/catalog.v1.MovieService/GetMovie"
	MovieServiceSearchMoviesProcedure        = "/catalog.v1.MovieService/SearchMovies"
	MovieServiceCreateMovieProcedure         = "/catalog.v1.MovieService/CreateMovie"
	MovieServiceUpdateMovieProcedure         = "/catalog.v1.MovieService/UpdateMovie"
	MovieServiceDeleteMovieProcedure         = "/catalog.v1.MovieService/DeleteMovie"
	MovieServiceGetMovieStatsProcedure       = "/catalog.v1.MovieService/GetMovieStats"
	MovieServiceIncrementMovieViewsProcedure = "/catalog.v1.MovieService/IncrementMovieViews"
	MovieServiceFindMovieMetadataProcedure   = "/catalog.v1.MovieService/FindMovieMetadata"
	MovieServiceImportMoviesProcedure        = "/catalog.v1.MovieService/ImportMovies"
)

// MovieServiceClient is a client for the catalog.v1.MovieService service.
type MovieServiceClient interface {
	ListMovies(context.Context, *connect.Request[v1.ListMoviesRequest]) (*connect.Response[v1.ListMoviesResponse], error)
	GetMovie(context.Context, *connect.Request[v1.GetMovieRequest]) (*connect.Response[v1.GetMovieResponse], error)
	SearchMovies(context.Context, *connect.Request[v1.SearchMoviesRequest]) (*connect.Response[v1.SearchMoviesResponse], error)
	CreateMovie(context.Context, *connect.Request[v1.CreateMovieRequest]) (*connect.Response[v1.CreateMovieResponse], error)
	UpdateMovie(context.Context, *connect.Request[v1.UpdateMovieRequest]) (*connect.Response[v1.UpdateMovieResponse], error)
	DeleteMovie(context.Context, *connect.Request[v1.DeleteMovieRequest]) (*connect.Response[v1.DeleteMovieResponse], error)
	GetMovieStats(context.Context, *connect.Request[v1.GetMovieStatsRequest]) (*connect.Response[v1.GetMovieStatsResponse], error)
	IncrementMovieViews(context.Context, *connect.Request[v1.IncrementMovieViewsRequest]) (*connect.Response[v1.IncrementMovieViewsResponse], error)
	FindMovieMetadata(context.Context, *connect.Request[v1.FindMovieMetadataRequest]) (*connect.Response[v1.FindMovieMetadataResponse], error)
	ImportMovies(context.Context, *connect.Request[v1.ImportMoviesRequest]) (*connect.Response[v1.ImportMoviesResponse], error)
}

// NewMovieServiceClient constructs a client for the catalog.v1.MovieService service. The JSON codec is used unless
// another codec option is supplied.
func NewMovieServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MovieServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &movieServiceClient{
		listMovies: connect.NewClient[v1.ListMoviesRequest, v1.ListMoviesResponse](
			httpClient,
			baseURL+MovieServiceListMoviesProcedure,
			opts...,
		),
		getMovie: connect.NewClient[v1.GetMovieRequest, v1.GetMovieResponse](
			httpClient,
			baseURL+MovieServiceGetMovieProcedure,
			opts...,
		),
		searchMovies: connect.NewClient[v1.SearchMoviesRequest, v1.SearchMoviesResponse](
			httpClient,
			baseURL+MovieServiceSearchMoviesProcedure,
			opts...,
		),
		createMovie: connect.NewClient[v1.CreateMovieRequest, v1.CreateMovieResponse](
			httpClient,
			baseURL+MovieServiceCreateMovieProcedure,
			opts...,
		),
		updateMovie: connect.NewClient[v1.UpdateMovieRequest, v1.UpdateMovieResponse](
			httpClient,
			baseURL+MovieServiceUpdateMovieProcedure,
			opts...,
		),
		deleteMovie: connect.NewClient[v1.DeleteMovieRequest, v1.DeleteMovieResponse](
			httpClient,
			baseURL+MovieServiceDeleteMovieProcedure,
			opts...,
		),
		getMovieStats: connect.NewClient[v1.GetMovieStatsRequest, v1.GetMovieStatsResponse](
			httpClient,
			baseURL+MovieServiceGetMovieStatsProcedure,
			opts...,
		),
		incrementMovieViews: connect.NewClient[v1.IncrementMovieViewsRequest, v1.IncrementMovieViewsResponse](
			httpClient,
			baseURL+MovieServiceIncrementMovieViewsProcedure,
			opts...,
		),
		findMovieMetadata: connect.NewClient[v1.FindMovieMetadataRequest, v1.FindMovieMetadataResponse](
			httpClient,
			baseURL+MovieServiceFindMovieMetadataProcedure,
			opts...,
		),
		importMovies: connect.NewClient[v1.ImportMoviesRequest, v1.ImportMoviesResponse](
			httpClient,
			baseURL+MovieServiceImportMoviesProcedure,
			opts...,
		),
	}
}

type movieServiceClient struct {
	listMovies          *connect.Client[v1.ListMoviesRequest, v1.ListMoviesResponse]
	getMovie            *connect.Client[v1.GetMovieRequest, v1.GetMovieResponse]
	searchMovies        *connect.Client[v1.SearchMoviesRequest, v1.SearchMoviesResponse]
	createMovie         *connect.Client[v1.CreateMovieRequest, v1.CreateMovieResponse]
	updateMovie         *connect.Client[v1.UpdateMovieRequest, v1.UpdateMovieResponse]
	deleteMovie         *connect.Client[v1.DeleteMovieRequest, v1.DeleteMovieResponse]
	getMovieStats       *connect.Client[v1.GetMovieStatsRequest, v1.GetMovieStatsResponse]
	incrementMovieViews *connect.Client[v1.IncrementMovieViewsRequest, v1.IncrementMovieViewsResponse]
	findMovieMetadata   *connect.Client[v1.FindMovieMetadataRequest, v1.FindMovieMetadataResponse]
	importMovies        *connect.Client[v1.ImportMoviesRequest, v1.ImportMoviesResponse]
}

func (c *movieServiceClient) ListMovies(ctx context.Context, req *connect.Request[v1.ListMoviesRequest]) (*connect.Response[v1.ListMoviesResponse], error) {
	return c.listMovies.CallUnary(ctx, req)
}

func (c *movieServiceClient) GetMovie(ctx context.Context, req *connect.Request[v1.GetMovieRequest]) (*connect.Response[v1.GetMovieResponse], error) {
	return c.getMovie.CallUnary(ctx, req)
}

func (c *movieServiceClient) SearchMovies(ctx context.Context, req *connect.Request[v1.SearchMoviesRequest]) (*connect.Response[v1.SearchMoviesResponse], error) {
	return c.searchMovies.CallUnary(ctx, req)
}

func (c *movieServiceClient) CreateMovie(ctx context.Context, req *connect.Request[v1.CreateMovieRequest]) (*connect.Response[v1.CreateMovieResponse], error) {
	return c.createMovie.CallUnary(ctx, req)
}

func (c *movieServiceClient) UpdateMovie(ctx context.Context, req *connect.Request[v1.UpdateMovieRequest]) (*connect.Response[v1.UpdateMovieResponse], error) {
	return c.updateMovie.CallUnary(ctx, req)
}

func (c *movieServiceClient) DeleteMovie(ctx context.Context, req *connect.Request[v1.DeleteMovieRequest]) (*connect.Response[v1.DeleteMovieResponse], error) {
	return c.deleteMovie.CallUnary(ctx, req)
}

func (c *movieServiceClient) GetMovieStats(ctx context.Context, req *connect.Request[v1.GetMovieStatsRequest]) (*connect.Response[v1.GetMovieStatsResponse], error) {
	return c.getMovieStats.CallUnary(ctx, req)
}

func (c *movieServiceClient) IncrementMovieViews(ctx context.Context, req *connect.Request[v1.IncrementMovieViewsRequest]) (*connect.Response[v1.IncrementMovieViewsResponse], error) {
	return c.incrementMovieViews.CallUnary(ctx, req)
}

func (c *movieServiceClient) FindMovieMetadata(ctx context.Context, req *connect.Request[v1.FindMovieMetadataRequest]) (*connect.Response[v1.FindMovieMetadataResponse], error) {
	return c.findMovieMetadata.CallUnary(ctx, req)
}

func (c *movieServiceClient) ImportMovies(ctx context.Context, req *connect.Request[v1.ImportMoviesRequest]) (*connect.Response[v1.ImportMoviesResponse], error) {
	return c.importMovies.CallUnary(ctx, req)
}

// MovieServiceHandler is an implementation of the catalog.v1.MovieService service.
type MovieServiceHandler interface {
	ListMovies(context.Context, *connect.Request[v1.ListMoviesRequest]) (*connect.Response[v1.ListMoviesResponse], error)
	GetMovie(context.Context, *connect.Request[v1.GetMovieRequest]) (*connect.Response[v1.GetMovieResponse], error)
	SearchMovies(context.Context, *connect.Request[v1.SearchMoviesRequest]) (*connect.Response[v1.SearchMoviesResponse], error)
	CreateMovie(context.Context, *connect.Request[v1.CreateMovieRequest]) (*connect.Response[v1.CreateMovieResponse], error)
	UpdateMovie(context.Context, *connect.Request[v1.UpdateMovieRequest]) (*connect.Response[v1.UpdateMovieResponse], error)
	DeleteMovie(context.Context, *connect.Request[v1.DeleteMovieRequest]) (*connect.Response[v1.DeleteMovieResponse], error)
	GetMovieStats(context.Context, *connect.Request[v1.GetMovieStatsRequest]) (*connect.Response[v1.GetMovieStatsResponse], error)
	IncrementMovieViews(context.Context, *connect.Request[v1.IncrementMovieViewsRequest]) (*connect.Response[v1.IncrementMovieViewsResponse], error)
	FindMovieMetadata(context.Context, *connect.Request[v1.FindMovieMetadataRequest]) (*connect.Response[v1.FindMovieMetadataResponse], error)
	ImportMovies(context.Context, *connect.Request[v1.ImportMoviesRequest]) (*connect.Response[v1.ImportMoviesResponse], error)
}

// NewMovieServiceHandler builds an HTTP handler from the service implementation. It returns the path on
// which to mount the handler and the handler itself.
func NewMovieServiceHandler(svc MovieServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(MovieServiceListMoviesProcedure, connect.NewUnaryHandler(
		MovieServiceListMoviesProcedure,
		svc.ListMovies,
		opts...,
	))
	mux.Handle(MovieServiceGetMovieProcedure, connect.NewUnaryHandler(
		MovieServiceGetMovieProcedure,
		svc.GetMovie,
		opts...,
	))
	mux.Handle(MovieServiceSearchMoviesProcedure, connect.NewUnaryHandler(
		MovieServiceSearchMoviesProcedure,
		svc.SearchMovies,
		opts...,
	))
	mux.Handle(MovieServiceCreateMovieProcedure, connect.NewUnaryHandler(
		MovieServiceCreateMovieProcedure,
		svc.CreateMovie,
		opts...,
	))
	mux.Handle(MovieServiceUpdateMovieProcedure, connect.NewUnaryHandler(
		MovieServiceUpdateMovieProcedure,
		svc.UpdateMovie,
		opts...,
	))
	mux.Handle(MovieServiceDeleteMovieProcedure, connect.NewUnaryHandler(
		MovieServiceDeleteMovieProcedure,
		svc.DeleteMovie,
		opts...,
	))
	mux.Handle(MovieServiceGetMovieStatsProcedure, connect.NewUnaryHandler(
		MovieServiceGetMovieStatsProcedure,
		svc.GetMovieStats,
		opts...,
	))
	mux.Handle(MovieServiceIncrementMovieViewsProcedure, connect.NewUnaryHandler(
		MovieServiceIncrementMovieViewsProcedure,
		svc.IncrementMovieViews,
		opts...,
	))
	mux.Handle(MovieServiceFindMovieMetadataProcedure, connect.NewUnaryHandler(
		MovieServiceFindMovieMetadataProcedure,
		svc.FindMovieMetadata,
		opts...,
	))
	mux.Handle(MovieServiceImportMoviesProcedure, connect.NewUnaryHandler(
		MovieServiceImportMoviesProcedure,
		svc.ImportMovies,
		opts...,
	))

	return "/catalog.v1.MovieService/", mux
}

// UnimplementedMovieServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedMovieServiceHandler struct{}

func (UnimplementedMovieServiceHandler) ListMovies(context.Context, *connect.Request[v1.ListMoviesRequest]) (*connect.Response[v1.ListMoviesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.MovieService.ListMovies is not implemented"))
}

func (UnimplementedMovieServiceHandler) GetMovie(context.Context, *connect.Request[v1.GetMovieRequest]) (*connect.Response[v1.GetMovieResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.MovieService.GetMovie is not implemented"))
}

func (UnimplementedMovieServiceHandler) SearchMovies(context.Context, *connect.Request[v1.SearchMoviesRequest]) (*connect.Response[v1.SearchMoviesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.MovieService.SearchMovies is not implemented"))
}

func (UnimplementedMovieServiceHandler) CreateMovie(context.Context, *connect.Request[v1.CreateMovieRequest]) (*connect.Response[v1.CreateMovieResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.MovieService.CreateMovie is not implemented"))
}

func (UnimplementedMovieServiceHandler) UpdateMovie(context.Context, *connect.Request[v1.UpdateMovieRequest]) (*connect.Response[v1.UpdateMovieResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.MovieService.UpdateMovie is not implemented"))
}

func (UnimplementedMovieServiceHandler) DeleteMovie(context.Context, *connect.Request[v1.DeleteMovieRequest]) (*connect.Response[v1.DeleteMovieResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.MovieService.DeleteMovie is not implemented"))
}

func (UnimplementedMovieServiceHandler) GetMovieStats(context.Context, *connect.Request[v1.GetMovieStatsRequest]) (*connect.Response[v1.GetMovieStatsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.MovieService.GetMovieStats is not implemented"))
}

func (UnimplementedMovieServiceHandler) IncrementMovieViews(context.Context, *connect.Request[v1.IncrementMovieViewsRequest]) (*connect.Response[v1.IncrementMovieViewsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.MovieService.IncrementMovieViews is not implemented"))
}

func (UnimplementedMovieServiceHandler) FindMovieMetadata(context.Context, *connect.Request[v1.FindMovieMetadataRequest]) (*connect.Response[v1.FindMovieMetadataResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.MovieService.FindMovieMetadata is not implemented"))
}

func (UnimplementedMovieServiceHandler) ImportMovies(context.Context, *connect.Request[v1.ImportMoviesRequest]) (*connect.Response[v1.ImportMoviesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.MovieService.ImportMovies is not implemented"))
}
