package apiv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"

	v1 "droscher.com/MovieCatalog/pkg/server/api/v1"
)

// FavoriteServiceName is the fully-qualified name of the FavoriteService service.
const FavoriteServiceName = "catalog.v1.FavoriteService"

const (
	FavoriteServiceAddFavoriteProcedure    = "/catalog.v1.FavoriteService/AddFavorite"
	FavoriteServiceRemoveFavoriteProcedure = "/catalog.v1.FavoriteService/RemoveFavorite"
	FavoriteServiceListFavoritesProcedure  = "/catalog.v1.FavoriteService/ListFavorites"
	FavoriteServiceIsFavoriteProcedure     = "/catalog.v1.FavoriteService/IsFavorite"
)

// FavoriteServiceClient is a client for the catalog.v1.FavoriteService service.
type FavoriteServiceClient interface {
	AddFavorite(context.Context, *connect.Request[v1.AddFavoriteRequest]) (*connect.Response[v1.AddFavoriteResponse], error)
	RemoveFavorite(context.Context, *connect.Request[v1.RemoveFavoriteRequest]) (*connect.Response[v1.RemoveFavoriteResponse], error)
	ListFavorites(context.Context, *connect.Request[v1.ListFavoritesRequest]) (*connect.Response[v1.ListFavoritesResponse], error)
	IsFavorite(context.Context, *connect.Request[v1.IsFavoriteRequest]) (*connect.Response[v1.IsFavoriteResponse], error)
}

// NewFavoriteServiceClient constructs a client for the catalog.v1.FavoriteService service. The JSON codec is used unless
// another codec option is supplied.
func NewFavoriteServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FavoriteServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &favoriteServiceClient{
		addFavorite: connect.NewClient[v1.AddFavoriteRequest, v1.AddFavoriteResponse](
			httpClient,
			baseURL+FavoriteServiceAddFavoriteProcedure,
			opts...,
		),
		removeFavorite: connect.NewClient[v1.RemoveFavoriteRequest, v1.RemoveFavoriteResponse](
			httpClient,
			baseURL+FavoriteServiceRemoveFavoriteProcedure,
			opts...,
		),
		listFavorites: connect.NewClient[v1.ListFavoritesRequest, v1.ListFavoritesResponse](
			httpClient,
			baseURL+FavoriteServiceListFavoritesProcedure,
			opts...,
		),
		isFavorite: connect.NewClient[v1.IsFavoriteRequest, v1.IsFavoriteResponse](
			httpClient,
			baseURL+FavoriteServiceIsFavoriteProcedure,
			opts...,
		),
	}
}

type favoriteServiceClient struct {
	addFavorite    *connect.Client[v1.AddFavoriteRequest, v1.AddFavoriteResponse]
	removeFavorite *connect.Client[v1.RemoveFavoriteRequest, v1.RemoveFavoriteResponse]
	listFavorites  *connect.Client[v1.ListFavoritesRequest, v1.ListFavoritesResponse]
	isFavorite     *connect.Client[v1.IsFavoriteRequest, v1.IsFavoriteResponse]
}

func (c *favoriteServiceClient) AddFavorite(ctx context.Context, req *connect.Request[v1.AddFavoriteRequest]) (*connect.Response[v1.AddFavoriteResponse], error) {
	return c.addFavorite.CallUnary(ctx, req)
}

func (c *favoriteServiceClient) RemoveFavorite(ctx context.Context, req *connect.Request[v1.RemoveFavoriteRequest]) (*connect.Response[v1.RemoveFavoriteResponse], error) {
	return c.removeFavorite.CallUnary(ctx, req)
}

func (c *favoriteServiceClient) ListFavorites(ctx context.Context, req *connect.Request[v1.ListFavoritesRequest]) (*connect.Response[v1.ListFavoritesResponse], error) {
	return c.listFavorites.CallUnary(ctx, req)
}

func (c *favoriteServiceClient) IsFavorite(ctx context.Context, req *connect.Request[v1.IsFavoriteRequest]) (*connect.Response[v1.IsFavoriteResponse], error) {
	return c.isFavorite.CallUnary(ctx, req)
}

// FavoriteServiceHandler is an implementation of the catalog.v1.FavoriteService service.
type FavoriteServiceHandler interface {
	AddFavorite(context.Context, *connect.Request[v1.AddFavoriteRequest]) (*connect.Response[v1.AddFavoriteResponse], error)
	RemoveFavorite(context.Context, *connect.Request[v1.RemoveFavoriteRequest]) (*connect.Response[v1.RemoveFavoriteResponse], error)
	ListFavorites(context.Context, *connect.Request[v1.ListFavoritesRequest]) (*connect.Response[v1.ListFavoritesResponse], error)
	IsFavorite(context.Context, *connect.Request[v1.IsFavoriteRequest]) (*connect.Response[v1.IsFavoriteResponse], error)
}

// NewFavoriteServiceHandler builds an HTTP handler from the service implementation. It returns the path on
// which to mount the handler and the handler itself.
func NewFavoriteServiceHandler(svc FavoriteServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(FavoriteServiceAddFavoriteProcedure, connect.NewUnaryHandler(
		FavoriteServiceAddFavoriteProcedure,
		svc.AddFavorite,
		opts...,
	))
	mux.Handle(FavoriteServiceRemoveFavoriteProcedure, connect.NewUnaryHandler(
		FavoriteServiceRemoveFavoriteProcedure,
		svc.RemoveFavorite,
		opts...,
	))
	mux.Handle(FavoriteServiceListFavoritesProcedure, connect.NewUnaryHandler(
		FavoriteServiceListFavoritesProcedure,
		svc.ListFavorites,
		opts...,
	))
	mux.Handle(FavoriteServiceIsFavoriteProcedure, connect.NewUnaryHandler(
		FavoriteServiceIsFavoriteProcedure,
		svc.IsFavorite,
		opts...,
	))

	return "/catalog.v1.FavoriteService/", mux
}

// UnimplementedFavoriteServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedFavoriteServiceHandler struct{}

func (UnimplementedFavoriteServiceHandler) AddFavorite(context.Context, *connect.Request[v1.AddFavoriteRequest]) (*connect.Response[v1.AddFavoriteResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.FavoriteService.AddFavorite is not implemented"))
}

func (UnimplementedFavoriteServiceHandler) RemoveFavorite(context.Context, *connect.Request[v1.RemoveFavoriteRequest]) (*connect.Response[v1.RemoveFavoriteResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.FavoriteService.RemoveFavorite is not implemented"))
}

func (UnimplementedFavoriteServiceHandler) ListFavorites(context.Context, *connect.Request[v1.ListFavoritesRequest]) (*connect.Response[v1.ListFavoritesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.FavoriteService.ListFavorites is not implemented"))
}

func (UnimplementedFavoriteServiceHandler) IsFavorite(context.Context, *connect.Request[v1.IsFavoriteRequest]) (*connect.Response[v1.IsFavoriteResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.FavoriteService.IsFavorite is not implemented"))
}
