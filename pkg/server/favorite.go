package server

import (
	"context"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/auth"
	"droscher.com/MovieCatalog/pkg/catalog"
	apiv1 "droscher.com/MovieCatalog/pkg/server/api/v1"
	"droscher.com/MovieCatalog/pkg/server/api/v1/apiv1connect"
	"droscher.com/MovieCatalog/pkg/server/convert"
)

// FavoriteServer serves the calling user's own favorites only.
type FavoriteServer struct {
	apiv1connect.UnimplementedFavoriteServiceHandler
	favorites *catalog.FavoritesIndex
	logger    *zap.Logger
}

func NewFavoriteServer(favorites *catalog.FavoritesIndex, logger *zap.Logger) *FavoriteServer {
	return &FavoriteServer{favorites: favorites, logger: logger}
}

func (f *FavoriteServer) AddFavorite(ctx context.Context, request *connect.Request[apiv1.AddFavoriteRequest]) (*connect.Response[apiv1.AddFavoriteResponse], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	favorite, err := f.favorites.Add(ctx, user.ID, uint(request.Msg.MovieID))
	if err != nil {
		return nil, toConnectError(f.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.AddFavoriteResponse{Favorite: convert.FavoriteFromModel(favorite)}), nil
}

func (f *FavoriteServer) RemoveFavorite(ctx context.Context, request *connect.Request[apiv1.RemoveFavoriteRequest]) (*connect.Response[apiv1.RemoveFavoriteResponse], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	removed, err := f.favorites.Remove(ctx, user.ID, uint(request.Msg.MovieID))
	if err != nil {
		return nil, toConnectError(f.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.RemoveFavoriteResponse{Removed: removed}), nil
}

func (f *FavoriteServer) ListFavorites(ctx context.Context, request *connect.Request[apiv1.ListFavoritesRequest]) (*connect.Response[apiv1.ListFavoritesResponse], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	movies, err := f.favorites.List(ctx, user.ID, convert.Page(request.Msg.Skip, request.Msg.Limit))
	if err != nil {
		return nil, toConnectError(f.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.ListFavoritesResponse{Movies: convert.MoviesFromModel(movies)}), nil
}

func (f *FavoriteServer) IsFavorite(ctx context.Context, request *connect.Request[apiv1.IsFavoriteRequest]) (*connect.Response[apiv1.IsFavoriteResponse], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	favorite, err := f.favorites.IsFavorite(ctx, user.ID, uint(request.Msg.MovieID))
	if err != nil {
		return nil, toConnectError(f.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.IsFavoriteResponse{Favorite: favorite}), nil
}
