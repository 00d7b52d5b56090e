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

type PickServer struct {
	apiv1connect.UnimplementedPickServiceHandler
	picks  *catalog.PickRegistry
	logger *zap.Logger
}

func NewPickServer(picks *catalog.PickRegistry, logger *zap.Logger) *PickServer {
	return &PickServer{picks: picks, logger: logger}
}

func (p *PickServer) ListPicks(ctx context.Context, request *connect.Request[apiv1.ListPicksRequest]) (*connect.Response[apiv1.ListPicksResponse], error) {
	picks, err := p.picks.List(ctx)
	if err != nil {
		return nil, toConnectError(p.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.ListPicksResponse{Picks: convert.PicksFromModel(picks)}), nil
}

func (p *PickServer) GetPick(ctx context.Context, request *connect.Request[apiv1.GetPickRequest]) (*connect.Response[apiv1.GetPickResponse], error) {
	pick, err := p.picks.GetBySlug(ctx, request.Msg.Slug)
	if err != nil {
		return nil, toConnectError(p.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.GetPickResponse{Pick: convert.PickFromModel(pick)}), nil
}

func (p *PickServer) CreatePick(ctx context.Context, request *connect.Request[apiv1.CreatePickRequest]) (*connect.Response[apiv1.CreatePickResponse], error) {
	user, err := auth.RequirePrivileged(ctx)
	if err != nil {
		return nil, err
	}

	input := catalog.PickInput{
		Name:        request.Msg.Name,
		Slug:        convert.OptionalString(request.Msg.Slug),
		Description: request.Msg.Description,
	}

	pick, err := p.picks.Create(ctx, input, &user.ID)
	if err != nil {
		return nil, toConnectError(p.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.CreatePickResponse{Pick: convert.PickFromModel(pick)}), nil
}

func (p *PickServer) UpdatePick(ctx context.Context, request *connect.Request[apiv1.UpdatePickRequest]) (*connect.Response[apiv1.UpdatePickResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	pick, err := p.picks.Update(ctx, request.Msg.Slug, request.Msg.Name, request.Msg.Description)
	if err != nil {
		return nil, toConnectError(p.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.UpdatePickResponse{Pick: convert.PickFromModel(pick)}), nil
}

func (p *PickServer) DeletePick(ctx context.Context, request *connect.Request[apiv1.DeletePickRequest]) (*connect.Response[apiv1.DeletePickResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	deleted, err := p.picks.Delete(ctx, request.Msg.Slug)
	if err != nil {
		return nil, toConnectError(p.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.DeletePickResponse{Deleted: deleted}), nil
}

func (p *PickServer) AttachPick(ctx context.Context, request *connect.Request[apiv1.AttachPickRequest]) (*connect.Response[apiv1.AttachPickResponse], error) {
	user, err := auth.RequirePrivileged(ctx)
	if err != nil {
		return nil, err
	}

	moviePick, err := p.picks.Attach(ctx, uint(request.Msg.MovieID), request.Msg.Slug, &user.ID)
	if err != nil {
		return nil, toConnectError(p.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.AttachPickResponse{Membership: convert.MoviePickFromModel(moviePick)}), nil
}

func (p *PickServer) DetachPick(ctx context.Context, request *connect.Request[apiv1.DetachPickRequest]) (*connect.Response[apiv1.DetachPickResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	removed, err := p.picks.Detach(ctx, uint(request.Msg.MovieID), request.Msg.Slug)
	if err != nil {
		return nil, toConnectError(p.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.DetachPickResponse{Removed: removed}), nil
}

func (p *PickServer) ListPicksForMovie(ctx context.Context, request *connect.Request[apiv1.ListPicksForMovieRequest]) (*connect.Response[apiv1.ListPicksForMovieResponse], error) {
	picks, err := p.picks.PicksForMovie(ctx, uint(request.Msg.MovieID))
	if err != nil {
		return nil, toConnectError(p.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.ListPicksForMovieResponse{Picks: convert.PicksFromModel(picks)}), nil
}

func (p *PickServer) ListMoviesForPick(ctx context.Context, request *connect.Request[apiv1.ListMoviesForPickRequest]) (*connect.Response[apiv1.ListMoviesForPickResponse], error) {
	msg := request.Msg

	movies, err := p.picks.MoviesForPick(ctx, msg.Slug, convert.Page(msg.Skip, msg.Limit))
	if err != nil {
		return nil, toConnectError(p.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.ListMoviesForPickResponse{Movies: convert.MoviesFromModel(movies)}), nil
}
