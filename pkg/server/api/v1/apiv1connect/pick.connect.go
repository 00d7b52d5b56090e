package apiv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"

	v1 "droscher.com/MovieCatalog/pkg/server/api/v1"
)

// PickServiceName is the fully-qualified name of the PickService service.
const PickServiceName = "catalog.v1.PickService"

const (
	PickServiceListPicksProcedure         = "/catalog.v1.PickService/ListPicks"
	PickServiceGetPickProcedure           = "/catalog.v1.PickService/GetPick"
	PickServiceCreatePickProcedure        = "/catalog.v1.PickService/CreatePick"
	PickServiceUpdatePickProcedure        = "/catalog.v1.PickService/UpdatePick"
	PickServiceDeletePickProcedure        = "/catalog.v1.PickService/DeletePick"
	PickServiceAttachPickProcedure        = "/catalog.v1.PickService/AttachPick"
	PickServiceDetachPickProcedure        = "/catalog.v1.PickService/DetachPick"
	PickServiceListPicksForMovieProcedure = "/catalog.v1.PickService/ListPicksForMovie"
	PickServiceListMoviesForPickProcedure = "/catalog.v1.PickService/ListMoviesForPick"
)

// PickServiceClient is a client for the catalog.v1.PickService service.
type PickServiceClient interface {
	ListPicks(context.Context, *connect.Request[v1.ListPicksRequest]) (*connect.Response[v1.ListPicksResponse], error)
	GetPick(context.Context, *connect.Request[v1.GetPickRequest]) (*connect.Response[v1.GetPickResponse], error)
	CreatePick(context.Context, *connect.Request[v1.CreatePickRequest]) (*connect.Response[v1.CreatePickResponse], error)
	UpdatePick(context.Context, *connect.Request[v1.UpdatePickRequest]) (*connect.Response[v1.UpdatePickResponse], error)
	DeletePick(context.Context, *connect.Request[v1.DeletePickRequest]) (*connect.Response[v1.DeletePickResponse], error)
	AttachPick(context.Context, *connect.Request[v1.AttachPickRequest]) (*connect.Response[v1.AttachPickResponse], error)
	DetachPick(context.Context, *connect.Request[v1.DetachPickRequest]) (*connect.Response[v1.DetachPickResponse], error)
	ListPicksForMovie(context.Context, *connect.Request[v1.ListPicksForMovieRequest]) (*connect.Response[v1.ListPicksForMovieResponse], error)
	ListMoviesForPick(context.Context, *connect.Request[v1.ListMoviesForPickRequest]) (*connect.Response[v1.ListMoviesForPickResponse], error)
}

// NewPickServiceClient constructs a client for the catalog.v1.PickService service. The JSON codec is used unless
// another codec option is supplied.
func NewPickServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PickServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &pickServiceClient{
		listPicks: connect.NewClient[v1.ListPicksRequest, v1.ListPicksResponse](
			httpClient,
			baseURL+PickServiceListPicksProcedure,
			opts...,
		),
		getPick: connect.NewClient[v1.GetPickRequest, v1.GetPickResponse](
			httpClient,
			baseURL+PickServiceGetPickProcedure,
			opts...,
		),
		createPick: connect.NewClient[v1.CreatePickRequest, v1.CreatePickResponse](
			httpClient,
			baseURL+PickServiceCreatePickProcedure,
			opts...,
		),
		updatePick: connect.NewClient[v1.UpdatePickRequest, v1.UpdatePickResponse](
			httpClient,
			baseURL+PickServiceUpdatePickProcedure,
			opts...,
		),
		deletePick: connect.NewClient[v1.DeletePickRequest, v1.DeletePickResponse](
			httpClient,
			baseURL+PickServiceDeletePickProcedure,
			opts...,
		),
		attachPick: connect.NewClient[v1.AttachPickRequest, v1.AttachPickResponse](
			httpClient,
			baseURL+PickServiceAttachPickProcedure,
			opts...,
		),
		detachPick: connect.NewClient[v1.DetachPickRequest, v1.DetachPickResponse](
			httpClient,
			baseURL+PickServiceDetachPickProcedure,
			opts...,
		),
		listPicksForMovie: connect.NewClient[v1.ListPicksForMovieRequest, v1.ListPicksForMovieResponse](
			httpClient,
			baseURL+PickServiceListPicksForMovieProcedure,
			opts...,
		),
		listMoviesForPick: connect.NewClient[v1.ListMoviesForPickRequest, v1.ListMoviesForPickResponse](
			httpClient,
			baseURL+PickServiceListMoviesForPickProcedure,
			opts...,
		),
	}
}

type pickServiceClient struct {
	listPicks         *connect.Client[v1.ListPicksRequest, v1.ListPicksResponse]
	getPick           *connect.Client[v1.GetPickRequest, v1.GetPickResponse]
	createPick        *connect.Client[v1.CreatePickRequest, v1.CreatePickResponse]
	updatePick        *connect.Client[v1.UpdatePickRequest, v1.UpdatePickResponse]
	deletePick        *connect.Client[v1.DeletePickRequest, v1.DeletePickResponse]
	attachPick        *connect.Client[v1.AttachPickRequest, v1.AttachPickResponse]
	detachPick        *connect.Client[v1.DetachPickRequest, v1.DetachPickResponse]
	listPicksForMovie *connect.Client[v1.ListPicksForMovieRequest, v1.ListPicksForMovieResponse]
	listMoviesForPick *connect.Client[v1.ListMoviesForPickRequest, v1.ListMoviesForPickResponse]
}

func (c *pickServiceClient) ListPicks(ctx context.Context, req *connect.Request[v1.ListPicksRequest]) (*connect.Response[v1.ListPicksResponse], error) {
	return c.listPicks.CallUnary(ctx, req)
}

func (c *pickServiceClient) GetPick(ctx context.Context, req *connect.Request[v1.GetPickRequest]) (*connect.Response[v1.GetPickResponse], error) {
	return c.getPick.CallUnary(ctx, req)
}

func (c *pickServiceClient) CreatePick(ctx context.Context, req *connect.Request[v1.CreatePickRequest]) (*connect.Response[v1.CreatePickResponse], error) {
	return c.createPick.CallUnary(ctx, req)
}

func (c *pickServiceClient) UpdatePick(ctx context.Context, req *connect.Request[v1.UpdatePickRequest]) (*connect.Response[v1.UpdatePickResponse], error) {
	return c.updatePick.CallUnary(ctx, req)
}

func (c *pickServiceClient) DeletePick(ctx context.Context, req *connect.Request[v1.DeletePickRequest]) (*connect.Response[v1.DeletePickResponse], error) {
	return c.deletePick.CallUnary(ctx, req)
}

func (c *pickServiceClient) AttachPick(ctx context.Context, req *connect.Request[v1.AttachPickRequest]) (*connect.Response[v1.AttachPickResponse], error) {
	return c.attachPick.CallUnary(ctx, req)
}

func (c *pickServiceClient) DetachPick(ctx context.Context, req *connect.Request[v1.DetachPickRequest]) (*connect.Response[v1.DetachPickResponse], error) {
	return c.detachPick.CallUnary(ctx, req)
}

func (c *pickServiceClient) ListPicksForMovie(ctx context.Context, req *connect.Request[v1.ListPicksForMovieRequest]) (*connect.Response[v1.ListPicksForMovieResponse], error) {
	return c.listPicksForMovie.CallUnary(ctx, req)
}

func (c *pickServiceClient) ListMoviesForPick(ctx context.Context, req *connect.Request[v1.ListMoviesForPickRequest]) (*connect.Response[v1.ListMoviesForPickResponse], error) {
	return c.listMoviesForPick.CallUnary(ctx, req)
}

// PickServiceHandler is an implementation of the catalog.v1.PickService service.
type PickServiceHandler interface {
	ListPicks(context.Context, *connect.Request[v1.ListPicksRequest]) (*connect.Response[v1.ListPicksResponse], error)
	GetPick(context.Context, *connect.Request[v1.GetPickRequest]) (*connect.Response[v1.GetPickResponse], error)
	CreatePick(context.Context, *connect.Request[v1.CreatePickRequest]) (*connect.Response[v1.CreatePickResponse], error)
	UpdatePick(context.Context, *connect.Request[v1.UpdatePickRequest]) (*connect.Response[v1.UpdatePickResponse], error)
	DeletePick(context.Context, *connect.Request[v1.DeletePickRequest]) (*connect.Response[v1.DeletePickResponse], error)
	AttachPick(context.Context, *connect.Request[v1.AttachPickRequest]) (*connect.Response[v1.AttachPickResponse], error)
	DetachPick(context.Context, *connect.Request[v1.DetachPickRequest]) (*connect.Response[v1.DetachPickResponse], error)
	ListPicksForMovie(context.Context, *connect.Request[v1.ListPicksForMovieRequest]) (*connect.Response[v1.ListPicksForMovieResponse], error)
	ListMoviesForPick(context.Context, *connect.Request[v1.ListMoviesForPickRequest]) (*connect.Response[v1.ListMoviesForPickResponse], error)
}

// NewPickServiceHandler builds an HTTP handler from the service implementation. It returns the path on
// which to mount the handler and the handler itself.
func NewPickServiceHandler(svc PickServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(PickServiceListPicksProcedure, connect.NewUnaryHandler(
		PickServiceListPicksProcedure,
		svc.ListPicks,
		opts...,
	))
	mux.Handle(PickServiceGetPickProcedure, connect.NewUnaryHandler(
		PickServiceGetPickProcedure,
		svc.GetPick,
		opts...,
	))
	mux.Handle(PickServiceCreatePickProcedure, connect.NewUnaryHandler(
		PickServiceCreatePickProcedure,
		svc.CreatePick,
		opts...,
	))
	mux.Handle(PickServiceUpdatePickProcedure, connect.NewUnaryHandler(
		PickServiceUpdatePickProcedure,
		svc.UpdatePick,
		opts...,
	))
	mux.Handle(PickServiceDeletePickProcedure, connect.NewUnaryHandler(
		PickServiceDeletePickProcedure,
		svc.DeletePick,
		opts...,
	))
	mux.Handle(PickServiceAttachPickProcedure, connect.NewUnaryHandler(
		PickServiceAttachPickProcedure,
		svc.AttachPick,
		opts...,
	))
	mux.Handle(PickServiceDetachPickProcedure, connect.NewUnaryHandler(
		PickServiceDetachPickProcedure,
		svc.DetachPick,
		opts...,
	))
	mux.Handle(PickServiceListPicksForMovieProcedure, connect.NewUnaryHandler(
		PickServiceListPicksForMovieProcedure,
		svc.ListPicksForMovie,
		opts...,
	))
	mux.Handle(PickServiceListMoviesForPickProcedure, connect.NewUnaryHandler(
		PickServiceListMoviesForPickProcedure,
		svc.ListMoviesForPick,
		opts...,
	))

	return "/catalog.v1.PickService/", mux
}

// UnimplementedPickServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPickServiceHandler struct{}

func (UnimplementedPickServiceHandler) ListPicks(context.Context, *connect.Request[v1.ListPicksRequest]) (*connect.Response[v1.ListPicksResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.PickService.ListPicks is not implemented"))
}

func (UnimplementedPickServiceHandler) GetPick(context.Context, *connect.Request[v1.GetPickRequest]) (*connect.Response[v1.GetPickResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.PickService.GetPick is not implemented"))
}

func (UnimplementedPickServiceHandler) CreatePick(context.Context, *connect.Request[v1.CreatePickRequest]) (*connect.Response[v1.CreatePickResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.PickService.CreatePick is not implemented"))
}

func (UnimplementedPickServiceHandler) UpdatePick(context.Context, *connect.Request[v1.UpdatePickRequest]) (*connect.Response[v1.UpdatePickResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.PickService.UpdatePick is not implemented"))
}

func (UnimplementedPickServiceHandler) DeletePick(context.Context, *connect.Request[v1.DeletePickRequest]) (*connect.Response[v1.DeletePickResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.PickService.DeletePick is not implemented"))
}

func (UnimplementedPickServiceHandler) AttachPick(context.Context, *connect.Request[v1.AttachPickRequest]) (*connect.Response[v1.AttachPickResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.PickService.AttachPick is not implemented"))
}

func (UnimplementedPickServiceHandler) DetachPick(context.Context, *connect.Request[v1.DetachPickRequest]) (*connect.Response[v1.DetachPickResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.PickService.DetachPick is not implemented"))
}

func (UnimplementedPickServiceHandler) ListPicksForMovie(context.Context, *connect.Request[v1.ListPicksForMovieRequest]) (*connect.Response[v1.ListPicksForMovieResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.PickService.ListPicksForMovie is not implemented"))
}

func (UnimplementedPickServiceHandler) ListMoviesForPick(context.Context, *connect.Request[v1.ListMoviesForPickRequest]) (*connect.Response[v1.ListMoviesForPickResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.PickService.ListMoviesForPick is not implemented"))
}
