package apiv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"

	v1 "droscher.com/MovieCatalog/pkg/server/api/v1"
)

// UserServiceName is the fully-qualified name of the UserService service.
const UserServiceName = "catalog.v1.UserService"

const (
	UserServiceGetCurrentUserProcedure = "/catalog.v1.UserService/GetCurrentUser"
	UserServiceAddUserProcedure        = "/catalog.v1.UserService/AddUser"
	UserServiceGetUserByEmailProcedure = "/catalog.v1.UserService/GetUserByEmail"
	UserServiceGetUserByNameProcedure  = "/catalog.v1.UserService/GetUserByName"
	UserServiceListRolesProcedure      = "/catalog.v1.UserService/ListRoles"
	UserServiceCreateRoleProcedure     = "/catalog.v1.UserService/CreateRole"
	UserServiceUpdateRoleProcedure     = "/catalog.v1.UserService/UpdateRole"
	UserServiceDeleteRoleProcedure     = "/catalog.v1.UserService/DeleteRole"
	UserServiceGrantRoleProcedure      = "/catalog.v1.UserService/GrantRole"
	UserServiceRevokeRoleProcedure     = "/catalog.v1.UserService/RevokeRole"
)

// UserServiceClient is a client for the catalog.v1.UserService service.
type UserServiceClient interface {
	GetCurrentUser(context.Context, *connect.Request[v1.GetCurrentUserRequest]) (*connect.Response[v1.GetCurrentUserResponse], error)
	AddUser(context.Context, *connect.Request[v1.AddUserRequest]) (*connect.Response[v1.AddUserResponse], error)
	GetUserByEmail(context.Context, *connect.Request[v1.GetUserByEmailRequest]) (*connect.Response[v1.GetUserByEmailResponse], error)
	GetUserByName(context.Context, *connect.Request[v1.GetUserByNameRequest]) (*connect.Response[v1.GetUserByNameResponse], error)
	ListRoles(context.Context, *connect.Request[v1.ListRolesRequest]) (*connect.Response[v1.ListRolesResponse], error)
	CreateRole(context.Context, *connect.Request[v1.CreateRoleRequest]) (*connect.Response[v1.CreateRoleResponse], error)
	UpdateRole(context.Context, *connect.Request[v1.UpdateRoleRequest]) (*connect.Response[v1.UpdateRoleResponse], error)
	DeleteRole(context.Context, *connect.Request[v1.DeleteRoleRequest]) (*connect.Response[v1.DeleteRoleResponse], error)
	GrantRole(context.Context, *connect.Request[v1.GrantRoleRequest]) (*connect.Response[v1.GrantRoleResponse], error)
	RevokeRole(context.Context, *connect.Request[v1.RevokeRoleRequest]) (*connect.Response[v1.RevokeRoleResponse], error)
}

// NewUserServiceClient constructs a client for the catalog.v1.UserService service. The JSON codec is used unless
// another codec option is supplied.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &userServiceClient{
		getCurrentUser: connect.NewClient[v1.GetCurrentUserRequest, v1.GetCurrentUserResponse](
			httpClient,
			baseURL+UserServiceGetCurrentUserProcedure,
			opts...,
		),
		addUser: connect.NewClient[v1.AddUserRequest, v1.AddUserResponse](
			httpClient,
			baseURL+UserServiceAddUserProcedure,
			opts...,
		),
		getUserByEmail: connect.NewClient[v1.GetUserByEmailRequest, v1.GetUserByEmailResponse](
			httpClient,
			baseURL+UserServiceGetUserByEmailProcedure,
			opts...,
		),
		getUserByName: connect.NewClient[v1.GetUserByNameRequest, v1.GetUserByNameResponse](
			httpClient,
			baseURL+UserServiceGetUserByNameProcedure,
			opts...,
		),
		listRoles: connect.NewClient[v1.ListRolesRequest, v1.ListRolesResponse](
			httpClient,
			baseURL+UserServiceListRolesProcedure,
			opts...,
		),
		createRole: connect.NewClient[v1.CreateRoleRequest, v1.CreateRoleResponse](
			httpClient,
			baseURL+UserServiceCreateRoleProcedure,
			opts...,
		),
		updateRole: connect.NewClient[v1.UpdateRoleRequest, v1.UpdateRoleResponse](
			httpClient,
			baseURL+UserServiceUpdateRoleProcedure,
			opts...,
		),
		deleteRole: connect.NewClient[v1.DeleteRoleRequest, v1.DeleteRoleResponse](
			httpClient,
			baseURL+UserServiceDeleteRoleProcedure,
			opts...,
		),
		grantRole: connect.NewClient[v1.GrantRoleRequest, v1.GrantRoleResponse](
			httpClient,
			baseURL+UserServiceGrantRoleProcedure,
			opts...,
		),
		revokeRole: connect.NewClient[v1.RevokeRoleRequest, v1.RevokeRoleResponse](
			httpClient,
			baseURL+UserServiceRevokeRoleProcedure,
			opts...,
		),
	}
}

type userServiceClient struct {
	getCurrentUser *connect.Client[v1.GetCurrentUserRequest, v1.GetCurrentUserResponse]
	addUser        *connect.Client[v1.AddUserRequest, v1.AddUserResponse]
	getUserByEmail *connect.Client[v1.GetUserByEmailRequest, v1.GetUserByEmailResponse]
	getUserByName  *connect.Client[v1.GetUserByNameRequest, v1.GetUserByNameResponse]
	listRoles      *connect.Client[v1.ListRolesRequest, v1.ListRolesResponse]
	createRole     *connect.Client[v1.CreateRoleRequest, v1.CreateRoleResponse]
	updateRole     *connect.Client[v1.UpdateRoleRequest, v1.UpdateRoleResponse]
	deleteRole     *connect.Client[v1.DeleteRoleRequest, v1.DeleteRoleResponse]
	grantRole      *connect.Client[v1.GrantRoleRequest, v1.GrantRoleResponse]
	revokeRole     *connect.Client[v1.RevokeRoleRequest, v1.RevokeRoleResponse]
}

func (c *userServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[v1.GetCurrentUserRequest]) (*connect.Response[v1.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

func (c *userServiceClient) AddUser(ctx context.Context, req *connect.Request[v1.AddUserRequest]) (*connect.Response[v1.AddUserResponse], error) {
	return c.addUser.CallUnary(ctx, req)
}

func (c *userServiceClient) GetUserByEmail(ctx context.Context, req *connect.Request[v1.GetUserByEmailRequest]) (*connect.Response[v1.GetUserByEmailResponse], error) {
	return c.getUserByEmail.CallUnary(ctx, req)
}

func (c *userServiceClient) GetUserByName(ctx context.Context, req *connect.Request[v1.GetUserByNameRequest]) (*connect.Response[v1.GetUserByNameResponse], error) {
	return c.getUserByName.CallUnary(ctx, req)
}

func (c *userServiceClient) ListRoles(ctx context.Context, req *connect.Request[v1.ListRolesRequest]) (*connect.Response[v1.ListRolesResponse], error) {
	return c.listRoles.CallUnary(ctx, req)
}

func (c *userServiceClient) CreateRole(ctx context.Context, req *connect.Request[v1.CreateRoleRequest]) (*connect.Response[v1.CreateRoleResponse], error) {
	return c.createRole.CallUnary(ctx, req)
}

func (c *userServiceClient) UpdateRole(ctx context.Context, req *connect.Request[v1.UpdateRoleRequest]) (*connect.Response[v1.UpdateRoleResponse], error) {
	return c.updateRole.CallUnary(ctx, req)
}

func (c *userServiceClient) DeleteRole(ctx context.Context, req *connect.Request[v1.DeleteRoleRequest]) (*connect.Response[v1.DeleteRoleResponse], error) {
	return c.deleteRole.CallUnary(ctx, req)
}

func (c *userServiceClient) GrantRole(ctx context.Context, req *connect.Request[v1.GrantRoleRequest]) (*connect.Response[v1.GrantRoleResponse], error) {
	return c.grantRole.CallUnary(ctx, req)
}

func (c *userServiceClient) RevokeRole(ctx context.Context, req *connect.Request[v1.RevokeRoleRequest]) (*connect.Response[v1.RevokeRoleResponse], error) {
	return c.revokeRole.CallUnary(ctx, req)
}

// UserServiceHandler is an implementation of the catalog.v1.UserService service.
type UserServiceHandler interface {
	GetCurrentUser(context.Context, *connect.Request[v1.GetCurrentUserRequest]) (*connect.Response[v1.GetCurrentUserResponse], error)
	AddUser(context.Context, *connect.Request[v1.AddUserRequest]) (*connect.Response[v1.AddUserResponse], error)
	GetUserByEmail(context.Context, *connect.Request[v1.GetUserByEmailRequest]) (*connect.Response[v1.GetUserByEmailResponse], error)
	GetUserByName(context.Context, *connect.Request[v1.GetUserByNameRequest]) (*connect.Response[v1.GetUserByNameResponse], error)
	ListRoles(context.Context, *connect.Request[v1.ListRolesRequest]) (*connect.Response[v1.ListRolesResponse], error)
	CreateRole(context.Context, *connect.Request[v1.CreateRoleRequest]) (*connect.Response[v1.CreateRoleResponse], error)
	UpdateRole(context.Context, *connect.Request[v1.UpdateRoleRequest]) (*connect.Response[v1.UpdateRoleResponse], error)
	DeleteRole(context.Context, *connect.Request[v1.DeleteRoleRequest]) (*connect.Response[v1.DeleteRoleResponse], error)
	GrantRole(context.Context, *connect.Request[v1.GrantRoleRequest]) (*connect.Response[v1.GrantRoleResponse], error)
	RevokeRole(context.Context, *connect.Request[v1.RevokeRoleRequest]) (*connect.Response[v1.RevokeRoleResponse], error)
}

// NewUserServiceHandler builds an HTTP handler from the service implementation. It returns the path on
// which to mount the handler and the handler itself.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(UserServiceGetCurrentUserProcedure, connect.NewUnaryHandler(
		UserServiceGetCurrentUserProcedure,
		svc.GetCurrentUser,
		opts...,
	))
	mux.Handle(UserServiceAddUserProcedure, connect.NewUnaryHandler(
		UserServiceAddUserProcedure,
		svc.AddUser,
		opts...,
	))
	mux.Handle(UserServiceGetUserByEmailProcedure, connect.NewUnaryHandler(
		UserServiceGetUserByEmailProcedure,
		svc.GetUserByEmail,
		opts...,
	))
	mux.Handle(UserServiceGetUserByNameProcedure, connect.NewUnaryHandler(
		UserServiceGetUserByNameProcedure,
		svc.GetUserByName,
		opts...,
	))
	mux.Handle(UserServiceListRolesProcedure, connect.NewUnaryHandler(
		UserServiceListRolesProcedure,
		svc.ListRoles,
		opts...,
	))
	mux.Handle(UserServiceCreateRoleProcedure, connect.NewUnaryHandler(
		UserServiceCreateRoleProcedure,
		svc.CreateRole,
		opts...,
	))
	mux.Handle(UserServiceUpdateRoleProcedure, connect.NewUnaryHandler(
		UserServiceUpdateRoleProcedure,
		svc.UpdateRole,
		opts...,
	))
	mux.Handle(UserServiceDeleteRoleProcedure, connect.NewUnaryHandler(
		UserServiceDeleteRoleProcedure,
		svc.DeleteRole,
		opts...,
	))
	mux.Handle(UserServiceGrantRoleProcedure, connect.NewUnaryHandler(
		UserServiceGrantRoleProcedure,
		svc.GrantRole,
		opts...,
	))
	mux.Handle(UserServiceRevokeRoleProcedure, connect.NewUnaryHandler(
		UserServiceRevokeRoleProcedure,
		svc.RevokeRole,
		opts...,
	))

	return "/catalog.v1.UserService/", mux
}

// UnimplementedUserServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedUserServiceHandler struct{}

func (UnimplementedUserServiceHandler) GetCurrentUser(context.Context, *connect.Request[v1.GetCurrentUserRequest]) (*connect.Response[v1.GetCurrentUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.UserService.GetCurrentUser is not implemented"))
}

func (UnimplementedUserServiceHandler) AddUser(context.Context, *connect.Request[v1.AddUserRequest]) (*connect.Response[v1.AddUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.UserService.AddUser is not implemented"))
}

func (UnimplementedUserServiceHandler) GetUserByEmail(context.Context, *connect.Request[v1.GetUserByEmailRequest]) (*connect.Response[v1.GetUserByEmailResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.UserService.GetUserByEmail is not implemented"))
}

func (UnimplementedUserServiceHandler) GetUserByName(context.Context, *connect.Request[v1.GetUserByNameRequest]) (*connect.Response[v1.GetUserByNameResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.UserService.GetUserByName is not implemented"))
}

func (UnimplementedUserServiceHandler) ListRoles(context.Context, *connect.Request[v1.ListRolesRequest]) (*connect.Response[v1.ListRolesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.UserService.ListRoles is not implemented"))
}

func (UnimplementedUserServiceHandler) CreateRole(context.Context, *connect.Request[v1.CreateRoleRequest]) (*connect.Response[v1.CreateRoleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.UserService.CreateRole is not implemented"))
}

func (UnimplementedUserServiceHandler) UpdateRole(context.Context, *connect.Request[v1.UpdateRoleRequest]) (*connect.Response[v1.UpdateRoleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.UserService.UpdateRole is not implemented"))
}

func (UnimplementedUserServiceHandler) DeleteRole(context.Context, *connect.Request[v1.DeleteRoleRequest]) (*connect.Response[v1.DeleteRoleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.UserService.DeleteRole is not implemented"))
}

func (UnimplementedUserServiceHandler) GrantRole(context.Context, *connect.Request[v1.GrantRoleRequest]) (*connect.Response[v1.GrantRoleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.UserService.GrantRole is not implemented"))
}

func (UnimplementedUserServiceHandler) RevokeRole(context.Context, *connect.Request[v1.RevokeRoleRequest]) (*connect.Response[v1.RevokeRoleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("catalog.v1.UserService.RevokeRole is not implemented"))
}
