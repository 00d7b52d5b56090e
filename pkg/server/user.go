package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/auth"
	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
	apiv1 "droscher.com/MovieCatalog/pkg/server/api/v1"
	"droscher.com/MovieCatalog/pkg/server/api/v1/apiv1connect"
	"droscher.com/MovieCatalog/pkg/server/convert"
)

type userRepository interface {
	AddUser(ctx context.Context, name string, email string, superuser bool) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

type UserServer struct {
	apiv1connect.UnimplementedUserServiceHandler
	repository userRepository
	roles      repository.RoleRepository
	logger     *zap.Logger
}

func NewUserServer(users userRepository, roles repository.RoleRepository, logger *zap.Logger) *UserServer {
	return &UserServer{repository: users, roles: roles, logger: logger}
}

func (u *UserServer) GetCurrentUser(ctx context.Context, _ *connect.Request[apiv1.GetCurrentUserRequest]) (*connect.Response[apiv1.GetCurrentUserResponse], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&apiv1.GetCurrentUserResponse{User: convert.UserFromModel(user)}), nil
}

func (u *UserServer) AddUser(ctx context.Context, request *connect.Request[apiv1.AddUserRequest]) (*connect.Response[apiv1.AddUserResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.Msg.Name)
	email := strings.TrimSpace(request.Msg.Email)

	if name == "" || email == "" {
		return nil, toConnectError(u.logger, request.Spec().Procedure,
			fmt.Errorf("%w: name and email are required", ErrInvalidInput))
	}

	user, err := u.repository.AddUser(ctx, name, email, request.Msg.Superuser)
	if err != nil {
		return nil, toConnectError(u.logger, request.Spec().Procedure, err)
	}

	u.logger.Info("user added", zap.String("username", user.Username))

	return connect.NewResponse(&apiv1.AddUserResponse{User: convert.UserFromModel(user)}), nil
}

func (u *UserServer) GetUserByEmail(ctx context.Context, request *connect.Request[apiv1.GetUserByEmailRequest]) (*connect.Response[apiv1.GetUserByEmailResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	user, err := u.repository.GetUserFromEmail(ctx, request.Msg.Email)
	if err != nil {
		return nil, toConnectError(u.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.GetUserByEmailResponse{User: convert.UserFromModel(user)}), nil
}

func (u *UserServer) GetUserByName(ctx context.Context, request *connect.Request[apiv1.GetUserByNameRequest]) (*connect.Response[apiv1.GetUserByNameResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	user, err := u.repository.GetUserByName(ctx, strings.TrimSpace(request.Msg.UserName))
	if err != nil {
		return nil, toConnectError(u.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.GetUserByNameResponse{User: convert.UserFromModel(user)}), nil
}

func (u *UserServer) ListRoles(ctx context.Context, request *connect.Request[apiv1.ListRolesRequest]) (*connect.Response[apiv1.ListRolesResponse], error) {
	roles, err := u.roles.GetRoles(ctx)
	if err != nil {
		return nil, toConnectError(u.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.ListRolesResponse{Roles: convert.RolesFromModel(roles)}), nil
}

func (u *UserServer) CreateRole(ctx context.Context, request *connect.Request[apiv1.CreateRoleRequest]) (*connect.Response[apiv1.CreateRoleResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.Msg.Name)
	if name == "" {
		return nil, toConnectError(u.logger, request.Spec().Procedure,
			fmt.Errorf("%w: role name is required", ErrInvalidInput))
	}

	role, err := u.roles.AddRole(ctx, model.Role{Name: name, Description: strings.TrimSpace(request.Msg.Description)})
	if err != nil {
		return nil, toConnectError(u.logger, request.Spec().Procedure, err)
	}

	u.logger.Info("role added", zap.String("role", role.Name))

	return connect.NewResponse(&apiv1.CreateRoleResponse{Role: convert.RoleFromModel(role)}), nil
}

func (u *UserServer) UpdateRole(ctx context.Context, request *connect.Request[apiv1.UpdateRoleRequest]) (*connect.Response[apiv1.UpdateRoleResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	role, err := u.roles.UpdateRole(ctx, request.Msg.Name, request.Msg.Description)
	if err != nil {
		return nil, toConnectError(u.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.UpdateRoleResponse{Role: convert.RoleFromModel(role)}), nil
}

// DeleteRole removes a role and its grants. The admin role cannot be deleted.
func (u *UserServer) DeleteRole(ctx context.Context, request *connect.Request[apiv1.DeleteRoleRequest]) (*connect.Response[apiv1.DeleteRoleResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	if request.Msg.Name == model.AdminRole {
		return nil, toConnectError(u.logger, request.Spec().Procedure,
			fmt.Errorf("%w: the %s role cannot be deleted", ErrInvalidInput, model.AdminRole))
	}

	if err := u.roles.DeleteRole(ctx, request.Msg.Name); err != nil {
		return nil, toConnectError(u.logger, request.Spec().Procedure, err)
	}

	u.logger.Info("role deleted", zap.String("role", request.Msg.Name))

	return connect.NewResponse(&apiv1.DeleteRoleResponse{Deleted: true}), nil
}

func (u *UserServer) GrantRole(ctx context.Context, request *connect.Request[apiv1.GrantRoleRequest]) (*connect.Response[apiv1.GrantRoleResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	user, err := u.repository.GetUserByName(ctx, request.Msg.UserName)
	if err != nil {
		return nil, toConnectError(u.logger, request.Spec().Procedure, err)
	}

	role, err := u.roles.GrantRole(ctx, user.ID, request.Msg.Role)
	if err != nil {
		return nil, toConnectError(u.logger, request.Spec().Procedure, err)
	}

	user.Roles = append(user.Roles, *role)

	u.logger.Info("role granted", zap.String("username", user.Username), zap.String("role", role.Name))

	return connect.NewResponse(&apiv1.GrantRoleResponse{User: convert.UserFromModel(user)}), nil
}

func (u *UserServer) RevokeRole(ctx context.Context, request *connect.Request[apiv1.RevokeRoleRequest]) (*connect.Response[apiv1.RevokeRoleResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	user, err := u.repository.GetUserByName(ctx, request.Msg.UserName)
	if err != nil {
		return nil, toConnectError(u.logger, request.Spec().Procedure, err)
	}

	if err := u.roles.RevokeRole(ctx, user.ID, request.Msg.Role); err != nil {
		return nil, toConnectError(u.logger, request.Spec().Procedure, err)
	}

	remaining := make([]model.Role, 0, len(user.Roles))
	for _, role := range user.Roles {
		if role.Name != request.Msg.Role {
			remaining = append(remaining, role)
		}
	}

	user.Roles = remaining

	u.logger.Info("role revoked", zap.String("username", user.Username), zap.String("role", request.Msg.Role))

	return connect.NewResponse(&apiv1.RevokeRoleResponse{User: convert.UserFromModel(user)}), nil
}
