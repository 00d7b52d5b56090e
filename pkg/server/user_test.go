package server_test

import (
	"context"
	"testing"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/MovieCatalog/mocks"
	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
	"droscher.com/MovieCatalog/pkg/server"
	apiv1 "droscher.com/MovieCatalog/pkg/server/api/v1"
)

type UserServerTestSuite struct {
	suite.Suite
	userRepo     *mocks.UserRepository
	roleRepo     *mocks.RoleRepository
	service      *server.UserServer
	observedLogs *observer.ObservedLogs
}

func TestUserServerTestSuite(t *testing.T) {
	suite.Run(t, new(UserServerTestSuite))
}

func (suite *UserServerTestSuite) SetupTest() {
	suite.userRepo = mocks.NewUserRepository(suite.T())
	suite.roleRepo = mocks.NewRoleRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = server.NewUserServer(suite.userRepo, suite.roleRepo, zap.New(observedZapCore))
}

func (suite *UserServerTestSuite) TestGetCurrentUser() {
	response, err := suite.service.GetCurrentUser(asUser(adminUser()), connect.NewRequest(&apiv1.GetCurrentUserRequest{}))

	suite.Require().NoError(err)
	suite.Equal("admin", response.Msg.User.UserName)
	suite.Equal([]string{model.AdminRole}, response.Msg.User.Roles)
}

func (suite *UserServerTestSuite) TestGetCurrentUser_Anonymous() {
	_, err := suite.service.GetCurrentUser(context.Background(), connect.NewRequest(&apiv1.GetCurrentUserRequest{}))

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *UserServerTestSuite) TestAddUser() {
	ctx := asUser(adminUser())
	id := uuid.New()

	suite.userRepo.EXPECT().AddUser(ctx, "dallas", "dallas@example.com", false).
		Return(&model.User{Model: gorm.Model{ID: 3}, UUID: id, Username: "dallas", Email: "dallas@example.com"}, nil)

	response, err := suite.service.AddUser(ctx, connect.NewRequest(&apiv1.AddUserRequest{Name: " dallas ", Email: "dallas@example.com"}))

	suite.Require().NoError(err)
	suite.Equal(id.String(), response.Msg.User.ID)
	suite.Equal(1, suite.observedLogs.FilterMessage("user added").Len())
}

func (suite *UserServerTestSuite) TestAddUser_Duplicate() {
	ctx := asUser(adminUser())
	suite.userRepo.EXPECT().AddUser(ctx, "dallas", "dallas@example.com", false).Return(nil, repository.ErrConflict)

	_, err := suite.service.AddUser(ctx, connect.NewRequest(&apiv1.AddUserRequest{Name: "dallas", Email: "dallas@example.com"}))

	suite.Equal(connect.CodeAlreadyExists, connect.CodeOf(err))
}

func (suite *UserServerTestSuite) TestAddUser_MissingEmail() {
	_, err := suite.service.AddUser(asUser(adminUser()), connect.NewRequest(&apiv1.AddUserRequest{Name: "dallas"}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
	suite.ErrorIs(err, server.ErrInvalidInput)
}

func (suite *UserServerTestSuite) TestGetUserByEmail_RequiresAdmin() {
	_, err := suite.service.GetUserByEmail(asUser(memberUser()), connect.NewRequest(&apiv1.GetUserByEmailRequest{Email: "x@example.com"}))

	suite.Equal(connect.CodePermissionDenied, connect.CodeOf(err))
}

func (suite *UserServerTestSuite) TestGetUserByEmail_NotFound() {
	ctx := asUser(adminUser())
	suite.userRepo.EXPECT().GetUserFromEmail(ctx, "x@example.com").Return(nil, repository.ErrNotFound)

	_, err := suite.service.GetUserByEmail(ctx, connect.NewRequest(&apiv1.GetUserByEmailRequest{Email: "x@example.com"}))

	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *UserServerTestSuite) TestGetUserByName() {
	ctx := asUser(adminUser())
	suite.userRepo.EXPECT().GetUserByName(ctx, "ripley").Return(memberUser(), nil)

	response, err := suite.service.GetUserByName(ctx, connect.NewRequest(&apiv1.GetUserByNameRequest{UserName: " ripley "}))

	suite.Require().NoError(err)
	suite.Equal("ripley", response.Msg.User.UserName)
}

func (suite *UserServerTestSuite) TestGetUserByName_RequiresAdmin() {
	_, err := suite.service.GetUserByName(asUser(memberUser()), connect.NewRequest(&apiv1.GetUserByNameRequest{UserName: "admin"}))

	suite.Equal(connect.CodePermissionDenied, connect.CodeOf(err))
}

func (suite *UserServerTestSuite) TestListRoles_Anonymous() {
	ctx := context.Background()
	suite.roleRepo.EXPECT().GetRoles(ctx).Return([]*model.Role{{Name: model.AdminRole}, {Name: "curator"}}, nil)

	response, err := suite.service.ListRoles(ctx, connect.NewRequest(&apiv1.ListRolesRequest{}))

	suite.Require().NoError(err)
	suite.Len(response.Msg.Roles, 2)
}

func (suite *UserServerTestSuite) TestCreateRole() {
	ctx := asUser(adminUser())
	suite.roleRepo.EXPECT().AddRole(ctx, model.Role{Name: "curator", Description: "Curates picks"}).
		Return(&model.Role{Model: gorm.Model{ID: 2}, Name: "curator", Description: "Curates picks"}, nil)

	response, err := suite.service.CreateRole(ctx, connect.NewRequest(&apiv1.CreateRoleRequest{Name: " curator ", Description: "Curates picks"}))

	suite.Require().NoError(err)
	suite.Equal("curator", response.Msg.Role.Name)
	suite.Equal(1, suite.observedLogs.FilterMessage("role added").Len())
}

func (suite *UserServerTestSuite) TestCreateRole_RequiresName() {
	_, err := suite.service.CreateRole(asUser(adminUser()), connect.NewRequest(&apiv1.CreateRoleRequest{Name: "  "}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *UserServerTestSuite) TestCreateRole_RequiresAdmin() {
	_, err := suite.service.CreateRole(asUser(memberUser()), connect.NewRequest(&apiv1.CreateRoleRequest{Name: "curator"}))

	suite.Equal(connect.CodePermissionDenied, connect.CodeOf(err))
}

func (suite *UserServerTestSuite) TestUpdateRole_NotFound() {
	ctx := asUser(adminUser())
	description := "Gone"
	suite.roleRepo.EXPECT().UpdateRole(ctx, "ghost", &description).Return(nil, repository.ErrNotFound)

	_, err := suite.service.UpdateRole(ctx, connect.NewRequest(&apiv1.UpdateRoleRequest{Name: "ghost", Description: &description}))

	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *UserServerTestSuite) TestDeleteRole() {
	ctx := asUser(adminUser())
	suite.roleRepo.EXPECT().DeleteRole(ctx, "curator").Return(nil)

	response, err := suite.service.DeleteRole(ctx, connect.NewRequest(&apiv1.DeleteRoleRequest{Name: "curator"}))

	suite.Require().NoError(err)
	suite.True(response.Msg.Deleted)
}

func (suite *UserServerTestSuite) TestDeleteRole_KeepsAdminRole() {
	_, err := suite.service.DeleteRole(asUser(adminUser()), connect.NewRequest(&apiv1.DeleteRoleRequest{Name: model.AdminRole}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *UserServerTestSuite) TestGrantRole_ResolvesUserByName() {
	ctx := asUser(adminUser())
	suite.userRepo.EXPECT().GetUserByName(ctx, "ripley").Return(memberUser(), nil)
	suite.roleRepo.EXPECT().GrantRole(ctx, uint(2), model.AdminRole).Return(&model.Role{Name: model.AdminRole}, nil)

	response, err := suite.service.GrantRole(ctx, connect.NewRequest(&apiv1.GrantRoleRequest{UserName: "ripley", Role: model.AdminRole}))

	suite.Require().NoError(err)
	suite.Contains(response.Msg.User.Roles, model.AdminRole)
	suite.Equal(1, suite.observedLogs.FilterMessage("role granted").Len())
}

func (suite *UserServerTestSuite) TestGrantRole_UnknownUser() {
	ctx := asUser(adminUser())
	suite.userRepo.EXPECT().GetUserByName(ctx, "nobody").Return(nil, repository.ErrNotFound)

	_, err := suite.service.GrantRole(ctx, connect.NewRequest(&apiv1.GrantRoleRequest{UserName: "nobody", Role: "curator"}))

	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *UserServerTestSuite) TestRevokeRole() {
	ctx := asUser(adminUser())
	suite.userRepo.EXPECT().GetUserByName(ctx, "admin").Return(adminUser(), nil)
	suite.roleRepo.EXPECT().RevokeRole(ctx, uint(1), model.AdminRole).Return(nil)

	response, err := suite.service.RevokeRole(ctx, connect.NewRequest(&apiv1.RevokeRoleRequest{UserName: "admin", Role: model.AdminRole}))

	suite.Require().NoError(err)
	suite.Empty(response.Msg.User.Roles)
}
