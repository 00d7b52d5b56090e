package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

type RoleTestSuite struct {
	RepositorySuite
}

func TestRoleTestSuite(t *testing.T) {
	suite.Run(t, new(RoleTestSuite))
}

func (suite *RoleTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *RoleTestSuite) expectRole(name string, roleID uint) {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles" WHERE name = $1 AND "roles"."deleted_at" IS NULL ORDER BY "roles"."id" LIMIT $2`)).
		WithArgs(name, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).AddRow(roleID, name, "Curates picks"))
}

func (suite *RoleTestSuite) TestAddRole_AddsRole() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "roles" (.+) ON CONFLICT DO NOTHING RETURNING "id"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "curator", "Curates picks").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	suite.mock.ExpectCommit()

	role, err := suite.repository.AddRole(context.Background(), model.Role{Name: "curator", Description: "Curates picks"})

	suite.Require().NoError(err)
	suite.Equal(uint(2), role.ID)
}

func (suite *RoleTestSuite) TestAddRole_DuplicateNameConflicts() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "roles" (.+) ON CONFLICT DO NOTHING RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	suite.mock.ExpectCommit()

	role, err := suite.repository.AddRole(context.Background(), model.Role{Name: "admin"})

	suite.Nil(role)
	suite.Require().ErrorIs(err, repository.ErrConflict)
	suite.EqualError(err, `already exists: role "admin"`)
}

func (suite *RoleTestSuite) TestGetRoles_OrdersByName() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles" WHERE "roles"."deleted_at" IS NULL ORDER BY name ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "admin").AddRow(2, "curator"))

	roles, err := suite.repository.GetRoles(context.Background())

	suite.Require().NoError(err)
	suite.Len(roles, 2)
	suite.Equal("admin", roles[0].Name)
}

func (suite *RoleTestSuite) TestUpdateRole_ChangesDescription() {
	suite.mock.ExpectBegin()
	suite.expectRole("curator", 2)
	suite.mock.ExpectExec(`^UPDATE "roles" SET "description"=\$1,"updated_at"=\$2 WHERE (.+)`).
		WithArgs("Maintains picks", sqlmock.AnyArg(), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	role, err := suite.repository.UpdateRole(context.Background(), "curator", pointy.String("Maintains picks"))

	suite.Require().NoError(err)
	suite.Equal("Maintains picks", role.Description)
}

func (suite *RoleTestSuite) TestUpdateRole_NotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT \* FROM "roles" WHERE name = \$1`).
		WithArgs("ghost", 1).
		WillReturnError(gorm.ErrRecordNotFound)
	suite.mock.ExpectRollback()

	role, err := suite.repository.UpdateRole(context.Background(), "ghost", pointy.String("x"))

	suite.Nil(role)
	suite.ErrorIs(err, repository.ErrNotFound)
}

func (suite *RoleTestSuite) TestDeleteRole_RemovesGrants() {
	suite.mock.ExpectBegin()
	suite.expectRole("curator", 2)
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM user_roles WHERE role_id = $1`)).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 3))
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "roles" WHERE "roles"."id" = $1`)).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.DeleteRole(context.Background(), "curator"))
}

func (suite *RoleTestSuite) TestGrantRole_InsertsGrant() {
	suite.mock.ExpectBegin()
	suite.expectRole("curator", 2)
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`)).
		WithArgs(4, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	role, err := suite.repository.GrantRole(context.Background(), 4, "curator")

	suite.Require().NoError(err)
	suite.Equal("curator", role.Name)
}

func (suite *RoleTestSuite) TestGrantRole_ExistingGrantConflicts() {
	suite.mock.ExpectBegin()
	suite.expectRole("curator", 2)
	suite.mock.ExpectExec(`^INSERT INTO user_roles`).
		WithArgs(4, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectRollback()

	role, err := suite.repository.GrantRole(context.Background(), 4, "curator")

	suite.Nil(role)
	suite.ErrorIs(err, repository.ErrConflict)
}

func (suite *RoleTestSuite) TestRevokeRole_MissingGrantIsNotFound() {
	suite.mock.ExpectBegin()
	suite.expectRole("curator", 2)
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2`)).
		WithArgs(4, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectRollback()

	err := suite.repository.RevokeRole(context.Background(), 4, "curator")

	suite.ErrorIs(err, repository.ErrNotFound)
}
