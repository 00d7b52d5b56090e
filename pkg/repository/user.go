package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"droscher.com/MovieCatalog/pkg/model"
)

type UserRepository interface {
	AddUser(ctx context.Context, name string, email string, superuser bool) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
	GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error)
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

func (r *Repository) GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Preload("Roles").Where("uuid = ?", uuid).First(&user)
	if result.Error != nil {
		return nil, notFound(result.Error, "user %s", uuid)
	}

	return &user, nil
}

func (r *Repository) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Preload("Roles").Where("username = ?", username).First(&user)
	if result.Error != nil {
		return nil, notFound(result.Error, "user %q", username)
	}

	return user, nil
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Preload("Roles").Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, notFound(result.Error, "user %q", email)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, name string, email string, superuser bool) (*model.User, error) {
	user := model.User{
		UUID:        uuid.New(),
		Username:    name,
		Email:       email,
		IsSuperuser: superuser,
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: user %q", ErrConflict, email)
	}

	return &user, nil
}
