package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/MovieCatalog/pkg/model"
)

type RoleRepository interface {
	AddRole(ctx context.Context, role model.Role) (*model.Role, error)
	DeleteRole(ctx context.Context, name string) error
	GetRoles(ctx context.Context) ([]*model.Role, error)
	GrantRole(ctx context.Context, userID uint, name string) (*model.Role, error)
	RevokeRole(ctx context.Context, userID uint, name string) error
	UpdateRole(ctx context.Context, name string, description *string) (*model.Role, error)
}

func roleByName(db *gorm.DB, name string) (*model.Role, error) {
	var role model.Role

	if err := db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, notFound(err, "role %q", name)
	}

	return &role, nil
}

// AddRole inserts the role, reporting ErrConflict when the name is taken.
func (r *Repository) AddRole(ctx context.Context, role model.Role) (*model.Role, error) {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&role)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: role %q", ErrConflict, role.Name)
	}

	return &role, nil
}

func (r *Repository) GetRoles(ctx context.Context) ([]*model.Role, error) {
	var roles []*model.Role

	result := r.DB.WithContext(ctx).Order("name ASC").Find(&roles)
	if result.Error != nil {
		return nil, result.Error
	}

	return roles, nil
}

func (r *Repository) UpdateRole(ctx context.Context, name string, description *string) (*model.Role, error) {
	var role *model.Role

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if role, err = roleByName(tx, name); err != nil {
			return err
		}

		if description == nil {
			return nil
		}

		return tx.Model(role).Update("description", *description).Error
	})
	if err != nil {
		return nil, err
	}

	return role, nil
}

// DeleteRole removes the role and its grants in one transaction.
func (r *Repository) DeleteRole(ctx context.Context, name string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		role, err := roleByName(tx, name)
		if err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM user_roles WHERE role_id = ?", role.ID).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Delete(role).Error; err != nil {
			r.Logger.Error("error deleting role", zap.String("name", name), zap.Error(err))

			return err
		}

		return nil
	})
}

// GrantRole gives the user the named role. An existing grant is reported as ErrConflict.
func (r *Repository) GrantRole(ctx context.Context, userID uint, name string) (*model.Role, error) {
	var role *model.Role

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if role, err = roleByName(tx, name); err != nil {
			return err
		}

		result := tx.Exec("INSERT INTO user_roles (user_id, role_id) VALUES (?, ?) ON CONFLICT DO NOTHING", userID, role.ID)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: user %d already has role %q", ErrConflict, userID, name)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return role, nil
}

func (r *Repository) RevokeRole(ctx context.Context, userID uint, name string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		role, err := roleByName(tx, name)
		if err != nil {
			return err
		}

		result := tx.Exec("DELETE FROM user_roles WHERE user_id = ? AND role_id = ?", userID, role.ID)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: user %d does not have role %q", ErrNotFound, userID, name)
		}

		return nil
	})
}
