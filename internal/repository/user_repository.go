package repository

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// FindVisible lists active non-admin users with role and company names.
	FindVisible(ctx context.Context) ([]model.UserRow, error)
	FindByID(ctx context.Context, id uint) (*model.UserRow, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	CountByEmail(ctx context.Context, email string, excludeID uint) (int64, error)
	Update(ctx context.Context, user *model.User) error
	Deactivate(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("users u").
		Select("u.*, r.name AS role_name, c.name AS company_name").
		Joins("LEFT JOIN roles r ON r.id = u.role_id").
		Joins("LEFT JOIN companies c ON c.id = u.company_id")
}

func (r *userRepository) FindVisible(ctx context.Context) ([]model.UserRow, error) {
	var rows []model.UserRow
	err := r.joined(ctx).
		Where("u.isactive = ? AND u.role_id <> ?", true, model.RoleAdmin).
		Order("u.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.UserRow, error) {
	var rows []model.UserRow
	if err := r.joined(ctx).Where("u.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CountByEmail(ctx context.Context, email string, excludeID uint) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return affected(r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", user.ID).
		Select("email", "username", "role_id", "company_id").
		Updates(user))
}

func (r *userRepository) Deactivate(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Update("isactive", false))
}
