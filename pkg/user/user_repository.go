package user

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error

		CreateSession(ctx context.Context, session *entities.AuthSession) error
		GetSessionByID(ctx context.Context, jti string) (*entities.AuthSession, error)
		RevokeSession(ctx context.Context, jti string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("Organization").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *userRepository) CreateSession(ctx context.Context, session *entities.AuthSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *userRepository) GetSessionByID(ctx context.Context, jti string) (*entities.AuthSession, error) {
	var session entities.AuthSession
	if err := r.db.WithContext(ctx).Where("id = ?", jti).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *userRepository) RevokeSession(ctx context.Context, jti string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AuthSession{}).
		Where("id = ? AND revoked_at IS NULL", jti).
		Update("revoked_at", now).Error
}
