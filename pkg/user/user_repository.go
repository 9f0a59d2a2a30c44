package user

import (
	"context"
	"errors"
	"strings"

	"github.com/Theamazinguero/recipeclone2/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		FindByEmail(ctx context.Context, email string) (*entities.User, error)
		FindByID(ctx context.Context, id string) (*entities.User, error)
		CreateUser(ctx context.Context, user *entities.User) error
		GetRoles(ctx context.Context, userID uuid.UUID) ([]entities.Role, error)
		AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error
		EnsureRole(ctx context.Context, roleName string) (*entities.Role, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Email uniqueness is case-insensitive: emails are stored lower-cased and
// looked up with LOWER().
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	user.Email = strings.ToLower(user.Email)
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetRoles(ctx context.Context, userID uuid.UUID) ([]entities.Role, error) {
	var roles []entities.Role
	if err := r.db.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *userRepository) AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	role, err := r.EnsureRole(ctx, roleName)
	if err != nil {
		return err
	}

	user := entities.User{ID: userID}
	return r.db.WithContext(ctx).Model(&user).Association("Roles").Append(role)
}

// EnsureRole is an idempotent create-if-absent. The read-then-write race is
// tolerated: a concurrent duplicate insert loses to the unique index and the
// existing row is returned instead.
func (r *userRepository) EnsureRole(ctx context.Context, roleName string) (*entities.Role, error) {
	var role entities.Role
	err := r.db.WithContext(ctx).Where("name = ?", roleName).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role = entities.Role{ID: uuid.New(), Name: roleName}
	if err := r.db.WithContext(ctx).Create(&role).Error; err != nil {
		// someone else created it first
		var existing entities.Role
		if ferr := r.db.WithContext(ctx).Where("name = ?", roleName).First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &role, nil
}
