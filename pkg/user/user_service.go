package user

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Theamazinguero/recipeclone2/domain"
	"github.com/Theamazinguero/recipeclone2/entities"
	"github.com/Theamazinguero/recipeclone2/internal/utils"
	"github.com/Theamazinguero/recipeclone2/pkg/jwt"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (*domain.MeResponse, error)
		SeedRolesAndAdmin(ctx context.Context, adminEmail, adminPassword string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepository.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailAlreadyUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.userRepository.AssignRole(ctx, user.ID, domain.RoleUser); err != nil {
		return nil, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email, false)
	return &domain.AuthResponse{
		Token:       token,
		UserID:      user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsAdmin:     false,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and wrong password produce the same error so the
	// response never reveals whether an account exists.
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.ComparePassword(user.PasswordHash, req.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	isAdmin, err := s.hasAdminRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email, isAdmin)
	return &domain.AuthResponse{
		Token:       token,
		UserID:      user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsAdmin:     isAdmin,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.MeResponse, error) {
	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	isAdmin, err := s.hasAdminRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.MeResponse{
		UserID:      user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsAdmin:     isAdmin,
	}, nil
}

// SeedRolesAndAdmin is the one-time startup bootstrap: both roles exist
// afterwards and exactly one well-known admin account is present. Safe to
// run on every start.
func (s *userService) SeedRolesAndAdmin(ctx context.Context, adminEmail, adminPassword string) error {
	for _, roleName := range []string{domain.RoleUser, domain.RoleAdmin} {
		if _, err := s.userRepository.EnsureRole(ctx, roleName); err != nil {
			return err
		}
	}

	adminEmail = strings.ToLower(strings.TrimSpace(adminEmail))
	_, err := s.userRepository.FindByEmail(ctx, adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &entities.User{
		ID:           uuid.New(),
		Email:        adminEmail,
		PasswordHash: hash,
		DisplayName:  "Admin",
	}
	if err := s.userRepository.CreateUser(ctx, admin); err != nil {
		return err
	}
	if err := s.userRepository.AssignRole(ctx, admin.ID, domain.RoleAdmin); err != nil {
		return err
	}

	log.Printf("seeded bootstrap admin account %s", adminEmail)
	return nil
}

func (s *userService) hasAdminRole(ctx context.Context, userID uuid.UUID) (bool, error) {
	roles, err := s.userRepository.GetRoles(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, role := range roles {
		if role.Name == domain.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}
