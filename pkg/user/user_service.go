package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/jwt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		Logout(ctx context.Context, jti string) error
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.UserResponse, error)
		IsSessionActive(ctx context.Context, jti string) (bool, error)
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
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if req.OrganizationID != "" {
		orgID, err := uuid.Parse(req.OrganizationID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		user.OrganizationID = &orgID
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueToken(ctx, user)
}

func (s *userService) issueToken(ctx context.Context, user *entities.User) (*domain.AuthResponse, error) {
	token, claims, err := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	if err != nil {
		return nil, err
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	session := &entities.AuthSession{
		ID:        jti,
		UserID:    user.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := s.userRepository.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return &domain.AuthResponse{
		User:        *toUserResponse(user),
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

func (s *userService) Logout(ctx context.Context, jti string) error {
	return s.userRepository.RevokeSession(ctx, jti)
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.UserResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}

	if len(updates) > 0 {
		if err := s.userRepository.UpdateUser(ctx, userID, updates); err != nil {
			return nil, err
		}
	}
	return s.Me(ctx, userID)
}

func (s *userService) IsSessionActive(ctx context.Context, jti string) (bool, error) {
	session, err := s.userRepository.GetSessionByID(ctx, jti)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if session.RevokedAt != nil {
		return false, nil
	}
	if time.Now().After(session.ExpiresAt) {
		return false, nil
	}
	return true, nil
}

func toUserResponse(user *entities.User) *domain.UserResponse {
	resp := &domain.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
		Address:   user.Address,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}
	if user.OrganizationID != nil {
		resp.OrganizationID = user.OrganizationID.String()
	}
	return resp
}
