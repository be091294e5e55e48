package services

import (
	"context"
	"errors"

	"pharmacy-shop/models"
	"pharmacy-shop/repositories"
	"pharmacy-shop/stores"
	"pharmacy-shop/utils"
)

type AuthService struct {
	userRepo *repositories.UserRepository
	sessions *stores.SessionStore
}

func NewAuthService(sessions *stores.SessionStore) *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
		sessions: sessions,
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	existingUser, _ := s.userRepo.FindByEmail(req.Email)
	if existingUser != nil {
		return nil, errors.New("email already registered")
	}

	role := models.RoleUser
	if req.Role != "" {
		parsed, ok := models.ParseRole(req.Role)
		if !ok {
			return nil, errors.New("unknown role")
		}
		role = parsed
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		UserID:   user.ID,
		FullName: req.FullName,
		Phone:    req.Phone,
	}

	if err := s.userRepo.CreateProfile(profile); err != nil {
		return nil, err
	}

	return s.issueSession(ctx, user)
}

// Login validates credentials and transitions the caller's session from
// Anonymous to Authenticated. A failed login leaves no session behind.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, errors.New("invalid email or password")
	}

	return s.issueSession(ctx, user)
}

// Logout revokes the token; idempotent for already-revoked tokens.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.SignOut(ctx, token)
}

func (s *AuthService) GetProfile(userID int) (*models.UserWithProfile, error) {
	return s.userRepo.GetUserWithProfile(userID)
}

func (s *AuthService) UpdateProfile(userID int, req models.UpdateProfileRequest) error {
	return s.userRepo.UpdateProfile(&models.UserProfile{
		UserID:   userID,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
}

func (s *AuthService) issueSession(ctx context.Context, user *models.User) (*models.LoginResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SignIn(ctx, user.ID, token, utils.TokenExpiry()); err != nil {
		return nil, err
	}

	userWithProfile, err := s.userRepo.GetUserWithProfile(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *userWithProfile,
	}, nil
}
