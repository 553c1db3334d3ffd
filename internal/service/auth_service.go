package service

import (
	"errors"

	"github.com/google/uuid"

	"go-gold-catalog/internal/repository"
	"go-gold-catalog/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Logout(userID uuid.UUID) error
	Session(tokenString string) (*SessionResponse, error)
}

type LoginResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// SessionResponse is the boolean "authenticated" projection plus the display
// email the admin UI shows; nothing more is exposed.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// Rotate the token version so earlier sessions drop off.
	newTokenVersion := uuid.New().String()
	if err := s.userRepo.UpdateTokenVersion(user.ID, newTokenVersion); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:    token,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

// Logout invalidates every outstanding token for the user.
func (s *authService) Logout(userID uuid.UUID) error {
	return s.userRepo.UpdateTokenVersion(userID, uuid.New().String())
}

func (s *authService) Session(tokenString string) (*SessionResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return &SessionResponse{Authenticated: false}, nil
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil || !user.IsActive || user.TokenVersion != claims.TokenVersion {
		return &SessionResponse{Authenticated: false}, nil
	}

	return &SessionResponse{Authenticated: true, Email: user.Email}, nil
}
