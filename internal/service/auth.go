package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/logger"
	"hotelops-backend/internal/repository"
	"hotelops-backend/internal/security"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so login failures do not reveal which part was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

type authService struct {
	staffRepo repository.StaffRepository
	tokens    security.TokenManager
}

func NewAuthService(staffRepo repository.StaffRepository, tokens security.TokenManager) AuthService {
	return &authService{staffRepo: staffRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.Staff, error) {
	staff, err := s.staffRepo.GetByUsername(ctx, username)
	if err != nil {
		logger.Warn("login failed", "username", username, "reason", "unknown user")
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		logger.Warn("login failed", "username", username, "reason", "bad password")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(staff.ID, staff.Name, staff.Role)
	if err != nil {
		return "", nil, err
	}

	logger.Info("staff logged in", "staff_id", staff.ID, "username", username)
	return token, staff, nil
}
