package login

import (
	"context"

	"github.com/conradreeve/crm-service/internal/apperr"
	"github.com/conradreeve/crm-service/internal/users"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDirectory is the slice of the users service login needs.
type UserDirectory interface {
	Create(req users.SignupRequest) (*users.User, error)
	GetByEmail(email string) (*users.User, error)
	ValidatePassword(id, presented string) (bool, error)
}

// SessionManager is the slice of the sessions service login needs.
type SessionManager interface {
	Create(userID string) (string, error)
	DeleteCurrent(ctx context.Context) (bool, error)
}

// Service handles credential exchange: signup, login, logout.
type Service struct {
	users    UserDirectory
	sessions SessionManager
}

func NewService(users UserDirectory, sessions SessionManager) *Service {
	return &Service{users: users, sessions: sessions}
}

// Login validates the presented credentials and returns a fresh session
// token. A wrong password is an InvalidCredential failure, not a retry.
func (s *Service) Login(req LoginRequest) (string, error) {
	if req.Email == "" {
		return "", apperr.MissingField("email")
	}
	if req.Password == "" {
		return "", apperr.MissingField("password")
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return "", err
	}

	valid, err := s.users.ValidatePassword(user.ID, req.Password)
	if err != nil {
		return "", err
	}
	if !valid {
		return "", apperr.New(apperr.KindInvalidCredential, "password is not valid")
	}

	return s.sessions.Create(user.ID)
}

// Signup creates the user and immediately opens a session for it.
func (s *Service) Signup(req users.SignupRequest) (string, error) {
	user, err := s.users.Create(req)
	if err != nil {
		return "", err
	}
	return s.sessions.Create(user.ID)
}

// Logout deletes the caller's current session.
func (s *Service) Logout(ctx context.Context) error {
	_, err := s.sessions.DeleteCurrent(ctx)
	return err
}
