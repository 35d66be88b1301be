package users

import (
	"time"

	"github.com/conradreeve/crm-service/internal/apperr"
	"github.com/conradreeve/crm-service/internal/auth"
	"github.com/google/uuid"
)

// Service is the user directory: CRUD plus credential validation.
type Service struct {
	repo           Repo
	hasher         auth.PasswordHasher
	platformSecret string
}

func NewService(repo Repo, platformSecret string) *Service {
	return &Service{repo: repo, platformSecret: platformSecret}
}

// Get returns the user with the given id. A miss is a hard NotFound error,
// unlike session lookups.
func (s *Service) Get(id string) (*User, error) {
	if id == "" {
		return nil, apperr.MissingField("id")
	}
	user, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "user not found for id %s", id)
	}
	return user, nil
}

func (s *Service) GetByEmail(email string) (*User, error) {
	if email == "" {
		return nil, apperr.MissingField("email")
	}
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "user not found for email %s", email)
	}
	return user, nil
}

func (s *Service) EmailAvailable(email string) (bool, error) {
	return s.repo.EmailAvailable(email)
}

// Create validates the signup fields, derives the salt and password digest
// and persists a fresh user. The availability check and the insert are two
// separate store operations, so two concurrent signups with the same email
// can both pass the check.
func (s *Service) Create(req SignupRequest) (*User, error) {
	if req.Email == "" {
		return nil, apperr.MissingField("email")
	}
	if req.FirstName == "" {
		return nil, apperr.MissingField("first_name")
	}
	if req.LastName == "" {
		return nil, apperr.MissingField("last_name")
	}
	if req.Password == "" {
		return nil, apperr.MissingField("password")
	}

	available, err := s.repo.EmailAvailable(req.Email)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperr.New(apperr.KindConflict, "email is already in use")
	}

	salt := s.hasher.CreateSalt(s.platformSecret, req.Email)
	user := User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  s.hasher.HashPassword(req.Password, salt),
		Salt:      salt,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) All() ([]UserResponse, error) {
	list, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, u.Response())
	}
	return out, nil
}

// Edit updates the user's profile fields. Credentials are untouched; the
// stored hash and salt always win over whatever the request carried.
func (s *Service) Edit(id string, updated User) error {
	existing, err := s.Get(id)
	if err != nil {
		return err
	}
	updated.ID = existing.ID
	updated.Password = existing.Password
	updated.Salt = existing.Salt
	updated.CreatedAt = existing.CreatedAt
	return s.repo.Edit(updated)
}

func (s *Service) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	_, err := s.repo.Delete(id)
	return err
}

// ValidatePassword re-hashes the presented password with the user's stored
// salt and compares against the stored digest.
func (s *Service) ValidatePassword(id, presented string) (bool, error) {
	if presented == "" {
		return false, apperr.MissingField("password")
	}
	user, err := s.Get(id)
	if err != nil {
		return false, err
	}
	hashed := s.hasher.HashPassword(presented, user.Salt)
	return s.hasher.CompareHashes(user.Password, hashed), nil
}

// ChangePassword re-hashes the new password under the user's existing salt;
// the salt is never rotated.
func (s *Service) ChangePassword(id string, req PasswordChangeRequest) error {
	if req.OldPassword == "" {
		return apperr.MissingField("old_password")
	}
	if req.NewPassword == "" {
		return apperr.MissingField("new_password")
	}

	valid, err := s.ValidatePassword(id, req.OldPassword)
	if err != nil {
		return err
	}
	if !valid {
		return apperr.New(apperr.KindInvalidCredential, "old password is not correct")
	}

	user, err := s.Get(id)
	if err != nil {
		return err
	}
	user.Password = s.hasher.HashPassword(req.NewPassword, user.Salt)
	return s.repo.Edit(*user)
}
