package sessions

import (
	"context"
	"time"

	"github.com/conradreeve/crm-service/internal/apperr"
	"github.com/conradreeve/crm-service/internal/users"
	"github.com/conradreeve/crm-service/internal/utils"
	"github.com/google/uuid"
)

// UserDirectory is the slice of the users service the session manager needs.
type UserDirectory interface {
	Get(id string) (*users.User, error)
}

// TokenIssuer issues and inspects bearer tokens.
type TokenIssuer interface {
	Issue(userID, email, displayName string) (string, error)
	IsActive(token string) bool
}

// Service orchestrates session creation, lookup, revocation and liveness.
type Service struct {
	repo   Repo
	users  UserDirectory
	issuer TokenIssuer
	expiry time.Duration
}

func NewService(repo Repo, users UserDirectory, issuer TokenIssuer, expiry time.Duration) *Service {
	return &Service{repo: repo, users: users, issuer: issuer, expiry: expiry}
}

// Create resolves the user, issues a token and persists the session record.
// A missing user fails before any token is issued.
func (s *Service) Create(userID string) (string, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return "", err
	}

	token, err := s.issuer.Issue(user.ID, user.Email, user.FirstName+" "+user.LastName)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	session := Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    user.ID,
		UserEmail: user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.expiry),
	}
	if err := s.repo.Create(session); err != nil {
		return "", err
	}
	return token, nil
}

// Get returns the session with the given id, or nil when there is none.
// A miss here is a valid result, not an error.
func (s *Service) Get(id string) (*Session, error) {
	return s.repo.Get(id)
}

// All dumps every session in the store, unfiltered and unpaginated. Fine at
// this scale; a larger deployment would need paging.
func (s *Service) All() ([]Session, error) {
	return s.repo.All()
}

func (s *Service) Delete(id string) (bool, error) {
	if id == "" {
		return false, apperr.MissingField("id")
	}
	return s.repo.DeleteByID(id)
}

// DeleteCurrent revokes the session behind the caller's own token. The
// store is never touched when the context carries no token.
func (s *Service) DeleteCurrent(ctx context.Context) (bool, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok || token == "" {
		return false, apperr.New(apperr.KindUnauthorized, "no token on request context")
	}
	return s.repo.DeleteByToken(token)
}

// DeleteAllForCurrentUser revokes every session of the calling user.
func (s *Service) DeleteAllForCurrentUser(ctx context.Context) (bool, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || userID == "" {
		return false, apperr.New(apperr.KindUnauthorized, "no user id on request context")
	}
	return s.repo.DeleteAllForUser(userID)
}

// IsTokenActive reports liveness of the caller's token.
func (s *Service) IsTokenActive(ctx context.Context) bool {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok || token == "" {
		return false
	}
	return s.issuer.IsActive(token)
}
