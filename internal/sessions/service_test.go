package sessions_test

import (
	"context"
	"testing"
	"time"

	"github.com/conradreeve/crm-service/internal/apperr"
	"github.com/conradreeve/crm-service/internal/sessions"
	"github.com/conradreeve/crm-service/internal/users"
	"github.com/conradreeve/crm-service/internal/utils"
)

// fakeRepo records which operations were invoked.
type fakeRepo struct {
	stored []sessions.Session

	deleteByTokenCalls   int
	deleteAllForUserArgs []string
}

func (f *fakeRepo) Create(s sessions.Session) error {
	f.stored = append(f.stored, s)
	return nil
}

func (f *fakeRepo) Get(id string) (*sessions.Session, error) {
	for i := range f.stored {
		if f.stored[i].ID == id {
			return &f.stored[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) All() ([]sessions.Session, error) { return f.stored, nil }

func (f *fakeRepo) DeleteByID(id string) (bool, error) { return false, nil }

func (f *fakeRepo) DeleteByToken(token string) (bool, error) {
	f.deleteByTokenCalls++
	return true, nil
}

func (f *fakeRepo) DeleteAllForUser(userID string) (bool, error) {
	f.deleteAllForUserArgs = append(f.deleteAllForUserArgs, userID)
	return true, nil
}

// fakeDirectory serves one known user.
type fakeDirectory struct {
	user *users.User
}

func (f *fakeDirectory) Get(id string) (*users.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, apperr.Newf(apperr.KindNotFound, "user not found for id %s", id)
}

// fakeIssuer counts issuances.
type fakeIssuer struct {
	issued int
	active bool
}

func (f *fakeIssuer) Issue(userID, email, displayName string) (string, error) {
	f.issued++
	return "token-for-" + userID, nil
}

func (f *fakeIssuer) IsActive(token string) bool { return f.active }

func knownUser() *users.User {
	return &users.User{ID: "user-1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
}

func TestCreate_PersistsSession(t *testing.T) {
	repo := &fakeRepo{}
	issuer := &fakeIssuer{}
	svc := sessions.NewService(repo, &fakeDirectory{user: knownUser()}, issuer, 8*time.Hour)

	token, err := svc.Create("user-1")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if token != "token-for-user-1" {
		t.Errorf("unexpected token %q", token)
	}
	if len(repo.stored) != 1 {
		t.Fatalf("expected 1 stored session, got %d", len(repo.stored))
	}

	s := repo.stored[0]
	if s.UserID != "user-1" || s.UserEmail != "ada@example.com" || s.Token != token {
		t.Errorf("session fields wrong: %+v", s)
	}
	if s.ID == "" {
		t.Error("expected a generated session id")
	}
	if !s.ExpiresAt.After(s.CreatedAt) {
		t.Errorf("expiry %v not after creation %v", s.ExpiresAt, s.CreatedAt)
	}
}

// TestCreate_UnknownUser pins down ordering: the user lookup fails before
// any token is issued or session persisted.
func TestCreate_UnknownUser(t *testing.T) {
	repo := &fakeRepo{}
	issuer := &fakeIssuer{}
	svc := sessions.NewService(repo, &fakeDirectory{}, issuer, 8*time.Hour)

	_, err := svc.Create("ghost")
	if err == nil {
		t.Fatal("expected error for unknown user")
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
	if issuer.issued != 0 {
		t.Error("no token must be issued for an unknown user")
	}
	if len(repo.stored) != 0 {
		t.Error("no session must be persisted for an unknown user")
	}
}

func TestGet_MissIsNil(t *testing.T) {
	svc := sessions.NewService(&fakeRepo{}, &fakeDirectory{}, &fakeIssuer{}, time.Hour)

	s, err := svc.Get("nope")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil for a miss, got %+v", s)
	}
}

func TestDeleteCurrent_NoToken(t *testing.T) {
	repo := &fakeRepo{}
	svc := sessions.NewService(repo, &fakeDirectory{}, &fakeIssuer{}, time.Hour)

	_, err := svc.DeleteCurrent(context.Background())
	if err == nil {
		t.Fatal("expected error without a token on the context")
	}
	if apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Errorf("expected Unauthorized, got %v", err)
	}
	if repo.deleteByTokenCalls != 0 {
		t.Error("store delete must not be invoked without a token")
	}
}

func TestDeleteCurrent_WithToken(t *testing.T) {
	repo := &fakeRepo{}
	svc := sessions.NewService(repo, &fakeDirectory{}, &fakeIssuer{}, time.Hour)

	ctx := utils.WithAuth(context.Background(), "user-1", "some-token")
	deleted, err := svc.DeleteCurrent(ctx)
	if err != nil {
		t.Fatalf("DeleteCurrent error: %v", err)
	}
	if !deleted {
		t.Error("expected deletion to be reported")
	}
	if repo.deleteByTokenCalls != 1 {
		t.Errorf("expected 1 delete call, got %d", repo.deleteByTokenCalls)
	}
}

func TestDeleteAllForCurrentUser(t *testing.T) {
	repo := &fakeRepo{}
	svc := sessions.NewService(repo, &fakeDirectory{}, &fakeIssuer{}, time.Hour)

	_, err := svc.DeleteAllForCurrentUser(context.Background())
	if apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Errorf("expected Unauthorized without a user id, got %v", err)
	}
	if len(repo.deleteAllForUserArgs) != 0 {
		t.Error("store must not be touched without a user id")
	}

	ctx := utils.WithAuth(context.Background(), "user-1", "tok")
	if _, err := svc.DeleteAllForCurrentUser(ctx); err != nil {
		t.Fatalf("DeleteAllForCurrentUser error: %v", err)
	}
	if len(repo.deleteAllForUserArgs) != 1 || repo.deleteAllForUserArgs[0] != "user-1" {
		t.Errorf("expected delete for user-1, got %v", repo.deleteAllForUserArgs)
	}
}

func TestIsTokenActive(t *testing.T) {
	issuer := &fakeIssuer{active: true}
	svc := sessions.NewService(&fakeRepo{}, &fakeDirectory{}, issuer, time.Hour)

	if svc.IsTokenActive(context.Background()) {
		t.Error("expected false without a token on the context")
	}

	ctx := utils.WithAuth(context.Background(), "user-1", "tok")
	if !svc.IsTokenActive(ctx) {
		t.Error("expected true for a live token")
	}

	issuer.active = false
	if svc.IsTokenActive(ctx) {
		t.Error("expected false for an expired token")
	}
}
