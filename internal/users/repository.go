package users

import (
	"github.com/conradreeve/crm-service/internal/apperr"
	"github.com/conradreeve/crm-service/internal/store"
)

// Repo is the persistence surface the service needs; satisfied by the
// store-backed Repository and by test fakes.
type Repo interface {
	EmailAvailable(email string) (bool, error)
	Create(u User) error
	Get(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	Edit(u User) error
	All() ([]User, error)
	Delete(id string) (bool, error)
}

// Repository stores users in the "users" collection of the document store.
type Repository struct {
	col *store.Collection[User]
}

func NewRepository(s *store.Store) *Repository {
	return &Repository{col: store.NewCollection[User](s, "users")}
}

func (r *Repository) EmailAvailable(email string) (bool, error) {
	existing, err := r.col.Find(func(u User) bool { return u.Email == email })
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

func (r *Repository) Create(u User) error {
	return r.col.Insert(u)
}

func (r *Repository) Get(id string) (*User, error) {
	return r.col.Find(func(u User) bool { return u.ID == id })
}

func (r *Repository) GetByEmail(email string) (*User, error) {
	return r.col.Find(func(u User) bool { return u.Email == email })
}

func (r *Repository) Edit(u User) error {
	replaced, err := r.col.Replace(u.ID, u, false)
	if err != nil {
		return err
	}
	if !replaced {
		return apperr.Newf(apperr.KindNotFound, "user not found for id %s", u.ID)
	}
	return nil
}

func (r *Repository) All() ([]User, error) {
	return r.col.All()
}

func (r *Repository) Delete(id string) (bool, error) {
	return r.col.DeleteByID(id)
}
