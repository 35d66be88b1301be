package sessions

import (
	"github.com/conradreeve/crm-service/internal/store"
)

// Repo is the persistence surface the service needs.
type Repo interface {
	Create(s Session) error
	Get(id string) (*Session, error)
	All() ([]Session, error)
	DeleteByID(id string) (bool, error)
	DeleteByToken(token string) (bool, error)
	DeleteAllForUser(userID string) (bool, error)
}

// Repository stores sessions in the "sessions" collection.
type Repository struct {
	col *store.Collection[Session]
}

func NewRepository(s *store.Store) *Repository {
	return &Repository{col: store.NewCollection[Session](s, "sessions")}
}

func (r *Repository) Create(s Session) error {
	return r.col.Insert(s)
}

func (r *Repository) Get(id string) (*Session, error) {
	return r.col.Find(func(s Session) bool { return s.ID == id })
}

func (r *Repository) All() ([]Session, error) {
	return r.col.All()
}

func (r *Repository) DeleteByID(id string) (bool, error) {
	return r.col.DeleteByID(id)
}

func (r *Repository) DeleteByToken(token string) (bool, error) {
	return r.col.DeleteOne(func(s Session) bool { return s.Token == token })
}

func (r *Repository) DeleteAllForUser(userID string) (bool, error) {
	return r.col.DeleteMany(func(s Session) bool { return s.UserID == userID })
}
