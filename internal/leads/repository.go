package leads

import (
	"github.com/conradreeve/crm-service/internal/store"
)

type Repo interface {
	ForCustomer(customerID string) ([]Lead, error)
	Get(id string) (*Lead, error)
	Save(l Lead) error
}

// Repository stores leads in the "customer_leads" collection.
type Repository struct {
	col *store.Collection[Lead]
}

func NewRepository(s *store.Store) *Repository {
	return &Repository{col: store.NewCollection[Lead](s, "customer_leads")}
}

func (r *Repository) ForCustomer(customerID string) ([]Lead, error) {
	return r.col.Filter(func(l Lead) bool { return l.CustomerID == customerID })
}

func (r *Repository) Get(id string) (*Lead, error) {
	return r.col.Find(func(l Lead) bool { return l.ID == id })
}

// Save upserts the lead under its id.
func (r *Repository) Save(l Lead) error {
	_, err := r.col.Replace(l.ID, l, true)
	return err
}
