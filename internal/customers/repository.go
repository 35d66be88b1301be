package customers

import (
	"sort"
	"strings"

	"github.com/conradreeve/crm-service/internal/store"
)

type Repo interface {
	Search(req SearchRequest) ([]Customer, error)
	Get(id string) (*Customer, error)
	Save(c Customer) error
	Delete(id string) (bool, error)
}

// Repository stores customers in the "customers" collection.
type Repository struct {
	col *store.Collection[Customer]
}

func NewRepository(s *store.Store) *Repository {
	return &Repository{col: store.NewCollection[Customer](s, "customers")}
}

// Search filters by search text and status, then sorts. Everything is a
// linear scan over the whole collection.
func (r *Repository) Search(req SearchRequest) ([]Customer, error) {
	all, err := r.col.All()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(req.SearchText)
	filtered := all[:0:0]
	for _, c := range all {
		if needle != "" && !matchesSearch(c, needle) {
			continue
		}
		if status := statusFromFilter(req.StatusFilter); status != "" && c.Status != status {
			continue
		}
		filtered = append(filtered, c)
	}

	sortCustomers(filtered, req.SortBy, req.SortDirection)
	return filtered, nil
}

func matchesSearch(c Customer, needle string) bool {
	for _, field := range []string{c.FirstName, c.LastName, c.Company, c.Email, c.PhoneNumber} {
		if strings.HasPrefix(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// statusFromFilter maps the legacy numeric filter onto a status value.
func statusFromFilter(filter *int) CustomerStatus {
	if filter == nil {
		return ""
	}
	switch *filter {
	case 0:
		return StatusActive
	case 1:
		return StatusLead
	case 2:
		return StatusNonActive
	}
	return ""
}

// comparators maps sortable field names to less functions. An explicit
// table instead of reflection: the set of sortable fields is part of the
// API surface.
var comparators = map[string]func(a, b Customer) bool{
	"first_name":   func(a, b Customer) bool { return a.FirstName < b.FirstName },
	"last_name":    func(a, b Customer) bool { return a.LastName < b.LastName },
	"company":      func(a, b Customer) bool { return a.Company < b.Company },
	"email":        func(a, b Customer) bool { return a.Email < b.Email },
	"phone_number": func(a, b Customer) bool { return a.PhoneNumber < b.PhoneNumber },
	"created_at":   func(a, b Customer) bool { return a.CreatedAt.Before(b.CreatedAt) },
}

func sortCustomers(list []Customer, sortBy, direction string) {
	less, ok := comparators[strings.ToLower(sortBy)]
	if !ok {
		// Unknown or empty sort field falls back to first name.
		less = comparators["first_name"]
	}
	if direction == "desc" {
		orig := less
		less = func(a, b Customer) bool { return orig(b, a) }
	}
	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
}

func (r *Repository) Get(id string) (*Customer, error) {
	return r.col.Find(func(c Customer) bool { return c.ID == id })
}

// Save upserts the customer under its id.
func (r *Repository) Save(c Customer) error {
	_, err := r.col.Replace(c.ID, c, true)
	return err
}

func (r *Repository) Delete(id string) (bool, error) {
	return r.col.DeleteByID(id)
}
