package leads_test

import (
	"testing"
	"time"

	"github.com/conradreeve/crm-service/internal/apperr"
	"github.com/conradreeve/crm-service/internal/leads"
)

type fakeRepo struct {
	byID map[string]leads.Lead
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[string]leads.Lead)}
}

func (f *fakeRepo) ForCustomer(customerID string) ([]leads.Lead, error) {
	var out []leads.Lead
	for _, l := range f.byID {
		if l.CustomerID == customerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeRepo) Get(id string) (*leads.Lead, error) {
	if l, ok := f.byID[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (f *fakeRepo) Save(l leads.Lead) error {
	f.byID[l.ID] = l
	return nil
}

func validLead() leads.Lead {
	return leads.Lead{
		CustomerID: "cust-1",
		Status:     leads.StatusNew,
		Name:       "Website inquiry",
		Source:     "web",
	}
}

func TestCreate_AssignsIDAndTimestamp(t *testing.T) {
	svc := leads.NewService(newFakeRepo())

	created, err := svc.Create(validLead())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := leads.NewService(newFakeRepo())

	cases := []struct {
		name   string
		mutate func(*leads.Lead)
	}{
		{"missing source", func(l *leads.Lead) { l.Source = "" }},
		{"missing name", func(l *leads.Lead) { l.Name = "" }},
		{"missing customer id", func(l *leads.Lead) { l.CustomerID = "" }},
		{"bad status", func(l *leads.Lead) { l.Status = "signed" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lead := validLead()
			tc.mutate(&lead)
			if _, err := svc.Create(lead); apperr.KindOf(err) != apperr.KindInvalidInput {
				t.Errorf("Create error = %v, want invalid input", err)
			}
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := leads.NewService(newFakeRepo())

	if _, err := svc.Get("nope"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Get error = %v, want not found", err)
	}
}

func TestUpdate_PreservesIDAndCreatedAt(t *testing.T) {
	repo := newFakeRepo()
	svc := leads.NewService(repo)

	created, err := svc.Create(validLead())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated := validLead()
	updated.ID = "attacker-chosen"
	updated.CreatedAt = time.Now().Add(48 * time.Hour)
	updated.Status = leads.StatusQualified

	if err := svc.Update(created.ID, updated); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	stored := repo.byID[created.ID]
	if stored.ID != created.ID {
		t.Errorf("stored id = %q, want %q", stored.ID, created.ID)
	}
	if !stored.CreatedAt.Equal(created.CreatedAt) {
		t.Error("update must not rewrite the creation timestamp")
	}
	if stored.Status != leads.StatusQualified {
		t.Errorf("stored status = %q, want qualified", stored.Status)
	}
}

func TestForCustomer_EmptyIsNotAnError(t *testing.T) {
	svc := leads.NewService(newFakeRepo())

	got, err := svc.ForCustomer("cust-without-leads")
	if err != nil {
		t.Fatalf("ForCustomer error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no leads, got %d", len(got))
	}
}
