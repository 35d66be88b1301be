package leads

import (
	"time"

	"github.com/conradreeve/crm-service/internal/apperr"
	"github.com/google/uuid"
)

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(id string) (*Lead, error) {
	if id == "" {
		return nil, apperr.MissingField("id")
	}
	lead, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "lead not found for id %s", id)
	}
	return lead, nil
}

// ForCustomer lists every lead tied to the customer. A customer with no
// leads yields an empty list, not an error.
func (s *Service) ForCustomer(customerID string) ([]Lead, error) {
	if customerID == "" {
		return nil, apperr.MissingField("customer_id")
	}
	return s.repo.ForCustomer(customerID)
}

func (s *Service) Create(model Lead) (*Lead, error) {
	if err := validate(model); err != nil {
		return nil, err
	}

	model.ID = uuid.NewString()
	model.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(model); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *Service) Update(id string, model Lead) error {
	if err := validate(model); err != nil {
		return err
	}
	existing, err := s.Get(id)
	if err != nil {
		return err
	}
	model.ID = existing.ID
	model.CreatedAt = existing.CreatedAt
	return s.repo.Save(model)
}

func validate(model Lead) error {
	if model.Source == "" {
		return apperr.MissingField("source")
	}
	if model.Name == "" {
		return apperr.MissingField("name")
	}
	if model.CustomerID == "" {
		return apperr.MissingField("customer_id")
	}
	if !model.Status.Valid() {
		return apperr.MissingField("status")
	}
	return nil
}
