package customers

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

func (s *Service) Search(req SearchRequest) ([]Customer, error) {
	return s.repo.Search(req)
}

func (s *Service) Get(id string) (*Customer, error) {
	if id == "" {
		return nil, apperr.MissingField("id")
	}
	customer, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "customer not found for id %s", id)
	}
	return customer, nil
}

func (s *Service) Create(model Customer) (*Customer, error) {
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

func (s *Service) Update(id string, model Customer) error {
	if err := validate(model); err != nil {
		return err
	}
	// Make sure the customer exists before writing.
	existing, err := s.Get(id)
	if err != nil {
		return err
	}
	model.ID = existing.ID
	model.CreatedAt = existing.CreatedAt
	return s.repo.Save(model)
}

func (s *Service) UpdateStatus(id string, req StatusUpdateRequest) error {
	if !req.Status.Valid() {
		return apperr.MissingField("status")
	}
	customer, err := s.Get(id)
	if err != nil {
		return err
	}
	customer.Status = req.Status
	return s.repo.Save(*customer)
}

func (s *Service) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	_, err := s.repo.Delete(id)
	return err
}

func validate(model Customer) error {
	if model.Email == "" {
		return apperr.MissingField("email")
	}
	if model.FirstName == "" {
		return apperr.MissingField("first_name")
	}
	if model.LastName == "" {
		return apperr.MissingField("last_name")
	}
	if model.PhoneNumber == "" {
		return apperr.MissingField("phone_number")
	}
	if model.Company == "" {
		return apperr.MissingField("company")
	}
	if !model.Status.Valid() {
		return apperr.MissingField("status")
	}
	return nil
}
