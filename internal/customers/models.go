package customers

import "time"

// CustomerStatus is the lifecycle stage of a customer record.
type CustomerStatus string

const (
	StatusActive    CustomerStatus = "active"
	StatusLead      CustomerStatus = "lead"
	StatusNonActive CustomerStatus = "non_active"
)

func (s CustomerStatus) Valid() bool {
	switch s {
	case StatusActive, StatusLead, StatusNonActive:
		return true
	}
	return false
}

type Customer struct {
	ID          string         `json:"id"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Company     string         `json:"company"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phone_number"`
	Status      CustomerStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (c Customer) DocumentID() string { return c.ID }

// SearchRequest carries the list-endpoint query parameters. StatusFilter
// uses the legacy numeric encoding: 0 active, 1 lead, 2 non_active.
type SearchRequest struct {
	SortBy        string
	SortDirection string
	SearchText    string
	StatusFilter  *int
}

type StatusUpdateRequest struct {
	Status CustomerStatus `json:"status"`
}
