package leads

import "time"

// LeadStatus tracks how far along the pipeline a lead is.
type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusQualified LeadStatus = "qualified"
	StatusLost      LeadStatus = "lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusLost:
		return true
	}
	return false
}

type Lead struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customer_id"`
	Status     LeadStatus `json:"status"`
	Name       string     `json:"name"`
	Source     string     `json:"source"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (l Lead) DocumentID() string { return l.ID }
