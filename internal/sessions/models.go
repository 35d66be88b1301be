package sessions

import "time"

// Session links an issued bearer token to a user. A user may hold several
// concurrent sessions; each is revocable on its own. Expiry is checked
// lazily at validation time, there is no background sweep.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) DocumentID() string { return s.ID }
