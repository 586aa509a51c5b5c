package domain

import "time"

// User models a registered account in the credential store.
// Records are created on signup and never mutated or deleted afterwards.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the persisted logged-in indicator. At most one session is
// active at a time; its presence is the sole gate checked by the route guard.
type Session struct {
	Email string `json:"email"`
}

// RememberedIdentity is the opt-in snapshot stored when the user checks
// "remember me". It has no effect on authorization; it only feeds the
// greeting text.
type RememberedIdentity struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}
