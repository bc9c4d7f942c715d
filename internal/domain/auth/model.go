package auth

import "time"

// Admin is a stored administrator identity. PasswordHash is persisted but never
// leaves the package in a response; handlers work with Identity.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated principal without secret fields.
type Identity struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Admin) Identity() *Identity {
	return &Identity{ID: a.ID, Username: a.Username, CreatedAt: a.CreatedAt}
}
