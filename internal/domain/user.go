package domain

import "time"

// User is the authenticated principal attached to a request. Authentication
// itself is delegated to the session layer; the inventory core only needs to
// know who is acting.
type User struct {
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
