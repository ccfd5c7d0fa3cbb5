package models

// User is the authenticated identity behind a session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session couples an access token with the identity it belongs to.
type Session struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
