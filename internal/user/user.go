package user

// User is the identity attached to an authenticated session.
// It lives only inside the session record; there is no user table.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
