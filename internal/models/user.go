package models

// Profile is the authenticated user's account data. Email is immutable
// from the client's side; the password is write-only and never fetched.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Registration is the sign-up draft.
type Registration struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the login draft.
type Credentials struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// PasswordChange is the current/new/confirm triple from the profile
// view. Confirm never leaves the client.
type PasswordChange struct {
	Current string
	New     string
	Confirm string
}
