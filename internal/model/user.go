package model

import "time"

// User is one registered account in the token-variant auth store. The whole
// record, session registry included, lives inside the single persisted
// document.
type User struct {
	UserID                           int      `json:"userId"`
	Name                             string   `json:"name"`
	Email                            string   `json:"email"`
	Password                         string   `json:"password"`
	NumSuccessfulLogins              int      `json:"numSuccessfulLogins"`
	NumFailedPasswordsSinceLastLogin int      `json:"numFailedPasswordsSinceLastLogin"`
	OldPasswords                     []string `json:"oldPasswords"`
	TotalSessionNum                  int      `json:"totalSessionNum"`
	ActiveSessionIDs                 []int    `json:"activeSessionIds"`
}

// HasSession reports whether sessionID is currently active for the user.
func (u *User) HasSession(sessionID int) bool {
	for _, id := range u.ActiveSessionIDs {
		if id == sessionID {
			return true
		}
	}
	return false
}

type RegisterParams struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	NameFirst string `json:"nameFirst"`
	NameLast  string `json:"nameLast"`
}

// Account is one record in the cookie-variant users.json store. Passwords
// here are bcrypt hashes, not the SHA-256 digests of the token variant.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionClaim is the JSON value carried by the session cookie.
type SessionClaim struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
