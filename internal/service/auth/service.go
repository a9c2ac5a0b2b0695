package auth

import (
	"fmt"
	"math/rand"

	"github.com/strivefit/strivefit/internal/datastore"
	"github.com/strivefit/strivefit/internal/model"
)

const (
	sessionIDMin         = 10000000
	sessionIDSpan        = 90000000
	sessionIDMaxAttempts = 100
)

type service struct {
	store *datastore.Store
}

func New(store *datastore.Store) *service {
	return &service{store: store}
}

func findUserWithEmail(doc *datastore.Document, email string) *model.User {
	for i := range doc.Users {
		if doc.Users[i].Email == email {
			return &doc.Users[i]
		}
	}
	return nil
}

func findUserWithID(doc *datastore.Document, userID int) *model.User {
	for i := range doc.Users {
		if doc.Users[i].UserID == userID {
			return &doc.Users[i]
		}
	}
	return nil
}

// newSessionID draws 8-digit ids until one is unused by any active session.
func newSessionID(doc *datastore.Document) (int, error) {
	for attempt := 0; attempt < sessionIDMaxAttempts; attempt++ {
		id := sessionIDMin + rand.Intn(sessionIDSpan)
		inUse := false
		for i := range doc.Users {
			if doc.Users[i].HasSession(id) {
				inUse = true
				break
			}
		}
		if !inUse {
			return id, nil
		}
	}
	return 0, model.ErrorSessionIDCollision
}

// Register creates a new user and returns a token for its first session.
// Preconditions are checked in a fixed order: duplicate email, email format,
// first name, last name, password strength.
func (s *service) Register(params *model.RegisterParams) (string, error) {
	token := ""

	err := s.store.Update(func(doc *datastore.Document) (bool, error) {
		if findUserWithEmail(doc, params.Email) != nil {
			return false, model.ErrorEmailInUse
		}
		if !IsValidEmail(params.Email) {
			return false, model.ErrorInvalidEmail
		}
		if !IsValidName(params.NameFirst) {
			return false, model.ErrorInvalidFirstName
		}
		if !IsValidName(params.NameLast) {
			return false, model.ErrorInvalidLastName
		}
		if !IsValidPassword(params.Password) {
			return false, model.ErrorWeakPassword
		}

		sessionID, err := newSessionID(doc)
		if err != nil {
			return false, err
		}

		user := model.User{
			UserID:                           len(doc.Users),
			Name:                             fmt.Sprintf("%s %s", params.NameFirst, params.NameLast),
			Email:                            params.Email,
			Password:                         HashPassword(params.Password),
			NumSuccessfulLogins:              1,
			NumFailedPasswordsSinceLastLogin: 0,
			OldPasswords:                     []string{},
			TotalSessionNum:                  1,
			ActiveSessionIDs:                 []int{sessionID},
		}
		doc.Users = append(doc.Users, user)

		token = EncodeToken(user.UserID, sessionID)
		return true, nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// Login verifies credentials and opens a new session. Unknown email and wrong
// password both surface as ErrorInvalidCredentials; a wrong password still
// persists the bumped failure counter.
func (s *service) Login(email string, password string) (string, error) {
	token := ""

	err := s.store.Update(func(doc *datastore.Document) (bool, error) {
		user := findUserWithEmail(doc, email)
		if user == nil {
			return false, model.ErrorInvalidCredentials
		}

		if user.Password != HashPassword(password) {
			user.NumFailedPasswordsSinceLastLogin++
			return true, model.ErrorInvalidCredentials
		}

		sessionID, err := newSessionID(doc)
		if err != nil {
			return false, err
		}

		user.NumSuccessfulLogins++
		user.NumFailedPasswordsSinceLastLogin = 0
		user.TotalSessionNum++
		user.ActiveSessionIDs = append(user.ActiveSessionIDs, sessionID)

		token = EncodeToken(user.UserID, sessionID)
		return true, nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// Logout removes exactly the session carried by the token.
func (s *service) Logout(token string) error {
	decoded, err := DecodeToken(token)
	if err != nil {
		return model.ErrorInvalidToken
	}

	return s.store.Update(func(doc *datastore.Document) (bool, error) {
		user := findUserWithID(doc, decoded.UserID)
		if user == nil {
			return false, model.ErrorUserNotFound
		}

		remaining := make([]int, 0, len(user.ActiveSessionIDs))
		for _, id := range user.ActiveSessionIDs {
			if id != decoded.SessionID {
				remaining = append(remaining, id)
			}
		}
		user.ActiveSessionIDs = remaining

		return true, nil
	})
}

// ValidateToken fails for empty or malformed tokens and for (userId,
// sessionId) pairs that are not currently active.
func (s *service) ValidateToken(token string) error {
	if token == "" {
		return model.ErrorInvalidToken
	}

	decoded, err := DecodeToken(token)
	if err != nil {
		return model.ErrorInvalidToken
	}

	return s.store.View(func(doc *datastore.Document) error {
		for i := range doc.Users {
			if doc.Users[i].UserID == decoded.UserID && doc.Users[i].HasSession(decoded.SessionID) {
				return nil
			}
		}
		return model.ErrorInvalidToken
	})
}

// UserForToken resolves a valid token to a copy of its user record.
func (s *service) UserForToken(token string) (model.User, error) {
	user := model.User{}

	decoded, err := DecodeToken(token)
	if err != nil {
		return user, model.ErrorInvalidToken
	}

	err = s.store.View(func(doc *datastore.Document) error {
		for i := range doc.Users {
			if doc.Users[i].UserID == decoded.UserID && doc.Users[i].HasSession(decoded.SessionID) {
				user = doc.Users[i]
				return nil
			}
		}
		return model.ErrorInvalidToken
	})
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}
