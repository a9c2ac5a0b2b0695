package auth

import (
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strivefit/strivefit/internal/datastore"
	"github.com/strivefit/strivefit/internal/model"
)

func newTestService(t *testing.T) *service {
	t.Helper()
	store, err := datastore.New(path.Join(t.TempDir(), "database.json"))
	if err != nil {
		t.Fatalf("creating datastore: %v", err)
	}
	return New(store)
}

func validParams() *model.RegisterParams {
	return &model.RegisterParams{
		Email:     "hayden.smith@example.com",
		Password:  "abc12345",
		NameFirst: "Hayden",
		NameLast:  "Smith",
	}
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)
	service := newTestService(t)

	t.Run("success creates one user with one session", func(t *testing.T) {
		token, err := service.Register(validParams())
		assert.Nil(err)
		assert.NotEmpty(token)

		assert.Nil(service.ValidateToken(token))

		user, err := service.UserForToken(token)
		assert.Nil(err)
		assert.Equal(0, user.UserID)
		assert.Equal("Hayden Smith", user.Name)
		assert.Equal(1, user.NumSuccessfulLogins)
		assert.Equal(0, user.NumFailedPasswordsSinceLastLogin)
		assert.Equal(1, user.TotalSessionNum)
		assert.Len(user.ActiveSessionIDs, 1)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := service.Register(validParams())
		assert.ErrorIs(err, model.ErrorEmailInUse)
	})

	t.Run("duplicate email leaves a single matching user", func(t *testing.T) {
		doc, err := service.store.Load()
		assert.Nil(err)
		count := 0
		for _, u := range doc.Users {
			if u.Email == "hayden.smith@example.com" {
				count++
			}
		}
		assert.Equal(1, count)
	})

	t.Run("invalid email", func(t *testing.T) {
		params := validParams()
		params.Email = "not-an-email"
		_, err := service.Register(params)
		assert.ErrorIs(err, model.ErrorInvalidEmail)
	})

	t.Run("invalid first name", func(t *testing.T) {
		params := validParams()
		params.Email = "other@example.com"
		params.NameFirst = "H4yden"
		_, err := service.Register(params)
		assert.ErrorIs(err, model.ErrorInvalidFirstName)
	})

	t.Run("invalid last name", func(t *testing.T) {
		params := validParams()
		params.Email = "other@example.com"
		params.NameLast = "S"
		_, err := service.Register(params)
		assert.ErrorIs(err, model.ErrorInvalidLastName)
	})

	t.Run("weak password", func(t *testing.T) {
		params := validParams()
		params.Email = "other@example.com"
		params.Password = "abcdefgh"
		_, err := service.Register(params)
		assert.ErrorIs(err, model.ErrorWeakPassword)
	})

	t.Run("email checked before format", func(t *testing.T) {
		// a duplicate email with an invalid password still reports EmailInUse
		params := validParams()
		params.Password = "short"
		_, err := service.Register(params)
		assert.ErrorIs(err, model.ErrorEmailInUse)
	})
}

func TestLogin(t *testing.T) {
	assert := assert.New(t)
	service := newTestService(t)

	registerToken, err := service.Register(validParams())
	assert.Nil(err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login("nobody@example.com", "abc12345")
		assert.ErrorIs(err, model.ErrorInvalidCredentials)
	})

	t.Run("wrong password bumps failure counter", func(t *testing.T) {
		_, err := service.Login("hayden.smith@example.com", "wrong1234")
		assert.ErrorIs(err, model.ErrorInvalidCredentials)

		_, err = service.Login("hayden.smith@example.com", "wrong1234")
		assert.ErrorIs(err, model.ErrorInvalidCredentials)

		user, err := service.UserForToken(registerToken)
		assert.Nil(err)
		assert.Equal(2, user.NumFailedPasswordsSinceLastLogin)
		assert.Len(user.ActiveSessionIDs, 1)
	})

	t.Run("success opens a second session and resets the counter", func(t *testing.T) {
		loginToken, err := service.Login("hayden.smith@example.com", "abc12345")
		assert.Nil(err)
		assert.NotEmpty(loginToken)

		user, err := service.UserForToken(loginToken)
		assert.Nil(err)
		assert.Equal(2, user.NumSuccessfulLogins)
		assert.Equal(0, user.NumFailedPasswordsSinceLastLogin)
		assert.Equal(2, user.TotalSessionNum)
		assert.Len(user.ActiveSessionIDs, 2)

		// the registration session stays active alongside the new one
		assert.Nil(service.ValidateToken(registerToken))
		assert.Nil(service.ValidateToken(loginToken))
	})
}

func TestLogout(t *testing.T) {
	assert := assert.New(t)
	service := newTestService(t)

	registerToken, err := service.Register(validParams())
	assert.Nil(err)
	loginToken, err := service.Login("hayden.smith@example.com", "abc12345")
	assert.Nil(err)

	t.Run("removes exactly the token's session", func(t *testing.T) {
		assert.Nil(service.Logout(loginToken))
		assert.ErrorIs(service.ValidateToken(loginToken), model.ErrorInvalidToken)
		assert.Nil(service.ValidateToken(registerToken))
	})

	t.Run("malformed token", func(t *testing.T) {
		assert.ErrorIs(service.Logout("%%%garbage"), model.ErrorInvalidToken)
	})

	t.Run("token for a user that does not exist", func(t *testing.T) {
		assert.ErrorIs(service.Logout(EncodeToken(42, 12345678)), model.ErrorUserNotFound)
	})
}

func TestValidateToken(t *testing.T) {
	assert := assert.New(t)
	service := newTestService(t)

	t.Run("empty token", func(t *testing.T) {
		assert.ErrorIs(service.ValidateToken(""), model.ErrorInvalidToken)
	})

	t.Run("undecodable token", func(t *testing.T) {
		assert.ErrorIs(service.ValidateToken("not%a%token"), model.ErrorInvalidToken)
	})

	t.Run("well-formed token for an inactive session", func(t *testing.T) {
		_, err := service.Register(validParams())
		assert.Nil(err)
		assert.ErrorIs(service.ValidateToken(EncodeToken(0, 11111111)), model.ErrorInvalidToken)
	})
}

func TestSessionIDRange(t *testing.T) {
	assert := assert.New(t)
	service := newTestService(t)

	token, err := service.Register(validParams())
	assert.Nil(err)

	decoded, err := DecodeToken(token)
	assert.Nil(err)
	assert.GreaterOrEqual(decoded.SessionID, 10000000)
	assert.LessOrEqual(decoded.SessionID, 99999999)
}
