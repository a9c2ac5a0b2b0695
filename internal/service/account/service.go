// Package account is the cookie-variant auth flow: a users.json file of
// bcrypt-hashed records and a trusted session-cookie claim. It deliberately
// shares nothing with the token-variant service in service/auth; the two
// trust models coexist just as they do in the application's form flow vs API.
package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/strivefit/strivefit/internal/model"
)

const bcryptCost = 10

type SignupParams struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirm-password"`
}

type service struct {
	filename string
	mu       sync.Mutex
}

func New(filename string) (*service, error) {
	if err := os.MkdirAll(path.Dir(filename), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &service{filename: filename}, nil
}

// loadAccounts reads the whole users file on every call; a missing file is an
// empty list.
func (s *service) loadAccounts() ([]model.Account, error) {
	data, err := os.ReadFile(s.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Account{}, nil
		}
		return nil, fmt.Errorf("reading users file: %w", err)
	}

	accounts := []model.Account{}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("parsing users file: %w", err)
	}
	return accounts, nil
}

func (s *service) saveAccounts(accounts []model.Account) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing users: %w", err)
	}
	if err := os.WriteFile(s.filename, data, 0o644); err != nil {
		return fmt.Errorf("writing users file: %w", err)
	}
	return nil
}

func findByEmail(accounts []model.Account, email string) *model.Account {
	for i := range accounts {
		if accounts[i].Email == email {
			return &accounts[i]
		}
	}
	return nil
}

// Signup creates an account and returns it with the password hash stripped.
func (s *service) Signup(params *SignupParams) (*model.Account, error) {
	if params.Name == "" || params.Email == "" || params.Password == "" {
		return nil, model.ErrorFieldsRequired
	}
	if params.Password != params.ConfirmPassword {
		return nil, model.ErrorPasswordMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}

	if findByEmail(accounts, params.Email) != nil {
		return nil, model.ErrorEmailInUse
	}

	passwordBytes, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("generating encoded password: %w", err)
	}

	now := time.Now().UTC()
	account := model.Account{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      params.Name,
		Email:     params.Email,
		Password:  string(passwordBytes),
		CreatedAt: now,
	}

	accounts = append(accounts, account)
	if err := s.saveAccounts(accounts); err != nil {
		return nil, err
	}

	account.Password = ""
	return &account, nil
}

// Login verifies credentials against the stored bcrypt hash. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *service) Login(email string, password string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}

	account := findByEmail(accounts, email)
	if account == nil {
		return nil, model.ErrorInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, model.ErrorInvalidCredentials
	}

	result := *account
	result.Password = ""
	return &result, nil
}

// CurrentUser parses a session-cookie value. Any JSON-parseable claim is
// trusted as-is; there is no cross-check against a session registry in this
// variant.
func CurrentUser(cookieValue string) (*model.SessionClaim, error) {
	claim := &model.SessionClaim{}
	if err := json.Unmarshal([]byte(cookieValue), claim); err != nil {
		return nil, fmt.Errorf("parsing session cookie: %w", err)
	}
	return claim, nil
}
