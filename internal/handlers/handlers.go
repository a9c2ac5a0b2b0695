// Package handlers wires the services to echo routes. Each handler takes the
// narrowest service interface it needs and returns an echo.HandlerFunc.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/strivefit/strivefit/internal/model"
	"github.com/strivefit/strivefit/internal/service/account"
	"github.com/strivefit/strivefit/internal/service/premium"
)

type AuthService interface {
	Register(params *model.RegisterParams) (string, error)
	Login(email string, password string) (string, error)
	Logout(token string) error
	ValidateToken(token string) error
	UserForToken(token string) (model.User, error)
}

type AccountService interface {
	Signup(params *account.SignupParams) (*model.Account, error)
	Login(email string, password string) (*model.Account, error)
}

type ContentStore interface {
	Workouts(category string) ([]model.Workout, error)
	BlogPosts() ([]model.BlogPost, error)
	BlogPost(id string) (*model.BlogPost, error)
}

type Analyzer interface {
	AnalyzeFood(ctx context.Context, description string) (*model.FoodNutrition, error)
	AnalyzeActivity(ctx context.Context, description string) (*model.Activity, error)
}

type PremiumService interface {
	Subscribe(user *model.User) (string, error)
	Verify(pass string) (*premium.PassClaims, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

// bearerToken pulls the session token from the Authorization header,
// tolerating an optional Bearer prefix.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrorEmailInUse),
		errors.Is(err, model.ErrorInvalidEmail),
		errors.Is(err, model.ErrorInvalidFirstName),
		errors.Is(err, model.ErrorInvalidLastName),
		errors.Is(err, model.ErrorWeakPassword),
		errors.Is(err, model.ErrorFieldsRequired),
		errors.Is(err, model.ErrorPasswordMismatch):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrorInvalidCredentials),
		errors.Is(err, model.ErrorInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrorPremiumRequired):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrorUserNotFound),
		errors.Is(err, model.ErrorPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrorUnparseableAnswer):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func fail(c echo.Context, err error) error {
	return c.JSON(statusFor(err), errorResponse{Error: err.Error()})
}
