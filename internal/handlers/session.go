package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/strivefit/strivefit/internal/model"
	"github.com/strivefit/strivefit/internal/service/account"
)

const (
	sessionCookieName = "session"
	sessionCookieAge  = 7 * 24 * time.Hour
)

func setSessionCookie(c echo.Context, acct *model.Account, secure bool) {
	value, _ := json.Marshal(model.SessionClaim{UserID: acct.ID, Email: acct.Email})
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    string(value),
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   int(sessionCookieAge.Seconds()),
		Path:     "/",
	})
}

func Signup(accountService AccountService, secureCookies bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &account.SignupParams{}
		if err := c.Bind(params); err != nil {
			return err
		}
		acct, err := accountService.Signup(params)
		if err != nil {
			return fail(c, err)
		}
		setSessionCookie(c, acct, secureCookies)
		return c.Redirect(http.StatusFound, "/dashboard")
	}
}

func SessionLogin(accountService AccountService, secureCookies bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &loginParams{}
		if err := c.Bind(params); err != nil {
			return err
		}
		if params.Email == "" || params.Password == "" {
			return fail(c, model.ErrorFieldsRequired)
		}
		acct, err := accountService.Login(params.Email, params.Password)
		if err != nil {
			return fail(c, err)
		}
		setSessionCookie(c, acct, secureCookies)
		return c.Redirect(http.StatusFound, "/dashboard")
	}
}

func SessionLogout() echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(&http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			HttpOnly: true,
			MaxAge:   -1,
			Path:     "/",
		})
		return c.Redirect(http.StatusFound, "/login")
	}
}

// Dashboard trusts any JSON-parseable session cookie as the identity claim.
// This variant performs no session-registry check; that is the token API's
// model.
func Dashboard() echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookieName)
		if err != nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		claim, err := account.CurrentUser(cookie.Value)
		if err != nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		return c.Render(http.StatusOK, "dashboard.html", claim)
	}
}
