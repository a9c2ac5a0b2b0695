package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/strivefit/strivefit/internal/model"
)

type loginParams struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type userDetails struct {
	UserID                           int    `json:"userId"`
	Name                             string `json:"name"`
	Email                            string `json:"email"`
	NumSuccessfulLogins              int    `json:"numSuccessfulLogins"`
	NumFailedPasswordsSinceLastLogin int    `json:"numFailedPasswordsSinceLastLogin"`
}

func Register(authService AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.RegisterParams{}
		if err := c.Bind(params); err != nil {
			return err
		}
		token, err := authService.Register(params)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, tokenResponse{Token: token})
	}
}

func Login(authService AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &loginParams{}
		if err := c.Bind(params); err != nil {
			return err
		}
		token, err := authService.Login(params.Email, params.Password)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, tokenResponse{Token: token})
	}
}

func Logout(authService AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := authService.Logout(bearerToken(c)); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{})
	}
}

func Me(authService AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := authService.UserForToken(bearerToken(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, userDetails{
			UserID:                           user.UserID,
			Name:                             user.Name,
			Email:                            user.Email,
			NumSuccessfulLogins:              user.NumSuccessfulLogins,
			NumFailedPasswordsSinceLastLogin: user.NumFailedPasswordsSinceLastLogin,
		})
	}
}
