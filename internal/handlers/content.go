package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/strivefit/strivefit/internal/model"
)

const premiumPassHeader = "X-Premium-Pass"

func Workouts(content ContentStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		workouts, err := content.Workouts(c.QueryParam("category"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, workouts)
	}
}

func BlogIndex(content ContentStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := content.BlogPosts()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, posts)
	}
}

// BlogShow serves a single post; premium posts require a valid pass in the
// X-Premium-Pass header.
func BlogShow(content ContentStore, premiumService PremiumService) echo.HandlerFunc {
	return func(c echo.Context) error {
		post, err := content.BlogPost(c.Param("id"))
		if err != nil {
			return fail(c, err)
		}

		if post.Premium {
			if _, err := premiumService.Verify(c.Request().Header.Get(premiumPassHeader)); err != nil {
				return fail(c, model.ErrorPremiumRequired)
			}
		}

		return c.JSON(http.StatusOK, post)
	}
}

type passResponse struct {
	Pass string `json:"pass"`
}

// PremiumSubscribe issues a premium pass to an authenticated user.
func PremiumSubscribe(authService AuthService, premiumService PremiumService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := authService.UserForToken(bearerToken(c))
		if err != nil {
			return fail(c, err)
		}
		pass, err := premiumService.Subscribe(&user)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, passResponse{Pass: pass})
	}
}
