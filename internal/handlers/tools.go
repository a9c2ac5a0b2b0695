package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/strivefit/strivefit/internal/service/calories"
)

type analyzeParams struct {
	Description string `json:"description" form:"description"`
}

func Calculator() echo.HandlerFunc {
	return func(c echo.Context) error {
		params := calories.Params{}
		if err := c.Bind(&params); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, calories.Calculate(params))
	}
}

func AnalyzeFood(authService AuthService, analyzer Analyzer) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := authService.ValidateToken(bearerToken(c)); err != nil {
			return fail(c, err)
		}
		params := &analyzeParams{}
		if err := c.Bind(params); err != nil {
			return err
		}
		nutrition, err := analyzer.AnalyzeFood(c.Request().Context(), params.Description)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, nutrition)
	}
}

func AnalyzeActivity(authService AuthService, analyzer Analyzer) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := authService.ValidateToken(bearerToken(c)); err != nil {
			return fail(c, err)
		}
		params := &analyzeParams{}
		if err := c.Bind(params); err != nil {
			return err
		}
		activity, err := analyzer.AnalyzeActivity(c.Request().Context(), params.Description)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, activity)
	}
}
