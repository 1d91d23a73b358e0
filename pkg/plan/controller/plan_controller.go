package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Generate(c echo.Context) error
	ExportXLSX(c echo.Context) error
	History(c echo.Context) error
	ClearHistory(c echo.Context) error
}
