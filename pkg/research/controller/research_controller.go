package controller

import "github.com/labstack/echo/v4"

type ResearchController interface {
	Lookup(c echo.Context) error
	Import(c echo.Context) error
	Link(c echo.Context) error
	History(c echo.Context) error
}
