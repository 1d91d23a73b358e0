package controller

import "github.com/labstack/echo/v4"

type SettingsController interface {
	Get(c echo.Context) error
	Update(c echo.Context) error
	ClearData(c echo.Context) error
}
