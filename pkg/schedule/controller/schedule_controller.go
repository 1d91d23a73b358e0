package controller

import "github.com/labstack/echo/v4"

type ScheduleController interface {
	Preview(c echo.Context) error
	Months(c echo.Context) error
}
