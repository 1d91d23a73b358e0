package controllerImp

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"growsphere/pkg/market"
	"growsphere/pkg/market/service"
)

type MarketCtrl struct{ s service.MarketService }

func New(s service.MarketService) *MarketCtrl { return &MarketCtrl{s: s} }

func (h *MarketCtrl) Countries(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"countries": h.s.Countries()})
}

func (h *MarketCtrl) Prices(c echo.Context) error {
	b, err := h.s.Prices(c.Request().Context(), c.QueryParam("country"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *MarketCtrl) Refresh(c echo.Context) error {
	b, err := h.s.Refresh(c.Request().Context(), c.QueryParam("country"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *MarketCtrl) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, market.ErrUnknownCountry):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusGatewayTimeout, echo.Map{"error": "market check interrupted"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
