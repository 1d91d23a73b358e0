package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"growsphere/pkg/sprinkler"
	"growsphere/pkg/sprinkler/service"
)

type SprinklerCtrl struct{ svc service.SprinklerService }

func New(svc service.SprinklerService) *SprinklerCtrl { return &SprinklerCtrl{svc} }

func (h *SprinklerCtrl) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Status())
}

func (h *SprinklerCtrl) Start(c echo.Context) error {
	body := struct {
		DurationMinutes int `json:"duration_minutes"`
	}{DurationMinutes: 15}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	st, err := h.svc.Start(body.DurationMinutes)
	if errors.Is(err, sprinkler.ErrInvalidDuration) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, st)
}

func (h *SprinklerCtrl) Stop(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stop())
}

func (h *SprinklerCtrl) SetAuto(c echo.Context) error {
	var body struct {
		Enabled *bool `json:"enabled"`
	}
	if err := c.Bind(&body); err != nil || body.Enabled == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "enabled required"})
	}
	return c.JSON(http.StatusOK, h.svc.SetAutoMode(*body.Enabled))
}
