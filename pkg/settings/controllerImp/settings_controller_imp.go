package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"growsphere/pkg/settings/controller"
	"growsphere/pkg/settings/service"
)

type SettingsCtrl struct{ svc service.SettingsService }

func New(svc service.SettingsService) controller.SettingsController { return &SettingsCtrl{svc} }

func (h *SettingsCtrl) Get(c echo.Context) error {
	s, err := h.svc.Get()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

// Update binds onto the current settings, so omitted fields keep their value.
func (h *SettingsCtrl) Update(c echo.Context) error {
	cur, err := h.svc.Get()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := c.Bind(&cur); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Update(cur)
	if errors.Is(err, service.ErrInvalidTheme) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SettingsCtrl) ClearData(c echo.Context) error {
	if err := h.svc.ClearAll(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
