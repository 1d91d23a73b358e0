package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"growsphere/pkg/appstate"
)

type StateCtrl struct{ store *appstate.Store }

func New(store *appstate.Store) *StateCtrl { return &StateCtrl{store} }

func (h *StateCtrl) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.State())
}

func (h *StateCtrl) Dispatch(c echo.Context) error {
	var a appstate.Action
	if err := c.Bind(&a); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	s, err := h.store.Dispatch(a)
	switch {
	case errors.Is(err, appstate.ErrUnknownAction), errors.Is(err, appstate.ErrInvalidAction):
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error(), "state": s})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}
