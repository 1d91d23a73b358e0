package controllerImp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"growsphere/pkg/diagnostics/service"
)

type DiagnosticsCtrl struct{ s service.DiagnosticsService }

func New(s service.DiagnosticsService) *DiagnosticsCtrl { return &DiagnosticsCtrl{s} }

func (h *DiagnosticsCtrl) RunTests(c echo.Context) error {
	rep, err := h.s.RunAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *DiagnosticsCtrl) Export(c echo.Context) error {
	out, err := h.s.Export()
	if err != nil {
		return fail(c, err)
	}
	name := fmt.Sprintf("growsphere-debug-%d.json", out.Timestamp.UnixMilli())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.JSONPretty(http.StatusOK, out, "  ")
}

func (h *DiagnosticsCtrl) AddTestPlant(c echo.Context) error {
	p, err := h.s.AddTestPlant()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *DiagnosticsCtrl) SimulateError(c echo.Context) error {
	err := h.s.SimulateError()
	if errors.Is(err, service.ErrTestModeOff) {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"logged": err.Error(), "at": time.Now().UTC().Format(time.RFC3339)})
}

func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrTestModeOff):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, context.Canceled):
		return c.JSON(http.StatusGatewayTimeout, map[string]string{"error": "checks interrupted"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
