package controllerImp

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"growsphere/pkg/plan/controller"
	"growsphere/pkg/plan/service"
	"growsphere/pkg/plant"
	"growsphere/pkg/schedule"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PlanCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) controller.PlanController { return &PlanCtrl{svc} }

func errStatus(err error) int {
	switch {
	case errors.Is(err, plant.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrMissingMonth), errors.Is(err, schedule.ErrInvalidGrowthPeriod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *PlanCtrl) Generate(c echo.Context) error {
	var body struct {
		FarmingMonth string `json:"farming_month"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	cal, err := h.svc.Generate(c.Param("id"), body.FarmingMonth)
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cal)
}

func (h *PlanCtrl) ExportXLSX(c echo.Context) error {
	cal, err := h.svc.Preview(c.Param("id"), c.QueryParam("month"))
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	var buf bytes.Buffer
	if err := schedule.ExportXLSX(&buf, cal.Plant.Name, cal.Plan); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s-calendar.xlsx"`, cal.Plant.Name))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

func (h *PlanCtrl) History(c echo.Context) error {
	list, err := h.svc.History()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"history": list})
}

func (h *PlanCtrl) ClearHistory(c echo.Context) error {
	if err := h.svc.ClearHistory(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
