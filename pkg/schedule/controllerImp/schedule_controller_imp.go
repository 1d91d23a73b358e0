package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"growsphere/pkg/metrics"
	"growsphere/pkg/schedule"
	"growsphere/pkg/schedule/controller"
)

type SchedCtrl struct{}

func New() controller.ScheduleController { return &SchedCtrl{} }

// Preview generates a calendar from raw inputs without touching history.
func (h *SchedCtrl) Preview(c echo.Context) error {
	months, err := strconv.Atoi(c.QueryParam("growth_period"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "growth_period must be an integer"})
	}
	if months > schedule.MaxGrowthPeriodMonths {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("growth_period must be at most %d", schedule.MaxGrowthPeriodMonths),
		})
	}
	start := c.QueryParam("start_month")
	if start == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "start_month is required"})
	}
	plan, err := schedule.Generate(months, start)
	if err != nil {
		metrics.RecordSchedule("invalid")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	metrics.RecordSchedule("ok")
	return c.JSON(http.StatusOK, plan)
}

func (h *SchedCtrl) Months(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"months": schedule.MonthNames})
}
