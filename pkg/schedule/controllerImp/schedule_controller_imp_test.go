package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growsphere/pkg/plan/types"
)

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)
	require.NoError(t, New().Preview(c))
	return rec
}

func TestPreview(t *testing.T) {
	rec := get(t, "/schedule?growth_period=3&start_month=March")
	require.Equal(t, http.StatusOK, rec.Code)

	var plan types.CalendarPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, 12, plan.TotalWeeks)
	assert.Len(t, plan.Activities, 13)
	assert.Equal(t, []string{"07:00", "17:00"}, plan.DailyReminders)
}

func TestPreview_BadInput(t *testing.T) {
	for _, target := range []string{
		"/schedule?growth_period=x&start_month=March",
		"/schedule?growth_period=0&start_month=March",
		"/schedule?growth_period=121&start_month=March",
		"/schedule?growth_period=3",
	} {
		assert.Equal(t, http.StatusBadRequest, get(t, target).Code, target)
	}
}

func TestMonths(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, New().Months(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/schedule/months", nil), rec)))
	assert.Contains(t, rec.Body.String(), `"December"`)
}
