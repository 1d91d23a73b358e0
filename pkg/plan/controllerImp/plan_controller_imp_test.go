package controllerImp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"growsphere/pkg/plan/controller"
	"growsphere/pkg/plan/repositoryImp"
	"growsphere/pkg/plan/serviceImp"
	plantrepo "growsphere/pkg/plant/repositoryImp"
	plantsvc "growsphere/pkg/plant/serviceImp"
	"growsphere/pkg/schedule"
	"growsphere/pkg/testutil"
)

func newCtrl(t *testing.T) (*echo.Echo, controller.PlanController) {
	kv := testutil.NewTestKV(t)
	history := repositoryImp.New(kv)
	plants := plantsvc.NewPlantService(plantrepo.New(kv), history)
	return echo.New(), NewPlanCtrl(serviceImp.NewPlanService(plants, history))
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestGenerateThenHistory(t *testing.T) {
	e, h := newCtrl(t)

	req := httptest.NewRequest(http.MethodPost, "/plants/2/plan", strings.NewReader(`{"farming_month":"June"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Generate(withID(e.NewContext(req, rec), "2")))
	require.Equal(t, http.StatusCreated, rec.Code)

	var out struct {
		Plan struct {
			TotalWeeks int `json:"total_weeks"`
			Months     []struct {
				Label string `json:"label"`
			} `json:"months"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 16, out.Plan.TotalWeeks)
	require.Len(t, out.Plan.Months, 4)
	assert.Equal(t, "September", out.Plan.Months[3].Label)

	rec = httptest.NewRecorder()
	require.NoError(t, h.History(e.NewContext(httptest.NewRequest(http.MethodGet, "/history", nil), rec)))
	assert.Contains(t, rec.Body.String(), `"plant_name":"Rice"`)

	rec = httptest.NewRecorder()
	require.NoError(t, h.ClearHistory(e.NewContext(httptest.NewRequest(http.MethodDelete, "/history", nil), rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGenerate_ErrorStatuses(t *testing.T) {
	e, h := newCtrl(t)
	cases := []struct {
		id, body string
		want     int
	}{
		{"1", `{"farming_month":""}`, http.StatusBadRequest},
		{"missing", `{"farming_month":"May"}`, http.StatusNotFound},
		{"1", `{bad`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/plants/"+tc.id+"/plan", strings.NewReader(tc.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, h.Generate(withID(e.NewContext(req, rec), tc.id)))
		assert.Equal(t, tc.want, rec.Code, tc.body)
	}
}

func TestExportXLSX(t *testing.T) {
	e, h := newCtrl(t)
	rec := httptest.NewRecorder()
	c := withID(e.NewContext(httptest.NewRequest(http.MethodGet, "/plants/1/calendar.xlsx?month=March", nil), rec), "1")
	require.NoError(t, h.ExportXLSX(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "Tomato-calendar.xlsx")

	x, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows(schedule.CalendarSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 14)

	rec = httptest.NewRecorder()
	require.NoError(t, h.History(e.NewContext(httptest.NewRequest(http.MethodGet, "/history", nil), rec)))
	assert.JSONEq(t, `{"history":[]}`, rec.Body.String())
}
