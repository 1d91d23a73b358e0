package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growsphere/pkg/appstate"
)

func post(t *testing.T, h *StateCtrl, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/state/actions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Dispatch(echo.New().NewContext(req, rec)))
	return rec
}

func TestDispatch(t *testing.T) {
	h := New(appstate.NewStore(appstate.Initial(), nil))

	rec := post(t, h, `{"type":"select_plant","plant_id":"3"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var s appstate.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, appstate.ViewPlantInfo, s.View)

	assert.Equal(t, http.StatusBadRequest, post(t, h, `{"type":"fly"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(t, h, `{"type":"navigate","view":"test-panel"}`).Code)

	rec = httptest.NewRecorder()
	require.NoError(t, h.Get(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/state", nil), rec)))
	assert.Contains(t, rec.Body.String(), `"selected_plant_id":"3"`)
}
