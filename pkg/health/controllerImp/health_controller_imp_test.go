package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growsphere/database"
	"growsphere/pkg/testutil"
)

func get(t *testing.T, h *HealthCtrl) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.Health(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))
	return rec
}

func TestHealth_OK(t *testing.T) {
	rec := get(t, NewHealthCtrl(testutil.NewTestDB(t)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"store":{"ok":true}`)
}

func TestHealth_ClosedStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, database.Close(db))
	rec := get(t, NewHealthCtrl(db))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
}

func TestHealth_NoStore(t *testing.T) {
	rec := get(t, NewHealthCtrl(nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
