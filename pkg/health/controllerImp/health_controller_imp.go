package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const pingTimeout = 800 * time.Millisecond

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) store(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "store not opened"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db handle: " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	kv := h.store(ctx)
	status := http.StatusOK
	if !kv.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"ok":         kv.OK,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     map[string]check{"store": kv},
		"time":       time.Now().Format(time.RFC3339),
	})
}
