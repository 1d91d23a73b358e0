package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"growsphere/pkg/ai"
)

type ChatCtrl struct{ a *ai.Assistant }

func New(a *ai.Assistant) *ChatCtrl { return &ChatCtrl{a} }

func (h *ChatCtrl) Send(c echo.Context) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	reply, err := h.a.Send(c.Request().Context(), body.Message)
	if errors.Is(err, ai.ErrEmptyQuestion) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusGatewayTimeout, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, reply)
}

func (h *ChatCtrl) Transcript(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"messages": h.a.Transcript()})
}

func (h *ChatCtrl) Reset(c echo.Context) error {
	h.a.Reset()
	return c.NoContent(http.StatusNoContent)
}
