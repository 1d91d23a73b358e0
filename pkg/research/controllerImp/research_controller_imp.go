package controllerImp

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"growsphere/entities"
	"growsphere/pkg/research"
	"growsphere/pkg/research/controller"
	"growsphere/pkg/research/service"
)

type ResearchCtrl struct{ s service.ResearchService }

func New(s service.ResearchService) controller.ResearchController { return &ResearchCtrl{s} }

// Lookup returns the facts plus an add-plant draft built from them.
func (h *ResearchCtrl) Lookup(c echo.Context) error {
	f, err := h.s.Lookup(c.Request().Context(), c.QueryParam("name"))
	switch {
	case errors.Is(err, research.ErrEmptyName):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusGatewayTimeout, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"facts": f, "draft": f.Draft()})
}

type importReq struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	HTML string `json:"html"`
}

func (h *ResearchCtrl) Import(c echo.Context) error {
	var body importReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	var (
		f   entities.PlantFacts
		err error
	)
	switch {
	case strings.TrimSpace(body.HTML) != "":
		if f, err = h.s.Import(strings.NewReader(body.HTML), body.Name); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	case strings.TrimSpace(body.URL) != "":
		if f, err = h.s.ImportURL(c.Request().Context(), body.URL, body.Name); err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "html or url required"})
	}
	return c.JSON(http.StatusOK, map[string]any{"facts": f, "draft": f.Draft()})
}

func (h *ResearchCtrl) Link(c echo.Context) error {
	l, err := h.s.SearchLink(c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "q required"})
	}
	return c.JSON(http.StatusOK, map[string]any{"link": l, "history": h.s.SearchHistory()})
}

func (h *ResearchCtrl) History(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"history": h.s.SearchHistory()})
}
