package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"growsphere/entities"
	"growsphere/pkg/plant"
	"growsphere/pkg/plant/controller"
	"growsphere/pkg/plant/service"
)

type PlantCtrl struct{ svc service.PlantService }

func New(svc service.PlantService) controller.PlantController { return &PlantCtrl{svc} }

type createReq struct {
	Name         string `json:"name"`
	Image        string `json:"image"`
	Climate      string `json:"climate"`
	Soil         string `json:"soil"`
	Fertilizer   string `json:"fertilizer"`
	GrowthPeriod int    `json:"growth_period"`
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, plant.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, plant.ErrInvalidPlant):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *PlantCtrl) List(c echo.Context) error {
	list, err := h.svc.List(c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"plants": list, "count": len(list)})
}

func (h *PlantCtrl) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlantCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.Add(entities.Plant{
		Name: req.Name, Image: req.Image, Climate: req.Climate, Soil: req.Soil,
		Fertilizer: req.Fertilizer, GrowthPeriod: req.GrowthPeriod,
	})
	if err != nil {
		var ve *plant.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error(), "fields": ve.Fields})
		}
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlantCtrl) Delete(c echo.Context) error {
	if err := h.svc.Remove(c.Param("id")); err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlantCtrl) RestoreDefaults(c echo.Context) error {
	if err := h.svc.RestoreDefaults(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return h.List(c)
}
