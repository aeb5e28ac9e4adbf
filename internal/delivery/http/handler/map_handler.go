package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourism-registry/internal/domain"
	"github.com/tourism-registry/internal/pkg/utils"
	"github.com/tourism-registry/internal/usecase"
	"go.uber.org/zap"
)

// MapHandler serves the dashboard map: marker sets, viewport, and the base
// layer config for the client.
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewMapHandler creates a new MapHandler.
func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// GetMarkers godoc
// @Summary Dashboard map markers
// @Description Syncs the map surface against the filtered record list and returns markers plus the viewport (bounds fit, or the default view when empty).
// @Tags Dashboard
// @Produce json
// @Param district query string false "District name or 'all'"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/markers [get]
func (h *MapHandler) GetMarkers(c *fiber.Ctx) error {
	filter := domain.DistrictFilter(c.Query("district", string(domain.FilterAll)))

	state, err := h.mapUC.GetMarkers(c.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to get map markers", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, &utils.Meta{
		Total: len(state.Markers),
	})
}

// GetConfig godoc
// @Summary Map base layer config
// @Description Returns the tile URL template and required attribution for the client map widget.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/map/config [get]
func (h *MapHandler) GetConfig(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.mapUC.TileLayer(), nil)
}
