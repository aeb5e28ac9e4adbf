package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourism-registry/internal/domain"
	"github.com/tourism-registry/internal/pkg/utils"
	"github.com/tourism-registry/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler serves the dashboard KPI aggregates.
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetDashboardStats godoc
// @Summary Dashboard statistics
// @Description Returns total count, total capacity, per-type counts and the per-district grid for the chosen filter.
// @Tags Dashboard
// @Produce json
// @Param district query string false "District name or 'all'"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/stats [get]
func (h *StatsHandler) GetDashboardStats(c *fiber.Ctx) error {
	filter := domain.DistrictFilter(c.Query("district", string(domain.FilterAll)))

	h.logger.Debug("Handling dashboard stats request",
		zap.String("filter", string(filter)))

	stats, err := h.statsUC.GetDashboardStats(c.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to get dashboard stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
