package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourism-registry/internal/domain"
	"github.com/tourism-registry/internal/pkg/errors"
	"github.com/tourism-registry/internal/pkg/utils"
	"github.com/tourism-registry/internal/usecase"
	"github.com/tourism-registry/internal/usecase/dto"
	"go.uber.org/zap"
)

// SiteHandler serves the tourism-site CRUD routes (minus U: records are
// create-and-delete only).
type SiteHandler struct {
	siteUC *usecase.SiteUseCase
	logger *zap.Logger
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(siteUC *usecase.SiteUseCase, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{
		siteUC: siteUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Register a tourism site
// @Description Creates a new tourism-site record. Name and village are required; unknown districts fall back to the default; non-numeric capacity is coerced to 0.
// @Tags Sites
// @Accept json
// @Produce json
// @Param request body dto.CreateSiteRequest true "Site to register"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sites [post]
func (h *SiteHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSiteRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse create site body", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	site, err := h.siteUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, dto.NewSiteResponse(site), nil)
}

// List godoc
// @Summary List tourism sites
// @Description Returns records newest first, optionally filtered by district.
// @Tags Sites
// @Produce json
// @Param district query string false "District name or 'all'"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sites [get]
func (h *SiteHandler) List(c *fiber.Ctx) error {
	filter := domain.DistrictFilter(c.Query("district", string(domain.FilterAll)))

	sites, err := h.siteUC.List(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewSiteListResponse(sites), &utils.Meta{
		Total: len(sites),
	})
}

// GetByID godoc
// @Summary Get one tourism site
// @Tags Sites
// @Produce json
// @Param id path string true "Site ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sites/{id} [get]
func (h *SiteHandler) GetByID(c *fiber.Ctx) error {
	site, err := h.siteUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewSiteResponse(site), nil)
}

// Delete godoc
// @Summary Delete a tourism site
// @Description Removes a record by id. Deletion is confirmed client-side; the call itself is the confirmed action.
// @Tags Sites
// @Produce json
// @Param id path string true "Site ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sites/{id} [delete]
func (h *SiteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.siteUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": id}, nil)
}

// ListDistricts godoc
// @Summary List districts
// @Description Returns the fixed district enumeration with fallback centroids, in display order.
// @Tags Districts
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/districts [get]
func (h *SiteHandler) ListDistricts(c *fiber.Ctx) error {
	districts := dto.NewDistrictListResponse()
	return utils.SendSuccess(c, districts, &utils.Meta{Total: len(districts)})
}
