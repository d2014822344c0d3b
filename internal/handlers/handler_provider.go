package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/dto"
	"github.com/SscSPs/fx_rates_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

type providerHandler struct {
	providerService portssvc.ProviderSvcFacade
}

func newProviderHandler(ps portssvc.ProviderSvcFacade) *providerHandler {
	return &providerHandler{providerService: ps}
}

// RegisterProviderRoutes registers the provider registry admin routes.
func RegisterProviderRoutes(rg *gin.RouterGroup, providerService portssvc.ProviderSvcFacade) {
	h := newProviderHandler(providerService)

	providers := rg.Group("/providers")
	{
		providers.POST("", h.createProvider)
		providers.GET("", h.listProviders)
		providers.GET("/:id", h.getProvider)
		providers.PATCH("/:id", h.updateProvider)
		providers.DELETE("/:id", h.deleteProvider)
	}
}

// createProvider godoc
// @Summary Register a rate provider
// @Description Priorities are unique; lower values are tried first
// @Tags providers
// @Accept json
// @Produce json
// @Param provider body dto.CreateProviderRequest true "Provider details"
// @Success 201 {object} dto.ProviderResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Name or priority already taken"
// @Failure 500 {object} dto.ErrorResponse
// @Router /providers [post]
func (h *providerHandler) createProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	provider, err := h.providerService.CreateProvider(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create provider")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProviderResponse(provider))
}

// listProviders godoc
// @Summary List rate providers
// @Description All providers, active or not, by ascending priority
// @Tags providers
// @Produce json
// @Success 200 {array} dto.ProviderResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /providers [get]
func (h *providerHandler) listProviders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	providers, err := h.providerService.ListProviders(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list providers")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProviderResponse(providers))
}

// getProvider godoc
// @Summary Get a rate provider
// @Tags providers
// @Produce json
// @Param id path int true "Provider ID"
// @Success 200 {object} dto.ProviderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /providers/{id} [get]
func (h *providerHandler) getProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}

	provider, err := h.providerService.GetProviderByID(c.Request.Context(), providerID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve provider")
		return
	}

	c.JSON(http.StatusOK, dto.ToProviderResponse(provider))
}

// updateProvider godoc
// @Summary Update a rate provider
// @Description Change description, priority or active flag. Changes apply to requests started afterwards.
// @Tags providers
// @Accept json
// @Produce json
// @Param id path int true "Provider ID"
// @Param provider body dto.UpdateProviderRequest true "Fields to change"
// @Success 200 {object} dto.ProviderResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Priority already taken"
// @Failure 500 {object} dto.ErrorResponse
// @Router /providers/{id} [patch]
func (h *providerHandler) updateProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	provider, err := h.providerService.UpdateProvider(c.Request.Context(), providerID, req)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int64("provider_id", providerID)), err, "Failed to update provider")
		return
	}

	c.JSON(http.StatusOK, dto.ToProviderResponse(provider))
}

// deleteProvider godoc
// @Summary Delete a rate provider
// @Description Stored rates fetched from it are removed as well
// @Tags providers
// @Param id path int true "Provider ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /providers/{id} [delete]
func (h *providerHandler) deleteProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}

	if err := h.providerService.DeleteProvider(c.Request.Context(), providerID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete provider")
		return
	}

	c.Status(http.StatusNoContent)
}

func providerIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Provider ID must be a positive integer"})
		return 0, false
	}
	return id, true
}
