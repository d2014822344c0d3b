package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/dto"
	"github.com/SscSPs/fx_rates_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// RegisterConversionRoutes registers the conversion audit routes.
func RegisterConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := &conversionHandler{conversionService: conversionService}

	conversions := rg.Group("/conversions")
	{
		conversions.POST("", h.createConversion)
		conversions.GET("", h.listConversions)
	}
}

// createConversion godoc
// @Summary Record a conversion
// @Description Converts the amount at a live quote and stores the result
// @Tags conversions
// @Accept json
// @Produce json
// @Param conversion body dto.CreateConversionRequest true "Conversion input"
// @Success 201 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input or no provider available"
// @Failure 500 {object} dto.ErrorResponse
// @Router /conversions [post]
func (h *conversionHandler) createConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	conversion, err := h.conversionService.CreateConversion(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record conversion")
		return
	}

	c.JSON(http.StatusCreated, dto.ToConversionResponse(conversion))
}

// listConversions godoc
// @Summary List recorded conversions
// @Description Newest first, cursor paginated
// @Tags conversions
// @Produce json
// @Param limit query int false "Page size (1-200, default 20)"
// @Param next_token query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListConversionsResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /conversions [get]
func (h *conversionHandler) listConversions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListConversionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	resp, err := h.conversionService.ListConversions(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list conversions")
		return
	}

	c.JSON(http.StatusOK, resp)
}
