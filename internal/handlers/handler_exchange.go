package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/dto"
	"github.com/SscSPs/fx_rates_service/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// exchangeHandler serves rate series, conversions, backfills and the stored rate listing.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
	backfillService portssvc.BackfillSvc
}

func newExchangeHandler(es portssvc.ExchangeSvcFacade, bs portssvc.BackfillSvc) *exchangeHandler {
	return &exchangeHandler{
		exchangeService: es,
		backfillService: bs,
	}
}

// RegisterExchangeRoutes registers the rate query, conversion and backfill routes.
func RegisterExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade, backfillService portssvc.BackfillSvc) {
	h := newExchangeHandler(exchangeService, backfillService)

	rg.GET("/currency-rates", h.getRateSeries)
	rg.GET("/convert-amount", h.convertAmount)
	rg.POST("/launch-history-task", h.launchHistoryTask)
	rg.GET("/exchange-rates", h.listExchangeRates)
}

// getRateSeries godoc
// @Summary Get exchange rates over a date range
// @Description Returns the daily rates of source_currency against every tracked currency.
// @Description The local store answers when it is complete for the range, otherwise providers are tried by priority.
// @Tags exchange
// @Produce json
// @Param source_currency query string true "Tracked source currency code"
// @Param date_from query string true "First day, YYYY-MM-DD"
// @Param date_to query string true "Last day, YYYY-MM-DD"
// @Success 200 {object} dto.RateSeriesResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid parameters or no provider available"
// @Failure 500 {object} dto.ErrorResponse
// @Router /currency-rates [get]
func (h *exchangeHandler) getRateSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RateSeriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	// binding already checked the format
	from, _ := domain.ParseDate(req.DateFrom)
	to, _ := domain.ParseDate(req.DateTo)

	logger = logger.With(
		slog.String("source_currency", req.SourceCurrency),
		slog.String("date_from", req.DateFrom),
		slog.String("date_to", req.DateTo),
	)

	result, err := h.exchangeService.RateSeries(c.Request.Context(), req.SourceCurrency, from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve currency rates")
		return
	}

	logger.Info("Rate series served", slog.String("provider", result.ProviderName), slog.Int("days", len(result.Data)))
	c.JSON(http.StatusOK, dto.ToRateSeriesResponse(result))
}

// convertAmount godoc
// @Summary Convert an amount at the latest rate
// @Description Always asks providers for a live quote; the store is not used.
// @Tags exchange
// @Produce json
// @Param source_currency query string true "Tracked source currency code"
// @Param exchanged_currency query string true "Tracked target currency code"
// @Param amount query string true "Decimal amount"
// @Success 200 {object} dto.ConvertAmountResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid parameters or no provider available"
// @Failure 500 {object} dto.ErrorResponse
// @Router /convert-amount [get]
func (h *exchangeHandler) convertAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertAmountRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: "Invalid request parameters",
			Errors:  map[string]string{"amount": "Must be a decimal number."},
		})
		return
	}

	result, err := h.exchangeService.Convert(c.Request.Context(), req.SourceCurrency, req.ExchangedCurrency, amount)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ToConvertAmountResponse(result))
}

// launchHistoryTask godoc
// @Summary Backfill historical rates
// @Description Splits the range into chunks fetched concurrently from the live provider and stored.
// @Description Returns immediately; chunk failures are only logged.
// @Tags exchange
// @Accept json
// @Produce json
// @Param task body dto.RateSeriesRequest true "Backfill range"
// @Success 202 {object} dto.LaunchHistoryTaskResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /launch-history-task [post]
func (h *exchangeHandler) launchHistoryTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	from, _ := domain.ParseDate(req.DateFrom)
	to, _ := domain.ParseDate(req.DateTo)

	ticket, err := h.backfillService.LaunchBackfill(c.Request.Context(), req.SourceCurrency, from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to launch history task")
		return
	}

	c.JSON(http.StatusAccepted, dto.ToLaunchHistoryTaskResponse(ticket))
}

// listExchangeRates godoc
// @Summary List stored exchange rates
// @Description Read-only, newest valuation date first, cursor paginated.
// @Tags exchange
// @Produce json
// @Param source_currency query string false "Filter by source currency"
// @Param limit query int false "Page size (1-200, default 20)"
// @Param next_token query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListExchangeRatesResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exchange-rates [get]
func (h *exchangeHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListExchangeRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	resp, err := h.exchangeService.ListExchangeRates(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list exchange rates")
		return
	}

	c.JSON(http.StatusOK, resp)
}
