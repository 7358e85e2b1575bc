package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/faredeck/faredeck/internal/aggregator"
	"github.com/faredeck/faredeck/internal/cache"
	"github.com/faredeck/faredeck/internal/filter"
	"github.com/faredeck/faredeck/internal/models"
	"github.com/faredeck/faredeck/internal/tracking"
	"github.com/faredeck/faredeck/internal/upsell"
	"github.com/faredeck/faredeck/pkg/currency"
)

type Handler struct {
	aggregator *aggregator.Aggregator
	cache      cache.Cache
	converter  *currency.Converter
	upsell     *upsell.Engine
	beacon     *tracking.Beacon
	log        *zap.Logger
}

func New(agg *aggregator.Aggregator, c cache.Cache, conv *currency.Converter, eng *upsell.Engine, beacon *tracking.Beacon, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		aggregator: agg,
		cache:      c,
		converter:  conv,
		upsell:     eng,
		beacon:     beacon,
		log:        log,
	}
}

func (h *Handler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if cached, found := h.cache.Get(ctx, req); found {
		offers := filter.Apply(cached, req.Filters, req.SortBy, req.SortOrder)
		h.decoratePrices(offers, req.Currency)

		return c.JSON(http.StatusOK, models.SearchResponse{
			SearchCriteria: req,
			Metadata: models.SearchMetadata{
				TotalResults: len(offers),
				SearchTimeMs: time.Since(startTime).Milliseconds(),
				CacheHit:     true,
			},
			Offers: offers,
		})
	}

	result, err := h.aggregator.Search(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search offers: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	if err := h.cache.Set(ctx, req, result.Offers); err != nil {
		h.log.Debug("cache write failed", zap.Error(err))
	}

	offers := filter.Apply(result.Offers, req.Filters, req.SortBy, req.SortOrder)
	h.decoratePrices(offers, req.Currency)

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			TotalResults:       len(offers),
			ProvidersQueried:   result.ProvidersQueried,
			ProvidersSucceeded: result.ProvidersSucceeded,
			ProvidersFailed:    result.ProvidersFailed,
			FailedProviders:    result.FailedProviders,
			SearchTimeMs:       time.Since(startTime).Milliseconds(),
		},
		Offers: offers,
	})
}

// decoratePrices fills DisplayPrice, converting into the requested display
// currency when a rate exists. An unknown pair keeps the provider currency
// rather than lying with a 1:1 rate.
func (h *Handler) decoratePrices(offers []models.Offer, displayCurrency string) {
	for i := range offers {
		o := &offers[i]
		if displayCurrency == "" || displayCurrency == o.Currency {
			o.DisplayPrice = currency.Format(o.TotalPrice, o.Currency)
			continue
		}

		converted, err := h.converter.Convert(o.TotalPrice, o.Currency, displayCurrency)
		if err != nil {
			h.log.Debug("display conversion failed",
				zap.String("from", o.Currency),
				zap.String("to", displayCurrency),
				zap.Error(err))
			o.DisplayPrice = currency.Format(o.TotalPrice, o.Currency)
			continue
		}
		o.DisplayPrice = currency.Format(converted, displayCurrency)
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
