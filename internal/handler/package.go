package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/faredeck/faredeck/internal/bundle"
	"github.com/faredeck/faredeck/internal/models"
)

// CreatePackage bundles the component offers a user selected into a
// single package offer.
func (h *Handler) CreatePackage(c echo.Context) error {
	var req models.PackageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	var (
		pkg *models.PackageOffer
		err error
	)
	if req.Car != nil {
		pkg, err = bundle.CreateFlightHotelCarPackage(req.Flight, req.Hotel, req.Car, req.SearchParams)
	} else {
		pkg, err = bundle.CreateFlightHotelPackage(req.Flight, req.Hotel, req.SearchParams)
	}

	if err != nil {
		var invalidErr *bundle.InvalidComponentError
		if errors.As(err, &invalidErr) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_component",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "package_error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	return c.JSON(http.StatusOK, models.PackageResponse{Package: pkg})
}

// Upsell evaluates the trip context and returns at most one add-on
// recommendation; a null recommendation is a normal outcome.
func (h *Handler) Upsell(c echo.Context) error {
	var ctx models.TripContext
	if err := c.Bind(&ctx); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, models.UpsellResponse{
		Recommendation: h.upsell.Recommend(ctx),
	})
}
