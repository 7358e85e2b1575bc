package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/faredeck/faredeck/internal/models"
	"github.com/faredeck/faredeck/internal/tracking"
)

// Redirect sends the user to a partner site with attribution parameters
// appended and fires the tracking beacon. Beacon failures never delay or
// break the redirect.
func (h *Handler) Redirect(c echo.Context) error {
	rawURL := c.QueryParam("url")
	target, err := url.Parse(rawURL)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_url",
			Message: "url must be an absolute http(s) URL",
			Code:    http.StatusBadRequest,
		})
	}

	vertical := models.Vertical(c.QueryParam("vertical"))
	placement := c.QueryParam("placement")
	term := c.QueryParam("term")

	clickID := tracking.GenerateClickID()
	utm := tracking.BuildUTM(vertical, placement, term)

	q := target.Query()
	q.Set("click_id", clickID)
	q.Set("utm_source", utm.Source)
	q.Set("utm_medium", utm.Medium)
	q.Set("utm_campaign", utm.Campaign)
	q.Set("utm_content", utm.Content)
	q.Set("utm_term", utm.Term)
	target.RawQuery = q.Encode()

	h.beacon.Send(tracking.ClickEvent{
		ClickID:   clickID,
		SessionID: c.QueryParam("session_id"),
		Vertical:  vertical,
		Provider:  c.QueryParam("provider"),
		Placement: placement,
		Route:     c.QueryParam("route"),
		UTMParams: utm,
	})

	return c.Redirect(http.StatusFound, target.String())
}
