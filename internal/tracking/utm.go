package tracking

import "github.com/faredeck/faredeck/internal/models"

// Fixed for the whole system; partners identify us by these.
const (
	UTMSource = "faredeck"
	UTMMedium = "metasearch"
)

// campaignByVertical renames verticals whose marketing campaign name
// differs from the product name. Unmapped verticals pass through.
var campaignByVertical = map[models.Vertical]string{
	models.VerticalStays:      "hotels",
	models.VerticalActivities: "activities",
}

type UTMParams struct {
	Source   string `json:"utm_source"`
	Medium   string `json:"utm_medium"`
	Campaign string `json:"utm_campaign"`
	Content  string `json:"utm_content"`
	Term     string `json:"utm_term"`
}

// BuildUTM derives campaign parameters for an outbound link. Placement and
// term are carried verbatim; an empty term stays empty.
func BuildUTM(vertical models.Vertical, placement, term string) UTMParams {
	campaign := string(vertical)
	if mapped, ok := campaignByVertical[vertical]; ok {
		campaign = mapped
	}

	return UTMParams{
		Source:   UTMSource,
		Medium:   UTMMedium,
		Campaign: campaign,
		Content:  placement,
		Term:     term,
	}
}
