package tracking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/faredeck/faredeck/internal/models"
)

// ClickEvent is the attribution payload delivered to the tracking
// endpoint when a user follows an outbound affiliate link.
type ClickEvent struct {
	ClickID   string          `json:"click_id"`
	SessionID string          `json:"session_id,omitempty"`
	Vertical  models.Vertical `json:"vertical"`
	Provider  string          `json:"provider"`
	Placement string          `json:"placement"`
	Route     string          `json:"route"`
	UTMParams
}

// Beacon delivers click events best-effort. Failures are logged and
// swallowed so attribution problems never reach the user-facing redirect.
type Beacon struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

func NewBeacon(endpoint string, log *zap.Logger) *Beacon {
	return &Beacon{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 2 * time.Second},
		log:      log,
	}
}

// Send fires the event in the background and returns immediately. A beacon
// with no endpoint drops events.
func (b *Beacon) Send(event ClickEvent) {
	if b.endpoint == "" {
		return
	}
	go b.post(event)
}

func (b *Beacon) post(event ClickEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		b.log.Debug("beacon marshal failed", zap.Error(err))
		return
	}

	resp, err := b.client.Post(b.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		b.log.Debug("beacon delivery failed", zap.Error(err), zap.String("click_id", event.ClickID))
		return
	}
	resp.Body.Close()
}
