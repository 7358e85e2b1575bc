package tracking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/faredeck/faredeck/internal/models"
)

func testEvent() ClickEvent {
	return ClickEvent{
		ClickID:   GenerateClickID(),
		SessionID: "sess-1",
		Vertical:  models.VerticalFlights,
		Provider:  "skyway",
		Placement: "results_row",
		Route:     "New York-Paris",
		UTMParams: BuildUTM(models.VerticalFlights, "results_row", "Paris"),
	}
}

func TestBeaconSendDeliversPayload(t *testing.T) {
	received := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		received <- payload
	}))
	defer srv.Close()

	b := NewBeacon(srv.URL, zap.NewNop())
	event := testEvent()
	b.Send(event)

	select {
	case payload := <-received:
		assert.Equal(t, event.ClickID, payload["click_id"])
		assert.Equal(t, "skyway", payload["provider"])
		assert.Equal(t, "results_row", payload["placement"])
		// UTM fields flatten into the top-level payload.
		assert.Equal(t, UTMSource, payload["utm_source"])
		assert.Equal(t, "flights", payload["utm_campaign"])
	case <-time.After(2 * time.Second):
		t.Fatal("beacon was never delivered")
	}
}

func TestBeaconSendSwallowsDeliveryFailure(t *testing.T) {
	// Nothing listens on this address; Send must still return immediately
	// and never panic.
	b := NewBeacon("http://127.0.0.1:1/track", zap.NewNop())

	done := make(chan struct{})
	go func() {
		b.Send(testEvent())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on delivery failure")
	}
}

func TestBeaconWithoutEndpointDropsEvents(t *testing.T) {
	b := NewBeacon("", zap.NewNop())
	require.NotPanics(t, func() { b.Send(testEvent()) })
}
