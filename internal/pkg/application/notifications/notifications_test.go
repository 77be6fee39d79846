package notifications

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestConfig(t *testing.T) {
	is := is.New(t)
	config := strings.NewReader(`
notifications:
  - id: resident-portal
    name: Resident portal outbreak feed
    type: alerts.alertPublished
    subscribers:
    - endpoint: http://resident-portal:8990
`)
	cfg, err := LoadConfiguration(config)

	is.NoErr(err)
	is.Equal(len(cfg.Notifications), 1)
	is.Equal(cfg.Notifications[0].ID, "resident-portal")
	is.Equal(cfg.Notifications[0].Type, "alerts.alertPublished")
	is.Equal(cfg.Notifications[0].Subscribers[0].Endpoint, "http://resident-portal:8990")
}

func TestSendDeliversEventToSubscriber(t *testing.T) {
	is := is.New(t)

	received := make(chan []byte, 1)
	eventType := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
		eventType <- r.Header.Get("Ce-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := New(&Config{
		Notifications: []Notification{
			{
				ID:          "resident-portal",
				Type:        "alerts.alertPublished",
				Subscribers: []SubscriberConfig{{Endpoint: srv.URL}},
			},
		},
	})

	err := s.Send(context.Background(), "alerts.alertPublished", []byte(`{"alertID":7}`))
	is.NoErr(err)

	is.Equal(`{"alertID":7}`, string(<-received))
	is.Equal("alerts.alertPublished", <-eventType)
}

func TestSendWithoutSubscribersIsANoOp(t *testing.T) {
	is := is.New(t)

	s := New(&Config{})

	err := s.Send(context.Background(), "alerts.alertCreated", []byte(`{"alertID":1}`))
	is.NoErr(err)
}
