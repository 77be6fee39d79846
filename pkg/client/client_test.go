package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestGetActiveAlerts(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/api/v0/public/alerts", r.URL.Path)
		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(alertsJSON))
	}))
	defer server.Close()

	c := NewAlertClient(server.URL)

	alerts, err := c.GetActiveAlerts(context.Background())
	is.NoErr(err)
	is.Equal(1, len(alerts))
	is.Equal(uint(3), alerts[0].ID)
	is.Equal("high", alerts[0].AlertLevel)
}

func TestGetAlert(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/api/v0/public/alerts/3", r.URL.Path)
		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(alertJSON))
	}))
	defer server.Close()

	c := NewAlertClient(server.URL)

	alert, err := c.GetAlert(context.Background(), 3)
	is.NoErr(err)
	is.Equal("High Risk Alert: Dengue in Lingayen", alert.AlertTitle)
	is.Equal(35, alert.CaseCount)
}

func TestGetAlertFailsOnNotFound(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewAlertClient(server.URL)

	_, err := c.GetAlert(context.Background(), 99)
	is.True(err != nil)
}

const alertJSON string = `{"id":3,"alert_title":"High Risk Alert: Dengue in Lingayen","alert_level":"high","case_count":35,"status":"published"}`
const alertsJSON string = `[` + alertJSON + `]`
