package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// Alert is the public view of an outbreak alert as served by the portal.
type Alert struct {
	ID             uint      `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	DiseaseID      uint      `json:"disease_id"`
	MunicipalityID uint      `json:"municipality_id"`

	AlertTitle   string `json:"alert_title"`
	AlertDetails string `json:"alert_details"`
	AlertLevel   string `json:"alert_level"`

	CaseCount int `json:"case_count"`

	HealthAdvisory     string `json:"health_advisory"`
	PreventiveMeasures string `json:"preventive_measures"`
	DosAndDonts        string `json:"dos_and_donts"`
	EmergencyContacts  string `json:"emergency_contacts"`

	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
}

// AlertClient fetches published outbreak alerts from the surveillance
// portal, for use by other provincial services such as the resident app
// backend.
type AlertClient interface {
	GetActiveAlerts(ctx context.Context) ([]Alert, error)
	GetAlert(ctx context.Context, alertID uint) (*Alert, error)
}

type alertClient struct {
	url string
}

var tracer = otel.Tracer("outbreak-alert-client")

func NewAlertClient(portalURL string) AlertClient {
	return &alertClient{
		url: portalURL,
	}
}

func (c *alertClient) GetActiveAlerts(ctx context.Context) ([]Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-active-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	respBody, err := c.get(ctx, c.url+"/api/v0/public/alerts")
	if err != nil {
		return nil, err
	}

	result := []Alert{}

	err = json.Unmarshal(respBody, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return result, nil
}

func (c *alertClient) GetAlert(ctx context.Context, alertID uint) (*Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-alert")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Debug("looking up alert", "alert_id", alertID)

	respBody, err := c.get(ctx, fmt.Sprintf("%s/api/v0/public/alerts/%d", c.url, alertID))
	if err != nil {
		return nil, err
	}

	alert := Alert{}

	err = json.Unmarshal(respBody, &alert)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return &alert, nil
}

func (c *alertClient) get(ctx context.Context, url string) ([]byte, error) {
	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve alerts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return respBody, nil
}
