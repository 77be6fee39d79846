package alerts

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"log/slog"

	db "github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/alerts"
	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/casereports"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("outbreak-surveillance/alerts")

// Detection counts onsets over the last week, while dedup and the
// validity recheck run on record creation time over their own windows.
// The three windows are independent and must stay that way.
const (
	DetectionWindow = 7 * 24 * time.Hour
	DedupWindow     = 24 * time.Hour
	ValidityWindow  = 30 * 24 * time.Hour
)

var ErrAlertNotFound = db.ErrAlertNotFound

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	CheckAndCreateAutomaticAlerts(ctx context.Context) (int, error)
	CleanupInvalidAlerts(ctx context.Context) (int, error)

	GetCurrentAutomaticAlerts(ctx context.Context) ([]db.OutbreakAlert, error)
	GetPublishedAutomaticAlerts(ctx context.Context) ([]db.OutbreakAlert, error)
	GetAlerts(ctx context.Context, status, level string) ([]db.OutbreakAlert, error)
	GetByID(ctx context.Context, alertID uint) (db.OutbreakAlert, error)
	Stats(ctx context.Context) (db.AlertStats, error)

	PublishAlert(ctx context.Context, alertID, userID uint) error
	ArchiveAlert(ctx context.Context, alertID uint) error
	ResolveAlert(ctx context.Context, alertID, userID uint) error
}

type Config struct {
	// SystemActorID is recorded as the creator of automatically
	// generated alerts.
	SystemActorID uint
}

func DefaultConfig() Config {
	return Config{SystemActorID: 1}
}

type alertSvc struct {
	alerts      db.AlertRepository
	caseReports casereports.CaseReportRepository
	content     *ContentConfig
	messenger   messaging.MsgContext
	cfg         Config
}

func New(a db.AlertRepository, c casereports.CaseReportRepository, content *ContentConfig, m messaging.MsgContext, cfg Config) AlertService {
	svc := &alertSvc{
		alerts:      a,
		caseReports: c,
		content:     content,
		messenger:   m,
		cfg:         cfg,
	}

	svc.messenger.RegisterTopicMessageHandler("case-reports.caseReportApproved", NewCaseReportApprovedHandler(svc))

	return svc
}

// CheckAndCreateAutomaticAlerts runs one detection pass over all
// (disease, municipality) pairs and returns the number of alerts that
// were created or refreshed. A pair that fails is logged and skipped so
// one bad pair cannot starve the rest of the pass.
func (svc *alertSvc) CheckAndCreateAutomaticAlerts(ctx context.Context) (int, error) {
	var err error

	ctx, span := tracer.Start(ctx, "check-automatic-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	now := time.Now().UTC()

	counts, err := svc.caseReports.CountByOnsetSince(ctx, now.Add(-DetectionWindow))
	if err != nil {
		return 0, fmt.Errorf("could not count case reports: %w", err)
	}

	touched := 0

	for _, pair := range counts {
		result := Classify(pair.Count)
		if result.Level == LevelNone {
			continue
		}

		result.DiseaseID = pair.DiseaseID
		result.MunicipalityID = pair.MunicipalityID

		alert, created, err := svc.upsertAlertForPair(ctx, result, now)
		if err != nil {
			log.Error("could not raise alert",
				"disease_id", pair.DiseaseID,
				"municipality_id", pair.MunicipalityID,
				"err", err.Error())
			continue
		}

		touched++

		if created {
			err = svc.messenger.PublishOnTopic(ctx, &AlertCreated{
				AlertID:        alert.ID,
				DiseaseID:      alert.DiseaseID,
				MunicipalityID: alert.MunicipalityID,
				AlertLevel:     alert.AlertLevel,
				CaseCount:      alert.CaseCount,
				AutoPublished:  result.Level == LevelRed,
				Timestamp:      now,
			})
			if err != nil {
				log.Error("failed to publish alert created event", "alert_id", alert.ID, "err", err.Error())
			}
		}

		// only newly raised severe alerts bypass manual review, an
		// existing draft that escalates stays with the reviewer
		if created && result.Level == LevelRed {
			err = svc.publish(ctx, alert.ID, now)
			if err != nil {
				log.Error("could not auto publish severe alert", "alert_id", alert.ID, "err", err.Error())
			}
		}
	}

	log.Info("detection pass finished", "pairs", len(counts), "alerts", touched)

	return touched, nil
}

func (svc *alertSvc) upsertAlertForPair(ctx context.Context, result ThresholdResult, now time.Time) (db.OutbreakAlert, bool, error) {
	disease, err := svc.caseReports.GetDisease(ctx, result.DiseaseID)
	if err != nil {
		return db.OutbreakAlert{}, false, err
	}

	municipality, err := svc.caseReports.GetMunicipality(ctx, result.MunicipalityID)
	if err != nil {
		return db.OutbreakAlert{}, false, err
	}

	content := svc.content.Generate(result, disease.Name, municipality.Name)

	candidate := db.OutbreakAlert{
		DiseaseID:      result.DiseaseID,
		MunicipalityID: result.MunicipalityID,

		AlertTitle:   content.Title,
		AlertDetails: content.Details,
		AlertLevel:   result.Level.AlertLevel(),

		CaseCount:        result.CaseCount,
		NumberOfCases:    result.CaseCount,
		ThresholdReached: result.ThresholdUsed,

		AlertStartDate: now.Add(-DetectionWindow),

		HealthAdvisory:     content.HealthAdvisory,
		PreventiveMeasures: content.PreventiveMeasures,
		DosAndDonts:        content.DosAndDonts,
		EmergencyContacts:  content.EmergencyContacts,

		Status:      db.AlertStatusDraft,
		IsAutomatic: true,
		CreatedBy:   svc.cfg.SystemActorID,
	}

	created, err := svc.alerts.CreateOrUpdateOpenDraft(ctx, &candidate, now.Add(-DedupWindow))
	if err != nil {
		return db.OutbreakAlert{}, false, err
	}

	return candidate, created, nil
}

// CleanupInvalidAlerts recounts the approved case reports behind every
// active automatic alert and retires the ones that no longer meet any
// threshold. Draft alerts are never active and are left for manual
// review. Returns the number of retired alerts.
func (svc *alertSvc) CleanupInvalidAlerts(ctx context.Context) (int, error) {
	var err error

	ctx, span := tracer.Start(ctx, "cleanup-invalid-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	now := time.Now().UTC()

	active, err := svc.alerts.QueryActiveAutomatic(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not fetch active alerts: %w", err)
	}

	retired := 0

	for _, alert := range active {
		count, err := svc.caseReports.CountNonDraftCreatedSince(ctx, alert.DiseaseID, alert.MunicipalityID, now.Add(-ValidityWindow))
		if err != nil {
			log.Error("could not recount case reports", "alert_id", alert.ID, "err", err.Error())
			continue
		}

		result := Classify(count)

		if result.Level == LevelNone {
			err = svc.alerts.Retire(ctx, alert.ID, now)
			if err != nil {
				log.Error("could not retire alert", "alert_id", alert.ID, "err", err.Error())
				continue
			}

			retired++

			err = svc.messenger.PublishOnTopic(ctx, &AlertResolved{AlertID: alert.ID, Timestamp: now})
			if err != nil {
				log.Error("failed to publish alert resolved event", "alert_id", alert.ID, "err", err.Error())
			}

			continue
		}

		err = svc.alerts.UpdateRecountedCases(ctx, alert.ID, count, result.Level.AlertLevel())
		if err != nil {
			log.Error("could not update alert counts", "alert_id", alert.ID, "err", err.Error())
		}
	}

	log.Info("cleanup pass finished", "active", len(active), "retired", retired)

	return retired, nil
}

func (svc *alertSvc) GetCurrentAutomaticAlerts(ctx context.Context) ([]db.OutbreakAlert, error) {
	alerts, err := svc.alerts.QueryAutomatic(ctx, db.AlertStatusDraft, db.AlertStatusPublished)
	if err != nil {
		return nil, err
	}

	return svc.revalidate(ctx, alerts), nil
}

func (svc *alertSvc) GetPublishedAutomaticAlerts(ctx context.Context) ([]db.OutbreakAlert, error) {
	alerts, err := svc.alerts.QueryActiveAutomatic(ctx, db.AlertStatusPublished)
	if err != nil {
		return nil, err
	}

	return svc.revalidate(ctx, alerts), nil
}

// revalidate recounts the approved case reports behind each published
// alert before it is handed out and retires the ones that no longer meet
// any threshold. A resolved alert whose count still meets a threshold is
// kept, with its counts refreshed. Drafts pass through untouched for
// manual review.
func (svc *alertSvc) revalidate(ctx context.Context, alerts []db.OutbreakAlert) []db.OutbreakAlert {
	log := logging.GetFromContext(ctx)
	now := time.Now().UTC()

	valid := make([]db.OutbreakAlert, 0, len(alerts))

	for _, alert := range alerts {
		if alert.Status == db.AlertStatusDraft {
			valid = append(valid, alert)
			continue
		}

		count, err := svc.caseReports.CountNonDraftCreatedSince(ctx, alert.DiseaseID, alert.MunicipalityID, now.Add(-ValidityWindow))
		if err != nil {
			log.Error("could not recount case reports", "alert_id", alert.ID, "err", err.Error())
			valid = append(valid, alert)
			continue
		}

		result := Classify(count)

		if result.Level == LevelNone {
			if !alert.IsActive {
				continue
			}

			err = svc.alerts.Retire(ctx, alert.ID, now)
			if err != nil {
				log.Error("could not retire alert", "alert_id", alert.ID, "err", err.Error())
				continue
			}

			err = svc.messenger.PublishOnTopic(ctx, &AlertResolved{AlertID: alert.ID, Timestamp: now})
			if err != nil {
				log.Error("failed to publish alert resolved event", "alert_id", alert.ID, "err", err.Error())
			}

			continue
		}

		if count != alert.CaseCount || result.Level.AlertLevel() != alert.AlertLevel {
			err = svc.alerts.UpdateRecountedCases(ctx, alert.ID, count, result.Level.AlertLevel())
			if err != nil {
				log.Error("could not update alert counts", "alert_id", alert.ID, "err", err.Error())
			} else {
				alert.CaseCount = count
				alert.NumberOfCases = count
				alert.AlertLevel = result.Level.AlertLevel()
			}
		}

		valid = append(valid, alert)
	}

	slices.SortFunc(valid, func(a, b db.OutbreakAlert) int {
		return b.CaseCount - a.CaseCount
	})

	return valid
}

func (svc *alertSvc) GetAlerts(ctx context.Context, status, level string) ([]db.OutbreakAlert, error) {
	return svc.alerts.Query(ctx, status, level)
}

func (svc *alertSvc) GetByID(ctx context.Context, alertID uint) (db.OutbreakAlert, error) {
	return svc.alerts.GetByID(ctx, alertID)
}

func (svc *alertSvc) Stats(ctx context.Context) (db.AlertStats, error) {
	return svc.alerts.Stats(ctx)
}

func (svc *alertSvc) PublishAlert(ctx context.Context, alertID, userID uint) error {
	log := logging.GetFromContext(ctx)

	_, err := svc.alerts.GetByID(ctx, alertID)
	if err != nil {
		return err
	}

	err = svc.publish(ctx, alertID, time.Now().UTC())
	if err != nil {
		return err
	}

	log.Info("alert published", slog.Int64("alert_id", int64(alertID)), slog.Int64("user_id", int64(userID)))

	return nil
}

func (svc *alertSvc) publish(ctx context.Context, alertID uint, publishedAt time.Time) error {
	err := svc.alerts.SetPublished(ctx, alertID, publishedAt)
	if err != nil {
		return err
	}

	return svc.messenger.PublishOnTopic(ctx, &AlertPublished{AlertID: alertID, Timestamp: publishedAt})
}

func (svc *alertSvc) ArchiveAlert(ctx context.Context, alertID uint) error {
	return svc.alerts.SetArchived(ctx, alertID)
}

func (svc *alertSvc) ResolveAlert(ctx context.Context, alertID, userID uint) error {
	err := svc.alerts.Resolve(ctx, alertID, userID)
	if err != nil {
		if errors.Is(err, db.ErrAlertNotFound) {
			return ErrAlertNotFound
		}
		return err
	}

	now := time.Now().UTC()

	return svc.messenger.PublishOnTopic(ctx, &AlertResolved{AlertID: alertID, Timestamp: now})
}
