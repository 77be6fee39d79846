package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"log/slog"

	db "github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/alerts"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type caseReportApproved struct {
	CaseID         string    `json:"caseID"`
	DiseaseID      uint      `json:"diseaseID"`
	MunicipalityID uint      `json:"municipalityID"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewCaseReportApprovedHandler rechecks a single (disease, municipality)
// pair whenever a case report for it is approved, so an outbreak that
// crosses a threshold between scheduled passes is caught right away. The
// recheck counts approved reports over the validity window, not the
// shorter onset window used by the scheduled pass.
func NewCaseReportApprovedHandler(svc *alertSvc) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "case-report-approved")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := caseReportApproved{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		ctx = logging.NewContextWithLogger(ctx, log,
			slog.Int64("disease_id", int64(msg.DiseaseID)),
			slog.Int64("municipality_id", int64(msg.MunicipalityID)))

		err = svc.recheckPair(ctx, msg.DiseaseID, msg.MunicipalityID)
		if err != nil {
			log.Error("could not recheck pair", "err", err.Error())
			return
		}
	}
}

func (svc *alertSvc) recheckPair(ctx context.Context, diseaseID, municipalityID uint) error {
	log := logging.GetFromContext(ctx)
	now := time.Now().UTC()

	count, err := svc.caseReports.CountNonDraftCreatedSince(ctx, diseaseID, municipalityID, now.Add(-ValidityWindow))
	if err != nil {
		return err
	}

	result := Classify(count)
	if result.Level == LevelNone {
		return nil
	}

	result.DiseaseID = diseaseID
	result.MunicipalityID = municipalityID

	existing, err := svc.alerts.GetActiveAutomaticForPair(ctx, diseaseID, municipalityID)
	if err == nil {
		return svc.alerts.UpdateRecountedCases(ctx, existing.ID, count, result.Level.AlertLevel())
	}
	if !errors.Is(err, db.ErrAlertNotFound) {
		return err
	}

	disease, err := svc.caseReports.GetDisease(ctx, diseaseID)
	if err != nil {
		return err
	}

	municipality, err := svc.caseReports.GetMunicipality(ctx, municipalityID)
	if err != nil {
		return err
	}

	content := svc.content.Generate(result, disease.Name, municipality.Name)

	alert := db.OutbreakAlert{
		DiseaseID:      diseaseID,
		MunicipalityID: municipalityID,

		AlertTitle:   content.Title,
		AlertDetails: content.Details,
		AlertLevel:   result.Level.AlertLevel(),

		CaseCount:        count,
		NumberOfCases:    count,
		ThresholdReached: result.ThresholdUsed,

		AlertStartDate: now.Add(-ValidityWindow),

		HealthAdvisory:     content.HealthAdvisory,
		PreventiveMeasures: content.PreventiveMeasures,
		DosAndDonts:        content.DosAndDonts,
		EmergencyContacts:  content.EmergencyContacts,

		Status:      db.AlertStatusPublished,
		IsAutomatic: true,
		IsActive:    true,
		CreatedBy:   svc.cfg.SystemActorID,
		PublishedAt: &now,
	}

	err = svc.alerts.Add(ctx, &alert)
	if err != nil {
		return err
	}

	log.Info("alert raised from approved case report", "alert_id", alert.ID, "case_count", count)

	return svc.messenger.PublishOnTopic(ctx, &AlertCreated{
		AlertID:        alert.ID,
		DiseaseID:      alert.DiseaseID,
		MunicipalityID: alert.MunicipalityID,
		AlertLevel:     alert.AlertLevel,
		CaseCount:      alert.CaseCount,
		AutoPublished:  true,
		Timestamp:      now,
	})
}
