package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"log/slog"

	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database"
	db "github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/alerts"
	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/casereports"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func TestDetectionCreatesDraftAlert(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, msgCtx := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 12, "Dengue", "Lingayen")

	touched, err := svc.CheckAndCreateAutomaticAlerts(ctx)
	is.NoErr(err)
	is.Equal(1, touched)

	alerts, err := alertRepo.QueryAutomatic(ctx)
	is.NoErr(err)
	is.Equal(1, len(alerts))

	alert := alerts[0]
	is.Equal(db.AlertStatusDraft, alert.Status)
	is.Equal(db.AlertLevelModerate, alert.AlertLevel)
	is.Equal(12, alert.CaseCount)
	is.Equal(12, alert.NumberOfCases)
	is.Equal(10, alert.ThresholdReached)
	is.True(alert.IsAutomatic)
	is.True(!alert.IsActive)
	is.Equal(uint(1), alert.CreatedBy)
	is.True(alert.PublishedAt == nil)

	is.Equal(1, countPublished(msgCtx, "alerts.alertCreated"))
}

func TestDetectionBelowThresholdCreatesNothing(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, _ := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 9, "Dengue", "Lingayen")

	touched, err := svc.CheckAndCreateAutomaticAlerts(ctx)
	is.NoErr(err)
	is.Equal(0, touched)

	alerts, err := alertRepo.QueryAutomatic(ctx)
	is.NoErr(err)
	is.Equal(0, len(alerts))
}

func TestDetectionIgnoresOnsetsOutsideWindow(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, _ := testSetupAlertService(t)

	onset := time.Now().UTC().Add(-10 * 24 * time.Hour)

	for i := 0; i < 15; i++ {
		err := caseRepo.Add(ctx, &casereports.CaseReport{
			CaseID:       "CASE-" + uuid.NewString(),
			Disease:      casereports.Disease{Name: "Dengue"},
			Municipality: casereports.Municipality{Name: "Lingayen"},
			DateOfOnset:  onset,
			Status:       casereports.CaseStatusApproved,
		})
		is.NoErr(err)
	}

	touched, err := svc.CheckAndCreateAutomaticAlerts(ctx)
	is.NoErr(err)
	is.Equal(0, touched)

	alerts, err := alertRepo.QueryAutomatic(ctx)
	is.NoErr(err)
	is.Equal(0, len(alerts))
}

func TestSecondPassUpdatesDraftInPlace(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, msgCtx := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 12, "Dengue", "Lingayen")

	_, err := svc.CheckAndCreateAutomaticAlerts(ctx)
	is.NoErr(err)

	addApprovedReports(is, ctx, caseRepo, 23, "Dengue", "Lingayen")

	_, err = svc.CheckAndCreateAutomaticAlerts(ctx)
	is.NoErr(err)

	alerts, err := alertRepo.QueryAutomatic(ctx)
	is.NoErr(err)
	is.Equal(1, len(alerts))

	alert := alerts[0]
	is.Equal(db.AlertStatusDraft, alert.Status)
	is.Equal(db.AlertLevelHigh, alert.AlertLevel)
	is.Equal(35, alert.CaseCount)
	is.Equal(25, alert.ThresholdReached)

	is.Equal(1, countPublished(msgCtx, "alerts.alertCreated"))
}

func TestSevereAlertIsPublishedWithoutReview(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, msgCtx := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 60, "Measles", "Dagupan")

	touched, err := svc.CheckAndCreateAutomaticAlerts(ctx)
	is.NoErr(err)
	is.Equal(1, touched)

	alerts, err := alertRepo.QueryAutomatic(ctx)
	is.NoErr(err)
	is.Equal(1, len(alerts))

	alert := alerts[0]
	is.Equal(db.AlertStatusPublished, alert.Status)
	is.Equal(db.AlertLevelSevere, alert.AlertLevel)
	is.Equal(60, alert.CaseCount)
	is.Equal(50, alert.ThresholdReached)
	is.True(alert.IsActive)
	is.True(alert.PublishedAt != nil)

	is.Equal(1, countPublished(msgCtx, "alerts.alertCreated"))
	is.Equal(1, countPublished(msgCtx, "alerts.alertPublished"))
}

func TestCleanupRetiresAlertWithTooFewCases(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, msgCtx := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 3, "Dengue", "Lingayen")

	publishedAt := time.Now().UTC().Add(-48 * time.Hour)
	alert := db.OutbreakAlert{
		DiseaseID:      1,
		MunicipalityID: 1,
		AlertLevel:     db.AlertLevelModerate,
		CaseCount:      11,
		Status:         db.AlertStatusPublished,
		IsAutomatic:    true,
		IsActive:       true,
		PublishedAt:    &publishedAt,
	}
	is.NoErr(alertRepo.Add(ctx, &alert))

	retired, err := svc.CleanupInvalidAlerts(ctx)
	is.NoErr(err)
	is.Equal(1, retired)

	stored, err := alertRepo.GetByID(ctx, alert.ID)
	is.NoErr(err)
	is.True(!stored.IsActive)
	is.True(stored.ResolvedAt != nil)
	is.Equal(db.AlertStatusPublished, stored.Status)

	is.Equal(1, countPublished(msgCtx, "alerts.alertResolved"))
}

func TestCleanupRefreshesCountsOnValidAlerts(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, _ := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 30, "Dengue", "Lingayen")

	publishedAt := time.Now().UTC().Add(-48 * time.Hour)
	alert := db.OutbreakAlert{
		DiseaseID:      1,
		MunicipalityID: 1,
		AlertLevel:     db.AlertLevelModerate,
		CaseCount:      11,
		Status:         db.AlertStatusPublished,
		IsAutomatic:    true,
		IsActive:       true,
		PublishedAt:    &publishedAt,
	}
	is.NoErr(alertRepo.Add(ctx, &alert))

	retired, err := svc.CleanupInvalidAlerts(ctx)
	is.NoErr(err)
	is.Equal(0, retired)

	stored, err := alertRepo.GetByID(ctx, alert.ID)
	is.NoErr(err)
	is.True(stored.IsActive)
	is.Equal(30, stored.CaseCount)
	is.Equal(db.AlertLevelHigh, stored.AlertLevel)
}

func TestCleanupLeavesDraftsForReview(t *testing.T) {
	is, ctx, svc, _, alertRepo, _ := testSetupAlertService(t)

	alert := db.OutbreakAlert{
		DiseaseID:      1,
		MunicipalityID: 1,
		AlertLevel:     db.AlertLevelModerate,
		CaseCount:      11,
		Status:         db.AlertStatusDraft,
		IsAutomatic:    true,
	}
	is.NoErr(alertRepo.Add(ctx, &alert))

	retired, err := svc.CleanupInvalidAlerts(ctx)
	is.NoErr(err)
	is.Equal(0, retired)

	stored, err := alertRepo.GetByID(ctx, alert.ID)
	is.NoErr(err)
	is.Equal(db.AlertStatusDraft, stored.Status)
	is.True(stored.ResolvedAt == nil)
}

func TestEscalationToSevereKeepsExistingDraftUnpublished(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, msgCtx := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 30, "Dengue", "Lingayen")

	_, err := svc.CheckAndCreateAutomaticAlerts(ctx)
	is.NoErr(err)

	addApprovedReports(is, ctx, caseRepo, 25, "Dengue", "Lingayen")

	_, err = svc.CheckAndCreateAutomaticAlerts(ctx)
	is.NoErr(err)

	alerts, err := alertRepo.QueryAutomatic(ctx)
	is.NoErr(err)
	is.Equal(1, len(alerts))

	is.Equal(55, alerts[0].CaseCount)
	is.Equal(db.AlertLevelSevere, alerts[0].AlertLevel)
	is.Equal(db.AlertStatusDraft, alerts[0].Status)
	is.True(!alerts[0].IsActive)
	is.True(alerts[0].PublishedAt == nil)

	is.Equal(0, countPublished(msgCtx, "alerts.alertPublished"))
}

func TestCurrentAlertsRetireStaleAlertsOnRead(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, msgCtx := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 3, "Dengue", "Lingayen")

	publishedAt := time.Now().UTC().Add(-48 * time.Hour)
	alert := db.OutbreakAlert{
		DiseaseID:      1,
		MunicipalityID: 1,
		AlertLevel:     db.AlertLevelModerate,
		CaseCount:      11,
		Status:         db.AlertStatusPublished,
		IsAutomatic:    true,
		IsActive:       true,
		PublishedAt:    &publishedAt,
	}
	is.NoErr(alertRepo.Add(ctx, &alert))

	current, err := svc.GetCurrentAutomaticAlerts(ctx)
	is.NoErr(err)
	is.Equal(0, len(current))

	stored, err := alertRepo.GetByID(ctx, alert.ID)
	is.NoErr(err)
	is.True(!stored.IsActive)
	is.True(stored.ResolvedAt != nil)

	is.Equal(1, countPublished(msgCtx, "alerts.alertResolved"))
}

func TestCurrentAlertsRefreshCountsAndSortByCaseCount(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, _ := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 30, "Dengue", "Lingayen")
	addApprovedReports(is, ctx, caseRepo, 12, "Measles", "Dagupan")

	publishedAt := time.Now().UTC().Add(-48 * time.Hour)

	stale := db.OutbreakAlert{
		DiseaseID:      1,
		MunicipalityID: 1,
		AlertLevel:     db.AlertLevelModerate,
		CaseCount:      11,
		Status:         db.AlertStatusPublished,
		IsAutomatic:    true,
		IsActive:       true,
		PublishedAt:    &publishedAt,
	}
	is.NoErr(alertRepo.Add(ctx, &stale))

	smaller := db.OutbreakAlert{
		DiseaseID:      2,
		MunicipalityID: 2,
		AlertLevel:     db.AlertLevelModerate,
		CaseCount:      12,
		Status:         db.AlertStatusPublished,
		IsAutomatic:    true,
		IsActive:       true,
		PublishedAt:    &publishedAt,
	}
	is.NoErr(alertRepo.Add(ctx, &smaller))

	current, err := svc.GetCurrentAutomaticAlerts(ctx)
	is.NoErr(err)
	is.Equal(2, len(current))

	is.Equal(stale.ID, current[0].ID)
	is.Equal(30, current[0].CaseCount)
	is.Equal(db.AlertLevelHigh, current[0].AlertLevel)
	is.Equal(12, current[1].CaseCount)
}

func TestCurrentAlertsLeaveDraftsUntouched(t *testing.T) {
	is, ctx, svc, _, alertRepo, _ := testSetupAlertService(t)

	draft := db.OutbreakAlert{
		DiseaseID:      1,
		MunicipalityID: 1,
		AlertLevel:     db.AlertLevelModerate,
		CaseCount:      11,
		Status:         db.AlertStatusDraft,
		IsAutomatic:    true,
	}
	is.NoErr(alertRepo.Add(ctx, &draft))

	current, err := svc.GetCurrentAutomaticAlerts(ctx)
	is.NoErr(err)
	is.Equal(1, len(current))
	is.Equal(db.AlertStatusDraft, current[0].Status)
	is.Equal(11, current[0].CaseCount)
}

func TestCurrentAlertsKeepResolvedAlertsThatStillMeetAThreshold(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, msgCtx := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 26, "Dengue", "Lingayen")

	publishedAt := time.Now().UTC().Add(-72 * time.Hour)
	resolvedAt := time.Now().UTC().Add(-24 * time.Hour)
	alert := db.OutbreakAlert{
		DiseaseID:      1,
		MunicipalityID: 1,
		AlertLevel:     db.AlertLevelModerate,
		CaseCount:      11,
		Status:         db.AlertStatusPublished,
		IsAutomatic:    true,
		IsActive:       false,
		PublishedAt:    &publishedAt,
		ResolvedAt:     &resolvedAt,
	}
	is.NoErr(alertRepo.Add(ctx, &alert))

	current, err := svc.GetCurrentAutomaticAlerts(ctx)
	is.NoErr(err)
	is.Equal(1, len(current))
	is.Equal(26, current[0].CaseCount)
	is.Equal(db.AlertLevelHigh, current[0].AlertLevel)
	is.True(!current[0].IsActive)

	// the resident view loses the alert the moment it is resolved
	published, err := svc.GetPublishedAutomaticAlerts(ctx)
	is.NoErr(err)
	is.Equal(0, len(published))

	is.Equal(0, countPublished(msgCtx, "alerts.alertResolved"))
}

func TestCurrentAlertsDropResolvedAlertsBelowThresholdQuietly(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, msgCtx := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 3, "Dengue", "Lingayen")

	publishedAt := time.Now().UTC().Add(-72 * time.Hour)
	resolvedAt := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Second)
	alert := db.OutbreakAlert{
		DiseaseID:      1,
		MunicipalityID: 1,
		AlertLevel:     db.AlertLevelModerate,
		CaseCount:      11,
		Status:         db.AlertStatusPublished,
		IsAutomatic:    true,
		IsActive:       false,
		PublishedAt:    &publishedAt,
		ResolvedAt:     &resolvedAt,
	}
	is.NoErr(alertRepo.Add(ctx, &alert))

	current, err := svc.GetCurrentAutomaticAlerts(ctx)
	is.NoErr(err)
	is.Equal(0, len(current))

	stored, err := alertRepo.GetByID(ctx, alert.ID)
	is.NoErr(err)
	is.True(stored.ResolvedAt.Equal(resolvedAt))

	is.Equal(0, countPublished(msgCtx, "alerts.alertResolved"))
}

func TestPublishAlert(t *testing.T) {
	is, ctx, svc, caseRepo, alertRepo, msgCtx := testSetupAlertService(t)

	addApprovedReports(is, ctx, caseRepo, 12, "Dengue", "Lingayen")

	_, err := svc.CheckAndCreateAutomaticAlerts(ctx)
	is.NoErr(err)

	alerts, _ := alertRepo.QueryAutomatic(ctx)
	is.Equal(1, len(alerts))

	err = svc.PublishAlert(ctx, alerts[0].ID, 7)
	is.NoErr(err)

	stored, err := alertRepo.GetByID(ctx, alerts[0].ID)
	is.NoErr(err)
	is.Equal(db.AlertStatusPublished, stored.Status)
	is.True(stored.IsActive)
	is.True(stored.PublishedAt != nil)

	is.Equal(1, countPublished(msgCtx, "alerts.alertPublished"))
}

func TestPublishUnknownAlertFails(t *testing.T) {
	is, ctx, svc, _, _, _ := testSetupAlertService(t)

	err := svc.PublishAlert(ctx, 999, 7)
	is.True(err != nil)
	is.Equal(ErrAlertNotFound, err)
}

func TestResolveAlert(t *testing.T) {
	is, ctx, svc, _, alertRepo, msgCtx := testSetupAlertService(t)

	publishedAt := time.Now().UTC()
	alert := db.OutbreakAlert{
		DiseaseID:      1,
		MunicipalityID: 1,
		AlertLevel:     db.AlertLevelHigh,
		CaseCount:      30,
		Status:         db.AlertStatusPublished,
		IsAutomatic:    true,
		IsActive:       true,
		PublishedAt:    &publishedAt,
	}
	is.NoErr(alertRepo.Add(ctx, &alert))

	err := svc.ResolveAlert(ctx, alert.ID, 7)
	is.NoErr(err)

	stored, err := alertRepo.GetByID(ctx, alert.ID)
	is.NoErr(err)
	is.True(!stored.IsActive)
	is.True(stored.ResolvedAt != nil)
	is.Equal(uint(7), *stored.ResolvedBy)

	is.Equal(1, countPublished(msgCtx, "alerts.alertResolved"))
}

func TestArchiveAlert(t *testing.T) {
	is, ctx, svc, _, alertRepo, _ := testSetupAlertService(t)

	alert := db.OutbreakAlert{
		DiseaseID:      1,
		MunicipalityID: 1,
		AlertLevel:     db.AlertLevelModerate,
		CaseCount:      11,
		Status:         db.AlertStatusDraft,
		IsAutomatic:    true,
	}
	is.NoErr(alertRepo.Add(ctx, &alert))

	err := svc.ArchiveAlert(ctx, alert.ID)
	is.NoErr(err)

	stored, err := alertRepo.GetByID(ctx, alert.ID)
	is.NoErr(err)
	is.Equal(db.AlertStatusArchived, stored.Status)
	is.True(!stored.IsActive)
}

func TestCaseReportApprovedRaisesPublishedAlert(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	caseRepo, err := casereports.NewCaseReportRepository(database.NewSQLiteConnector(ctx))
	is.NoErr(err)

	alertRepo, err := db.NewAlertRepository(database.NewSQLiteConnector(ctx))
	is.NoErr(err)

	var handler messaging.TopicMessageHandler

	msgCtx := &messaging.MsgContextMock{
		RegisterTopicMessageHandlerFunc: func(routingKey string, h messaging.TopicMessageHandler) error {
			if routingKey == "case-reports.caseReportApproved" {
				handler = h
			}
			return nil
		},
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	New(alertRepo, caseRepo, DefaultContentConfig(), msgCtx, DefaultConfig())
	is.True(handler != nil)

	addApprovedReports(is, ctx, caseRepo, 12, "Dengue", "Lingayen")

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(caseReportApproved{
				CaseID:         "CASE-0001",
				DiseaseID:      1,
				MunicipalityID: 1,
				Timestamp:      time.Now().UTC(),
			})
			return b
		},
		TopicNameFunc: func() string { return "case-reports.caseReportApproved" },
	}

	handler(ctx, msg, slog.Default())

	alerts, err := alertRepo.QueryAutomatic(ctx)
	is.NoErr(err)
	is.Equal(1, len(alerts))

	alert := alerts[0]
	is.Equal(db.AlertStatusPublished, alert.Status)
	is.True(alert.IsActive)
	is.Equal(12, alert.CaseCount)
	is.Equal(db.AlertLevelModerate, alert.AlertLevel)

	is.Equal(1, countPublished(msgCtx, "alerts.alertCreated"))
}

func TestCaseReportApprovedUpdatesActiveAlert(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	caseRepo, err := casereports.NewCaseReportRepository(database.NewSQLiteConnector(ctx))
	is.NoErr(err)

	alertRepo, err := db.NewAlertRepository(database.NewSQLiteConnector(ctx))
	is.NoErr(err)

	var handler messaging.TopicMessageHandler

	msgCtx := &messaging.MsgContextMock{
		RegisterTopicMessageHandlerFunc: func(routingKey string, h messaging.TopicMessageHandler) error {
			handler = h
			return nil
		},
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	New(alertRepo, caseRepo, DefaultContentConfig(), msgCtx, DefaultConfig())

	addApprovedReports(is, ctx, caseRepo, 26, "Dengue", "Lingayen")

	publishedAt := time.Now().UTC()
	alert := db.OutbreakAlert{
		DiseaseID:      1,
		MunicipalityID: 1,
		AlertLevel:     db.AlertLevelModerate,
		CaseCount:      12,
		Status:         db.AlertStatusPublished,
		IsAutomatic:    true,
		IsActive:       true,
		PublishedAt:    &publishedAt,
	}
	is.NoErr(alertRepo.Add(ctx, &alert))

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(caseReportApproved{DiseaseID: 1, MunicipalityID: 1})
			return b
		},
		TopicNameFunc: func() string { return "case-reports.caseReportApproved" },
	}

	handler(ctx, msg, slog.Default())

	alerts, err := alertRepo.QueryAutomatic(ctx)
	is.NoErr(err)
	is.Equal(1, len(alerts))
	is.Equal(26, alerts[0].CaseCount)
	is.Equal(db.AlertLevelHigh, alerts[0].AlertLevel)

	is.Equal(0, countPublished(msgCtx, "alerts.alertCreated"))
}

func TestSchedulerRejectsBadSchedules(t *testing.T) {
	is := is.New(t)

	svc := &AlertServiceMock{}

	_, err := NewScheduler(svc, "not-a-schedule", "1h")
	is.True(err != nil)

	_, err = NewScheduler(svc, "", "1h")
	is.True(err != nil)

	_, err = NewScheduler(svc, "-5m", "1h")
	is.True(err != nil)

	_, err = NewScheduler(svc, "@hourly", "30 2 * * *")
	is.NoErr(err)

	_, err = NewScheduler(svc, "15m", "24h")
	is.NoErr(err)
}

func TestSchedulerRunsDuePasses(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	checked := make(chan struct{}, 1)

	svc := &AlertServiceMock{
		CheckAndCreateAutomaticAlertsFunc: func(ctx context.Context) (int, error) {
			select {
			case checked <- struct{}{}:
			default:
			}
			return 0, nil
		},
		CleanupInvalidAlertsFunc: func(ctx context.Context) (int, error) {
			return 0, nil
		},
	}

	s, err := NewScheduler(svc, "10ms", "1h")
	is.NoErr(err)

	s.Start(ctx)
	defer s.Stop()

	select {
	case <-checked:
	case <-time.After(2 * time.Second):
		t.Fatal("detection pass was never run")
	}
}

func testSetupAlertService(t *testing.T) (*is.I, context.Context, AlertService, casereports.CaseReportRepository, db.AlertRepository, *messaging.MsgContextMock) {
	is := is.New(t)
	ctx := context.Background()

	caseRepo, err := casereports.NewCaseReportRepository(database.NewSQLiteConnector(ctx))
	is.NoErr(err)

	alertRepo, err := db.NewAlertRepository(database.NewSQLiteConnector(ctx))
	is.NoErr(err)

	msgCtx := &messaging.MsgContextMock{
		RegisterTopicMessageHandlerFunc: func(routingKey string, handler messaging.TopicMessageHandler) error {
			return nil
		},
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(alertRepo, caseRepo, DefaultContentConfig(), msgCtx, DefaultConfig())

	return is, ctx, svc, caseRepo, alertRepo, msgCtx
}

func addApprovedReports(is *is.I, ctx context.Context, repo casereports.CaseReportRepository, n int, disease, municipality string) {
	onset := time.Now().UTC().Add(-48 * time.Hour)

	for i := 0; i < n; i++ {
		err := repo.Add(ctx, &casereports.CaseReport{
			CaseID:       fmt.Sprintf("CASE-%s", uuid.NewString()),
			Disease:      casereports.Disease{Name: disease},
			Municipality: casereports.Municipality{Name: municipality},
			DateOfOnset:  onset,
			Status:       casereports.CaseStatusApproved,
		})
		is.NoErr(err)
	}
}

func countPublished(msgCtx *messaging.MsgContextMock, topic string) int {
	count := 0

	for _, call := range msgCtx.PublishOnTopicCalls() {
		if call.Message.TopicName() == topic {
			count++
		}
	}

	return count
}
