package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	. "github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAlertNotFound = fmt.Errorf("alert not found")
var ErrRepositoryError = fmt.Errorf("could not fetch data from repository")

//go:generate moq -rm -out alertrepository_mock.go . AlertRepository

type AlertRepository interface {
	Add(ctx context.Context, alert *OutbreakAlert) error
	GetByID(ctx context.Context, alertID uint) (OutbreakAlert, error)

	// CreateOrUpdateOpenDraft is the dedup critical section of the
	// detection pass. Inside one transaction it looks up an open
	// automatic draft for the candidate's pair created at or after
	// dedupSince and, if found, refreshes its counts and level in place;
	// otherwise the candidate is inserted as-is. Returns true when a new
	// row was created. Published automatic alerts are not matched by the
	// lookup.
	CreateOrUpdateOpenDraft(ctx context.Context, candidate *OutbreakAlert, dedupSince time.Time) (bool, error)

	// UpdateRecountedCases refreshes case_count and alert_level after a
	// validity recompute, leaving status and published_at untouched.
	UpdateRecountedCases(ctx context.Context, alertID uint, caseCount int, level string) error

	// Retire deactivates an alert whose recomputed case count no longer
	// meets any threshold.
	Retire(ctx context.Context, alertID uint, resolvedAt time.Time) error
	Resolve(ctx context.Context, alertID, userID uint) error

	SetPublished(ctx context.Context, alertID uint, publishedAt time.Time) error
	SetArchived(ctx context.Context, alertID uint) error

	QueryAutomatic(ctx context.Context, statuses ...string) ([]OutbreakAlert, error)
	QueryActiveAutomatic(ctx context.Context, statuses ...string) ([]OutbreakAlert, error)
	Query(ctx context.Context, status, level string) ([]OutbreakAlert, error)

	GetActiveAutomaticForPair(ctx context.Context, diseaseID, municipalityID uint) (OutbreakAlert, error)

	Stats(ctx context.Context) (AlertStats, error)
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(connect ConnectorFunc) (AlertRepository, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&OutbreakAlert{})
	if err != nil {
		return nil, err
	}

	return &alertRepository{
		db: impl,
	}, nil
}

func (r *alertRepository) Add(ctx context.Context, alert *OutbreakAlert) error {
	result := r.db.WithContext(ctx).Create(alert)
	return result.Error
}

func (r *alertRepository) GetByID(ctx context.Context, alertID uint) (OutbreakAlert, error) {
	logger := logging.GetFromContext(ctx)

	alert := OutbreakAlert{}

	result := r.db.WithContext(ctx).First(&alert, alertID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return OutbreakAlert{}, ErrAlertNotFound
		}

		logger.Error("gorm error", "err", result.Error.Error())

		return OutbreakAlert{}, ErrRepositoryError
	}

	return alert, nil
}

func (r *alertRepository) CreateOrUpdateOpenDraft(ctx context.Context, candidate *OutbreakAlert, dedupSince time.Time) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx

		// sqlite has no row locks; the in-memory test connector runs a
		// single writer anyway
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		existing := OutbreakAlert{}

		result := query.
			Where("disease_id = ? AND municipality_id = ?", candidate.DiseaseID, candidate.MunicipalityID).
			Where("is_automatic = ?", true).
			Where("status = ?", AlertStatusDraft).
			Where("created_at >= ?", dedupSince).
			First(&existing)

		if result.Error == nil {
			err := tx.Model(&existing).Updates(map[string]any{
				"case_count":        candidate.CaseCount,
				"number_of_cases":   candidate.NumberOfCases,
				"threshold_reached": candidate.ThresholdReached,
				"alert_level":       candidate.AlertLevel,
			}).Error
			if err != nil {
				return err
			}

			existing.CaseCount = candidate.CaseCount
			existing.NumberOfCases = candidate.NumberOfCases
			existing.ThresholdReached = candidate.ThresholdReached
			existing.AlertLevel = candidate.AlertLevel

			*candidate = existing
			return nil
		}

		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		created = true
		return tx.Create(candidate).Error
	})

	return created, err
}

func (r *alertRepository) UpdateRecountedCases(ctx context.Context, alertID uint, caseCount int, level string) error {
	return r.db.WithContext(ctx).
		Model(&OutbreakAlert{}).
		Where("id = ?", alertID).
		Updates(map[string]any{
			"case_count":  caseCount,
			"alert_level": level,
		}).Error
}

func (r *alertRepository) Retire(ctx context.Context, alertID uint, resolvedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&OutbreakAlert{}).
		Where("id = ?", alertID).
		Updates(map[string]any{
			"is_active":   false,
			"resolved_at": resolvedAt,
		}).Error
}

func (r *alertRepository) Resolve(ctx context.Context, alertID, userID uint) error {
	result := r.db.WithContext(ctx).
		Model(&OutbreakAlert{}).
		Where("id = ?", alertID).
		Updates(map[string]any{
			"is_active":   false,
			"resolved_at": time.Now().UTC(),
			"resolved_by": userID,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}

	return nil
}

func (r *alertRepository) SetPublished(ctx context.Context, alertID uint, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&OutbreakAlert{}).
		Where("id = ?", alertID).
		Updates(map[string]any{
			"status":       AlertStatusPublished,
			"published_at": publishedAt,
			"is_active":    true,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}

	return nil
}

func (r *alertRepository) SetArchived(ctx context.Context, alertID uint) error {
	result := r.db.WithContext(ctx).
		Model(&OutbreakAlert{}).
		Where("id = ?", alertID).
		Updates(map[string]any{
			"status":    AlertStatusArchived,
			"is_active": false,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}

	return nil
}

func (r *alertRepository) QueryAutomatic(ctx context.Context, statuses ...string) ([]OutbreakAlert, error) {
	alerts := []OutbreakAlert{}

	query := r.db.WithContext(ctx).Where("is_automatic = ?", true)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	err := query.Find(&alerts).Error
	if err != nil {
		return nil, err
	}

	return alerts, nil
}

func (r *alertRepository) QueryActiveAutomatic(ctx context.Context, statuses ...string) ([]OutbreakAlert, error) {
	alerts := []OutbreakAlert{}

	query := r.db.WithContext(ctx).Where("is_automatic = ? AND is_active = ?", true, true)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	err := query.Find(&alerts).Error
	if err != nil {
		return nil, err
	}

	return alerts, nil
}

func (r *alertRepository) Query(ctx context.Context, status, level string) ([]OutbreakAlert, error) {
	alerts := []OutbreakAlert{}

	query := r.db.WithContext(ctx).Where("is_automatic = ?", true)

	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if level != "" && level != "all" {
		query = query.Where("alert_level = ?", level)
	}

	err := query.Order("created_at desc").Find(&alerts).Error
	if err != nil {
		return nil, err
	}

	return alerts, nil
}

func (r *alertRepository) GetActiveAutomaticForPair(ctx context.Context, diseaseID, municipalityID uint) (OutbreakAlert, error) {
	alert := OutbreakAlert{}

	result := r.db.WithContext(ctx).
		Where("disease_id = ? AND municipality_id = ?", diseaseID, municipalityID).
		Where("is_automatic = ? AND is_active = ?", true, true).
		First(&alert)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return OutbreakAlert{}, ErrAlertNotFound
		}
		return OutbreakAlert{}, result.Error
	}

	return alert, nil
}

func (r *alertRepository) Stats(ctx context.Context) (AlertStats, error) {
	stats := AlertStats{}

	automatic := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&OutbreakAlert{}).Where("is_automatic = ?", true)
	}

	if err := automatic().Count(&stats.TotalAutomaticAlerts).Error; err != nil {
		return AlertStats{}, err
	}
	if err := automatic().Where("status = ?", AlertStatusDraft).Count(&stats.DraftAlerts).Error; err != nil {
		return AlertStats{}, err
	}
	if err := automatic().Where("status = ?", AlertStatusPublished).Count(&stats.PublishedAlerts).Error; err != nil {
		return AlertStats{}, err
	}
	if err := automatic().Where("alert_level = ?", AlertLevelSevere).Count(&stats.SevereAlerts).Error; err != nil {
		return AlertStats{}, err
	}

	return stats, nil
}
