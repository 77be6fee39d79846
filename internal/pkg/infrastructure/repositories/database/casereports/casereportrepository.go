package casereports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	. "github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gorm.io/gorm"
)

var ErrDiseaseNotFound = fmt.Errorf("disease not found")
var ErrMunicipalityNotFound = fmt.Errorf("municipality not found")
var ErrRepositoryError = fmt.Errorf("could not fetch data from repository")

//go:generate moq -rm -out casereportrepository_mock.go . CaseReportRepository

type CaseReportRepository interface {
	// CountByOnsetSince counts case reports per (disease, municipality)
	// pair with a date of onset at or after since. All report statuses
	// are included, matching the behaviour of the detection pass.
	CountByOnsetSince(ctx context.Context, since time.Time) ([]PairCount, error)

	// CountNonDraftCreatedSince counts the non-draft case reports for one
	// pair created at or after since. This is the validity recheck query
	// and deliberately uses a different window and date column than
	// CountByOnsetSince.
	CountNonDraftCreatedSince(ctx context.Context, diseaseID, municipalityID uint, since time.Time) (int, error)

	Add(ctx context.Context, report *CaseReport) error

	GetDisease(ctx context.Context, diseaseID uint) (Disease, error)
	GetMunicipality(ctx context.Context, municipalityID uint) (Municipality, error)

	Seed(ctx context.Context, reader io.Reader) error
}

type caseReportRepository struct {
	db *gorm.DB
}

func NewCaseReportRepository(connect ConnectorFunc) (CaseReportRepository, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&Disease{}, &Municipality{}, &CaseReport{})
	if err != nil {
		return nil, err
	}

	return &caseReportRepository{
		db: impl,
	}, nil
}

func (r *caseReportRepository) CountByOnsetSince(ctx context.Context, since time.Time) ([]PairCount, error) {
	counts := []PairCount{}

	err := r.db.WithContext(ctx).
		Model(&CaseReport{}).
		Select("disease_id", "municipality_id", "count(*) as count").
		Where("date_of_onset >= ?", since).
		Group("disease_id").
		Group("municipality_id").
		Scan(&counts).Error

	if err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *caseReportRepository) CountNonDraftCreatedSince(ctx context.Context, diseaseID, municipalityID uint, since time.Time) (int, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&CaseReport{}).
		Where("disease_id = ? AND municipality_id = ?", diseaseID, municipalityID).
		Where("status <> ?", CaseStatusDraft).
		Where("created_at >= ?", since).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return int(count), nil
}

func (r *caseReportRepository) Add(ctx context.Context, report *CaseReport) error {
	result := r.db.WithContext(ctx).Create(report)
	return result.Error
}

func (r *caseReportRepository) GetDisease(ctx context.Context, diseaseID uint) (Disease, error) {
	logger := logging.GetFromContext(ctx)

	disease := Disease{}

	result := r.db.WithContext(ctx).First(&disease, diseaseID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Disease{}, ErrDiseaseNotFound
		}

		logger.Error("gorm error", "err", result.Error.Error())

		return Disease{}, ErrRepositoryError
	}

	return disease, nil
}

func (r *caseReportRepository) GetMunicipality(ctx context.Context, municipalityID uint) (Municipality, error) {
	logger := logging.GetFromContext(ctx)

	municipality := Municipality{}

	result := r.db.WithContext(ctx).First(&municipality, municipalityID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Municipality{}, ErrMunicipalityNotFound
		}

		logger.Error("gorm error", "err", result.Error.Error())

		return Municipality{}, ErrRepositoryError
	}

	return municipality, nil
}
