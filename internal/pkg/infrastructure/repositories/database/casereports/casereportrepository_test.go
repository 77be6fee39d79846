package casereports

import (
	"context"
	"strings"
	"testing"
	"time"

	. "github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database"

	"github.com/google/uuid"
	"github.com/matryer/is"
)

func TestCountByOnsetSinceGroupsByPair(t *testing.T) {
	is, ctx, r := testSetupCaseReportRepository(t)

	now := time.Now().UTC()

	addReports(t, ctx, r, 1, 1, 3, now.AddDate(0, 0, -2), CaseStatusApproved)
	addReports(t, ctx, r, 1, 2, 2, now.AddDate(0, 0, -2), CaseStatusSubmitted)
	addReports(t, ctx, r, 2, 1, 5, now.AddDate(0, 0, -30), CaseStatusApproved)

	counts, err := r.CountByOnsetSince(ctx, now.AddDate(0, 0, -7))
	is.NoErr(err)
	is.Equal(2, len(counts))

	byPair := map[[2]uint]int{}
	for _, c := range counts {
		byPair[[2]uint{c.DiseaseID, c.MunicipalityID}] = c.Count
	}

	is.Equal(3, byPair[[2]uint{1, 1}])
	is.Equal(2, byPair[[2]uint{1, 2}])
}

func TestCountByOnsetSinceIncludesDrafts(t *testing.T) {
	is, ctx, r := testSetupCaseReportRepository(t)

	now := time.Now().UTC()

	addReports(t, ctx, r, 1, 1, 4, now.AddDate(0, 0, -1), CaseStatusDraft)
	addReports(t, ctx, r, 1, 1, 4, now.AddDate(0, 0, -1), CaseStatusApproved)

	counts, err := r.CountByOnsetSince(ctx, now.AddDate(0, 0, -7))
	is.NoErr(err)
	is.Equal(1, len(counts))
	is.Equal(8, counts[0].Count)
}

func TestCountNonDraftCreatedSinceExcludesDrafts(t *testing.T) {
	is, ctx, r := testSetupCaseReportRepository(t)

	now := time.Now().UTC()

	addReports(t, ctx, r, 3, 4, 6, now.AddDate(0, 0, -3), CaseStatusValidated)
	addReports(t, ctx, r, 3, 4, 2, now.AddDate(0, 0, -3), CaseStatusDraft)

	count, err := r.CountNonDraftCreatedSince(ctx, 3, 4, now.AddDate(0, 0, -30))
	is.NoErr(err)
	is.Equal(6, count)
}

func TestCountNonDraftCreatedSinceUsesCreationDate(t *testing.T) {
	is, ctx, r := testSetupCaseReportRepository(t)

	now := time.Now().UTC()

	for i := 0; i < 3; i++ {
		report := CaseReport{
			CaseID:         newCaseID(),
			DiseaseID:      7,
			MunicipalityID: 7,
			DateOfOnset:    now.AddDate(0, 0, -1),
			Status:         CaseStatusApproved,
		}
		report.CreatedAt = now.AddDate(0, 0, -45)
		is.NoErr(r.Add(ctx, &report))
	}

	count, err := r.CountNonDraftCreatedSince(ctx, 7, 7, now.AddDate(0, 0, -30))
	is.NoErr(err)
	is.Equal(0, count)
}

func TestSeedCreatesReportsAndReferenceData(t *testing.T) {
	is, ctx, r := testSetupCaseReportRepository(t)

	err := r.Seed(ctx, strings.NewReader(seedCsv))
	is.NoErr(err)

	counts, err := r.CountByOnsetSince(ctx, time.Now().UTC().AddDate(-10, 0, 0))
	is.NoErr(err)
	is.Equal(1, len(counts))
	is.Equal(3, counts[0].Count)

	disease, err := r.GetDisease(ctx, counts[0].DiseaseID)
	is.NoErr(err)
	is.Equal("Dengue", disease.Name)

	municipality, err := r.GetMunicipality(ctx, counts[0].MunicipalityID)
	is.NoErr(err)
	is.Equal("Lingayen", municipality.Name)
}

func TestGetUnknownDiseaseReturnsNotFound(t *testing.T) {
	is, ctx, r := testSetupCaseReportRepository(t)

	_, err := r.GetDisease(ctx, 4711)
	is.Equal(err, ErrDiseaseNotFound)

	_, err = r.GetMunicipality(ctx, 4711)
	is.Equal(err, ErrMunicipalityNotFound)
}

func addReports(t *testing.T, ctx context.Context, r CaseReportRepository, diseaseID, municipalityID uint, count int, onset time.Time, status string) {
	is := is.New(t)

	for i := 0; i < count; i++ {
		err := r.Add(ctx, &CaseReport{
			CaseID:         newCaseID(),
			DiseaseID:      diseaseID,
			MunicipalityID: municipalityID,
			DateOfOnset:    onset,
			Status:         status,
		})
		is.NoErr(err)
	}
}

func newCaseID() string {
	return "CASE-" + uuid.NewString()
}

func testSetupCaseReportRepository(t *testing.T) (*is.I, context.Context, CaseReportRepository) {
	is := is.New(t)
	ctx := context.Background()

	r, err := NewCaseReportRepository(NewSQLiteConnector(ctx))
	is.NoErr(err)

	return is, ctx, r
}

const seedCsv string = `caseID;disease;municipality;dateOfOnset;status
SEED-001;Dengue;Lingayen;2025-10-12;approved
SEED-002;Dengue;Lingayen;2025-10-13;submitted
;Dengue;Lingayen;2025-10-14;validated
`
