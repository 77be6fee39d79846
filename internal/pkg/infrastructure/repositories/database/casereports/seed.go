package casereports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

// Seed loads case reports from a semicolon separated csv stream:
//
//	caseID;disease;municipality;dateOfOnset;status
//	SEED-001;Dengue;Lingayen;2025-10-12;approved
//
// Diseases and municipalities are created on first reference. An empty
// caseID gets a generated SEED-<uuid> identity so that seeded data can
// be recognised and cleaned out later.
func (r *caseReportRepository) Seed(ctx context.Context, reader io.Reader) error {
	cr := csv.NewReader(reader)
	cr.Comma = ';'

	rows, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read seed data: %w", err)
	}

	log := logging.GetFromContext(ctx)

	count := 0

	for idx, row := range rows {
		if idx == 0 {
			continue
		}

		if len(row) < 5 {
			return fmt.Errorf("too few columns on line %d in seed data", idx+1)
		}

		onset, err := time.Parse("2006-01-02", row[3])
		if err != nil {
			return fmt.Errorf("failed to parse date of onset on line %d: %w", idx+1, err)
		}

		caseID := row[0]
		if caseID == "" {
			caseID = "SEED-" + uuid.NewString()
		}

		report := CaseReport{
			CaseID:       caseID,
			Disease:      Disease{Name: row[1]},
			Municipality: Municipality{Name: row[2]},
			DateOfOnset:  onset,
			Status:       row[4],
		}

		err = r.Add(ctx, &report)
		if err != nil {
			log.Error("could not seed case report", "case_id", caseID, "err", err.Error())
			continue
		}

		count++
	}

	log.Info("seeded case reports", "count", count)

	return nil
}
