package casereports

import (
	"time"

	"gorm.io/gorm"
)

const (
	CaseStatusDraft     = "draft"
	CaseStatusSubmitted = "submitted"
	CaseStatusValidated = "validated"
	CaseStatusReturned  = "returned"
	CaseStatusApproved  = "approved"
)

type Disease struct {
	gorm.Model `json:"-"`

	Name        string `gorm:"uniqueIndex" json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type Municipality struct {
	gorm.Model `json:"-"`

	Name     string `gorm:"uniqueIndex" json:"name"`
	Province string `json:"province"`
}

type CaseReport struct {
	gorm.Model `json:"-"`

	CaseID string `gorm:"uniqueIndex" json:"caseID"`

	DiseaseID uint    `gorm:"index:idx_case_pair" json:"diseaseID"`
	Disease   Disease `json:"disease"`

	MunicipalityID uint         `gorm:"index:idx_case_pair" json:"municipalityID"`
	Municipality   Municipality `json:"municipality"`

	DateOfOnset time.Time `gorm:"index" json:"dateOfOnset"`
	Status      string    `gorm:"index" json:"status"`

	ReportedBy uint `json:"reportedBy"`
}

func (c *CaseReport) BeforeSave(tx *gorm.DB) (err error) {
	if c.DiseaseID == 0 && c.Disease.ID == 0 && c.Disease.Name != "" {
		var d = Disease{}
		result := tx.Where(Disease{Name: c.Disease.Name}).First(&d)
		if result.RowsAffected > 0 {
			c.DiseaseID = d.ID
			c.Disease = d
		}
	}

	if c.MunicipalityID == 0 && c.Municipality.ID == 0 && c.Municipality.Name != "" {
		var m = Municipality{}
		result := tx.Where(Municipality{Name: c.Municipality.Name}).First(&m)
		if result.RowsAffected > 0 {
			c.MunicipalityID = m.ID
			c.Municipality = m
		}
	}

	return nil
}

// PairCount is the result row of the grouped onset-window query, one
// per (disease, municipality) pair.
type PairCount struct {
	DiseaseID      uint `json:"diseaseID"`
	MunicipalityID uint `json:"municipalityID"`
	Count          int  `json:"count"`
}
