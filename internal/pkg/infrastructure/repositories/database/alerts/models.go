package alerts

import (
	"time"
)

const (
	AlertStatusDraft     = "draft"
	AlertStatusPublished = "published"
	AlertStatusArchived  = "archived"
)

const (
	AlertLevelModerate = "moderate"
	AlertLevelHigh     = "high"
	AlertLevelSevere   = "severe"
)

// OutbreakAlert is one outbreak signal for a (disease, municipality)
// pair. The json field names are a compatibility surface consumed by the
// dashboard and the resident app and must not change.
type OutbreakAlert struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	DiseaseID      uint `gorm:"index:idx_alert_pair" json:"disease_id"`
	MunicipalityID uint `gorm:"index:idx_alert_pair" json:"municipality_id"`

	AlertTitle   string `json:"alert_title"`
	AlertDetails string `json:"alert_details"`
	AlertLevel   string `json:"alert_level"`

	CaseCount        int `json:"case_count"`
	NumberOfCases    int `json:"number_of_cases"`
	ThresholdReached int `json:"threshold_reached"`

	AlertStartDate time.Time `json:"alert_start_date"`

	HealthAdvisory     string `json:"health_advisory"`
	PreventiveMeasures string `json:"preventive_measures"`
	DosAndDonts        string `json:"dos_and_donts"`
	EmergencyContacts  string `json:"emergency_contacts"`

	Status      string `gorm:"index" json:"status"`
	IsAutomatic bool   `gorm:"index" json:"is_automatic"`
	IsActive    bool   `json:"is_active"`

	CreatedBy   uint       `json:"created_by"`
	PublishedAt *time.Time `json:"published_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	ResolvedBy  *uint      `json:"resolved_by"`
}

type AlertStats struct {
	TotalAutomaticAlerts int64 `json:"total_automatic_alerts"`
	DraftAlerts          int64 `json:"draft_alerts"`
	PublishedAlerts      int64 `json:"published_alerts"`
	SevereAlerts         int64 `json:"severe_alerts"`
}
