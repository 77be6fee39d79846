package alerts

import (
	"fmt"
	"io"
	"strings"

	db "github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/alerts"

	"gopkg.in/yaml.v2"
)

// AlertContent holds the generated, human readable parts of an alert.
type AlertContent struct {
	Title              string
	Details            string
	HealthAdvisory     string
	PreventiveMeasures string
	DosAndDonts        string
	EmergencyContacts  string
}

// ContentConfig carries the provincial office's advisory texts. Any field
// left empty in the configuration file falls back to the built-in default.
type ContentConfig struct {
	Advisories         map[string]string `yaml:"advisories"`
	PreventiveMeasures string            `yaml:"preventivemeasures"`
	DosAndDonts        string            `yaml:"dosanddonts"`
	EmergencyContacts  string            `yaml:"emergencycontacts"`
}

func NewContentConfig(config io.ReadCloser) (*ContentConfig, error) {
	defer config.Close()

	b, err := io.ReadAll(config)
	if err != nil {
		return nil, err
	}

	cfg := DefaultContentConfig()
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	// an empty advisories key in the file unmarshals to a nil map
	if cfg.Advisories == nil {
		cfg.Advisories = map[string]string{}
	}

	for level, text := range DefaultContentConfig().Advisories {
		if cfg.Advisories[level] == "" {
			cfg.Advisories[level] = text
		}
	}

	return cfg, nil
}

func DefaultContentConfig() *ContentConfig {
	return &ContentConfig{
		Advisories: map[string]string{
			db.AlertLevelModerate: "Enhanced surveillance is recommended. Monitor the situation closely and ensure proper case reporting.",
			db.AlertLevelHigh:     "Immediate investigation required. Implement enhanced control measures and contact tracing.",
			db.AlertLevelSevere:   "Urgent outbreak response needed. Activate emergency protocols and implement comprehensive control measures.",
		},
		PreventiveMeasures: "• Strengthen surveillance activities\n" +
			"• Enhance case investigation and contact tracing\n" +
			"• Implement infection prevention and control measures\n" +
			"• Increase community awareness and education\n" +
			"• Coordinate with healthcare facilities\n" +
			"• Monitor high-risk populations\n" +
			"• Ensure adequate medical supplies and resources",
		DosAndDonts: "DO:\n" +
			"• Report suspected cases immediately\n" +
			"• Follow infection control protocols\n" +
			"• Seek medical attention for symptoms\n" +
			"• Practice good hygiene\n\n" +
			"DON'T:\n" +
			"• Ignore symptoms or delay medical care\n" +
			"• Spread unverified information\n" +
			"• Neglect preventive measures\n" +
			"• Self-medicate without medical advice",
		EmergencyContacts: "Provincial Health Office: (075) 542-4216\n" +
			"Emergency Hotline: 911\n" +
			"DOH Hotline: 1555\n" +
			"Municipal Health Office: Contact your local MHO",
	}
}

// Generate renders the alert texts for one classified pair. Wording is a
// content concern; callers rely only on every field being populated and
// the advisory matching the level.
func (cfg *ContentConfig) Generate(result ThresholdResult, diseaseName, municipalityName string) AlertContent {
	var riskText string

	switch result.Level {
	case LevelYellow:
		riskText = "Moderate Risk Alert"
	case LevelOrange:
		riskText = "High Risk Alert"
	case LevelRed:
		riskText = "Severe Outbreak Alert"
	default:
		riskText = "Health Alert"
	}

	details := fmt.Sprintf("AUTOMATIC ALERT GENERATED\n\n"+
		"The surveillance system has detected a significant increase in %s cases in %s municipality.\n\n"+
		"Current Status:\n"+
		"• Cases reported (last 7 days): %d\n"+
		"• Threshold level: %d\n"+
		"• Percentage of threshold: %d%%\n"+
		"• Alert Level: %s\n\n"+
		"This alert was automatically generated based on epidemiological thresholds. "+
		"Please review and take appropriate action.",
		diseaseName, municipalityName,
		result.CaseCount, result.ThresholdUsed, result.PercentOfThreshold,
		strings.ToUpper(result.Level.AlertLevel()))

	advisory := cfg.Advisories[result.Level.AlertLevel()]
	if advisory == "" {
		advisory = cfg.Advisories[db.AlertLevelModerate]
	}

	return AlertContent{
		Title:              fmt.Sprintf("%s: %s in %s", riskText, diseaseName, municipalityName),
		Details:            details,
		HealthAdvisory:     advisory,
		PreventiveMeasures: cfg.PreventiveMeasures,
		DosAndDonts:        cfg.DosAndDonts,
		EmergencyContacts:  cfg.EmergencyContacts,
	}
}
