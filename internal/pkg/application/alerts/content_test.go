package alerts

import (
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestGenerateFillsAllFields(t *testing.T) {
	is := is.New(t)

	cfg := DefaultContentConfig()
	content := cfg.Generate(Classify(35), "Dengue", "Lingayen")

	is.True(content.Title != "")
	is.True(content.Details != "")
	is.True(content.HealthAdvisory != "")
	is.True(content.PreventiveMeasures != "")
	is.True(content.DosAndDonts != "")
	is.True(content.EmergencyContacts != "")
}

func TestGenerateTitleAndDetailsNameTheLevel(t *testing.T) {
	is := is.New(t)

	cfg := DefaultContentConfig()

	content := cfg.Generate(Classify(12), "Dengue", "Lingayen")
	is.Equal("Moderate Risk Alert: Dengue in Lingayen", content.Title)
	is.True(strings.Contains(content.Details, "MODERATE"))

	content = cfg.Generate(Classify(35), "Dengue", "Lingayen")
	is.Equal("High Risk Alert: Dengue in Lingayen", content.Title)
	is.True(strings.Contains(content.Details, "• Cases reported (last 7 days): 35"))
	is.True(strings.Contains(content.Details, "• Threshold level: 25"))
	is.True(strings.Contains(content.Details, "• Percentage of threshold: 140%"))

	content = cfg.Generate(Classify(60), "Measles", "Dagupan")
	is.Equal("Severe Outbreak Alert: Measles in Dagupan", content.Title)
	is.True(strings.Contains(content.HealthAdvisory, "Urgent outbreak response"))
}

func TestGenerateAdvisoriesDifferPerLevel(t *testing.T) {
	is := is.New(t)

	cfg := DefaultContentConfig()

	moderate := cfg.Generate(Classify(12), "Dengue", "Lingayen").HealthAdvisory
	high := cfg.Generate(Classify(35), "Dengue", "Lingayen").HealthAdvisory
	severe := cfg.Generate(Classify(60), "Dengue", "Lingayen").HealthAdvisory

	is.True(moderate != high)
	is.True(high != severe)
	is.True(moderate != severe)
}

func TestNewContentConfigOverridesAndFallsBack(t *testing.T) {
	is := is.New(t)

	cfg, err := NewContentConfig(io.NopCloser(strings.NewReader(contentYaml)))
	is.NoErr(err)

	is.Equal("Stay calm and report to your RHU.", cfg.Advisories["moderate"])
	is.True(cfg.Advisories["severe"] != "")
	is.Equal("PHO hotline 123", cfg.EmergencyContacts)
	is.True(cfg.PreventiveMeasures != "")
}

func TestNewContentConfigToleratesEmptyAdvisoriesKey(t *testing.T) {
	is := is.New(t)

	cfg, err := NewContentConfig(io.NopCloser(strings.NewReader("advisories:\n")))
	is.NoErr(err)

	is.True(cfg.Advisories["moderate"] != "")
	is.True(cfg.Advisories["high"] != "")
	is.True(cfg.Advisories["severe"] != "")
}

const contentYaml string = `
advisories:
  moderate: Stay calm and report to your RHU.
emergencycontacts: PHO hotline 123
`
