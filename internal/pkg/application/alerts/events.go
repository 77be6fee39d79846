package alerts

import (
	"encoding/json"
	"time"
)

type AlertCreated struct {
	AlertID        uint      `json:"alertID"`
	DiseaseID      uint      `json:"diseaseID"`
	MunicipalityID uint      `json:"municipalityID"`
	AlertLevel     string    `json:"alertLevel"`
	CaseCount      int       `json:"caseCount"`
	AutoPublished  bool      `json:"autoPublished"`
	Timestamp      time.Time `json:"timestamp"`
}

func (a *AlertCreated) ContentType() string {
	return "application/json"
}
func (a *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (a *AlertCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlertPublished struct {
	AlertID   uint      `json:"alertID"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlertPublished) ContentType() string {
	return "application/json"
}
func (a *AlertPublished) TopicName() string {
	return "alerts.alertPublished"
}
func (a *AlertPublished) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlertResolved struct {
	AlertID   uint      `json:"alertID"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlertResolved) ContentType() string {
	return "application/json"
}
func (a *AlertResolved) TopicName() string {
	return "alerts.alertResolved"
}
func (a *AlertResolved) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}
