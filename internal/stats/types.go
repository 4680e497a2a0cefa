package stats

import (
	"time"

	"manifest-ops/internal/manifest"
)

// StampedManifest pairs a record with its normalized milestones.
// A nil milestone means the field was absent, the sentinel, or unparseable.
type StampedManifest struct {
	Record    manifest.Record
	Received  *time.Time
	Pulled    *time.Time
	Started   *time.Time
	Completed *time.Time
	Signed    *time.Time
}

// OperatorCount is one entry of the workload ranking.
type OperatorCount struct {
	Operator string `json:"operator"`
	Count    int    `json:"count"`
}

// ShiftBucket counts arrivals received during one fixed shift.
type ShiftBucket struct {
	Shift     int    `json:"shift"`
	Label     string `json:"label"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"` // exclusive; smaller than StartHour when the shift wraps midnight
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// ShiftThroughput holds the three shift buckets in shift order.
type ShiftThroughput [3]ShiftBucket

// LeadTimeMetric is the mean interval between two milestones.
type LeadTimeMetric struct {
	MeanMinutes float64 `json:"meanMinutes"`
	Count       int     `json:"count"` // records that had both endpoints
}

// LeadTimes groups the three successive milestone intervals.
type LeadTimes struct {
	Wait       LeadTimeMetric `json:"wait"`       // received -> started
	Processing LeadTimeMetric `json:"processing"` // started -> completed
	Release    LeadTimeMetric `json:"release"`    // completed -> counterparty signed
}

// HourBucket counts arrivals at one local hour of the day.
type HourBucket struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// HourlyHistogram always holds all 24 hours in ascending order.
type HourlyHistogram struct {
	Buckets [24]HourBucket `json:"buckets"`
	Max     int            `json:"max"` // never below 1 so proportional rendering can divide by it
}

// Report is the full set of derived statistics for one window.
type Report struct {
	Window       Window          `json:"window"`
	Timezone     string          `json:"timezone"`
	TotalRecords int             `json:"totalRecords"`
	Unreferenced int             `json:"unreferenced"` // records with neither received nor pulled time
	InWindow     int             `json:"inWindow"`
	Ranking      []OperatorCount `json:"ranking"`
	Shifts       ShiftThroughput `json:"shifts"`
	LeadTimes    LeadTimes       `json:"leadTimes"`
	Hourly       HourlyHistogram `json:"hourly"`
}
