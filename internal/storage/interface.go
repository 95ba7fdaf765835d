// Package storage defines interfaces and implementations for trip log
// storage backends.
package storage

import (
	"context"
	"sync"
	"time"
)

// TripRecord is the numeric summary of one calculator run handed off to
// storage backends. It is the only thing this engine ever persists; full
// inputs stay with the caller.
type TripRecord struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Time         time.Time `json:"time"`
	AircraftID   string    `json:"aircraft_id"`
	Registration string    `json:"registration"`

	ActiveCategory string `json:"active_category"`
	NightFlight    bool   `json:"night_flight"`

	RampWeightLb    float64 `json:"ramp_weight_lb"`
	RampCGIn        float64 `json:"ramp_cg_in"`
	TakeoffWeightLb float64 `json:"takeoff_weight_lb"`
	TakeoffCGIn     float64 `json:"takeoff_cg_in"`
	LandingWeightLb float64 `json:"landing_weight_lb"`
	LandingCGIn     float64 `json:"landing_cg_in"`

	RampDiagnosis    string `json:"ramp_diagnosis"`
	TakeoffDiagnosis string `json:"takeoff_diagnosis"`
	LandingDiagnosis string `json:"landing_diagnosis"`

	WarningCount int  `json:"warning_count"`
	ReserveOK    bool `json:"reserve_ok"`
}

// TableName customizes the table name used by GORM
func (TripRecord) TableName() string {
	return "trip_log"
}

// EngineInterface is an interface that provides a few standardized
// methods for various storage backends
type EngineInterface interface {
	StartStorageEngine(context.Context, *sync.WaitGroup) chan<- TripRecord
}
