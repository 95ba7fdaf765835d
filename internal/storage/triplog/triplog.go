// Package triplog persists trip summaries to a Postgres database.
package triplog

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/skyplan/skyplan/internal/database"
	"github.com/skyplan/skyplan/internal/log"
	"github.com/skyplan/skyplan/internal/storage"
	"github.com/skyplan/skyplan/pkg/config"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS trip_log (
    id BIGSERIAL PRIMARY KEY,
    time timestamp WITH TIME ZONE NOT NULL,
    aircraft_id text NOT NULL,
    registration text NULL,
    active_category text NULL,
    night_flight boolean NOT NULL DEFAULT false,
    ramp_weight_lb float8 NULL,
    ramp_cg_in float8 NULL,
    takeoff_weight_lb float8 NULL,
    takeoff_cg_in float8 NULL,
    landing_weight_lb float8 NULL,
    landing_cg_in float8 NULL,
    ramp_diagnosis text NULL,
    takeoff_diagnosis text NULL,
    landing_diagnosis text NULL,
    warning_count integer NOT NULL DEFAULT 0,
    reserve_ok boolean NOT NULL DEFAULT true
);
CREATE INDEX IF NOT EXISTS trip_log_aircraft_time_idx ON trip_log (aircraft_id, time);
`

// Storage holds the connection for the trip log storage backend
type Storage struct {
	DB *gorm.DB
}

// New sets up a new trip log storage backend
func New(ctx context.Context, c config.TripLogData) (*Storage, error) {
	t := Storage{}

	var err error
	t.DB, err = database.CreateConnection(c.ConnectionString)
	if err != nil {
		return nil, err
	}

	log.Info("creating trip log table...")
	if err := t.DB.WithContext(ctx).Exec(createTableSQL).Error; err != nil {
		log.Warn("warning: could not create trip log table")
		return nil, err
	}

	return &t, nil
}

// StartStorageEngine creates a goroutine loop to receive trip records and
// send them off to the database
func (t *Storage) StartStorageEngine(ctx context.Context, wg *sync.WaitGroup) chan<- storage.TripRecord {
	log.Info("starting trip log storage engine...")
	recordChan := make(chan storage.TripRecord, 10)
	go t.processRecords(ctx, wg, recordChan)
	return recordChan
}

func (t *Storage) processRecords(ctx context.Context, wg *sync.WaitGroup, rchan <-chan storage.TripRecord) {
	wg.Add(1)
	defer wg.Done()

	for {
		select {
		case r := <-rchan:
			if err := t.StoreRecord(r); err != nil {
				log.Errorf("could not store trip record for %s: %v", r.AircraftID, err)
			}
		case <-ctx.Done():
			log.Info("cancellation request received, stopping trip record processor")
			return
		}
	}
}

// StoreRecord stores a trip record in the database
func (t *Storage) StoreRecord(r storage.TripRecord) error {
	return t.DB.Create(&r).Error
}
