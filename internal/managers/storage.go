package managers

import (
	"context"
	"fmt"
	"sync"

	"github.com/skyplan/skyplan/internal/storage"
	"github.com/skyplan/skyplan/internal/storage/triplog"
	"github.com/skyplan/skyplan/pkg/config"
)

// StorageManager holds our active storage backends
type StorageManager struct {
	Engines           []StorageEngine
	RecordDistributor chan storage.TripRecord
}

// StorageEngine holds a backend storage engine's interface as well as
// a channel for passing trip records to the engine
type StorageEngine struct {
	Engine storage.EngineInterface
	C      chan<- storage.TripRecord
}

// NewStorageManager creates a StorageManager object, populated with all configured StorageEngines
func NewStorageManager(ctx context.Context, wg *sync.WaitGroup, provider config.Provider) (*StorageManager, error) {
	s := StorageManager{}

	// Initialize our channel for passing trip records to the distributor
	s.RecordDistributor = make(chan storage.TripRecord, 20)

	// Start our distributor to fan received records out to storage backends
	go s.startRecordDistributor(ctx, wg)

	storageCfg, err := provider.GetStorageConfig()
	if err != nil {
		return nil, fmt.Errorf("could not load storage configuration: %v", err)
	}

	if storageCfg.TripLog != nil && storageCfg.TripLog.ConnectionString != "" {
		if err := s.AddEngine(ctx, wg, "triplog", storageCfg); err != nil {
			return &s, fmt.Errorf("could not add trip log storage backend: %v", err)
		}
	}

	return &s, nil
}

// AddEngine adds a new StorageEngine of name engineName to our Storage object
func (s *StorageManager) AddEngine(ctx context.Context, wg *sync.WaitGroup, engineName string, c *config.StorageData) error {
	switch engineName {
	case "triplog":
		se := StorageEngine{}
		engine, err := triplog.New(ctx, *c.TripLog)
		if err != nil {
			return err
		}
		se.Engine = engine
		se.C = se.Engine.StartStorageEngine(ctx, wg)
		s.Engines = append(s.Engines, se)
	default:
		return fmt.Errorf("unknown storage engine: %s", engineName)
	}

	return nil
}

// startRecordDistributor receives trip records from the REST handlers and
// fans them out to the various storage backends
func (s *StorageManager) startRecordDistributor(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	defer wg.Done()

	for {
		select {
		case r := <-s.RecordDistributor:
			for _, e := range s.Engines {
				e.C <- r
			}
		case <-ctx.Done():
			return
		}
	}
}
