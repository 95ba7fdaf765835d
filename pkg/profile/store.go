package profile

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/skyplan/skyplan/pkg/envelope"
)

// schemaVersion is the current profile schema. Version 1 stored a single
// unlabeled envelope per aircraft; version 2 labels envelopes by category.
const schemaVersion = 2

const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS schema_meta (
    version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS aircraft (
    id TEXT PRIMARY KEY,
    registration TEXT NOT NULL,
    model TEXT,
    empty_weight_lb REAL NOT NULL DEFAULT 0,
    empty_moment_lb_in REAL NOT NULL DEFAULT 0,
    fuel_density_lb_gal REAL,
    fuel_capacity_gal REAL
);

CREATE TABLE IF NOT EXISTS stations (
    id TEXT PRIMARY KEY,
    aircraft_id TEXT NOT NULL REFERENCES aircraft(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    kind TEXT NOT NULL,
    arm_in REAL NOT NULL DEFAULT 0,
    max_weight_lb REAL,
    position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS envelope_points (
    aircraft_id TEXT NOT NULL REFERENCES aircraft(id) ON DELETE CASCADE,
    category TEXT,
    seq INTEGER NOT NULL DEFAULT 0,
    weight_lb REAL,
    cg_in REAL
);
`

// Store provides access to aircraft profiles in a SQLite database
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (and if necessary creates) the profile database at dbPath,
// then applies the one-time legacy envelope migration.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping profile database: %w", err)
	}

	if _, err := db.Exec(createSchemaSQL); err != nil {
		return nil, fmt.Errorf("failed to create profile schema: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate profile schema: %w", err)
	}

	return s, nil
}

// migrate maps the legacy single-envelope shape into the category map:
// points stored without a category label become the normal-category
// envelope. Runs once; subsequent opens see the current schema version.
func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow(`SELECT version FROM schema_meta LIMIT 1`).Scan(&version)
	if err == sql.ErrNoRows {
		_, err = s.db.Exec(`INSERT INTO schema_meta (version) VALUES (?)`, schemaVersion)
		return err
	}
	if err != nil {
		return err
	}

	if version >= schemaVersion {
		return nil
	}

	if _, err := s.db.Exec(
		`UPDATE envelope_points SET category = ? WHERE category IS NULL OR category = ''`,
		string(envelope.CategoryNormal),
	); err != nil {
		return err
	}

	_, err = s.db.Exec(`UPDATE schema_meta SET version = ?`, schemaVersion)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// List returns all aircraft profiles, without stations or envelopes.
func (s *Store) List() ([]Aircraft, error) {
	rows, err := s.db.Query(
		`SELECT id, registration, model, empty_weight_lb, empty_moment_lb_in,
		        fuel_density_lb_gal, fuel_capacity_gal
		 FROM aircraft ORDER BY registration`)
	if err != nil {
		return nil, fmt.Errorf("failed to query aircraft: %w", err)
	}
	defer rows.Close()

	var out []Aircraft
	for rows.Next() {
		a, err := scanAircraft(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Get returns one aircraft profile with its stations and envelope points.
func (s *Store) Get(id string) (*Aircraft, error) {
	row := s.db.QueryRow(
		`SELECT id, registration, model, empty_weight_lb, empty_moment_lb_in,
		        fuel_density_lb_gal, fuel_capacity_gal
		 FROM aircraft WHERE id = ?`, id)

	a, err := scanAircraft(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load aircraft %s: %w", id, err)
	}

	if a.Stations, err = s.loadStations(id); err != nil {
		return nil, err
	}
	if a.Envelopes, err = s.loadEnvelopes(id); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new aircraft profile, assigning an ID when absent.
func (s *Store) Create(a *Aircraft) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	_, err := s.db.Exec(
		`INSERT INTO aircraft (id, registration, model, empty_weight_lb,
		                       empty_moment_lb_in, fuel_density_lb_gal, fuel_capacity_gal)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Registration, a.Model, a.EmptyWeightLb, a.EmptyMomentLbIn,
		nullableFloat(a.FuelDensityLbGal), a.FuelCapacityGal)
	if err != nil {
		return fmt.Errorf("failed to insert aircraft: %w", err)
	}

	if err := s.saveStations(a.ID, a.Stations); err != nil {
		return err
	}
	for cat, pts := range a.Envelopes {
		if err := s.saveRawEnvelope(a.ID, cat, pts); err != nil {
			return err
		}
	}
	return nil
}

// Update replaces an existing aircraft profile's fields and stations.
// Envelope points are managed separately through SaveEnvelope.
func (s *Store) Update(a *Aircraft) error {
	res, err := s.db.Exec(
		`UPDATE aircraft SET registration = ?, model = ?, empty_weight_lb = ?,
		        empty_moment_lb_in = ?, fuel_density_lb_gal = ?, fuel_capacity_gal = ?
		 WHERE id = ?`,
		a.Registration, a.Model, a.EmptyWeightLb, a.EmptyMomentLbIn,
		nullableFloat(a.FuelDensityLbGal), a.FuelCapacityGal, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update aircraft: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("aircraft %s not found", a.ID)
	}

	if _, err := s.db.Exec(`DELETE FROM stations WHERE aircraft_id = ?`, a.ID); err != nil {
		return fmt.Errorf("failed to clear stations: %w", err)
	}
	return s.saveStations(a.ID, a.Stations)
}

// Delete removes an aircraft profile and its dependent rows.
func (s *Store) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM envelope_points WHERE aircraft_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete envelope points: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM stations WHERE aircraft_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete stations: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM aircraft WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete aircraft: %w", err)
	}
	return nil
}

// SaveEnvelope replaces one category's boundary points. Typically called
// after a user-triggered sort action with the sorted, validated points.
func (s *Store) SaveEnvelope(aircraftID string, cat envelope.Category, pts []envelope.Point) error {
	raw := make([]envelope.RawPoint, len(pts))
	for i, p := range pts {
		w, cg := p.WeightLb, p.CGIn
		raw[i] = envelope.RawPoint{WeightLb: &w, CGIn: &cg}
	}
	return s.saveRawEnvelope(aircraftID, cat, raw)
}

func (s *Store) saveRawEnvelope(aircraftID string, cat envelope.Category, pts []envelope.RawPoint) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin envelope transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM envelope_points WHERE aircraft_id = ? AND category = ?`,
		aircraftID, string(cat)); err != nil {
		return fmt.Errorf("failed to clear envelope points: %w", err)
	}

	for i, p := range pts {
		if _, err := tx.Exec(
			`INSERT INTO envelope_points (aircraft_id, category, seq, weight_lb, cg_in)
			 VALUES (?, ?, ?, ?, ?)`,
			aircraftID, string(cat), i, p.WeightLb, p.CGIn); err != nil {
			return fmt.Errorf("failed to insert envelope point: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) saveStations(aircraftID string, stations []Station) error {
	for i, st := range stations {
		id := st.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := s.db.Exec(
			`INSERT INTO stations (id, aircraft_id, name, kind, arm_in, max_weight_lb, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, aircraftID, st.Name, string(st.Kind), st.ArmIn, st.MaxWeightLb, i); err != nil {
			return fmt.Errorf("failed to insert station %s: %w", st.Name, err)
		}
	}
	return nil
}

func (s *Store) loadStations(aircraftID string) ([]Station, error) {
	rows, err := s.db.Query(
		`SELECT id, name, kind, arm_in, max_weight_lb
		 FROM stations WHERE aircraft_id = ? ORDER BY position`, aircraftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var out []Station
	for rows.Next() {
		var st Station
		var kind string
		var maxWeight sql.NullFloat64

		if err := rows.Scan(&st.ID, &st.Name, &kind, &st.ArmIn, &maxWeight); err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		st.Kind = StationKind(kind)
		if maxWeight.Valid {
			v := maxWeight.Float64
			st.MaxWeightLb = &v
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// loadEnvelopes returns raw points per category. Rows with NULL fields are
// passed through as partial RawPoints; the envelope normalizer drops them.
func (s *Store) loadEnvelopes(aircraftID string) (map[envelope.Category][]envelope.RawPoint, error) {
	rows, err := s.db.Query(
		`SELECT category, weight_lb, cg_in
		 FROM envelope_points WHERE aircraft_id = ? ORDER BY category, seq`, aircraftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query envelope points: %w", err)
	}
	defer rows.Close()

	out := make(map[envelope.Category][]envelope.RawPoint)
	for rows.Next() {
		var cat sql.NullString
		var weight, cg sql.NullFloat64

		if err := rows.Scan(&cat, &weight, &cg); err != nil {
			return nil, fmt.Errorf("failed to scan envelope point row: %w", err)
		}

		// Unlabeled rows should not survive migration, but tolerate them.
		category := envelope.CategoryNormal
		if cat.Valid && cat.String != "" {
			category = envelope.Category(cat.String)
		}

		var p envelope.RawPoint
		if weight.Valid {
			v := weight.Float64
			p.WeightLb = &v
		}
		if cg.Valid {
			v := cg.Float64
			p.CGIn = &v
		}
		out[category] = append(out[category], p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAircraft(row rowScanner) (Aircraft, error) {
	var a Aircraft
	var model sql.NullString
	var density, capacity sql.NullFloat64

	err := row.Scan(&a.ID, &a.Registration, &model, &a.EmptyWeightLb,
		&a.EmptyMomentLbIn, &density, &capacity)
	if err != nil {
		return Aircraft{}, err
	}

	if model.Valid {
		a.Model = model.String
	}
	if density.Valid {
		a.FuelDensityLbGal = density.Float64
	}
	if capacity.Valid {
		v := capacity.Float64
		a.FuelCapacityGal = &v
	}
	return a, nil
}

func nullableFloat(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}
