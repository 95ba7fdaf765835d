package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements Provider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from the SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	httpCfg, err := s.GetHTTPConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load http config: %w", err)
	}
	config.HTTP = *httpCfg

	storage, err := s.GetStorageConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}
	config.Storage = *storage

	if err := s.db.QueryRow(
		`SELECT profile_db FROM configs WHERE name = 'default'`,
	).Scan(&config.ProfileDB); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to load profile db path: %w", err)
	}

	return config, nil
}

// GetHTTPConfig returns the HTTP listener configuration from the database
func (s *SQLiteProvider) GetHTTPConfig() (*HTTPData, error) {
	query := `
		SELECT listen_addr, port, cert, key
		FROM http_config
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	var httpCfg HTTPData
	var listenAddr, cert, key sql.NullString
	var port sql.NullInt64

	err := s.db.QueryRow(query).Scan(&listenAddr, &port, &cert, &key)
	if err == sql.ErrNoRows {
		return &HTTPData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query http config: %w", err)
	}

	if listenAddr.Valid {
		httpCfg.ListenAddr = listenAddr.String
	}
	if port.Valid {
		httpCfg.Port = int(port.Int64)
	}
	if cert.Valid {
		httpCfg.TLSCertPath = cert.String
	}
	if key.Valid {
		httpCfg.TLSKeyPath = key.String
	}

	return &httpCfg, nil
}

// GetStorageConfig returns the storage backend configuration from the database
func (s *SQLiteProvider) GetStorageConfig() (*StorageData, error) {
	query := `
		SELECT backend_type, connection_string
		FROM storage_config
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query storage config: %w", err)
	}
	defer rows.Close()

	storage := &StorageData{}
	for rows.Next() {
		var backendType string
		var connStr sql.NullString

		if err := rows.Scan(&backendType, &connStr); err != nil {
			return nil, fmt.Errorf("failed to scan storage config row: %w", err)
		}

		switch backendType {
		case "triplog":
			if connStr.Valid {
				storage.TripLog = &TripLogData{ConnectionString: connStr.String}
			}
		}
	}

	return storage, rows.Err()
}

// IsReadOnly returns false: the SQLite backend supports runtime updates
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
