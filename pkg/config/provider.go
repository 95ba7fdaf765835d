// Package config defines the server configuration model and its providers.
// Configuration can come from a YAML file or a SQLite database; both
// implement the same Provider interface.
package config

// Provider defines the interface for configuration data sources
type Provider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetHTTPConfig() (*HTTPData, error)
	GetStorageConfig() (*StorageData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	HTTP      HTTPData    `json:"http" yaml:"http"`
	Storage   StorageData `json:"storage,omitempty" yaml:"storage,omitempty"`
	ProfileDB string      `json:"profile_db" yaml:"profile_db"`
}

// HTTPData holds the REST server listener configuration
type HTTPData struct {
	ListenAddr  string `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty"`
	Port        int    `json:"port,omitempty" yaml:"port,omitempty"`
	TLSCertPath string `json:"cert,omitempty" yaml:"cert,omitempty"`
	TLSKeyPath  string `json:"key,omitempty" yaml:"key,omitempty"`
}

// StorageData holds the configuration for optional storage backends
type StorageData struct {
	TripLog *TripLogData `json:"triplog,omitempty" yaml:"triplog,omitempty"`
}

// TripLogData configures the Postgres trip log backend
type TripLogData struct {
	ConnectionString string `json:"connection_string" yaml:"connection_string"`
}
