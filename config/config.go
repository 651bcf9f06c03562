package config

import "time"

// Storage backend modes.
const (
	StorageModeDB    = "db"
	StorageModeLocal = "local"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	Storage    StorageConfig    `json:"storage"`
	Database   DatabaseConfig   `json:"database"`
	Extraction ExtractionConfig `json:"extraction"`
	Logging    LoggingConfig    `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

// StorageConfig selects the article store backend once per process:
// "db" for the shared Postgres store, "local" for the single-device file
// store. Call sites never branch on the mode; di wires the chosen backend.
type StorageConfig struct {
	Mode         string `json:"mode" env:"STORAGE_MODE" default:"db"`
	LocalDataDir string `json:"local_data_dir" env:"STORAGE_LOCAL_DATA_DIR" default:"./data"`
}

type DatabaseConfig struct {
	Host           string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port           int           `json:"port" env:"DB_PORT" default:"5432"`
	User           string        `json:"user" env:"DB_USER" default:"pocket"`
	Password       string        `json:"password" env:"DB_PASSWORD" default:""`
	Name           string        `json:"name" env:"DB_NAME" default:"pocket"`
	SSLMode        string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConnections int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"10"`
	ConnectTimeout time.Duration `json:"connect_timeout" env:"DB_CONNECT_TIMEOUT" default:"10s"`
}

// ExtractionConfig bounds the readable-content fetch. Timeout and user agent
// are injected so short-lived and long-running call sites can differ.
type ExtractionConfig struct {
	Enabled          bool          `json:"enabled" env:"EXTRACTION_ENABLED" default:"true"`
	Timeout          time.Duration `json:"timeout" env:"EXTRACTION_TIMEOUT" default:"10s"`
	UserAgent        string        `json:"user_agent" env:"EXTRACTION_USER_AGENT" default:"Mozilla/5.0 (compatible; Pocket/1.0; +https://github.com)"`
	MinContentLength int           `json:"min_content_length" env:"EXTRACTION_MIN_CONTENT_LENGTH" default:"100"`
	HostInterval     time.Duration `json:"host_interval" env:"EXTRACTION_HOST_INTERVAL" default:"1s"`
}

type LoggingConfig struct {
	Level string `json:"level" env:"LOG_LEVEL" default:"info"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
