package config

import "time"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultConfigFile is the project config file looked up under the project path
	DefaultConfigFile = ".semrun.yaml"
	// DefaultEnvFile is the dotenv file looked up under the project path
	DefaultEnvFile = ".env"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "semrun-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultCaseTimeout bounds a single case action
	DefaultCaseTimeout = 5 * time.Second
	// DefaultHistoryHost is the default MySQL host for run history
	DefaultHistoryHost = "127.0.0.1"
	// DefaultHistoryPort is the default MySQL port for run history
	DefaultHistoryPort = "3306"
	// DefaultHistoryUser is the default MySQL user for run history
	DefaultHistoryUser = "root"
	// DefaultHistoryDatabase is the default MySQL database for run history
	DefaultHistoryDatabase = "semrun"
)

// Environment variables read after .env is loaded
const (
	EnvCaseTimeout     = "SEMRUN_CASE_TIMEOUT"
	EnvOutputDir       = "SEMRUN_OUTPUT_DIR"
	EnvNoColor         = "SEMRUN_NO_COLOR"
	EnvHistoryEnabled  = "SEMRUN_HISTORY"
	EnvHistoryHost     = "SEMRUN_DB_HOST"
	EnvHistoryPort     = "SEMRUN_DB_PORT"
	EnvHistoryUser     = "SEMRUN_DB_USERNAME"
	EnvHistoryPassword = "SEMRUN_DB_PASSWORD"
	EnvHistoryDatabase = "SEMRUN_DB_DATABASE"
)
