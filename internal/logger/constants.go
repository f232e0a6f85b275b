package logger

// Log level string values
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Log format string values
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Service defaults
const (
	DefaultServiceName = "zyveria"
	DefaultVersion     = "0.1.0"
	EnvironmentDev     = "dev"
)

// Log attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyEncounterID = "encounter_id"
)
