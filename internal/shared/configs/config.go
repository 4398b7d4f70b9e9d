package configs

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Source    SourceConfig    `mapstructure:"source" validate:"required"`
	Ingestion IngestionConfig `mapstructure:"ingestion" validate:"required"`
	Parser    ParserConfig    `mapstructure:"parser"`
	Query     QueryConfig     `mapstructure:"query" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// SourceConfig describes where log files are read from.
type SourceConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
	// InitialFile is loaded at startup when set; a failure is logged and the service starts empty.
	InitialFile   string `mapstructure:"initial_file"`
	MaxFileSizeMB int    `mapstructure:"max_file_size_mb" validate:"min=0"` // 0 disables the limit
}

// IngestionConfig bounds a single load.
type IngestionConfig struct {
	MaxLineBytes        int `mapstructure:"max_line_bytes" validate:"required,min=1024"`
	MaxReportedFailures int `mapstructure:"max_reported_failures" validate:"min=0"`
}

// ParserConfig controls the access log grammar checks.
type ParserConfig struct {
	LenientTimestamps bool `mapstructure:"lenient_timestamps"`
}

// QueryConfig holds settings for date based queries.
type QueryConfig struct {
	Timezone string `mapstructure:"timezone" validate:"required,timezone"`
}
