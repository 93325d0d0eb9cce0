package config

// Version information, set at build time

var Version = "development"
var CommitHash = "development"
var BuildTimestamp = "0000-00-00T00:00:00Z"

// Main app config

type Config struct {
	Port         int    `mapstructure:"port" validate:"required"`
	Address      string `validate:"required,ip4_addr" mapstructure:"address"`
	DatabasePath string `mapstructure:"database-path" validate:"required"`
	LogLevel     string `mapstructure:"log-level" validate:"oneof=trace debug info warn error fatal panic"`
}
