package logger

// Console configures logging to stderr.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool `toml:"useConsoleWriter"` // human readable instead of JSON
	NoColor          bool `toml:"noColor"`
}

// LogFile configures rotating log files.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"     validate:"required_if=Enabled true"`

	InfoLog  string `toml:"info"  validate:"required_if=Enabled true"`
	ErrorLog string `toml:"error" validate:"required_if=Enabled true"`

	MaxSize    int  `toml:"maxSize"` // megabytes
	MaxBackups int  `toml:"maxBackups"`
	MaxAge     int  `toml:"maxAge"` // days
	Compress   bool `toml:"compress"`
}

// Log implements the logger config.
type Log struct {
	LogLevel     string `toml:"level"        validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	ReportCaller bool   `toml:"reportCaller"`
	AppName      string `toml:"appName"`

	Console Console `toml:"console"`
	File    LogFile `toml:"file"`
}
