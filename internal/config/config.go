package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/prazo-calc/internal/deadline"
)

// Calendar types
const (
	CalendarNational  = "national"
	CalendarBrasilAPI = "brasilapi"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Deadline DeadlineConfig `mapstructure:"deadline"`
	Report   ReportConfig   `mapstructure:"report"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents holiday calendar configuration
type CalendarConfig struct {
	Type            string `mapstructure:"type"`    // "national" or "brasilapi"
	APIURL          string `mapstructure:"api_url"` // For brasilapi type
	CacheTTL        string `mapstructure:"cache_ttl"`
	ExtraFile       string `mapstructure:"extra_file"` // Local/state holidays, optional
	IncludeOptional bool   `mapstructure:"include_optional"`
	MinYear         int    `mapstructure:"min_year"`
	MaxYear         int    `mapstructure:"max_year"`
}

// DeadlineConfig represents deadline engine defaults
type DeadlineConfig struct {
	RecessEnabled       bool `mapstructure:"recess_enabled"`
	IterationFactor     int  `mapstructure:"iteration_factor"`
	DefaultBusinessDays int  `mapstructure:"default_business_days"`
}

// ReportConfig represents report export configuration
type ReportConfig struct {
	Office    string `mapstructure:"office"`
	Footer    string `mapstructure:"footer"`
	OutputDir string `mapstructure:"output_dir"`
}

// ServerConfig represents HTTP API configuration
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	RequestTimeout  string `mapstructure:"request_timeout"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.type", CalendarNational)
	v.SetDefault("calendar.api_url", "https://brasilapi.com.br")
	v.SetDefault("calendar.cache_ttl", "24h")
	v.SetDefault("calendar.extra_file", "")
	v.SetDefault("calendar.include_optional", false)
	v.SetDefault("calendar.min_year", 1990)
	v.SetDefault("calendar.max_year", 2100)

	v.SetDefault("deadline.recess_enabled", false)
	v.SetDefault("deadline.iteration_factor", 40)
	v.SetDefault("deadline.default_business_days", 15)

	v.SetDefault("report.office", "DERKIAM ADVOCACIA")
	v.SetDefault("report.footer", "")
	v.SetDefault("report.output_dir", ".")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.request_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load loads configuration from file. An explicit configPath must exist;
// without one, a config.yaml in the search paths is optional.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.prazo-calc")
		v.AddConfigPath("/etc/prazo-calc")
	}

	// Read environment variables, e.g. PRAZO_DEADLINE_RECESS_ENABLED=true
	v.SetEnvPrefix("PRAZO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate Calendar config
	switch c.Calendar.Type {
	case CalendarNational:
	case CalendarBrasilAPI:
		if c.Calendar.APIURL == "" {
			return fmt.Errorf("calendar.api_url is required for brasilapi type")
		}
	default:
		return fmt.Errorf("calendar.type must be '%s' or '%s', got '%s'",
			CalendarNational, CalendarBrasilAPI, c.Calendar.Type)
	}
	if c.Calendar.MinYear > 0 && c.Calendar.MaxYear > 0 && c.Calendar.MinYear > c.Calendar.MaxYear {
		return fmt.Errorf("calendar.min_year must not exceed calendar.max_year")
	}

	// Validate Deadline config
	if c.Deadline.IterationFactor < 1 {
		return fmt.Errorf("deadline.iteration_factor must be positive")
	}
	if c.Deadline.DefaultBusinessDays < 1 || c.Deadline.DefaultBusinessDays > deadline.MaxBusinessDays {
		return fmt.Errorf("deadline.default_business_days must be between 1 and %d", deadline.MaxBusinessDays)
	}

	// Validate Server config
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	return nil
}

// GetCacheTTL returns cache TTL duration
func (c *CalendarConfig) GetCacheTTL() time.Duration {
	return parseDuration(c.CacheTTL, 24*time.Hour)
}

// GetRequestTimeout returns the per-request timeout of the HTTP API
func (c *ServerConfig) GetRequestTimeout() time.Duration {
	return parseDuration(c.RequestTimeout, 10*time.Second)
}

// GetShutdownTimeout returns the graceful shutdown timeout
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	return parseDuration(c.ShutdownTimeout, 10*time.Second)
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Calendar.ExtraFile = os.ExpandEnv(c.Calendar.ExtraFile)
	c.Report.OutputDir = os.ExpandEnv(c.Report.OutputDir)
	c.Log.File = os.ExpandEnv(c.Log.File)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}
