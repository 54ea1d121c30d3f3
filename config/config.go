package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/adrianrdguez/GoFast/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig     `split_words:"true"`
	Database   DatabaseConfig   `split_words:"true"`
	Redis      RedisConfig      `split_words:"true"`
	Calendar   CalendarConfig   `split_words:"true"`
	Transport  TransportConfig  `split_words:"true"`
	Calculator CalculatorConfig `split_words:"true"`
	Scheduler  SchedulerConfig  `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"gofast"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// GetDSN returns a formatted database connection string
func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// RedisConfig contains settings for the optional Redis snapshot cache.
// When disabled the application falls back to the in-memory cache.
type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CalendarConfig contains settings for the calendar event sources.
// An empty Token disables the remote calendar source; an empty ICSPath
// disables the ICS file source.
type CalendarConfig struct {
	BaseURL         string `envconfig:"CALENDAR_API_BASE_URL" default:"https://www.googleapis.com/calendar/v3"`
	Token           string `envconfig:"CALENDAR_API_TOKEN" default:""`
	CalendarID      string `envconfig:"CALENDAR_ID" default:"primary"`
	ICSPath         string `envconfig:"CALENDAR_ICS_PATH" default:""`
	ScanWindowHours int    `envconfig:"CALENDAR_SCAN_WINDOW_HOURS" default:"168"`
}

// TransportConfig contains settings for travel-time providers
type TransportConfig struct {
	OSRMBaseURL     string `envconfig:"OSRM_BASE_URL" default:"https://router.project-osrm.org"`
	CacheTTLMinutes int    `envconfig:"ETA_CACHE_TTL_MINUTES" default:"5"`
	LogFilePath     string `envconfig:"TRANSPORT_LOG_FILE" default:"logs/transport_providers.log"`
	EnableCache     bool   `envconfig:"TRANSPORT_CACHE_ENABLED" default:"true"`
	EnableLogging   bool   `envconfig:"TRANSPORT_LOGGING_ENABLED" default:"true"`
}

// CalculatorConfig contains leave-time calculation settings.
// HomeLat/HomeLon describe the default origin used by background
// refreshes; requests may override it per call.
type CalculatorConfig struct {
	HomeLat          float64 `envconfig:"HOME_LAT" default:"0"`
	HomeLon          float64 `envconfig:"HOME_LON" default:"0"`
	DefaultMode      string  `envconfig:"DEFAULT_TRANSPORT_MODE" default:"car"`
	Tier             string  `envconfig:"SERVICE_TIER" default:"free"`
	ProBufferMinutes int     `envconfig:"PRO_BUFFER_MINUTES" default:"-1"`
}

// SchedulerConfig contains settings for the background refresh loop
type SchedulerConfig struct {
	RefreshFallback int `envconfig:"REFRESH_FALLBACK_MINUTES" default:"15"`
	CleanupInterval int `envconfig:"CLEANUP_INTERVAL" default:"1440"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Redis.Validate(); err != nil {
		return err
	}
	if err := c.Calendar.Validate(); err != nil {
		return err
	}
	if err := c.Transport.Validate(); err != nil {
		return err
	}
	if err := c.Calculator.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// ValidateSSLMode validates the SSL mode configuration
func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Validate checks database configuration
func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > 65535 {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	if err := d.ValidateSSLMode(); err != nil {
		return err
	}
	return nil
}

// Validate checks Redis configuration
func (r *RedisConfig) Validate() error {
	if !r.Enabled {
		return nil
	}
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when REDIS_ENABLED is true", nil)
	}
	if r.DB < 0 || r.DB > 15 {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	return nil
}

// Validate checks calendar source configuration
func (c *CalendarConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.NewConfigurationError("CALENDAR_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return errors.NewConfigurationError("CALENDAR_API_BASE_URL must start with http:// or https://", nil)
	}
	if c.CalendarID == "" {
		return errors.NewConfigurationError("CALENDAR_ID cannot be empty", nil)
	}
	if c.ScanWindowHours < 1 || c.ScanWindowHours > 8760 {
		return errors.NewConfigurationError("CALENDAR_SCAN_WINDOW_HOURS must be between 1 and 8760", nil)
	}
	return nil
}

// Validate checks transport provider configuration
func (t *TransportConfig) Validate() error {
	if t.OSRMBaseURL == "" {
		return errors.NewConfigurationError("OSRM_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(t.OSRMBaseURL, "http://") && !strings.HasPrefix(t.OSRMBaseURL, "https://") {
		return errors.NewConfigurationError("OSRM_BASE_URL must start with http:// or https://", nil)
	}
	if t.CacheTTLMinutes < 1 {
		return errors.NewConfigurationError("ETA_CACHE_TTL_MINUTES must be at least 1 minute", nil)
	}
	if t.EnableLogging && t.LogFilePath == "" {
		return errors.NewConfigurationError("TRANSPORT_LOG_FILE cannot be empty when logging is enabled", nil)
	}
	return nil
}

// Validate checks calculator configuration
func (c *CalculatorConfig) Validate() error {
	if c.HomeLat < -90 || c.HomeLat > 90 {
		return errors.NewConfigurationError("HOME_LAT must be between -90 and 90", nil)
	}
	if c.HomeLon < -180 || c.HomeLon > 180 {
		return errors.NewConfigurationError("HOME_LON must be between -180 and 180", nil)
	}
	validModes := []string{"car", "transit", "walking", "cycling"}
	modeOK := false
	for _, mode := range validModes {
		if c.DefaultMode == mode {
			modeOK = true
			break
		}
	}
	if !modeOK {
		return errors.NewConfigurationError(
			fmt.Sprintf("DEFAULT_TRANSPORT_MODE must be one of: %s", strings.Join(validModes, ", ")), nil)
	}
	if c.Tier != "free" && c.Tier != "pro" {
		return errors.NewConfigurationError("SERVICE_TIER must be one of: free, pro", nil)
	}
	return nil
}

// Validate checks scheduler configuration
func (s *SchedulerConfig) Validate() error {
	if s.RefreshFallback < 1 {
		return errors.NewConfigurationError("REFRESH_FALLBACK_MINUTES must be at least 1 minute", nil)
	}
	if s.RefreshFallback > 1440 {
		return errors.NewConfigurationError("REFRESH_FALLBACK_MINUTES cannot exceed 1440 minutes (24 hours)", nil)
	}
	if s.CleanupInterval < 1 {
		return errors.NewConfigurationError("CLEANUP_INTERVAL must be at least 1 minute", nil)
	}
	if s.CleanupInterval > 10080 {
		return errors.NewConfigurationError("CLEANUP_INTERVAL cannot exceed 10080 minutes (7 days)", nil)
	}
	return nil
}
