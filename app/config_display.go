package app

import (
	"log"
	"os"
	"sort"
	"strings"

	"github.com/adrianrdguez/GoFast/config"
)

// ConfigDisplayer handles configuration and environment variable display
type ConfigDisplayer struct{}

// NewConfigDisplayer creates a new configuration displayer
func NewConfigDisplayer() *ConfigDisplayer {
	return &ConfigDisplayer{}
}

// PrintConfig prints all fields in the configuration
func (cd *ConfigDisplayer) PrintConfig(cfg *config.Config) {
	log.Println("==== APPLICATION CONFIGURATION ====")

	log.Printf("SERVER:\n")
	log.Printf("  Port: %d\n", cfg.Server.Port)

	log.Printf("\nDATABASE:\n")
	log.Printf("  Host: %s\n", cfg.Database.Host)
	log.Printf("  Port: %d\n", cfg.Database.Port)
	log.Printf("  User: %s\n", cfg.Database.User)
	log.Printf("  Password: %s\n", cd.maskString(cfg.Database.Password))
	log.Printf("  Name: %s\n", cfg.Database.Name)
	log.Printf("  SSLMode: %s\n", cfg.Database.SSLMode)

	log.Printf("\nREDIS:\n")
	log.Printf("  Enabled: %t\n", cfg.Redis.Enabled)
	log.Printf("  Addr: %s\n", cfg.Redis.Addr)
	log.Printf("  Password: %s\n", cd.maskString(cfg.Redis.Password))
	log.Printf("  DB: %d\n", cfg.Redis.DB)

	log.Printf("\nCALENDAR:\n")
	log.Printf("  Base URL: %s\n", cfg.Calendar.BaseURL)
	log.Printf("  Token: %s\n", cd.maskString(cfg.Calendar.Token))
	log.Printf("  Calendar ID: %s\n", cfg.Calendar.CalendarID)
	log.Printf("  ICS Path: %s\n", cfg.Calendar.ICSPath)
	log.Printf("  Scan Window: %d hours\n", cfg.Calendar.ScanWindowHours)

	log.Printf("\nTRANSPORT:\n")
	log.Printf("  OSRM Base URL: %s\n", cfg.Transport.OSRMBaseURL)
	log.Printf("  Cache TTL: %d minutes\n", cfg.Transport.CacheTTLMinutes)
	log.Printf("  Cache Enabled: %t\n", cfg.Transport.EnableCache)
	log.Printf("  Logging Enabled: %t\n", cfg.Transport.EnableLogging)
	log.Printf("  Log File: %s\n", cfg.Transport.LogFilePath)

	log.Printf("\nCALCULATOR:\n")
	log.Printf("  Home: %.4f, %.4f\n", cfg.Calculator.HomeLat, cfg.Calculator.HomeLon)
	log.Printf("  Default Mode: %s\n", cfg.Calculator.DefaultMode)
	log.Printf("  Tier: %s\n", cfg.Calculator.Tier)
	log.Printf("  Pro Buffer: %d minutes\n", cfg.Calculator.ProBufferMinutes)

	log.Printf("\nSCHEDULER:\n")
	log.Printf("  Refresh Fallback: %d minutes\n", cfg.Scheduler.RefreshFallback)
	log.Printf("  Cleanup Interval: %d minutes\n", cfg.Scheduler.CleanupInterval)

	log.Println("===================================")
}

// PrintAllEnvVars prints all environment variables available to the application
func (cd *ConfigDisplayer) PrintAllEnvVars() {
	log.Println("==== ENVIRONMENT VARIABLES ====")

	envVars := os.Environ()
	sort.Strings(envVars)

	for _, env := range envVars {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}

		key := pair[0]
		value := pair[1]

		if cd.isSensitive(key) {
			value = cd.maskString(value)
		}

		log.Printf("%s=%s\n", key, value)
	}

	log.Println("===============================")
}

// maskString masks sensitive information like passwords and API keys
func (cd *ConfigDisplayer) maskString(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}

// isSensitive checks if an environment variable key is considered sensitive
func (cd *ConfigDisplayer) isSensitive(key string) bool {
	sensitiveKeys := []string{
		"API_KEY", "PASSWORD", "SECRET", "TOKEN", "KEY", "PASS", "PWD",
	}

	key = strings.ToUpper(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(key, sensitive) {
			return true
		}
	}

	return false
}
