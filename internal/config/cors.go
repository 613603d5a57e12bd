package config

import "time"

// CORSConfig configures cross-origin access for the browser front end.
type CORSConfig struct {
	AllowOrigins []string
	MaxAge       time.Duration
}

// LoadCORSConfigFromEnv loads CORS configuration from environment variables.
func LoadCORSConfigFromEnv() CORSConfig {
	return CORSConfig{
		AllowOrigins: GetEnvList("CORS_ALLOW_ORIGINS", []string{"http://localhost:5173"}),
		MaxAge:       GetEnvDuration("CORS_MAX_AGE", 12*time.Hour),
	}
}
