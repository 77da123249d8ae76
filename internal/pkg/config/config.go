package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rahmanda/transbus/internal/pkg/models"
)

// InitConfig loads configuration from an env file (local mode) and then from
// environment variables
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "scheduler-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9980)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// Scheduler config
	configs.Scheduler.Strategy = GetEnv("SCHEDULER_STRATEGY", "availability")
	configs.Scheduler.TurnaroundBufferMinutes = GetEnvAsInt("SCHEDULER_TURNAROUND_BUFFER_MINUTES", 30)
	configs.Scheduler.OverlapWindowHours = GetEnvAsInt("SCHEDULER_OVERLAP_WINDOW_HOURS", 24)
	configs.Scheduler.GenerateAheadDays = GetEnvAsInt("SCHEDULER_GENERATE_AHEAD_DAYS", 1)
	configs.Scheduler.GenerateHour = GetEnvAsInt("SCHEDULER_GENERATE_HOUR", 0)
	configs.Scheduler.SweepIntervalSeconds = GetEnvAsInt("SCHEDULER_SWEEP_INTERVAL_SECONDS", 60)

	// Jobs config
	configs.Jobs.StreamName = GetEnv("JOBS_STREAM_NAME", "JOBS")
	configs.Jobs.MaxDeliver = GetEnvAsInt("JOBS_MAX_DELIVER", 5)
	configs.Jobs.AckWaitSecs = GetEnvAsInt("JOBS_ACK_WAIT_SECONDS", 60)
	configs.Jobs.BackoffSecs = GetEnvAsIntSlice("JOBS_BACKOFF_SECONDS", []int{5, 30, 120, 600})
	configs.Jobs.LockTTLSecs = GetEnvAsInt("JOBS_LOCK_TTL_SECONDS", 90)
	configs.Jobs.MaxAgeHours = GetEnvAsInt("JOBS_MAX_AGE_HOURS", 48)
	configs.Jobs.DispatchEvery = GetEnvAsInt("JOBS_DISPATCH_EVERY_SECONDS", 15)

	return configs
}

// GetEnv retrieves an environment variable or returns a default value
func GetEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt retrieves an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool retrieves an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsIntSlice retrieves a comma-separated environment variable as an
// int slice or returns a default value
func GetEnvAsIntSlice(key string, defaultValue []int) []int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return defaultValue
		}
		values = append(values, value)
	}
	return values
}
