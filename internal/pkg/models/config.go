package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Scheduler SchedulerConfig
	Jobs      JobsConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// SchedulerConfig contains trip scheduling engine configuration
type SchedulerConfig struct {
	// Strategy selects the auto-assignment algorithm: "availability" or "workload"
	Strategy string
	// TurnaroundBufferMinutes is folded into every occupied interval
	TurnaroundBufferMinutes int
	// OverlapWindowHours bounds the candidate scan around a target trip
	OverlapWindowHours int
	// GenerateAheadDays is how far ahead of today the daily generation runs
	GenerateAheadDays int
	// GenerateHour is the local hour the daily generation job fires
	GenerateHour int
	// SweepIntervalSeconds is the cadence of the lifecycle sweep job
	SweepIntervalSeconds int
}

// JobsConfig contains job queue configuration
type JobsConfig struct {
	StreamName    string
	MaxDeliver    int
	AckWaitSecs   int
	BackoffSecs   []int
	LockTTLSecs   int
	MaxAgeHours   int
	DispatchEvery int // seconds between recurring dispatcher evaluations
}
