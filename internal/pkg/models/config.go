package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Tracking TrackingConfig
	Logger   LoggerConfig
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

// DatabaseConfig contains the SQLite database configuration
type DatabaseConfig struct {
	Path         string // path to the sqlite database file
	BusyTimeout  int    // milliseconds
	MaxOpenConns int
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

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// AuthConfig holds the single configured account allowed to use the
// tracker. PasswordHash is a bcrypt hash.
type AuthConfig struct {
	Username     string
	PasswordHash string
}

// TrackingConfig contains tracking service specific configuration
type TrackingConfig struct {
	LiveTTLHours     int     // how long an abandoned live session survives in Redis
	NearbyRadiusKm   float64 // default radius for the nearby-sessions query
	GeohashPrecision uint    // precision of the stored start-point geohash
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
