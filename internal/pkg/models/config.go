package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Pickup   PickupConfig
	Locator  LocatorConfig
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

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
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

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OTPConfig contains one-time-password configuration
type OTPConfig struct {
	TTLMinutes int
}

// PickupConfig contains pickup lifecycle configuration
type PickupConfig struct {
	MinWeightKg  float64 `json:"min_weight_kg"`
	PointsPerKg  int     `json:"points_per_kg"`
	CandidateCap int     `json:"candidate_cap"` // max advisory scrappers returned on create
}

// LocatorConfig contains the external business-locator endpoint configuration
type LocatorConfig struct {
	ScrapeURL      string
	TimeoutSeconds int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}
