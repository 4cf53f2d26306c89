package models

// Config holds all configuration for the auth platform
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Session  SessionConfig
	OTP      OTPConfig
	OAuth    OAuthConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
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

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ configuration
type NSQConfig struct {
	Address        string
	LookupAddress  string
	SMSWorkChannel string
}

// SessionConfig holds session issuance configuration
type SessionConfig struct {
	// ExpirationMinutes is the fixed lifetime of a session from issuance.
	// Activity never extends it.
	ExpirationMinutes int
}

// OTPConfig holds OTP challenge configuration
type OTPConfig struct {
	// ExpirationMinutes bounds how long an issued code stays verifiable
	ExpirationMinutes int
	// DeliveryMode selects the challenge delivery channel: "sms" or "inline".
	// Inline returns the code in the HTTP response and exists for development only.
	DeliveryMode string
}

// OAuthConfig holds hosted OAuth provider verification configuration
type OAuthConfig struct {
	// JWTSecret verifies the provider's HS256 access tokens
	JWTSecret string
	// Issuer is the expected iss claim, empty disables the check
	Issuer string
	// TimeoutSeconds bounds each provider check inside the coordinator
	TimeoutSeconds int
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}
