package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Storage  Storage  `envPrefix:"MINIO_"`

	// ExposeErrors controls whether internal error details are echoed in
	// 500 responses. Keep off outside development.
	ExposeErrors bool `env:"EXPOSE_ERRORS" envDefault:"false"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"5000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains document database connection parameters.
type Database struct {
	URI  string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Name string `env:"NAME" envDefault:"respite"`
}

// JWT contains token signing parameters. There is no revocation mechanism,
// so TTL bounds the lifetime of a leaked token.
type JWT struct {
	Secret string        `env:"SECRET" envDefault:"devsecret"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

// Storage contains object storage parameters for profile images.
type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"respite-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"respite-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"respite-avatars"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// NewConfig parses configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
