package config

import (
	"fmt"
	"time"

	"venue-boxoffice/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB password)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"memory"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"boxoffice"`
	Password    string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"boxoffice"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type BookingConfig struct {
	// Pending groups untouched for longer than GroupTTL are evicted.
	GroupTTL      time.Duration `envconfig:"BOOKING_GROUP_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"BOOKING_SWEEP_INTERVAL" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if c.DB.Password == "" {
			return errs.Newf("DB_PASSWORD is required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	default:
		return errs.Newf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Booking.GroupTTL <= 0 {
		return errs.Newf("BOOKING_GROUP_TTL must be positive, got %s", c.Booking.GroupTTL)
	}
	if c.Booking.SweepInterval <= 0 {
		return errs.Newf("BOOKING_SWEEP_INTERVAL must be positive, got %s", c.Booking.SweepInterval)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errs.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		DB: DBConfig{
			Host:        "localhost",
			Port:        "15433", // Test DB port
			User:        "test",
			Password:    "test",
			DBName:      "test_db",
			SSLMode:     "disable",
			TimeZone:    "Europe/London",
			AutoMigrate: true,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/London",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Booking: BookingConfig{
			GroupTTL:      time.Hour,
			SweepInterval: time.Minute,
		},
	}
}
