package config

import (
	"eventCalendar/internal/calendar"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"os"
	"time"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Env string `yaml:"env" env-default:"local"`
	// Storage selects the event store: "postgres" or "memory".
	Storage    string     `yaml:"storage" env:"STORAGE" env-default:"postgres"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Calendar   Calendar   `yaml:"calendar"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:3000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"calendar"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Calendar struct {
	// WeekStart is the first column of the month grid, e.g. "sunday".
	WeekStart string `yaml:"week_start" env:"CALENDAR_WEEK_START" env-default:"sunday"`
	// Timezone is an IANA name; "Local" uses the host zone.
	Timezone string `yaml:"timezone" env:"CALENDAR_TIMEZONE" env-default:"Local"`
}

func (c Calendar) FirstWeekday() (time.Weekday, error) {
	return calendar.ParseWeekday(c.WeekStart)
}

func (c Calendar) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		panic("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load reads the YAML file at path, applies env overrides and checks the
// calendar section.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
	if _, err := cfg.Calendar.FirstWeekday(); err != nil {
		return nil, fmt.Errorf("invalid calendar week_start: %w", err)
	}
	if _, err := cfg.Calendar.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
