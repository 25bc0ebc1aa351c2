package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
	"github.com/lc-autoel/LCA-BookingSite/pkg/types"
)

// Config конфигурация сервиса.
// Несекретные параметры читаются из config.toml, секреты — только из
// окружения (при наличии .env он загружается через godotenv).
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Booking  BookingConfig  `toml:"booking"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"-"` // только из окружения
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BookingConfig расписание слотов. Публичный и админский потоки
// обслуживаются одним экземпляром usecase, поэтому горизонт и сетка
// слотов у них всегда совпадают.
type BookingConfig struct {
	DayStart    string `toml:"day_start"`
	DayEnd      string `toml:"day_end"`
	SlotMinutes int    `toml:"slot_minutes"`
	HorizonDays int    `toml:"horizon_days"`
}

// ToSchedule конвертирует конфигурацию в доменное расписание,
// подставляя дефолты для незаполненных полей
func (b *BookingConfig) ToSchedule() domain.SlotSchedule {
	schedule := domain.DefaultSlotSchedule()

	if b.DayStart != "" {
		schedule.DayStart = types.TimeString(b.DayStart)
	}
	if b.DayEnd != "" {
		schedule.DayEnd = types.TimeString(b.DayEnd)
	}
	if b.SlotMinutes > 0 {
		schedule.IntervalMinutes = b.SlotMinutes
	}
	if b.HorizonDays > 0 {
		schedule.HorizonDays = b.HorizonDays
	}

	return schedule
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig параметры аутентификации администратора.
// Секреты приходят только из окружения.
type AuthConfig struct {
	Issuer             string `toml:"issuer"`
	AccountName        string `toml:"account_name"`
	IdleTimeoutMinutes int    `toml:"idle_timeout_minutes"`

	AdminPassword string `toml:"-"`
	TOTPSecret    string `toml:"-"`
	SessionKey    string `toml:"-"`
}

// Load читает конфигурацию из toml-файла и окружения
func Load(path string) (*Config, error) {
	// .env опционален: в проде переменные приходят из окружения напрямую
	_ = godotenv.Load(".env")

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.Database.Password = os.Getenv("LCA_DB_PASSWORD")
	cfg.Auth.AdminPassword = os.Getenv("LCA_ADMIN_PASSWORD")
	cfg.Auth.TOTPSecret = os.Getenv("LCA_TOTP_SECRET")
	cfg.Auth.SessionKey = os.Getenv("LCA_SESSION_KEY")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.AdminPassword == "" {
		return fmt.Errorf("config: LCA_ADMIN_PASSWORD is required but not set")
	}
	if c.Auth.TOTPSecret == "" {
		return fmt.Errorf("config: LCA_TOTP_SECRET is required but not set")
	}
	if c.Auth.SessionKey == "" {
		return fmt.Errorf("config: LCA_SESSION_KEY is required but not set")
	}
	if c.Auth.IdleTimeoutMinutes <= 0 {
		c.Auth.IdleTimeoutMinutes = 10
	}
	return nil
}
