package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/LittleLemon-ReservationService/pkg/types"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Booking      BookingConfig      `toml:"booking"`
	Specials     SpecialsConfig     `toml:"specials"`
	Reservations ReservationsConfig `toml:"reservations"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры имитации бронирования
type BookingConfig struct {
	DelayMs          int     `toml:"delay_ms"`
	FailureThreshold float64 `toml:"failure_threshold"` // успех, если случайное число > порога
	RandomSeed       uint64  `toml:"random_seed"`       // 0 - глобальный источник случайности
}

type SpecialsConfig struct {
	DelayMs int `toml:"delay_ms"`
}

// ReservationsConfig параметры формы бронирования
type ReservationsConfig struct {
	OpeningTime     string `toml:"opening_time"`
	ClosingTime     string `toml:"closing_time"`
	SlotStepMinutes int    `toml:"slot_step_minutes"`
}

// DatabaseConfig подключение к postgres (каталог блюд недели)
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// RedisConfig кеш каталога блюд недели
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// DSN строка подключения к postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "little-lemon-reservations",
		},
		Booking: BookingConfig{
			DelayMs:          5000,
			FailureThreshold: 0.1,
		},
		Specials: SpecialsConfig{
			DelayMs: 800,
		},
		Reservations: ReservationsConfig{
			OpeningTime:     "17:00",
			ClosingTime:     "21:00",
			SlotStepMinutes: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			TTLSeconds: 3600,
		},
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Booking.DelayMs < 0 || c.Specials.DelayMs < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	}

	if c.Booking.FailureThreshold < 0 || c.Booking.FailureThreshold >= 1 {
		return fmt.Errorf("%w: booking.failure_threshold must be in [0, 1)", ErrInvalidConfig)
	}

	// Сервер не должен обрывать ответ раньше, чем закончится имитация бронирования
	if c.Server.WriteTimeout*1000 <= c.Booking.DelayMs {
		return fmt.Errorf("%w: server.write_timeout must exceed booking.delay_ms", ErrInvalidConfig)
	}

	if c.Reservations.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: reservations.slot_step_minutes must be positive", ErrInvalidConfig)
	}

	opening, err := types.NewTimeStringFromString(c.Reservations.OpeningTime)
	if err != nil {
		return fmt.Errorf("%w: reservations.opening_time: %v", ErrInvalidConfig, err)
	}
	closing, err := types.NewTimeStringFromString(c.Reservations.ClosingTime)
	if err != nil {
		return fmt.Errorf("%w: reservations.closing_time: %v", ErrInvalidConfig, err)
	}
	if !opening.IsBefore(closing) {
		return fmt.Errorf("%w: reservations.opening_time must be before closing_time", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	if c.Redis.Enabled && c.Redis.TTLSeconds <= 0 {
		return fmt.Errorf("%w: redis.ttl_seconds must be positive", ErrInvalidConfig)
	}

	return nil
}
