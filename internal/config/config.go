package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Events   EventsConfig   `toml:"events"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"SERVER_HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"DB_HOST"`
	Port            int    `toml:"port" envconfig:"DB_PORT"`
	User            string `toml:"user" envconfig:"DB_USER"`
	Password        string `toml:"password" envconfig:"DB_PASSWORD"`
	DBName          string `toml:"dbname" envconfig:"DB_NAME"`
	SSLMode         string `toml:"sslmode" envconfig:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file" envconfig:"LOG_FILE"`
	Level string `toml:"level" envconfig:"LOG_LEVEL"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// EventsConfig настройки публикации событий в Kafka
type EventsConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers" envconfig:"KAFKA_BROKERS"`
	Topic   string   `toml:"topic" envconfig:"KAFKA_TOPIC"`
}

// BookingConfig правила бронирования кортов сообщества
type BookingConfig struct {
	Courts             []string `toml:"courts"`
	FirstHour          int      `toml:"first_hour"`
	LastHour           int      `toml:"last_hour"`
	WindowDays         int      `toml:"window_days"`
	MaxActiveBookings  int      `toml:"max_active_bookings"`
	MaxPerDayBookings  int      `toml:"max_per_day_bookings"`
	ActivityWindowDays int      `toml:"activity_window_days"`
}

// Rules собирает правила бронирования, подставляя умолчания
// сообщества вместо незаполненных полей
func (b BookingConfig) Rules() domain.Rules {
	rules := domain.DefaultRules()

	if len(b.Courts) > 0 {
		rules.Courts = b.Courts
	}
	if b.FirstHour > 0 {
		rules.FirstHour = b.FirstHour
	}
	if b.LastHour > 0 {
		rules.LastHour = b.LastHour
	}
	if b.WindowDays > 0 {
		rules.WindowDays = b.WindowDays
	}
	if b.MaxActiveBookings > 0 {
		rules.MaxActiveBookings = b.MaxActiveBookings
	}
	if b.MaxPerDayBookings > 0 {
		rules.MaxPerDayBookings = b.MaxPerDayBookings
	}
	if b.ActivityWindowDays > 0 {
		rules.ActivityWindowDays = b.ActivityWindowDays
	}

	return rules
}

// Load читает конфигурацию из TOML файла, после чего переопределяет
// секреты и адреса переменными окружения
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to process environment: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.User == "" {
		c.Database.User = "postgres"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "mira-courtbooking"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Events.Topic == "" {
		c.Events.Topic = "court-reservations"
	}
}

func (c *Config) validate() error {
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database name is required")
	}

	if c.Events.Enabled && len(c.Events.Brokers) == 0 {
		return fmt.Errorf("config: events are enabled but no brokers configured")
	}

	rules := c.Booking.Rules()
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("config: invalid booking rules: %w", err)
	}

	return nil
}
