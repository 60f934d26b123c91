package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/ORS-RoomBookingService/internal/schedule"
	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Admins   AdminsConfig   `toml:"admins"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort     int `toml:"http_port"`
	ReadTimeout  int `toml:"read_timeout"`
	WriteTimeout int `toml:"write_timeout"`
	IdleTimeout  int `toml:"idle_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
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

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig параметры расписания офиса
// Все времена в формате HH:MM, длительности в минутах
type ScheduleConfig struct {
	MorningStart        string `toml:"morning_start"`
	LunchStart          string `toml:"lunch_start"`
	LunchEnd            string `toml:"lunch_end"`
	OfficeClose         string `toml:"office_close"`
	MinBookingMinutes   int    `toml:"min_booking_minutes"`
	MaxBookingMinutes   int    `toml:"max_booking_minutes"`
	AdvanceBookingDays  int    `toml:"advance_booking_days"`
	CancelNoticeMinutes int    `toml:"cancel_notice_minutes"`
	TimeStepMinutes     int    `toml:"time_step_minutes"`
	Timezone            string `toml:"timezone"`
}

// AdminsConfig список пользователей с правами администратора
type AdminsConfig struct {
	UserIDs []int64 `toml:"user_ids"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	return nil
}

// IsAdmin проверяет, входит ли пользователь в список администраторов
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.Admins.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// BuildEngineConfig собирает конфигурацию движка расписания из TOML секции
func (c *Config) BuildEngineConfig() (schedule.Config, error) {
	morningStart, err := types.ParseTimeOfDay(c.Schedule.MorningStart)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("config: schedule.morning_start: %w", err)
	}
	lunchStart, err := types.ParseTimeOfDay(c.Schedule.LunchStart)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("config: schedule.lunch_start: %w", err)
	}
	lunchEnd, err := types.ParseTimeOfDay(c.Schedule.LunchEnd)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("config: schedule.lunch_end: %w", err)
	}
	officeClose, err := types.ParseTimeOfDay(c.Schedule.OfficeClose)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("config: schedule.office_close: %w", err)
	}

	morning, err := schedule.NewInterval(morningStart, lunchStart)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("config: schedule morning interval: %w", err)
	}
	lunch, err := schedule.NewInterval(lunchStart, lunchEnd)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("config: schedule lunch interval: %w", err)
	}
	afternoon, err := schedule.NewInterval(lunchEnd, officeClose)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("config: schedule afternoon interval: %w", err)
	}

	hours, err := schedule.NewOfficeHours(morning, lunch, afternoon)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("config: office hours: %w", err)
	}

	loc := time.UTC
	if c.Schedule.Timezone != "" {
		loc, err = time.LoadLocation(c.Schedule.Timezone)
		if err != nil {
			return schedule.Config{}, fmt.Errorf("config: schedule.timezone: %w", err)
		}
	}

	return schedule.Config{
		Hours:               hours,
		MinBookingMinutes:   c.Schedule.MinBookingMinutes,
		MaxBookingMinutes:   c.Schedule.MaxBookingMinutes,
		AdvanceBookingDays:  c.Schedule.AdvanceBookingDays,
		CancelNoticeMinutes: c.Schedule.CancelNoticeMinutes,
		TimeStepMinutes:     c.Schedule.TimeStepMinutes,
		Location:            loc,
	}, nil
}
