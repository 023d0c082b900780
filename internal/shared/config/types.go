package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	Timezone       string   `mapstructure:"timezone"`
	FrontendURL    string   `mapstructure:"frontend_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the gorm dialect with Driver ("mysql" or "sqlite").
// For sqlite, Database is the file path or a ":memory:" DSN.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		return d.Database
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// IsConfigured reports whether enough SMTP settings are present to attempt delivery.
func (e *EmailConfig) IsConfigured() bool {
	return e.SMTPHost != "" && e.SMTPPort > 0 && e.FromAddress != ""
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SchedulerConfig holds the cron expressions of the sweep jobs.
// Expressions are evaluated in the business timezone.
type SchedulerConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	OverdueAlertCron   string        `mapstructure:"overdue_alert_cron"`
	DailyDigestCron    string        `mapstructure:"daily_digest_cron"`
	OverdueRefreshCron string        `mapstructure:"overdue_refresh_cron"`
	JobTimeout         time.Duration `mapstructure:"job_timeout"`
}

// DispatcherConfig controls the outbound email queue.
// Queue is "memory" or "redis".
type DispatcherConfig struct {
	Queue      string `mapstructure:"queue"`
	QueueKey   string `mapstructure:"queue_key"`
	Workers    int    `mapstructure:"workers"`
	BufferSize int    `mapstructure:"buffer_size"`
}
