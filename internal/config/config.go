package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts"
	"github.com/m04kA/MRK-ReservationService/internal/service/pricing"
	"github.com/m04kA/MRK-ReservationService/internal/usecase/resolve_availability"
	"github.com/m04kA/MRK-ReservationService/pkg/money"
	"github.com/m04kA/MRK-ReservationService/pkg/types"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

const (
	NotificationTransportHTTP = "http"
	NotificationTransportAMQP = "amqp"
)

// Config конфигурация сервиса
type Config struct {
	Server             ServerConfig       `toml:"server"`
	Logs               LogsConfig         `toml:"logs"`
	Metrics            MetricsConfig      `toml:"metrics"`
	Database           DatabaseConfig     `toml:"database"`
	Redis              RedisConfig        `toml:"redis"`
	Session            SessionConfig      `toml:"session"`
	RabbitMQ           RabbitMQConfig     `toml:"rabbitmq"`
	Security           SecurityConfig     `toml:"security"`
	ReservationService ServiceConfig      `toml:"reservation_service"`
	CatalogService     CatalogConfig      `toml:"catalog_service"`
	PaymentService     ServiceConfig      `toml:"payment_service"`
	NotificationSvc    NotificationConfig `toml:"notification_service"`
	CustomerService    ServiceConfig      `toml:"customer_service"`
	Pricing            PricingConfig      `toml:"pricing"`
	Wizard             WizardConfig       `toml:"wizard"`
	Availability       AvailabilityConfig `toml:"availability"`
	Receipt            ReceiptConfig      `toml:"receipt"`
}

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

// DatabaseConfig postgres для подтверждений; enabled = false хранит подтверждения в памяти
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

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig enabled = false переключает сессии и кеш в память процесса
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type SessionConfig struct {
	TTLMinutes           int `toml:"ttl_minutes"`
	ProcessingTTLSeconds int `toml:"processing_ttl_seconds"`
}

type RabbitMQConfig struct {
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

type SecurityConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	JWTIssuer string `toml:"jwt_issuer"`
}

type ServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type CatalogConfig struct {
	URL             string `toml:"url"`
	Timeout         int    `toml:"timeout"`
	CacheTTLSeconds int    `toml:"cache_ttl_seconds"`
}

// NotificationConfig transport: "http" (REST notification-service) или "amqp" (очередь)
type NotificationConfig struct {
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"`
	Transport string `toml:"transport"`
}

type PricingConfig struct {
	TaxRate             float64 `toml:"tax_rate"`
	DepositRate         float64 `toml:"deposit_rate"`
	FullPaymentRate     float64 `toml:"full_payment_rate"`
	ExtraGuestThreshold int     `toml:"extra_guest_threshold"`
	ExtraGuestPrice     float64 `toml:"extra_guest_price"`
}

type GuestRange struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

type WizardConfig struct {
	TableGuests GuestRange `toml:"table_guests"`
	EventGuests GuestRange `toml:"event_guests"`
}

type AvailabilityConfig struct {
	DaysAhead            int      `toml:"days_ahead"`
	EventStartOffsetDays int      `toml:"event_start_offset_days"`
	EventClosedWeekdays  []string `toml:"event_closed_weekdays"`
	TimeoutSeconds       int      `toml:"timeout_seconds"`
	FallbackFirstSlot    string   `toml:"fallback_first_slot"`
	FallbackLastSlot     string   `toml:"fallback_last_slot"`
	FallbackStepMinutes  int      `toml:"fallback_step_minutes"`
}

type ReceiptConfig struct {
	RestaurantName string `toml:"restaurant_name"`
}

// Load читает config.toml и применяет переопределения из окружения (.env подхватывается, если есть)
func Load(path string) (*Config, error) {
	// .env нужен только локально
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию, поверх которых декодируется файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics", ServiceName: "mrk_reservation_service"},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Session:         SessionConfig{TTLMinutes: 60, ProcessingTTLSeconds: 60},
		RabbitMQ:        RabbitMQConfig{Exchange: "notifications"},
		NotificationSvc: NotificationConfig{Timeout: 5, Transport: NotificationTransportHTTP},
		Pricing: PricingConfig{
			TaxRate:             0.18,
			DepositRate:         0.5,
			FullPaymentRate:     0.95,
			ExtraGuestThreshold: 50,
			ExtraGuestPrice:     15,
		},
		Wizard: WizardConfig{
			TableGuests: GuestRange{Min: 1, Max: 20},
			EventGuests: GuestRange{Min: 10, Max: 100},
		},
		Availability: AvailabilityConfig{
			DaysAhead:            90,
			EventStartOffsetDays: 1,
			EventClosedWeekdays:  []string{"monday"},
			TimeoutSeconds:       5,
			FallbackFirstSlot:    "18:00",
			FallbackLastSlot:     "21:30",
			FallbackStepMinutes:  30,
		},
		Receipt: ReceiptConfig{RestaurantName: "Marakos Grill"},
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.RabbitMQ.URL, "RABBITMQ_URL")
	setString(&cfg.Security.JWTSecret, "JWT_SECRET")
	setString(&cfg.ReservationService.URL, "RESERVATION_SERVICE_URL")
	setString(&cfg.CatalogService.URL, "CATALOG_SERVICE_URL")
	setString(&cfg.PaymentService.URL, "PAYMENT_SERVICE_URL")
	setString(&cfg.NotificationSvc.URL, "NOTIFICATION_SERVICE_URL")
	setString(&cfg.CustomerService.URL, "CUSTOMER_SERVICE_URL")
	setString(&cfg.Logs.Level, "LOG_LEVEL")
	setInt(&cfg.Server.HTTPPort, "HTTP_PORT")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 {
		problems = append(problems, "server.http_port must be positive")
	}
	for name, url := range map[string]string{
		"reservation_service.url": c.ReservationService.URL,
		"catalog_service.url":     c.CatalogService.URL,
		"payment_service.url":     c.PaymentService.URL,
		"customer_service.url":    c.CustomerService.URL,
	} {
		if url == "" {
			problems = append(problems, name+" is required")
		}
	}

	switch c.NotificationSvc.Transport {
	case NotificationTransportHTTP:
		if c.NotificationSvc.URL == "" {
			problems = append(problems, "notification_service.url is required for http transport")
		}
	case NotificationTransportAMQP:
		if c.RabbitMQ.URL == "" {
			problems = append(problems, "rabbitmq.url is required for amqp transport")
		}
	default:
		problems = append(problems, fmt.Sprintf("notification_service.transport %q is not supported", c.NotificationSvc.Transport))
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		problems = append(problems, "redis.addr is required when redis is enabled")
	}
	if c.Database.Enabled && c.Database.Host == "" {
		problems = append(problems, "database.host is required when database is enabled")
	}
	if c.Wizard.TableGuests.Min <= 0 || c.Wizard.TableGuests.Max < c.Wizard.TableGuests.Min {
		problems = append(problems, "wizard.table_guests is not a valid range")
	}
	if c.Wizard.EventGuests.Min <= 0 || c.Wizard.EventGuests.Max < c.Wizard.EventGuests.Min {
		problems = append(problems, "wizard.event_guests is not a valid range")
	}
	if _, err := c.Availability.closedWeekdays(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := types.NewTimeStringFromString(c.Availability.FallbackFirstSlot); err != nil {
		problems = append(problems, "availability.fallback_first_slot must be HH:MM")
	}
	if _, err := types.NewTimeStringFromString(c.Availability.FallbackLastSlot); err != nil {
		problems = append(problems, "availability.fallback_last_slot must be HH:MM")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// SessionTTL время жизни сессии бронирования
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// ProcessingTTL время жизни флага оформления
func (c *Config) ProcessingTTL() time.Duration {
	return time.Duration(c.Session.ProcessingTTLSeconds) * time.Second
}

// PricingSettings параметры калькулятора
func (c *Config) PricingSettings() pricing.Config {
	return pricing.Config{
		ExtraGuestThreshold: c.Pricing.ExtraGuestThreshold,
		ExtraGuestPrice:     money.FromFloat(c.Pricing.ExtraGuestPrice),
		TaxRateBP:           money.RateToBasisPoints(c.Pricing.TaxRate),
		DepositRateBP:       money.RateToBasisPoints(c.Pricing.DepositRate),
		FullPaymentRateBP:   money.RateToBasisPoints(c.Pricing.FullPaymentRate),
	}
}

// DraftSettings границы гостей мастера
func (c *Config) DraftSettings() drafts.Config {
	return drafts.Config{
		TableGuests:   domain.GuestLimits{Min: c.Wizard.TableGuests.Min, Max: c.Wizard.TableGuests.Max},
		EventGuests:   domain.GuestLimits{Min: c.Wizard.EventGuests.Min, Max: c.Wizard.EventGuests.Max},
		ProcessingTTL: c.ProcessingTTL(),
	}
}

// AvailabilitySettings правила дат и параметры резервных слотов. Вызывать после Validate.
func (c *Config) AvailabilitySettings() resolve_availability.Config {
	out := resolve_availability.DefaultConfig()
	out.DaysAhead = c.Availability.DaysAhead
	out.EventStartOffsetDays = c.Availability.EventStartOffsetDays
	out.EventClosedWeekdays, _ = c.Availability.closedWeekdays()
	if c.Availability.TimeoutSeconds > 0 {
		out.Timeout = time.Duration(c.Availability.TimeoutSeconds) * time.Second
	}
	if t, err := types.NewTimeStringFromString(c.Availability.FallbackFirstSlot); err == nil {
		out.Fallback.FirstSlot = t
	}
	if t, err := types.NewTimeStringFromString(c.Availability.FallbackLastSlot); err == nil {
		out.Fallback.LastSlot = t
	}
	if c.Availability.FallbackStepMinutes > 0 {
		out.Fallback.StepMinutes = c.Availability.FallbackStepMinutes
	}
	return out
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func (a AvailabilityConfig) closedWeekdays() ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(a.EventClosedWeekdays))
	for _, name := range a.EventClosedWeekdays {
		d, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("availability.event_closed_weekdays: unknown weekday %q", name)
		}
		out = append(out, d)
	}
	return out, nil
}
