package config

import (
	"errors"
	"log"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// CORS allow-list.
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Google Calendar.
	GoogleCreds      string `mapstructure:"GOOGLE_CREDS"`
	CalendarID       string `mapstructure:"CALENDAR_ID"`
	CalendarTimeZone string `mapstructure:"CALENDAR_TIMEZONE"`
	SlotWindowDays   int    `mapstructure:"SLOT_WINDOW_DAYS"`

	// Razorpay.
	RazorpayKeyID     string `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `mapstructure:"RAZORPAY_KEY_SECRET"`
	DefaultAmount     int64  `mapstructure:"DEFAULT_AMOUNT"`
	Currency          string `mapstructure:"CURRENCY"`

	// Upper bound for a single calendar or payment call.
	CallTimeout time.Duration `mapstructure:"CALL_TIMEOUT"`

	// Redis configuration. An empty address disables idempotency keys.
	RedisAddr          string        `mapstructure:"REDIS_ADDR"`
	RedisPassword      string        `mapstructure:"REDIS_PASSWORD"`
	RedisIdempotencyDB int           `mapstructure:"REDIS_IDEMPOTENCY_DB"`
	IdempotencyTTL     time.Duration `mapstructure:"IDEMPOTENCY_TTL"`

	// How long an unfinished attempt blocks retries of the same key.
	IdempotencyPendingTTL time.Duration `mapstructure:"IDEMPOTENCY_PENDING_TTL"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"https://champdeepak.github.io", "http://localhost:3000"})
	viper.SetDefault("GOOGLE_CREDS", "")
	viper.SetDefault("CALENDAR_ID", "")
	viper.SetDefault("CALENDAR_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("SLOT_WINDOW_DAYS", 7)
	viper.SetDefault("RAZORPAY_KEY_ID", "")
	viper.SetDefault("RAZORPAY_KEY_SECRET", "")
	viper.SetDefault("DEFAULT_AMOUNT", 25000)
	viper.SetDefault("CURRENCY", "INR")
	viper.SetDefault("CALL_TIMEOUT", "10s")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_IDEMPOTENCY_DB", 0)
	viper.SetDefault("IDEMPOTENCY_TTL", "24h")
	viper.SetDefault("IDEMPOTENCY_PENDING_TTL", "1m")
}

// bindEnv maps variables that hosting platforms inject under other names.
func bindEnv() {
	_ = viper.BindEnv("APP_PORT", "APP_PORT", "PORT")
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()
	bindEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Validate reports every credential the collaborators need but did not get.
func (c Config) Validate() error {
	var errs []error
	if c.GoogleCreds == "" {
		errs = append(errs, errors.New("GOOGLE_CREDS is not set"))
	}
	if c.CalendarID == "" {
		errs = append(errs, errors.New("CALENDAR_ID is not set"))
	}
	if c.RazorpayKeyID == "" || c.RazorpayKeySecret == "" {
		errs = append(errs, errors.New("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must both be set"))
	}
	if c.IdempotencyPendingTTL <= 0 || c.IdempotencyPendingTTL > c.IdempotencyTTL {
		errs = append(errs, errors.New("IDEMPOTENCY_PENDING_TTL must be positive and no longer than IDEMPOTENCY_TTL"))
	}
	if _, err := time.LoadLocation(c.CalendarTimeZone); err != nil {
		errs = append(errs, errors.New("CALENDAR_TIMEZONE is not a valid IANA zone"))
	}
	return errors.Join(errs...)
}

// SlotWindow is the forward window served by GET /slots.
func (c Config) SlotWindow() time.Duration {
	return time.Duration(c.SlotWindowDays) * 24 * time.Hour
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
