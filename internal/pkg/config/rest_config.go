package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. REALSHOT_STRIPE_SECRET_KEY
const EnvPrefix = "REALSHOT"

// RestConfig aggregates the settings of every component wired by the REST API
type RestConfig struct {
	Port          string                `mapstructure:"port" validate:"required,numeric"`
	AppURL        string                `mapstructure:"app_url" validate:"required,url"`
	AllowOrigins  []string              `mapstructure:"allow_origins"`
	Logger        LoggerSettings        `mapstructure:"logger"`
	Database      DatabaseSettings      `mapstructure:"database"`
	BlobConnector BlobConnectorSettings `mapstructure:"blob_connector"`
	Auth          AuthSettings          `mapstructure:"auth"`
	Stripe        StripeSettings        `mapstructure:"stripe"`
	SMTP          SMTPSettings          `mapstructure:"smtp"`
	RateLimit     RateLimitSettings     `mapstructure:"rate_limit"`
	Cleanup       CleanupSettings       `mapstructure:"cleanup"`
	Broker        BrokerSettings        `mapstructure:"broker"`
	Studio        StudioSettings        `mapstructure:"studio"`
}

// keys that usually only exist in the environment (secrets), bound so that
// AutomaticEnv picks them up even when the YAML file omits them
var secretKeys = []string{
	"database.dsn",
	"blob_connector.connection_string",
	"auth.jwt_secret",
	"auth.google_client_id",
	"auth.google_client_secret",
	"stripe.secret_key",
	"stripe.webhook_secret",
	"smtp.username",
	"smtp.password",
	"cleanup.cron_secret",
	"broker.url",
}

// InitializeRestConfig loads the YAML file at path, applies environment overrides and validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	// a missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decodeRestConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.format", LogFormatText)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("blob_connector.cloud_provider", AzureCloudProvider)
	v.SetDefault("blob_connector.max_upload_size", DefaultMaxUploadSize)
	v.SetDefault("auth.token_ttl", DefaultTokenTTL)
	v.SetDefault("stripe.currency", "usd")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("rate_limit.limit", 20)
	v.SetDefault("rate_limit.interval", "1m")
	v.SetDefault("rate_limit.capacity", 10000)
	v.SetDefault("cleanup.upload_retention_days", 30)
	v.SetDefault("cleanup.abandoned_after_days", 7)
	v.SetDefault("cleanup.schedule", "0 3 * * *")
	v.SetDefault("broker.exchange", "realshot.orders")
	v.SetDefault("studio.min_uploads", 5)
	v.SetDefault("studio.max_uploads", 30)
	v.SetDefault("studio.max_photo_requests", 20)

	for _, key := range secretKeys {
		// BindEnv only fails without arguments
		_ = v.BindEnv(key)
	}

	return v
}

func decodeRestConfig(v *viper.Viper) (*RestConfig, error) {
	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the top-level fields and every nested settings struct
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.StructPartial(c, "Port", "AppURL"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	validators := []interface{ Validate() error }{
		&c.Logger,
		&c.Database,
		&c.BlobConnector,
		&c.Auth,
		&c.Stripe,
		&c.SMTP,
		&c.RateLimit,
		&c.Cleanup,
		&c.Broker,
		&c.Studio,
	}
	for _, s := range validators {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	return nil
}
