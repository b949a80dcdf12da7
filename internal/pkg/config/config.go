package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, provider credentials), security settings
// - default: Values common across all environments (timezone, timeout, page paths), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	ProviderA ProviderAConfig
	ProviderB ProviderBConfig
	Mail      MailConfig
	Redirect  RedirectConfig
	Checkout  CheckoutConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
	// lifetime of the emailed one-time login code
	LoginCodeTTL time.Duration `envconfig:"LOGIN_CODE_TTL" default:"15m"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type ProviderAConfig struct {
	BaseURL string        `envconfig:"PROVIDER_A_BASE_URL" required:"true"`
	APIKey  string        `envconfig:"PROVIDER_A_API_KEY" required:"true"`
	Timeout time.Duration `envconfig:"PROVIDER_A_TIMEOUT" default:"10s"`
}

type ProviderBConfig struct {
	Sandbox    bool          `envconfig:"PROVIDER_B_SANDBOX" default:"true"`
	SandboxURL string        `envconfig:"PROVIDER_B_SANDBOX_VERIFY_URL" default:"https://ipnpb.sandbox.paypal.com/cgi-bin/webscr"`
	LiveURL    string        `envconfig:"PROVIDER_B_LIVE_VERIFY_URL" default:"https://ipnpb.paypal.com/cgi-bin/webscr"`
	Timeout    time.Duration `envconfig:"PROVIDER_B_TIMEOUT" default:"10s"`
}

type MailConfig struct {
	BaseURL   string        `envconfig:"MAIL_BASE_URL" required:"true"`
	APIKey    string        `envconfig:"MAIL_API_KEY" required:"true"`
	FromEmail string        `envconfig:"MAIL_FROM" default:"orders@localhost"`
	Timeout   time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
}

type RedirectConfig struct {
	FrontendBaseURL string `envconfig:"FRONTEND_BASE_URL" default:"http://localhost:3000"`
	SuccessPath     string `envconfig:"REDIRECT_SUCCESS_PATH" default:"/checkout/success"`
	CancelPath      string `envconfig:"REDIRECT_CANCEL_PATH" default:"/checkout/cancel"`
}

type CheckoutConfig struct {
	// keyed into the public hash so it cannot be recomputed from a username
	PublicHashKey string `envconfig:"PUBLIC_HASH_KEY" required:"true"`
	Currency      string `envconfig:"CHECKOUT_CURRENCY" default:"EUR"`
	UnitPrice     string `envconfig:"CHECKOUT_UNIT_PRICE" default:"129.90"`
}

type TelemetryConfig struct {
	// empty endpoint keeps the no-op global providers
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"storefront-payments"`
}

// VerifyURL selects the provider B endpoint for the configured environment.
func (c ProviderBConfig) VerifyURL() string {
	if c.Sandbox {
		return c.SandboxURL
	}
	return c.LiveURL
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:       "test-secret",
			Duration:     time.Hour,
			LoginCodeTTL: 15 * time.Minute,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		ProviderA: ProviderAConfig{
			BaseURL: "http://provider-a.invalid",
			APIKey:  "test-key",
			Timeout: time.Second,
		},
		ProviderB: ProviderBConfig{
			Sandbox:    true,
			SandboxURL: "http://provider-b.invalid/verify",
			LiveURL:    "http://provider-b.invalid/verify",
			Timeout:    time.Second,
		},
		Mail: MailConfig{
			BaseURL:   "http://mail.invalid",
			APIKey:    "test-key",
			FromEmail: "orders@example.com",
			Timeout:   time.Second,
		},
		Redirect: RedirectConfig{
			FrontendBaseURL: "http://localhost:3000",
			SuccessPath:     "/checkout/success",
			CancelPath:      "/checkout/cancel",
		},
		Checkout: CheckoutConfig{
			PublicHashKey: "test-public-hash-key",
			Currency:      "EUR",
			UnitPrice:     "129.90",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "storefront-payments-test",
		},
	}
}
