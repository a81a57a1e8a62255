package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "config/config.yaml"

type Config struct {
	App        AppConfig        `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Weather    WeatherConfig    `yaml:"weather"`
	Historical HistoricalConfig `yaml:"historical"`
	Forecast   ForecastConfig   `yaml:"forecast"`
	Sentry     SentryConfig     `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"APP_NAME"`
	Version string `yaml:"version" envconfig:"APP_VERSION"`
	Env     string `yaml:"env" envconfig:"APP_ENV"`
}

type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"SERVER_IDLE_TIMEOUT"`
	// PublicURL is the absolute base used in share links. Empty means "derive from the request".
	PublicURL string `yaml:"public_url" envconfig:"SERVER_PUBLIC_URL"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
}

type WeatherConfig struct {
	APIs []WeatherAPIConfig `yaml:"apis" ignored:"true"`
	// OpenWeatherMapKey overrides the api_key of the "openweathermap" entry.
	OpenWeatherMapKey string `yaml:"-" envconfig:"OPENWEATHERMAP_API_KEY"`
}

type WeatherAPIConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
	// Timeout in seconds.
	Timeout int `yaml:"timeout"`
	// RateLimit is the allowed requests per second; zero disables limiting.
	RateLimit float64 `yaml:"rate_limit,omitempty"`
	Burst     int     `yaml:"burst,omitempty"`
}

type HistoricalConfig struct {
	// BackendURL points the requester at a remote /historical endpoint.
	// Empty means the in-process service answers.
	BackendURL     string        `yaml:"backend_url" envconfig:"HISTORICAL_BACKEND_URL"`
	RequestTimeout time.Duration `yaml:"request_timeout" envconfig:"HISTORICAL_REQUEST_TIMEOUT"`
	MaxAgeYears    int           `yaml:"max_age_years" envconfig:"HISTORICAL_MAX_AGE_YEARS"`
}

type ForecastConfig struct {
	Source         string        `yaml:"source" envconfig:"FORECAST_SOURCE"`
	OverlayDelay   time.Duration `yaml:"overlay_delay" envconfig:"FORECAST_OVERLAY_DELAY"`
	RequestTimeout time.Duration `yaml:"request_timeout" envconfig:"FORECAST_REQUEST_TIMEOUT"`
	// City is the location the openweathermap source reports on.
	City string `yaml:"city" envconfig:"FORECAST_CITY"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"SENTRY_DSN"`
	Debug bool   `yaml:"debug" envconfig:"SENTRY_DEBUG"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads a YAML file, then applies environment overrides.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-dashboard",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Historical: HistoricalConfig{
			RequestTimeout: 10 * time.Second,
			MaxAgeYears:    5,
		},
		Forecast: ForecastConfig{
			Source:         "mock",
			OverlayDelay:   time.Second,
			RequestTimeout: 10 * time.Second,
			City:           "London",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// Override with environment variables
	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	if key := strings.TrimSpace(cnf.Weather.OpenWeatherMapKey); key != "" {
		for i := range cnf.Weather.APIs {
			if strings.HasPrefix(cnf.Weather.APIs[i].Name, "openweathermap") {
				cnf.Weather.APIs[i].APIKey = key
			}
		}
	}

	return cnf, nil
}

// loadFromFile is a no-op when the file does not exist.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	if strings.TrimSpace(cnf.App.Name) == "" {
		return fmt.Errorf("app.name is required")
	}
	if strings.TrimSpace(cnf.Server.Port) == "" {
		return fmt.Errorf("server.port is required")
	}

	switch strings.ToLower(cnf.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is invalid (allowed: debug, info, warn, error)", cnf.Log.Level)
	}

	switch cnf.Forecast.Source {
	case "mock", "seasonal":
	case "openweathermap":
		if strings.TrimSpace(cnf.Forecast.City) == "" {
			return fmt.Errorf("forecast.city is required for the openweathermap source")
		}
	default:
		return fmt.Errorf("forecast.source %q is invalid (allowed: mock, seasonal, openweathermap)", cnf.Forecast.Source)
	}
	if cnf.Forecast.RequestTimeout <= 0 {
		return fmt.Errorf("forecast.request_timeout must be positive")
	}

	if cnf.Historical.RequestTimeout <= 0 {
		return fmt.Errorf("historical.request_timeout must be positive")
	}
	if cnf.Historical.MaxAgeYears <= 0 {
		return fmt.Errorf("historical.max_age_years must be positive")
	}

	for _, api := range cnf.Weather.APIs {
		if api.Name == "" {
			return fmt.Errorf("weather.apis[].name is required")
		}
		if api.Timeout < 0 {
			return fmt.Errorf("weather api %s: timeout must not be negative", api.Name)
		}
	}

	return nil
}

// NewConfig loads .env (if present), config/config.yaml (or CONFIG_FILE) and the environment.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = defaultConfigFile
	}

	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) GetWeatherAPIByName(name string) (*WeatherAPIConfig, bool) {
	for i := range c.Weather.APIs {
		if c.Weather.APIs[i].Name == name {
			return &c.Weather.APIs[i], true
		}
	}
	return nil, false
}

func (c *Config) GetWeatherAPIs() []WeatherAPIConfig {
	return c.Weather.APIs
}

// TimeoutFor returns the configured timeout of an upstream, falling back to def.
func (a WeatherAPIConfig) TimeoutFor(def time.Duration) time.Duration {
	if a.Timeout <= 0 {
		return def
	}
	return time.Duration(a.Timeout) * time.Second
}
