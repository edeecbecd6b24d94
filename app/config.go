package app

import (
	"time"

	"github.com/joefazee/holidays/app/database"
	"github.com/joefazee/holidays/app/user"
	"github.com/joefazee/holidays/internal/cache"
	"github.com/joefazee/holidays/internal/nexus"
	"github.com/joefazee/holidays/internal/provider"
)

type Config struct {
	DB        database.Config
	User      user.Config
	Providers ProvidersConfig
	Cache     CacheConfig

	AppHost  string `env:"APP_HOST" env-default:"localhost" yaml:"app_host"`
	AppPort  string `env:"APP_PORT" env-default:"8080" yaml:"app_port"`
	Env      string `env:"APP_ENV" env-default:"development" yaml:"app_env"`
	Version  string `env:"APP_VERSION" env-default:"dev" yaml:"app_version"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info" yaml:"log_level"`
}

// ProvidersConfig points the service at the upstream registries.
type ProvidersConfig struct {
	NagerBaseURL        string        `env:"NAGER_BASE_URL" env-default:"https://date.nager.at/api/v3" validate:"url" yaml:"nager_base_url"`
	CountriesNowBaseURL string        `env:"COUNTRIES_NOW_BASE_URL" env-default:"https://countriesnow.space/api/v0.1/countries" validate:"url" yaml:"countries_now_base_url"`
	Timeout             time.Duration `env:"PROVIDER_TIMEOUT" env-default:"10s" yaml:"timeout"`
	RateLimit           float64       `env:"PROVIDER_RATE_LIMIT" env-default:"0" validate:"gte=0" yaml:"rate_limit"`
	Burst               int           `env:"PROVIDER_BURST" env-default:"5" validate:"gte=0" yaml:"burst"`
}

// Nager returns the client settings for the country and holiday registry.
func (c *ProvidersConfig) Nager() provider.Config {
	return provider.Config{
		BaseURL:   c.NagerBaseURL,
		Timeout:   c.Timeout,
		RateLimit: c.RateLimit,
		Burst:     c.Burst,
	}
}

// CountriesNow returns the client settings for the population and flag registry.
func (c *ProvidersConfig) CountriesNow() provider.Config {
	return provider.Config{
		BaseURL:   c.CountriesNowBaseURL,
		Timeout:   c.Timeout,
		RateLimit: c.RateLimit,
		Burst:     c.Burst,
	}
}

type CacheConfig struct {
	Backend       string        `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis" yaml:"backend"`
	Prefix        string        `env:"CACHE_PREFIX" env-default:"holidays:" yaml:"prefix"`
	RedisAddr     string        `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"redis_addr"`
	RedisPassword string        `env:"REDIS_PASSWORD" yaml:"redis_password"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0" yaml:"redis_db"`
	OpTimeout     time.Duration `env:"CACHE_OP_TIMEOUT" env-default:"50ms" yaml:"op_timeout"`
}

// Options converts the settings into cache.New arguments.
func (c *CacheConfig) Options() cache.Config {
	return cache.Config{
		Backend:   c.Backend,
		Prefix:    c.Prefix,
		OpTimeout: c.OpTimeout,
		Redis: cache.RedisOptions{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		},
	}
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(fileName string) (*Config, error) {
	c := &Config{}
	var opts []nexus.LoaderOption
	if fileName != "" {
		opts = append(opts, nexus.WithFileName(fileName))
	}
	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}
