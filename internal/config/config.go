package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Geo      GeoConfig
	Auth     AuthConfig
	Match    MatchConfig
}

type AppConfig struct {
	AppName     string `env:"APP_NAME" envDefault:"talent-match"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogJSON     bool   `env:"LOG_JSON" envDefault:"false"`
	LogDebug    bool   `env:"LOG_DEBUG" envDefault:"false"`
}

type DatabaseConfig struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME,required"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	// Bootstrap creates missing tables and seeds the default business units
	// at startup.
	Bootstrap bool `env:"DB_BOOTSTRAP" envDefault:"false"`

	ConnectTimeout        time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	PoolMaxConns          int32         `env:"DB_POOL_MAX_CONNS" envDefault:"10"`
	PoolMinConns          int32         `env:"DB_POOL_MIN_CONNS" envDefault:"0"`
	PoolMaxConnLifetime   time.Duration `env:"DB_POOL_MAX_CONN_LIFETIME" envDefault:"30m"`
	PoolMaxConnIdleTime   time.Duration `env:"DB_POOL_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	PoolHealthCheckPeriod time.Duration `env:"DB_POOL_HEALTH_CHECK_PERIOD" envDefault:"1m"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type GeoConfig struct {
	PrimaryGeocodeURL  string        `env:"GEO_PRIMARY_URL"`
	PrimaryGeocodeKey  string        `env:"GEO_PRIMARY_API_KEY"`
	FallbackGeocodeURL string        `env:"GEO_FALLBACK_URL"`
	FallbackGeocodeKey string        `env:"GEO_FALLBACK_API_KEY"`
	MatrixURL          string        `env:"GEO_MATRIX_URL"`
	MatrixKey          string        `env:"GEO_MATRIX_API_KEY"`
	GeocodeTimeout     time.Duration `env:"GEO_GEOCODE_TIMEOUT" envDefault:"5s"`
	MatrixTimeout      time.Duration `env:"GEO_MATRIX_TIMEOUT" envDefault:"8s"`
	TrafficModel       string        `env:"GEO_TRAFFIC_MODEL" envDefault:"best_guess"`
}

type AuthConfig struct {
	AccessSecret     string        `env:"JWT_ACCESS_SECRET,required"`
	RefreshSecret    string        `env:"JWT_REFRESH_SECRET,required"`
	AccessExpiresIn  time.Duration `env:"JWT_ACCESS_EXPIRES_IN" envDefault:"15m"`
	RefreshExpiresIn time.Duration `env:"JWT_REFRESH_EXPIRES_IN" envDefault:"168h"`
}

type MatchConfig struct {
	ResultCacheTTL   time.Duration `env:"MATCH_CACHE_TTL" envDefault:"1h"`
	BatchConcurrency int           `env:"MATCH_BATCH_CONCURRENCY" envDefault:"8"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
