package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the envconfig prefix shared by every variable below.
const EnvPrefix = "simka"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv     = "SIMKA_APP_ENV"
	EnvPort       = "SIMKA_APP_PORT"
	EnvDBDSN      = "SIMKA_DB_DSN"
	EnvDBHost     = "SIMKA_DB_HOST"
	EnvDBUser     = "SIMKA_DB_USER"
	EnvDBName     = "SIMKA_DB_NAME"
	EnvRedisURL   = "SIMKA_REDIS_URL"
	EnvJWTSecret  = "SIMKA_JWT_SECRET"
	EnvJWTIssuer  = "SIMKA_JWT_ISSUER"
	EnvJWTExpMins = "SIMKA_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Registry      RegistryConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"SIMKA_APP_ENV" required:"true"`
	Port         string   `envconfig:"SIMKA_APP_PORT" required:"true"`
	LogLevel     string   `envconfig:"SIMKA_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"SIMKA_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"SIMKA_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SIMKA_DB_DSN"`
	Driver string `envconfig:"SIMKA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SIMKA_DB_HOST"`
	LegacyPort     int    `envconfig:"SIMKA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SIMKA_DB_USER"`
	LegacyPassword string `envconfig:"SIMKA_DB_PASSWORD"`
	LegacyName     string `envconfig:"SIMKA_DB_NAME"`
	LegacySSLMode  string `envconfig:"SIMKA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SIMKA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SIMKA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SIMKA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SIMKA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SIMKA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SIMKA_REDIS_ADDR"`
	Password     string        `envconfig:"SIMKA_REDIS_PASSWORD"`
	DB           int           `envconfig:"SIMKA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SIMKA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SIMKA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SIMKA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SIMKA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SIMKA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SIMKA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SIMKA_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"SIMKA_JWT_EXPIRATION_MINUTES" default:"30"`
}

// AccessTokenTTL returns the access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SIMKA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SIMKA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SIMKA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SIMKA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SIMKA_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"SIMKA_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit int           `envconfig:"SIMKA_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"SIMKA_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

// RegistryConfig tunes the member registry engine.
type RegistryConfig struct {
	NPAMaxAttempts int `envconfig:"SIMKA_NPA_MAX_ATTEMPTS" default:"10"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SIMKA_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
