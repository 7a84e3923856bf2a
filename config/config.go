package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Cache CacheConfig
}

type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	TimeZone string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// CacheConfig selects and sizes the cache backend. The memory driver keeps a
// per-process cache; it is not shared between instances.
type CacheConfig struct {
	Driver             string
	Capacity           int
	NumShards          int
	EvictionPercentage int
	Warmup             bool
	TTL                CacheTTLConfig
}

// CacheTTLConfig is the per-entity expiry table.
type CacheTTLConfig struct {
	Service       time.Duration
	Hospital      time.Duration
	Search        time.Duration
	Reviews       time.Duration
	Dashboard     time.Duration
	Profile       time.Duration
	SavedServices time.Duration
}

// Max returns the longest TTL in the table.
func (t CacheTTLConfig) Max() time.Duration {
	longest := t.Service
	for _, d := range []time.Duration{t.Hospital, t.Search, t.Reviews, t.Dashboard, t.Profile, t.SavedServices} {
		if d > longest {
			longest = d
		}
	}
	return longest
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("JWT_ACCESS_EXPIRY", "15m")

	v.SetDefault("CACHE_DRIVER", CacheDriverMemory)
	v.SetDefault("CACHE_CAPACITY", 10000)
	v.SetDefault("CACHE_SHARDS", 10)
	v.SetDefault("CACHE_EVICTION_PERCENTAGE", 10)
	v.SetDefault("CACHE_WARMUP", false)
	v.SetDefault("CACHE_TTL_SERVICE", "10m")
	v.SetDefault("CACHE_TTL_HOSPITAL", "10m")
	v.SetDefault("CACHE_TTL_SEARCH", "10m")
	v.SetDefault("CACHE_TTL_REVIEWS", "30m")
	v.SetDefault("CACHE_TTL_DASHBOARD", "5m")
	v.SetDefault("CACHE_TTL_PROFILE", "5m")
	v.SetDefault("CACHE_TTL_SAVED_SERVICES", "5m")
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads the env file at path, if present, then the process
// environment, which takes precedence.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:        v.GetString("APP_PORT"),
			Env:         v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			TimeZone: v.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: v.GetDuration("JWT_ACCESS_EXPIRY"),
		},
		Cache: CacheConfig{
			Driver:             v.GetString("CACHE_DRIVER"),
			Capacity:           v.GetInt("CACHE_CAPACITY"),
			NumShards:          v.GetInt("CACHE_SHARDS"),
			EvictionPercentage: v.GetInt("CACHE_EVICTION_PERCENTAGE"),
			Warmup:             v.GetBool("CACHE_WARMUP"),
			TTL: CacheTTLConfig{
				Service:       v.GetDuration("CACHE_TTL_SERVICE"),
				Hospital:      v.GetDuration("CACHE_TTL_HOSPITAL"),
				Search:        v.GetDuration("CACHE_TTL_SEARCH"),
				Reviews:       v.GetDuration("CACHE_TTL_REVIEWS"),
				Dashboard:     v.GetDuration("CACHE_TTL_DASHBOARD"),
				Profile:       v.GetDuration("CACHE_TTL_PROFILE"),
				SavedServices: v.GetDuration("CACHE_TTL_SAVED_SERVICES"),
			},
		},
	}

	if err := config.Cache.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// splitList parses a comma separated setting, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate checks the cache section for values the backends cannot work with.
func (c CacheConfig) Validate() error {
	if c.Driver != CacheDriverMemory && c.Driver != CacheDriverRedis {
		return fmt.Errorf("invalid CACHE_DRIVER %q: must be %q or %q", c.Driver, CacheDriverMemory, CacheDriverRedis)
	}
	if c.Capacity <= 0 {
		return errors.New("CACHE_CAPACITY must be positive")
	}
	if c.NumShards <= 0 || c.NumShards > c.Capacity {
		return errors.New("CACHE_SHARDS must be positive and not exceed CACHE_CAPACITY")
	}
	if c.EvictionPercentage < 0 || c.EvictionPercentage > 100 {
		return errors.New("CACHE_EVICTION_PERCENTAGE must be between 0 and 100")
	}

	ttls := map[string]time.Duration{
		"CACHE_TTL_SERVICE":        c.TTL.Service,
		"CACHE_TTL_HOSPITAL":       c.TTL.Hospital,
		"CACHE_TTL_SEARCH":         c.TTL.Search,
		"CACHE_TTL_REVIEWS":        c.TTL.Reviews,
		"CACHE_TTL_DASHBOARD":      c.TTL.Dashboard,
		"CACHE_TTL_PROFILE":        c.TTL.Profile,
		"CACHE_TTL_SAVED_SERVICES": c.TTL.SavedServices,
	}
	for key, ttl := range ttls {
		if ttl <= 0 {
			return fmt.Errorf("%s must be a positive duration", key)
		}
	}
	return nil
}
