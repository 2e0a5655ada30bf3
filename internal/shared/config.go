package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	RequestTimeout time.Duration

	MySQLDSN  string // empty disables the database
	RedisAddr string // empty disables the cache
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	LiteAPIBase    string
	LiteAPIKey     string // empty means the provider is unavailable
	LiteAPIRPS     int
	LiteAPITimeout time.Duration

	SeedWorkers int
}

// Load reads the environment, after merging a .env file when present.
// Variables already set in the environment win over the file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env could not be loaded")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer; using default")
		}
		return def
	}
	secs := func(k string, def int) time.Duration { return time.Duration(atoi(k, def)) * time.Second }

	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", ""),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		RequestTimeout: secs("REQUEST_TIMEOUT_SECONDS", 15),
		MySQLDSN:       env("MYSQL_DSN", ""),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		CacheTTL:       secs("CACHE_TTL_SECONDS", 300),
		LiteAPIBase:    env("LITEAPI_BASE_URL", "https://api.liteapi.travel/v3.0"),
		LiteAPIKey:     env("LITEAPI_API_KEY", ""),
		LiteAPIRPS:     atoi("LITEAPI_RPS", 5),
		LiteAPITimeout: secs("LITEAPI_TIMEOUT_SECONDS", 10),
		SeedWorkers:    atoi("SEED_WORKERS", 4),
	}
	if c.LiteAPIKey == "" {
		log.Warn().Msg("LITEAPI_API_KEY is empty; searches will use fallback data")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
