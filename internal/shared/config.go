package shared

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	AppEnv          string
	APIBaseURL      string
	APIRPS          int
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	CacheTTL        time.Duration
	CredentialsPath string
	UploadWorkers   int
	SearchScope     string // "area" or "broad"
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:          env("APP_ENV", "prod"),
		APIBaseURL:      env("PG_API_BASE_URL", "http://localhost:5000"),
		APIRPS:          atoi("PG_API_RPS", 5),
		RedisAddr:       env("REDIS_ADDR", ""), // empty = caching disabled
		RedisDB:         atoi("REDIS_DB", 0),
		RedisPass:       env("REDIS_PASSWORD", ""),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		CredentialsPath: env("CREDENTIALS_PATH", defaultCredentialsPath()),
		UploadWorkers:   atoi("UPLOAD_WORKERS", 4),
		SearchScope:     env("SEARCH_SCOPE", "broad"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pgstay-credentials.json"
	}
	return filepath.Join(home, ".pgstay", "credentials.json")
}
