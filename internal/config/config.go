package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per request deadline for API handlers (ex: 2s)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Lead directory
	DatasetFile    string        // path to a dataset yaml file (empty = bundled dataset)
	ReloadInterval time.Duration // interval to reload the dataset (default: 24h)

	// Sessions
	SessionTTL        time.Duration            // idle time after which a session is dropped (default: 2h)
	SessionGCInterval time.Duration            // interval between idle session sweeps (default: 10m)
	InboxSize         int                      // notifications kept per session until drained
	CollationLocale   language.Tag             // locale of the name sort (default: nb)
	UnknownListPolicy domain.UnknownListPolicy // "reject" | "ignore"

	// Export simulator
	ExportCRMDelay      time.Duration // delay before a CRM export completes (default: 2s)
	ExportDownloadDelay time.Duration // delay before a download completes (default: 1s)
	ExportMaxFiles      int           // rendered CSV files kept in memory

	// Rate limiting of /api
	RateBurst        int // bucket size per client IP
	RateRefillPerMin int // tokens added per minute

	// Redis (optional, empty address = session snapshots disabled)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict /reload to specific Host headers
	AllowedCIDRS []string // optional, restrict infra routes to specific IP (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

// RedisEnabled reports whether session snapshots are persisted.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LEADS_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LEADS_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("LEADS_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("LEADS_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LEADS_PRETTY_LOG", true),

		// Lead directory
		DatasetFile:    getenv("LEADS_DATASET_FILE", ""),
		ReloadInterval: mustDuration("LEADS_RELOAD_INTERVAL", 24*time.Hour),

		// Sessions
		SessionTTL:        mustDuration("LEADS_SESSION_TTL", 2*time.Hour),
		SessionGCInterval: mustDuration("LEADS_SESSION_GC_INTERVAL", 10*time.Minute),
		InboxSize:         getenvInt("LEADS_INBOX_SIZE", 50),
		CollationLocale:   mustLanguage("LEADS_COLLATION_LOCALE", "nb"),
		UnknownListPolicy: mustPolicy("LEADS_UNKNOWN_LIST_POLICY"),

		// Export simulator
		ExportCRMDelay:      mustDuration("LEADS_EXPORT_CRM_DELAY", 2*time.Second),
		ExportDownloadDelay: mustDuration("LEADS_EXPORT_DOWNLOAD_DELAY", 1*time.Second),
		ExportMaxFiles:      getenvInt("LEADS_EXPORT_MAX_FILES", 100),

		// Rate limiting
		RateBurst:        getenvInt("LEADS_RATE_BURST", 60),
		RateRefillPerMin: getenvInt("LEADS_RATE_REFILL_PER_MIN", 120),

		// Redis settings
		RedisAddr:             getenv("LEADS_REDIS_ADDR", ""),
		RedisUser:             getenv("LEADS_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("LEADS_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("LEADS_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("LEADS_REDIS_DB", 0),
		RedisDT:               mustDuration("LEADS_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("LEADS_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("LEADS_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("LEADS_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("LEADS_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("LEADS_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("LEADS_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("LEADS_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("LEADS_REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("LEADS_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("LEADS_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("LEADS_TRUST_PROXY", false),
	}

	// Validate Redis password configuration
	if cfg.RedisEnabled() && cfg.RedisPasswordRequired {
		cfg.RedisPassword = requireEnv("LEADS_REDIS_PASSWORD")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func mustLanguage(key, def string) language.Tag {
	v := getenv(key, def)
	tag, err := language.Parse(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid locale for %s: %s", key, v))
	}
	return tag
}

func mustPolicy(key string) domain.UnknownListPolicy {
	v := os.Getenv(key)
	p, err := domain.ParseUnknownListPolicy(strings.ToLower(strings.TrimSpace(v)))
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid value for %s: %s (want reject or ignore)", key, v))
	}
	return p
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
