package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout (ex: 2s)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ConfigFile  string // optional YAML overlay (site metadata, access lists)
	SiteTitle   string // <title> and hero heading
	SiteTagline string // hero subtitle and meta description

	// Rate limiting on page routes
	RateLimitBurst     int // bucket capacity per client IP
	RateLimitPerMinute int // refill per client IP per minute

	AllowedHosts []string // optional, restrict page routes to specific Host headers
	AllowedCIDRS []string // optional, restrict healthz/readyz to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

// fileConfig is the optional YAML overlay. Environment variables win over it.
type fileConfig struct {
	Site struct {
		Title   string `yaml:"title"`
		Tagline string `yaml:"tagline"`
	} `yaml:"site"`
	AllowedHosts []string `yaml:"allowed_hosts"`
	AllowedCIDRS []string `yaml:"allowed_cidrs"`
}

func Load() *Config {
	configFile := getenv("FEATURES_CONFIG_FILE", "")
	fc, err := loadFile(configFile)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("FEATURES_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("FEATURES_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("FEATURES_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("FEATURES_LOG_LEVEL", "info"),
		PrettyLog: mustBool("FEATURES_PRETTY_LOG", true),

		// Site metadata
		ConfigFile:  configFile,
		SiteTitle:   getenv("FEATURES_SITE_TITLE", orDefault(fc.Site.Title, "Release Engineering Handbook")),
		SiteTagline: getenv("FEATURES_SITE_TAGLINE", fc.Site.Tagline),

		// Rate limiting
		RateLimitBurst:     getenvInt("FEATURES_RATE_LIMIT_BURST", 30),
		RateLimitPerMinute: getenvInt("FEATURES_RATE_LIMIT_PER_MINUTE", 120),

		// Access restrictions
		AllowedHosts: getenvSlice("FEATURES_ALLOWED_HOSTS", fc.AllowedHosts),
		AllowedCIDRS: parseAllowedIPs(getenv("FEATURES_ALLOWED_CIDRS", strings.Join(fc.AllowedCIDRS, ","))),
		TrustProxy:   mustBool("FEATURES_TRUST_PROXY", false),
	}

	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", *cfg)
	}

	return cfg
}

// loadFile reads the YAML overlay. An empty path yields a zero overlay.
func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config yaml: %w", err)
	}
	return fc, nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvSlice(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		return splitAndTrim(v)
	}
	return def
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

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
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
