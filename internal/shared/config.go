package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	AdminEmail string
	MailFrom   string
	MailRPS    int

	AllowedOrigins []string
	PopupFile      string

	// StrictAllowList restricts upsert names to domain.AllowedHotelNames.
	StrictAllowList bool
	// OverwriteDescOnEmpty makes upsert replace the description even when the
	// incoming value is empty (the alternative only overwrites when non-empty).
	OverwriteDescOnEmpty bool
}

func Load() Config {
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	boolenv := func(k string, def bool) bool {
		if v := os.Getenv(k); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":5000"),
		MetricsAddr: env("METRICS_ADDR", ""),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/southend?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,

		SMTPHost:   env("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:   atoi("SMTP_PORT", 587),
		SMTPUser:   env("SMTP_USER", ""),
		SMTPPass:   env("SMTP_PASSWORD", ""),
		AdminEmail: env("ADMIN_EMAIL", ""),
		MailFrom:   env("MAIL_FROM", ""),
		MailRPS:    atoi("MAIL_RPS", 2),

		PopupFile: env("POPUP_FILE", "popup.json"),

		StrictAllowList:      boolenv("STRICT_NAME_ALLOWLIST", false),
		OverwriteDescOnEmpty: boolenv("OVERWRITE_DESC_ON_EMPTY", true),
	}
	if origins := env("ALLOWED_ORIGINS", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, o)
			}
		}
	}
	if c.MailFrom == "" {
		c.MailFrom = c.AdminEmail
	}
	if c.SMTPUser == "" || c.SMTPPass == "" {
		log.Warn().Msg("SMTP credentials are empty; outgoing mail will fail")
	}
	if c.AdminEmail == "" {
		log.Warn().Msg("ADMIN_EMAIL is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
