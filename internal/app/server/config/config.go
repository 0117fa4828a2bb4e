package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath   = ".env"
	SecretKey = "SecRetKey"
	EnvLocal  = "local"
	EnvDev    = "dev"
	EnvProd   = "prod"
)

type Config struct {
	Env     string
	DB      DB
	Server  Server
	Session Session
	Redis   Redis
	Media   Media
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	// TrustProxyHeaders включает X-Forwarded-For/X-Real-IP. Только за
	// своим reverse proxy, иначе клиент подменяет адрес для rate limit.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS"`
}

type Session struct {
	Secret       string        `env:"SECRET"`
	TTL          time.Duration `env:"SESSION_TTL"`
	CookieSecure bool          `env:"COOKIE_SECURE"`
}

type Redis struct {
	URL         string        `env:"REDIS_URL"`
	LoginLimit  int           `env:"LOGIN_RATE_LIMIT"`
	LoginWindow time.Duration `env:"LOGIN_RATE_WINDOW"`
}

type Media struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
	Folder    string `env:"CLOUDINARY_FOLDER"`
	MaxWidth  uint   `env:"MEDIA_MAX_WIDTH"`
}

// Enabled - загрузка изображений настроена
func (m Media) Enabled() bool {
	return m.CloudName != "" && m.APIKey != "" && m.APISecret != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", ":8080")
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("session_ttl", time.Hour)
	v.SetDefault("cookie_secure", true)
	v.SetDefault("login_rate_limit", 10)
	v.SetDefault("login_rate_window", time.Minute)
	v.SetDefault("cloudinary_folder", "collectionhub")
	v.SetDefault("media_max_width", 1280)
	v.SetDefault("shutdown_timeout", 10*time.Second)
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := Config{
		Env: v.GetString("app_env"),
		DB: DB{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:        v.GetString("run_address"),
			AllowedOrigins:    splitList(v.GetString("allowed_origins")),
			ShutdownTimeout:   v.GetDuration("shutdown_timeout"),
			TrustProxyHeaders: v.GetBool("trust_proxy_headers"),
		},
		Session: Session{
			Secret:       v.GetString("secret"),
			TTL:          v.GetDuration("session_ttl"),
			CookieSecure: v.GetBool("cookie_secure"),
		},
		Redis: Redis{
			URL:         v.GetString("redis_url"),
			LoginLimit:  v.GetInt("login_rate_limit"),
			LoginWindow: v.GetDuration("login_rate_window"),
		},
		Media: Media{
			CloudName: v.GetString("cloudinary_cloud_name"),
			APIKey:    v.GetString("cloudinary_api_key"),
			APISecret: v.GetString("cloudinary_api_secret"),
			Folder:    v.GetString("cloudinary_folder"),
			MaxWidth:  v.GetUint("media_max_width"),
		},
	}

	if cfg.Session.Secret == "" {
		if cfg.Env != EnvLocal {
			return nil, fmt.Errorf("SECRET is required in %q environment", cfg.Env)
		}
		cfg.Session.Secret = SecretKey
	}

	if cfg.DB.DatabaseURI == "" {
		return nil, fmt.Errorf("DATABASE_URI is required")
	}

	return &cfg, nil
}

// MustLoad паникует, если конфигурацию загрузить не удалось.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("config: " + err.Error())
	}
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
