package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App         *App
		Token       *Token
		DB          *DB
		HTTP        *HTTP
		Redis       *Redis
		UserService *UserService
		RateLimit   *RateLimit
		Storage     *Storage
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret   string
		Duration string
	}

	DB struct {
		Host          string
		Port          string
		User          string
		Password      string
		Name          string
		SSLMode       string
		MaxOpenConns  int
		MigrationsDir string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
		DB       int
		TTL      time.Duration
	}

	UserService struct {
		Address string
	}

	RateLimit struct {
		RequestsPerSecond float64
		Burst             int
	}

	Storage struct {
		Driver string
	}
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "webike-wear"),
		Env:  getEnv("APP_ENV", "development"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: getEnv("TOKEN_DURATION", "24h"),
	}

	db := &DB{
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          getEnv("DB_PORT", "5432"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		SSLMode:       getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MigrationsDir: getEnv("DB_MIGRATIONS_DIR", "./internal/adapter/postgres/migrations"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8081"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            app.Env,
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
		TTL:      getEnvDuration("CACHE_TTL", 15*time.Minute),
	}

	userService := &UserService{
		Address: getEnv("USER_SERVICE_ADDRESS", "localhost:8080"),
	}

	rateLimit := &RateLimit{
		RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 10),
		Burst:             getEnvInt("RATE_LIMIT_BURST", 20),
	}

	storage := &Storage{
		Driver: strings.ToLower(getEnv("STORAGE_DRIVER", StoragePostgres)),
	}

	return &Container{
		App:         app,
		Token:       token,
		DB:          db,
		HTTP:        http,
		Redis:       redis,
		UserService: userService,
		RateLimit:   rateLimit,
		Storage:     storage,
	}, nil
}

// TokenDuration parses Duration, falling back to 24 hours.
func (t *Token) TokenDuration() time.Duration {
	d, err := time.ParseDuration(t.Duration)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// Origins splits the comma separated ALLOWED_ORIGINS value.
func (h *HTTP) Origins() []string {
	var origins []string
	for _, o := range strings.Split(h.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
