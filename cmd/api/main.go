package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"recipes/internal/auth"
	"recipes/internal/db"
	"recipes/internal/domain/storage"
	"recipes/internal/ratelimiter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
		fmt.Printf("Invalid %s, defaulting to %d\n", key, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		fmt.Printf("Invalid %s, defaulting to %s\n", key, fallback)
	}
	return fallback
}

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	enabled := false
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", enabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: getEnvInt("RATELIMITER_REQUESTS_COUNT", 200),
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

func loadConfig() config {
	return config{
		addr:   getEnv("ADDR", ":5001"),
		env:    getEnv("ENV", "development"),
		apiURL: getEnv("EXTERNAL_URL", "localhost:5001"),
		db: dbConfig{
			addr:        os.Getenv("DB_ADDR"),
			maxConns:    int32(getEnvInt("DB_MAX_CONNS", 10)),
			maxIdleTime: getEnv("DB_MAX_IDLE_TIME", "15m"),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
			token: tokenConfig{
				secret: os.Getenv("AUTH_TOKEN_SECRET"),
				iss:    os.Getenv("AUTH_TOKEN_ISS"),
				exp:    time.Hour * 24,
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
		redisURL:    os.Getenv("REDIS_URL"),
		keepAlive: keepAliveConfig{
			url:      os.Getenv("KEEPALIVE_URL"),
			interval: getEnvDuration("KEEPALIVE_INTERVAL", 14*time.Minute),
		},
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	return zap.New(core).Sugar(), nil
}

var version = "1.0.0"

//	@title			Recipes API
//	@description	Favorites, shopping list and reviews for the recipe app.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/api
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	// a missing .env is fine in containers where the environment is injected
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg := loadConfig()

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	if cfg.db.addr == "" {
		logger.Fatal("DB_ADDR is required")
	}

	// Database
	pool, err := db.New(cfg.db.addr, cfg.db.maxConns, cfg.db.maxIdleTime)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	store := storage.NewContainer(pool)

	// Rate limiter
	var limiter ratelimiter.Limiter
	if cfg.redisURL != "" {
		client, err := ratelimiter.NewRedisClient(cfg.redisURL)
		if err != nil {
			logger.Fatal(err)
		}
		defer client.Close()
		limiter = ratelimiter.NewRedisLimiter(client, cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame)
		logger.Info("redis rate limiter configured")
	} else {
		limiter = ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame)
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       store,
		rateLimiter: limiter,
	}

	// Authenticator
	if cfg.auth.token.secret != "" {
		app.authenticator = auth.NewJWTAuthenticator(cfg.auth.token.secret, cfg.auth.token.iss, cfg.auth.token.exp)
		logger.Info("bearer token authentication enabled")
	} else {
		logger.Warn("AUTH_TOKEN_SECRET not set, user ids are taken from requests as-is")
	}

	//Metrics collected http://localhost:5001/api/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		stat := pool.Stat()
		return map[string]any{
			"total_conns":    stat.TotalConns(),
			"idle_conns":     stat.IdleConns(),
			"acquired_conns": stat.AcquiredConns(),
			"acquire_count":  stat.AcquireCount(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
