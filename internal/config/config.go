package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://urban-oasis-indev.firebaseapp.com",
	"https://urban-oasis-indev.web.app",
}

type Config struct {
	MongoURI    string
	DBName      string
	TokenSecret string

	StripeSecretKey string
	StripeBaseURL   string

	Port        string
	CORSOrigins []string
	StrictAuth  bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

// Load reads a .env file if present and builds a Config from the
// environment.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Warning: Error loading %s: %s", envFile, err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		MongoURI:        getenv("MONGOURI"),
		DBName:          orDefault(getenv("DB_NAME"), "urbanOasis"),
		TokenSecret:     getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: getenv("STRIPE_SECRET_KEY"),
		StripeBaseURL:   getenv("STRIPE_BASE_URL"),
		Port:            orDefault(getenv("PORT"), "5000"),
		CORSOrigins:     defaultOrigins,
		StrictAuth:      true,
		RedisAddr:       getenv("REDIS_ADDR"),
		RedisPassword:   getenv("REDIS_PASSWORD"),
		CacheTTL:        30 * time.Second,
	}

	if cfg.MongoURI == "" {
		user, pass := getenv("DB_USER"), getenv("DB_PASS")
		if user != "" && pass != "" {
			host := orDefault(getenv("DB_HOST"), "cluster0.rocppxe.mongodb.net")
			cfg.MongoURI = fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0", user, pass, host)
		}
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGOURI (or DB_USER and DB_PASS) environment variable not set")
	}
	if cfg.TokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET environment variable not set")
	}
	if cfg.StripeSecretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY environment variable not set")
	}

	if v := getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSOrigins = origins
	}
	if v := getenv("STRICT_AUTH"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STRICT_AUTH: %w", err)
		}
		cfg.StrictAuth = strict
	}
	if v := getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}
	if v := getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = ttl
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
