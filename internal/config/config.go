package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr    string
	PostgresDSN string
	LogLevel    string

	JWTSecret         string
	JWTIssuer         string
	JWTExpirationSecs int

	BcryptCost int

	LoginRateLimit       int
	LoginRateWindowSecs  int
	LoginRateLimitByUser bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:             addr,
		PostgresDSN:          os.Getenv("POSTGRES_DSN"),
		LogLevel:             envDefault("LOG_LEVEL", "info"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTIssuer:            envDefault("JWT_ISSUER", "blueprint"),
		JWTExpirationSecs:    envIntDefault("JWT_EXPIRATION_SECONDS", 3600),
		BcryptCost:           envIntDefault("BCRYPT_COST", 0),
		LoginRateLimit:       envIntDefault("LOGIN_RATE_LIMIT", 0),
		LoginRateWindowSecs:  envIntDefault("LOGIN_RATE_WINDOW_SECONDS", 60),
		LoginRateLimitByUser: envBoolDefault("LOGIN_RATE_LIMIT_BY_USER", false),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:              envIntDefault("REDIS_DB", 0),
	}
}

func envDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return parsed
}

func envBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}
