package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	UploadDir   string `env:"UPLOAD_DIR"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags only take effect when the env variables are unset
	flag.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run the server on")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database connection string")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "secret used to sign JWTs")
	flag.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "directory for stored farm images")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	// validate RunAddress: must be "address:port" (no scheme, no path)
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.RunAddress) {
		cfg.RunAddress = "localhost:8080"
	}

	return cfg
}
