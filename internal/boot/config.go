package boot

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env             string        `env:"ENV,default=dev"`
	DataDirectory   string        `env:"DATA_DIR,default=./data"`
	ListenAddr      string        `env:"LISTEN_ADDR,default=:8080"`
	MetricsAddr     string        `env:"METRICS_ADDR,default=:8081"`
	AnalyzerURL     string        `env:"ANALYZER_URL"`
	AnalyzerAPIKey  string        `env:"ANALYZER_API_KEY"`
	AnalyzerModel   string        `env:"ANALYZER_MODEL,default=Mistral-Nemo-12B-Instruct-2407"`
	AnalyzerTimeout time.Duration `env:"ANALYZER_TIMEOUT,default=30s"`
	PremiumValidity time.Duration `env:"PREMIUM_VALIDITY,default=720h"`
}

func Load() (Config, error) {
	config := Config{}
	if err := envconfig.Process(context.Background(), &config); err != nil {
		return Config{}, fmt.Errorf("parsing env vars: %w", err)
	}
	return config, nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == "dev"
}

func (c Config) IsProduction() bool {
	return c.Env == "prod"
}

// DatabaseFile is the single JSON document backing the token-variant store.
func (c Config) DatabaseFile() string {
	return path.Join(c.DataDirectory, "database.json")
}

// UsersFile backs the cookie-variant account store.
func (c Config) UsersFile() string {
	return path.Join(c.DataDirectory, "users.json")
}

// ContentFile is the sqlite database holding workouts and blog posts.
func (c Config) ContentFile() string {
	return path.Join(c.DataDirectory, "content.db")
}

// PremiumKeyFile holds the premium pass signing key as a JWK.
func (c Config) PremiumKeyFile() string {
	return path.Join(c.DataDirectory, "premium-key.jwk")
}
