package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Prefix is prepended to every variable name, e.g. YOUGOLDBERG_TIMEOUT.
const Prefix = "YOUGOLDBERG"

// Env holds defaults taken from the environment. Command-line flags override
// the ones they share.
type Env struct {
	UserAgent string        `envconfig:"USER_AGENT" default:"Mozilla/5.0 (compatible; OSINT-CLI/1.0)"`
	Timeout   int           `envconfig:"TIMEOUT" default:"10"`
	Delay     time.Duration `envconfig:"DELAY" default:"100ms"`
	VerifyTLS bool          `envconfig:"VERIFY_TLS" default:"false"`
	Proxy     string        `envconfig:"PROXY"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"warn"`
}

// Load reads an optional .env file from the working directory and then the
// process environment.
func Load() (*Env, error) {
	if err := godotenv.Load(); err != nil {
		// A missing .env is the normal case.
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, errors.Wrap(err, "load .env")
		}
	}

	var env Env
	if err := envconfig.Process(Prefix, &env); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}
	if env.Delay < 0 {
		return nil, errors.Errorf("%s_DELAY must not be negative, got %s", Prefix, env.Delay)
	}
	return &env, nil
}
