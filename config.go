package verify

import (
	"errors"
	"log/slog"
	"os"

	"github.com/dmitrymomot/verify/pkg/compiler"
	"github.com/dmitrymomot/verify/pkg/config"
	"github.com/dmitrymomot/verify/pkg/logger"
	"github.com/dmitrymomot/verify/pkg/validator"
)

// ErrInvalidConfig is returned by ConfigureFromEnv when a setting cannot be applied.
var ErrInvalidConfig = errors.New("invalid verify configuration")

// Config holds the environment-driven settings of the package.
type Config struct {
	LogEnabled   bool   `env:"VERIFY_LOG_ENABLED" envDefault:"false"`
	LogLevel     string `env:"VERIFY_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"VERIFY_LOG_FORMAT" envDefault:"text"`
	MessagesFile string `env:"VERIFY_MESSAGES_FILE"`
}

// SetLogger installs the logger used for validator compilation traces and
// compilation failure warnings. Nil silences them.
func SetLogger(l *slog.Logger) {
	compiler.SetLogger(l)
}

// ConfigureFromEnv loads Config from the environment (and .env) and applies it.
func ConfigureFromEnv() error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	return Configure(cfg)
}

// Configure applies cfg: it installs a logger when logging is enabled and loads
// message overrides from cfg.MessagesFile when set.
func Configure(cfg Config) error {
	if cfg.LogEnabled {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
		SetLogger(logger.New(
			logger.WithLevel(level),
			logger.WithFormat(format),
		))
	} else {
		SetLogger(nil)
	}

	if cfg.MessagesFile != "" {
		f, err := os.Open(cfg.MessagesFile)
		if err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
		defer f.Close()

		if err := validator.LoadMessages(f); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}

	return nil
}
