// Package config parses command-line flags with environment fallbacks.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mmynk/jettip/internal/form"
	"github.com/mmynk/jettip/internal/money"
)

// Config holds the settings for one run of the calculator.
type Config struct {
	// Bill, TipPercent and Split prefill the form.
	Bill       string
	TipPercent int
	Split      int

	// Currency is the symbol printed before amounts.
	Currency string

	// Once prints the summary a single time instead of starting the screen.
	Once bool

	// LogFile receives logs in interactive mode. Empty discards them.
	LogFile string
}

// ParseFlags parses args, falling back to environment variables (optionally
// loaded from a .env file) for anything not given on the command line.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	flags := flag.NewFlagSet("jettip", flag.ContinueOnError)
	flags.StringVar(&cfg.Bill, "bill", "", "Bill amount")
	flags.IntVar(&cfg.TipPercent, "tip", 0, "Tip percentage (0-100)")
	flags.IntVar(&cfg.Split, "split", 0, "Number of people splitting the bill (1-100)")
	flags.StringVar(&cfg.Currency, "currency", "", "Currency symbol")
	flags.BoolVar(&cfg.Once, "once", false, "Print the summary once and exit")
	flags.StringVar(&envFile, "env-file", ".env", "Optional file with environment defaults")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if !set["split"] {
		n, err := intEnv("JETTIP_SPLIT", form.MinSplit)
		if err != nil {
			return Config{}, err
		}
		cfg.Split = n
	}
	if cfg.Split < form.MinSplit || cfg.Split > form.MaxSplit {
		return Config{}, fmt.Errorf("split must be between %d and %d, got %d", form.MinSplit, form.MaxSplit, cfg.Split)
	}

	if !set["tip"] {
		p, err := intEnv("JETTIP_TIP", 0)
		if err != nil {
			return Config{}, err
		}
		cfg.TipPercent = p
	}
	if cfg.TipPercent < 0 || cfg.TipPercent > 100 {
		return Config{}, fmt.Errorf("tip must be between 0 and 100, got %d", cfg.TipPercent)
	}

	if cfg.Currency == "" {
		cfg.Currency = getEnv("JETTIP_CURRENCY", money.DefaultSymbol)
	}

	cfg.LogFile = os.Getenv("LOG_FILE")

	return cfg, nil
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return n, nil
}
