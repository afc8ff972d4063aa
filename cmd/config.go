package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings read from the environment.
type Config struct {
	HTTPPort string
	// Couriers is the roster; empty means the built-in one.
	Couriers        []string
	Locale          string
	CurrencySuffix  string
	PDFHeaderText   string
	PDFFontPath     string
	PDFFontBoldPath string
	SignatureWidth  int
	SignatureHeight int
	SessionTTL      time.Duration
	SweepSchedule   string
	// ClipboardCommand is empty to detect a clipboard tool on PATH.
	ClipboardCommand string
	ClipboardTimeout time.Duration
}

// DefaultConfig returns the settings used for unset variables.
func DefaultConfig() Config {
	return Config{
		HTTPPort:         "8080",
		Locale:           "ru",
		CurrencySuffix:   " сум",
		SignatureWidth:   400,
		SignatureHeight:  150,
		SessionTTL:       8 * time.Hour,
		SweepSchedule:    "@every 1m",
		ClipboardTimeout: 2 * time.Second,
	}
}

// LoadConfig loads envFile into the process environment, without overriding
// variables already set, and reads the configuration. A missing env file is
// not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv reads the configuration through lookup.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	config := DefaultConfig()
	env := envReader{lookup: lookup}

	env.string("HTTP_PORT", &config.HTTPPort)
	env.list("COURIERS", &config.Couriers)
	env.string("LOCALE", &config.Locale)
	env.raw("CURRENCY_SUFFIX", &config.CurrencySuffix)
	env.string("PDF_HEADER_TEXT", &config.PDFHeaderText)
	env.string("PDF_FONT_PATH", &config.PDFFontPath)
	env.string("PDF_FONT_BOLD_PATH", &config.PDFFontBoldPath)
	env.int("SIGNATURE_WIDTH", &config.SignatureWidth)
	env.int("SIGNATURE_HEIGHT", &config.SignatureHeight)
	env.duration("SESSION_TTL", &config.SessionTTL)
	env.string("SESSION_SWEEP_SCHEDULE", &config.SweepSchedule)
	env.string("CLIPBOARD_COMMAND", &config.ClipboardCommand)
	env.duration("CLIPBOARD_TIMEOUT", &config.ClipboardTimeout)

	if env.err != nil {
		return Config{}, env.err
	}
	return config, nil
}

type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *envReader) value(key string) (string, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (r *envReader) string(key string, dst *string) {
	if v, ok := r.value(key); ok {
		*dst = v
	}
}

// raw keeps surrounding spaces, which matter for the currency suffix.
func (r *envReader) raw(key string, dst *string) {
	if v, ok := r.lookup(key); ok {
		*dst = v
	}
}

func (r *envReader) list(key string, dst *[]string) {
	v, ok := r.value(key)
	if !ok {
		return
	}
	var names []string
	for _, name := range strings.Split(v, ";") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	*dst = names
}

func (r *envReader) int(key string, dst *int) {
	v, ok := r.value(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.err = errors.Join(r.err, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func (r *envReader) duration(key string, dst *time.Duration) {
	v, ok := r.value(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.err = errors.Join(r.err, fmt.Errorf("%s: %w", key, err))
		return
	}
	if d <= 0 {
		r.err = errors.Join(r.err, fmt.Errorf("%s: must be positive, got %s", key, v))
		return
	}
	*dst = d
}
