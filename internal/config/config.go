// Package config resolves runtime configuration for both entry points.
//
// Precedence, lowest first:
//  1. built-in defaults
//  2. optional TOML file (config.toml)
//  3. .env file loaded by godotenv (never overrides real environment)
//  4. process environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordgame/internal/game"
)

// Config holds every tunable of the server and the terminal client.
type Config struct {
	Port         string `toml:"port"`
	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"`
	ClientOrigin string `toml:"client_origin"`

	WordsDir  string `toml:"words_dir"`
	WordsDB   string `toml:"words_db"`
	DailySalt string `toml:"daily_salt"`

	JWTSecret      string        `toml:"jwt_secret"`
	SessionTimeout time.Duration `toml:"session_timeout"`
	RateLimitRPS   int           `toml:"rate_limit_rps"`
	RateLimitBurst int           `toml:"rate_limit_burst"`

	DefaultLength int           `toml:"default_length"`
	RevealStep    time.Duration `toml:"reveal_step"`

	Theme Theme `toml:"theme"`
}

// Theme colors for the terminal client, as lipgloss color strings.
type Theme struct {
	Correct       string `toml:"correct,omitempty"`
	WrongPosition string `toml:"wrong_position,omitempty"`
	Absent        string `toml:"absent,omitempty"`
	Empty         string `toml:"empty,omitempty"`
	Text          string `toml:"text,omitempty"`
	Accent        string `toml:"accent,omitempty"`
	Error         string `toml:"error,omitempty"`
}

// Load reads path (if non-empty and present), .env, and the environment,
// then applies defaults and validates.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	_ = godotenv.Load()
	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("LOG_FILE", c.LogFile)
	c.ClientOrigin = getEnv("CLIENT_ORIGIN", c.ClientOrigin)
	c.WordsDir = getEnv("WORDS_DIR", c.WordsDir)
	c.WordsDB = getEnv("WORDS_DB", c.WordsDB)
	c.DailySalt = getEnv("DAILY_SALT", c.DailySalt)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.SessionTimeout = getEnvDuration("SESSION_TIMEOUT", c.SessionTimeout)
	c.RevealStep = getEnvDuration("REVEAL_STEP", c.RevealStep)
	c.RateLimitRPS = getEnvInt("RATE_LIMIT_RPS", c.RateLimitRPS)
	c.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", c.RateLimitBurst)
	c.DefaultLength = getEnvInt("DEFAULT_LENGTH", c.DefaultLength)
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "5175"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ClientOrigin == "" {
		c.ClientOrigin = "http://localhost:5173"
	}
	if c.DailySalt == "" {
		c.DailySalt = "local_dev_salt"
	}
	if c.JWTSecret == "" {
		c.JWTSecret = "dev_secret_change_me"
	}
	if c.SessionTimeout == 0 {
		c.SessionTimeout = 2 * time.Hour
	}
	if c.RateLimitRPS == 0 {
		c.RateLimitRPS = 5
	}
	if c.RateLimitBurst == 0 {
		c.RateLimitBurst = 10
	}
	if c.DefaultLength == 0 {
		c.DefaultLength = game.DefaultWordLength
	}
	if c.RevealStep == 0 {
		c.RevealStep = 250 * time.Millisecond
	}
	c.Theme.applyDefaults()
}

func (t *Theme) applyDefaults() {
	if t.Correct == "" {
		t.Correct = "#538d4e"
	}
	if t.WrongPosition == "" {
		t.WrongPosition = "#b59f3b"
	}
	if t.Absent == "" {
		t.Absent = "#3a3a3c"
	}
	if t.Empty == "" {
		t.Empty = "#121213"
	}
	if t.Text == "" {
		t.Text = "#ffffff"
	}
	if t.Accent == "" {
		t.Accent = "33"
	}
	if t.Error == "" {
		t.Error = "196"
	}
}

func (c *Config) validate() error {
	var problems []string

	if _, err := game.MaxAttempts(c.DefaultLength); err != nil {
		problems = append(problems, fmt.Sprintf("default_length %d is not a supported word length", c.DefaultLength))
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		problems = append(problems, "rate limits must not be negative")
	}
	if c.SessionTimeout < 0 {
		problems = append(problems, "session_timeout must not be negative")
	}
	if c.RevealStep < 0 {
		problems = append(problems, "reveal_step must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
