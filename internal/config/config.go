package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultListenAddr    = ":8080"
	DefaultNewsFeedURL   = "https://rss.app/feeds/ilZro6k0WX5fgR63.xml"
	DefaultHistoricalCSV = "data/ukelections.csv"
)

// Config хранит адрес HTTP-сервера, источник новостей и путь к CSV с историческими результатами.
// Значения из JSON-файла перекрываются переменными окружения DASHBOARD_*.
type Config struct {
	ListenAddr      string `json:"listen_addr"      env:"DASHBOARD_LISTEN_ADDR"`
	NewsFeedURL     string `json:"news_feed_url"    env:"DASHBOARD_NEWS_FEED_URL"`
	HistoricalCSV   string `json:"historical_csv"   env:"DASHBOARD_HISTORICAL_CSV"`
	FetchTimeout    int    `json:"fetch_timeout"    env:"DASHBOARD_FETCH_TIMEOUT"`
	SummaryLength   int    `json:"summary_length"   env:"DASHBOARD_SUMMARY_LENGTH"`
	ShutdownTimeout int    `json:"shutdown_timeout" env:"DASHBOARD_SHUTDOWN_TIMEOUT"`
	LogLevel        string `json:"log_level"        env:"DASHBOARD_LOG_LEVEL"`
}

// Default возвращает конфигурацию, с которой сервис запускается без config.json.
// LoadConfig накладывает на неё файл и окружение.
func Default() *Config {
	return &Config{
		ListenAddr:      DefaultListenAddr,
		NewsFeedURL:     DefaultNewsFeedURL,
		HistoricalCSV:   DefaultHistoricalCSV,
		FetchTimeout:    10,
		SummaryLength:   150,
		ShutdownTimeout: 5,
		LogLevel:        "info",
	}
}

// FetchTimeoutDuration переводит fetch_timeout (секунды) в time.Duration.
func (cfg *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(cfg.FetchTimeout) * time.Second
}

// ShutdownTimeoutDuration переводит shutdown_timeout (секунды) в time.Duration.
func (cfg *Config) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(cfg.ShutdownTimeout) * time.Second
}

// Validate проверяет адрес ленты, путь к CSV и положительность таймаутов.
func (cfg *Config) Validate() error {
	if cfg.ListenAddr == "" {
		return errors.New("listen address must not be empty")
	}
	u, err := url.ParseRequestURI(cfg.NewsFeedURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid news feed URL: %s", cfg.NewsFeedURL)
	}
	if cfg.HistoricalCSV == "" {
		return errors.New("historical CSV path must not be empty")
	}
	if cfg.FetchTimeout < 1 {
		return errors.New("fetch timeout must be ≥ 1 second")
	}
	if cfg.ShutdownTimeout < 1 {
		return errors.New("shutdown timeout must be ≥ 1 second")
	}
	if cfg.SummaryLength < 1 {
		return errors.New("summary length must be positive")
	}
	return nil
}

// LoadConfig читает JSON-файл по пути path поверх значений по умолчанию,
// затем применяет переменные окружения. Отсутствующий файл не ошибка: берутся Default и окружение.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		defer file.Close()
		if err := json.NewDecoder(file).Decode(cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
