package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server ServerConfig // Настройки HTTP сервера
	CORS   CORSConfig   // Настройки CORS для внешнего сайта
	Site   SiteConfig   // Настройки страницы команды
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// CORSConfig содержит настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	MaxAge         int      `envconfig:"CORS_MAX_AGE" default:"300"`
}

// SiteConfig содержит настройки страницы команды и раздачи аватаров
type SiteConfig struct {
	Title        string `envconfig:"SITE_TITLE" default:"STeLLAR Team"`
	StaticPrefix string `envconfig:"SITE_STATIC_PREFIX" default:"/STeLLAR/static"`
	AssetsDir    string `envconfig:"SITE_ASSETS_DIR"` // Пусто - статика не раздается
}

// Addr возвращает адрес для прослушивания
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// ServeAssets сообщает, нужно ли раздавать статику из AssetsDir
func (s SiteConfig) ServeAssets() bool {
	return s.AssetsDir != ""
}

// Load читает конфигурацию из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Site.StaticPrefix = "/" + strings.Trim(cfg.Site.StaticPrefix, "/")

	return &cfg, nil
}
