// config — загрузка клиентской конфигурации с тем же приоритетом
// источников, что и на сервере: --config > CONFIG_PATH > ./client.yaml > ENV.
package config

import (
	"fmt"
	"net"
	"os"
	"runtime"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/pribylovaa/go-mobile-auth/internal/client/hostres"
)

// Config — конфигурация клиентской стороны.
// Адрес бэкенда не задаётся напрямую: он вычисляется один раз
// на запуск из платформы и подсказки debug-host (см. BaseURL).
type Config struct {
	// Platform — идентификатор платформы ("android", "ios", ...).
	// Пустое значение означает runtime.GOOS.
	Platform string `yaml:"platform" env:"PLATFORM" env-default:""`
	// DebugHost — подсказка инструментов разработки вида "host:port".
	DebugHost string `yaml:"debug_host" env:"DEBUG_HOST" env-default:""`
	Scheme    string `yaml:"scheme" env:"API_SCHEME" env-default:"http"`
	Port      string `yaml:"port" env:"API_PORT" env-default:"3000"`
	BasePath  string `yaml:"base_path" env:"API_BASE_PATH" env-default:"/api"`
	// TokenDB — путь к локальной базе токена; пустое значение —
	// дефолт вычисляет вызывающий (CLI кладёт в домашнюю директорию).
	TokenDB string `yaml:"token_db" env:"TOKEN_DB" env-default:""`
}

// ResolvedPlatform возвращает платформу с учётом дефолта runtime.GOOS.
func (c Config) ResolvedPlatform() string {
	if c.Platform != "" {
		return c.Platform
	}

	return runtime.GOOS
}

// BaseURL собирает базовый адрес API из resolved-хоста, схемы,
// порта и префикса. Значение вычисляется на запуск и не мутирует.
func (c Config) BaseURL() string {
	host := hostres.Resolve(c.ResolvedPlatform(), c.DebugHost)
	return c.Scheme + "://" + net.JoinHostPort(host, c.Port) + c.BasePath
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./client.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	if path != "" {
		return tryRead(path)
	}

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	if _, err := os.Stat("client.yaml"); err == nil {
		return tryRead("client.yaml")
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env config: %w", err)
	}

	return &cfg, nil
}
