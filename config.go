package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultAddr      = "localhost:8000"
	defaultImageDir  = "static/images"
	defaultRateBurst = 3
)

// Config содержит параметры запуска сервера
type Config struct {
	Addr      string  // Адрес для прослушивания
	ImageDir  string  // Каталог с файлами <id>.jpg
	RateLimit float64 // Запросов в секунду на IP, 0 отключает ограничение
	RateBurst int     // Размер корзины токенов
}

// loadConfig читает .env (если он есть) и переменные окружения
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:      defaultAddr,
		ImageDir:  defaultImageDir,
		RateBurst: defaultRateBurst,
	}
	if v := getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("IMAGE_DIR"); v != "" {
		cfg.ImageDir = v
	}
	if v := getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil || limit < 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT %q", v)
		}
		cfg.RateLimit = limit
	}
	if v := getenv("RATE_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RATE_BURST %q: %w", v, err)
		}
		if burst < 1 {
			return Config{}, fmt.Errorf("invalid RATE_BURST %q: must be positive", v)
		}
		cfg.RateBurst = burst
	}
	return cfg, nil
}
