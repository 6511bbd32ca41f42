package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	CatalogBaseURL string // リモートカタログのベースURL
	CurrencyRate   int64  // 表示通貨への固定倍率
	PageSize       int    // 一覧の1ページ件数

	StorageDriver string // file / redis / postgres
	StorageDir    string // fileドライバの保存先
	RedisURL      string // redisドライバの接続URL

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		CatalogBaseURL: getenv("CATALOG_BASE_URL", "https://dummyjson.com/products"),

		StorageDriver: getenv("STORAGE_DRIVER", "file"),
		StorageDir:    getenv("STORAGE_DIR", "./data"),
		RedisURL:      getenv("REDIS_URL", "redis://localhost:6379"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	rate, err := atoiDefault("CURRENCY_RATE", 25000)
	if err != nil {
		return Config{}, err
	}
	cfg.CurrencyRate = int64(rate)

	size, err := atoiDefault("PAGE_SIZE", 6)
	if err != nil {
		return Config{}, err
	}
	cfg.PageSize = size

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.CurrencyRate < 1 {
		return Config{}, fmt.Errorf("CURRENCY_RATE must be >= 1")
	}
	if cfg.PageSize < 1 {
		return Config{}, fmt.Errorf("PAGE_SIZE must be >= 1")
	}
	switch cfg.StorageDriver {
	case "file", "redis", "postgres":
	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER must be file, redis or postgres")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
