package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Raffle   RaffleConfig
}

type ServerConfig struct {
	Port     string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// REDIS_HOST 未設定時為 false，快取改用 no-op、稽核改用記憶體
	Enabled bool
}

// RaffleConfig 抽獎本身的參數，啟動時讀取一次後注入各 service
type RaffleConfig struct {
	TotalNumbers   int
	UnitPrice      decimal.Decimal
	CommissionRate decimal.Decimal
	Sheet          string
	Sellers        []string
	CacheTTL       time.Duration
	AllowReset     bool
}

const (
	DefaultTotalNumbers = 1000
	DefaultSheet        = "ventas"
)

var (
	DefaultUnitPrice      = decimal.NewFromInt(5000)
	DefaultCommissionRate = decimal.RequireFromString("0.10")
)

var AppConfig *Config

func LoadConfig() (*Config, error) {
	raffle, err := GetRaffleConfig()
	if err != nil {
		return nil, err
	}
	redisConfig, err := GetRedisConfig()
	if err != nil {
		return nil, err
	}

	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    redisConfig,
		Raffle:   raffle,
	}

	return AppConfig, nil
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
		Enabled:  true,
	}

	return &Config{
		Server:   ServerConfig{Port: "8080", LogLevel: "debug"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Raffle:   DefaultRaffleConfig(),
	}
}

func DefaultRaffleConfig() RaffleConfig {
	return RaffleConfig{
		TotalNumbers:   DefaultTotalNumbers,
		UnitPrice:      DefaultUnitPrice,
		CommissionRate: DefaultCommissionRate,
		Sheet:          DefaultSheet,
		CacheTTL:       5 * time.Second,
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:     getEnv("SERVER_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() (RedisConfig, error) {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return RedisConfig{}, fmt.Errorf("REDIS_DB: %w", err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", ""),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
		Enabled:  getEnv("REDIS_HOST", "") != "",
	}, nil
}

// GetRaffleConfig 讀取 RAFFLE_* 環境變數；RAFFLE_CONFIG_FILE 指定的 YAML 先套用，環境變數優先
func GetRaffleConfig() (RaffleConfig, error) {
	cfg := DefaultRaffleConfig()

	if path := getEnv("RAFFLE_CONFIG_FILE", ""); path != "" {
		if err := applyRaffleFile(&cfg, path); err != nil {
			return RaffleConfig{}, err
		}
	}

	if v := getEnv("RAFFLE_TOTAL_NUMBERS", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return RaffleConfig{}, fmt.Errorf("RAFFLE_TOTAL_NUMBERS: %w", err)
		}
		cfg.TotalNumbers = n
	}
	if v := getEnv("RAFFLE_UNIT_PRICE", ""); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return RaffleConfig{}, fmt.Errorf("RAFFLE_UNIT_PRICE: %w", err)
		}
		cfg.UnitPrice = d
	}
	if v := getEnv("RAFFLE_COMMISSION_RATE", ""); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return RaffleConfig{}, fmt.Errorf("RAFFLE_COMMISSION_RATE: %w", err)
		}
		cfg.CommissionRate = d
	}
	if v := getEnv("RAFFLE_SHEET", ""); v != "" {
		cfg.Sheet = v
	}
	if v := getEnv("RAFFLE_SELLERS", ""); v != "" {
		cfg.Sellers = splitList(v)
	}
	if v := getEnv("RAFFLE_CACHE_TTL", ""); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return RaffleConfig{}, fmt.Errorf("RAFFLE_CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = ttl
	}
	if v := getEnv("RAFFLE_ALLOW_RESET", ""); v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			return RaffleConfig{}, fmt.Errorf("RAFFLE_ALLOW_RESET: %w", err)
		}
		cfg.AllowReset = allow
	}

	if err := cfg.Validate(); err != nil {
		return RaffleConfig{}, err
	}
	return cfg, nil
}

func (c RaffleConfig) Validate() error {
	if c.TotalNumbers < 1 {
		return fmt.Errorf("total numbers must be positive, got %d", c.TotalNumbers)
	}
	if !c.UnitPrice.IsPositive() {
		return fmt.Errorf("unit price must be positive, got %s", c.UnitPrice)
	}
	if c.CommissionRate.IsNegative() || c.CommissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("commission rate must be within [0, 1], got %s", c.CommissionRate)
	}
	if strings.TrimSpace(c.Sheet) == "" {
		return fmt.Errorf("sheet name must not be empty")
	}
	return nil
}

type raffleFile struct {
	TotalNumbers   *int     `yaml:"total_numbers"`
	UnitPrice      *string  `yaml:"unit_price"`
	CommissionRate *string  `yaml:"commission_rate"`
	Sheet          *string  `yaml:"sheet"`
	Sellers        []string `yaml:"sellers"`
}

func applyRaffleFile(cfg *RaffleConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read raffle config file: %w", err)
	}

	var f raffleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse raffle config file: %w", err)
	}

	if f.TotalNumbers != nil {
		cfg.TotalNumbers = *f.TotalNumbers
	}
	if f.UnitPrice != nil {
		d, err := decimal.NewFromString(*f.UnitPrice)
		if err != nil {
			return fmt.Errorf("unit_price: %w", err)
		}
		cfg.UnitPrice = d
	}
	if f.CommissionRate != nil {
		d, err := decimal.NewFromString(*f.CommissionRate)
		if err != nil {
			return fmt.Errorf("commission_rate: %w", err)
		}
		cfg.CommissionRate = d
	}
	if f.Sheet != nil {
		cfg.Sheet = *f.Sheet
	}
	if len(f.Sellers) > 0 {
		cfg.Sellers = cleanList(f.Sellers)
	}
	return nil
}

func splitList(v string) []string {
	return cleanList(strings.Split(v, ","))
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
