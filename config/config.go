package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Messaging MessagingConfig `yaml:"messaging"`
	Booking   BookingConfig   `yaml:"booking"`
	Logging   LoggingConfig   `yaml:"logging"`
	Admin     AdminConfig     `yaml:"admin"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

// MessagingConfig holds the outbound WhatsApp provider credentials.
// Secrets come from the environment, not from the yaml file.
type MessagingConfig struct {
	BaseURL        string `yaml:"base_url"`
	AccountSID     string `yaml:"account_sid"`
	AuthToken      string `yaml:"auth_token"`
	FromNumber     string `yaml:"from_number"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type BookingConfig struct {
	TrxIDPrefix        string `yaml:"trx_id_prefix"`
	CatalogCacheTTL    int    `yaml:"catalog_cache_ttl_seconds"`
	TrxIDRetryAttempts int    `yaml:"trx_id_retry_attempts"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AdminConfig struct {
	APIKey string `yaml:"api_key"`
}

// LoadConfig reads the yaml file at path and applies environment overrides
// for credentials. A .env file is loaded first when present.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if v := os.Getenv("MESSAGING_ACCOUNT_SID"); v != "" {
		cfg.Messaging.AccountSID = v
	}
	if v := os.Getenv("MESSAGING_AUTH_TOKEN"); v != "" {
		cfg.Messaging.AuthToken = v
	}
	if v := os.Getenv("MESSAGING_FROM_NUMBER"); v != "" {
		cfg.Messaging.FromNumber = v
	}
	if v := os.Getenv("ADMIN_API_KEY"); v != "" {
		cfg.Admin.APIKey = v
	}

	return &cfg, nil
}
