package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Providers ProvidersConfig `mapstructure:"providers"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Email     EmailConfig     `mapstructure:"email"`
}

type ServerConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	SecretKey string `mapstructure:"secret_key"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig holds the named presets applied by the rate limit middleware.
// Limits are policy, not mechanism; deployments tune them here.
type RateLimitConfig struct {
	FailOpen bool                       `mapstructure:"fail_open"`
	Presets  map[string]RateLimitPreset `mapstructure:"presets"`
}

type RateLimitPreset struct {
	MaxRequests int    `mapstructure:"max_requests"`
	Window      string `mapstructure:"window"`
}

func (p RateLimitPreset) WindowDuration() (time.Duration, error) {
	return time.ParseDuration(p.Window)
}

type EmailConfig struct {
	APIKey      string `mapstructure:"api_key"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	// Delay between sends in a bulk loop, to respect the provider's own limits.
	BulkSendDelay string `mapstructure:"bulk_send_delay"`
}

func (e EmailConfig) BulkDelay() time.Duration {
	d, err := time.ParseDuration(e.BulkSendDelay)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %v", err)
	}

	setDefaultValues()

	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Database.SSLMode == "" {
		globalConfig.Database.SSLMode = "disable"
	}
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 8080
	}
	if globalConfig.RateLimit.Presets == nil {
		globalConfig.RateLimit.Presets = map[string]RateLimitPreset{}
	}
	// Named presets callers rely on; overridable in config.yaml.
	if _, ok := globalConfig.RateLimit.Presets["webhook"]; !ok {
		globalConfig.RateLimit.Presets["webhook"] = RateLimitPreset{MaxRequests: 100, Window: "1m"}
	}
	if _, ok := globalConfig.RateLimit.Presets["billable"]; !ok {
		globalConfig.RateLimit.Presets["billable"] = RateLimitPreset{MaxRequests: 10, Window: "1m"}
	}
	if _, ok := globalConfig.RateLimit.Presets["sensitive"]; !ok {
		globalConfig.RateLimit.Presets["sensitive"] = RateLimitPreset{MaxRequests: 3, Window: "1m"}
	}
	if !viper.IsSet("rate_limit.fail_open") {
		globalConfig.RateLimit.FailOpen = true
	}
}

func GetConfig() *Config {
	return &globalConfig
}
