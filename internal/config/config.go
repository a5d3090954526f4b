package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// DefaultConfigFile is the fixed config file path, relative to the working
// directory, checked when no explicit path is given.
const DefaultConfigFile = "aliyunCDTconfig.json"

// DefaultThresholdGB is the built-in traffic threshold.
const DefaultThresholdGB = 20

// Config holds all cdtcheck settings. It is built once by Load and never
// mutated afterwards.
type Config struct {
	AccessKeyID      string  `mapstructure:"access_key_id"`
	AccessKeySecret  string  `mapstructure:"access_key_secret"`
	MaxTrafficGB     float64 `mapstructure:"max_traffic_gb"`
	FeishuWebhookURL string  `mapstructure:"feishu_webhook_url"`
	LogLevel         string  `mapstructure:"log_level"`
	LogFormat        string  `mapstructure:"log_format"`
}

// Load resolves configuration in three layers: built-in defaults, environment
// variables, then the config file, each field independently. An absent file
// at the default path is not an error; a malformed file is.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	explicit := cfgFile != ""
	if !explicit {
		cfgFile = DefaultConfigFile
	}
	v.SetConfigFile(cfgFile)

	// The environment seeds the defaults so that file keys override env
	// values per field. Viper's own env layer would sit above the file and
	// invert that precedence.
	threshold, err := envFloat("MAX_TRAFFIC_GB", DefaultThresholdGB)
	if err != nil {
		return nil, err
	}
	v.SetDefault("access_key_id", os.Getenv("ALIYUN_ACCESS_KEY_ID"))
	v.SetDefault("access_key_secret", os.Getenv("ALIYUN_ACCESS_KEY_SECRET"))
	v.SetDefault("max_traffic_gb", threshold)
	v.SetDefault("feishu_webhook_url", os.Getenv("FEISHU_WEBHOOK_URL"))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if explicit || !missing {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.MaxTrafficGB <= 0 {
		return nil, fmt.Errorf("max_traffic_gb must be positive, got %g", cfg.MaxTrafficGB)
	}

	return &cfg, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, raw, err)
	}
	return val, nil
}
