package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration with the secret redacted",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

// effectiveConfig mirrors config.Config for display.
type effectiveConfig struct {
	AccessKeyID      string  `yaml:"access_key_id"`
	AccessKeySecret  string  `yaml:"access_key_secret"`
	MaxTrafficGB     float64 `yaml:"max_traffic_gb"`
	FeishuWebhookURL string  `yaml:"feishu_webhook_url"`
	LogLevel         string  `yaml:"log_level"`
	LogFormat        string  `yaml:"log_format"`
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(effectiveConfig{
		AccessKeyID:      cfg.AccessKeyID,
		AccessKeySecret:  redact(cfg.AccessKeySecret),
		MaxTrafficGB:     cfg.MaxTrafficGB,
		FeishuWebhookURL: cfg.FeishuWebhookURL,
		LogLevel:         cfg.LogLevel,
		LogFormat:        cfg.LogFormat,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	fmt.Print(string(out))
	return nil
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:4] + "****"
}
