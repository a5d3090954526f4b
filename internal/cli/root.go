package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/le1239-ch/aliyunCDTtrafficCheck/internal/config"
	"github.com/le1239-ch/aliyunCDTtrafficCheck/pkg/alerts"
	"github.com/le1239-ch/aliyunCDTtrafficCheck/pkg/cdt"
	"github.com/le1239-ch/aliyunCDTtrafficCheck/pkg/monitor"
)

// Version is set at build time via ldflags.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cdtcheck",
	Short: "Check Aliyun CDT traffic against a threshold and notify Feishu",
	Long: `cdtcheck fetches the current accounting period's CDT internet traffic,
compares it to the configured threshold, and posts a status card to a
Feishu webhook. It runs once and exits; scheduling is left to cron.`,
	SilenceUsage: true,
	RunE:         runCheck,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./"+config.DefaultConfigFile+")")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger creates a structured logger from config. The check run writes
// timestamped lines to stdout.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

// initNotifiers creates alert notifiers from config. An empty webhook URL
// yields no notifiers; the monitor logs that nothing can be sent.
func initNotifiers(cfg *config.Config) []alerts.Notifier {
	var notifiers []alerts.Notifier
	if cfg.FeishuWebhookURL != "" {
		notifiers = append(notifiers, alerts.NewFeishuNotifier(cfg.FeishuWebhookURL))
	}
	return notifiers
}

// initMonitor creates a fully wired single-shot monitor.
func initMonitor(cfg *config.Config, logger *slog.Logger) (*monitor.Monitor, error) {
	client, err := cdt.NewClient(cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, err
	}
	return monitor.New(client, initNotifiers(cfg), cfg.MaxTrafficGB, logger), nil
}
