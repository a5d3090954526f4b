package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/le1239-ch/aliyunCDTtrafficCheck/pkg/alerts"
	"github.com/le1239-ch/aliyunCDTtrafficCheck/pkg/traffic"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send a card for a synthetic measurement to verify the webhook",
	RunE:  runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.Flags().Float64("measured-gb", 0, "Measured traffic to report, in GB")
}

var (
	okText    = color.New(color.FgGreen).SprintFunc()
	alertText = color.New(color.FgRed, color.Bold).SprintFunc()
)

func runNotify(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.FeishuWebhookURL == "" {
		return fmt.Errorf("feishu_webhook_url is not configured")
	}

	measured, _ := cmd.Flags().GetFloat64("measured-gb")
	report := traffic.Evaluate(measured, cfg.MaxTrafficGB)

	status := okText("OK")
	if report.Exceeded {
		status = alertText("EXCEEDED")
	}
	fmt.Printf("%s  %.3f GB / %g GB (%.1f%%)\n",
		status, report.MeasuredGB, report.ThresholdGB, report.Percent())

	n := alerts.NewFeishuNotifier(cfg.FeishuWebhookURL)
	if err := n.Send(cmd.Context(), report); err != nil {
		fmt.Printf("%s %v\n", alertText("notification failed:"), err)
		return err
	}
	fmt.Println(okText("notification sent"))
	return nil
}
