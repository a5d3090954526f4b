package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/le1239-ch/aliyunCDTtrafficCheck/pkg/traffic"
)

const (
	alertTitle    = "🚨 Traffic limit exceeded"
	alertTemplate = "red"
	alertStatus   = "❌ Traffic has exceeded the configured limit, action required!"

	normalTitle    = "✅ Traffic within limit"
	normalTemplate = "green"
	normalStatus   = "✅ Traffic usage is normal, below the configured limit"
)

// FeishuNotifier sends traffic reports to a Feishu bot webhook as an
// interactive card.
type FeishuNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewFeishuNotifier creates a Feishu webhook notifier.
func NewFeishuNotifier(webhookURL string) *FeishuNotifier {
	return &FeishuNotifier{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (f *FeishuNotifier) Name() string { return "feishu" }

func (f *FeishuNotifier) Send(ctx context.Context, report traffic.Report) error {
	body, err := json.Marshal(buildCard(report))
	if err != nil {
		return fmt.Errorf("marshal feishu payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create feishu request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("send feishu notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feishu returned status %d", resp.StatusCode)
	}
	return nil
}

func buildCard(report traffic.Report) feishuMessage {
	title, template, status := normalTitle, normalTemplate, normalStatus
	if report.Exceeded {
		title, template, status = alertTitle, alertTemplate, alertStatus
	}

	content := fmt.Sprintf(
		"**Aliyun CDT traffic monitor**\n\nCurrent traffic: %.3f GB\nConfigured limit: %g GB\nUsage: %.1f%%\n\n%s",
		report.MeasuredGB, report.ThresholdGB, report.Percent(), status,
	)

	return feishuMessage{
		MsgType: "interactive",
		Card: feishuCard{
			Config: feishuCardConfig{WideScreenMode: true},
			Elements: []feishuElement{
				{
					Tag:  "div",
					Text: feishuText{Tag: "lark_md", Content: content},
				},
			},
			Header: feishuHeader{
				Template: template,
				Title:    feishuText{Tag: "plain_text", Content: title},
			},
		},
	}
}

type feishuMessage struct {
	MsgType string     `json:"msg_type"`
	Card    feishuCard `json:"card"`
}

type feishuCard struct {
	Config   feishuCardConfig `json:"config"`
	Elements []feishuElement  `json:"elements"`
	Header   feishuHeader     `json:"header"`
}

type feishuCardConfig struct {
	WideScreenMode bool `json:"wide_screen_mode"`
}

type feishuElement struct {
	Tag  string     `json:"tag"`
	Text feishuText `json:"text"`
}

type feishuText struct {
	Tag     string `json:"tag"`
	Content string `json:"content"`
}

type feishuHeader struct {
	Template string     `json:"template"`
	Title    feishuText `json:"title"`
}
