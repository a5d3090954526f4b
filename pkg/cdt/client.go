package cdt

import (
	"context"
	"fmt"
	"net/http"

	cdtapi "github.com/alibabacloud-go/cdt-20210813/v2/client"
	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"

	"github.com/le1239-ch/aliyunCDTtrafficCheck/pkg/traffic"
)

// Endpoint is the fixed CDT accounting API endpoint.
const Endpoint = "cdt.aliyuncs.com"

// SDK defaults have no bound; the run must not hang past a cron interval.
const (
	connectTimeoutMs = 10_000
	readTimeoutMs    = 30_000
)

// trafficAPI is the slice of the generated CDT client this package uses.
type trafficAPI interface {
	ListCdtInternetTrafficWithOptions(runtime *util.RuntimeOptions) (*cdtapi.ListCdtInternetTrafficResponse, error)
}

// Client fetches the current accounting period's internet traffic from the
// Aliyun CDT OpenAPI.
type Client struct {
	api trafficAPI
}

// NewClient creates a CDT client authenticated with the given access key pair.
func NewClient(accessKeyID, accessKeySecret string) (*Client, error) {
	api, err := cdtapi.NewClient(&openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
		Endpoint:        tea.String(Endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("create cdt client: %w", err)
	}
	return &Client{api: api}, nil
}

// TotalTrafficGB issues one ListCdtInternetTraffic call and returns the sum
// of all detail records' byte counts, converted to GB. Detail records without
// a byte count are excluded from the sum. Any transport, auth or non-200
// outcome is returned as an error.
func (c *Client) TotalTrafficGB(_ context.Context) (float64, error) {
	runtime := &util.RuntimeOptions{
		ConnectTimeout: tea.Int(connectTimeoutMs),
		ReadTimeout:    tea.Int(readTimeoutMs),
		Autoretry:      tea.Bool(false),
	}

	resp, err := c.api.ListCdtInternetTrafficWithOptions(runtime)
	if err != nil {
		return 0, fmt.Errorf("list cdt internet traffic: %w", err)
	}
	if resp.StatusCode == nil || *resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("cdt api returned status %d", tea.Int32Value(resp.StatusCode))
	}
	if resp.Body == nil {
		return 0, nil
	}

	var totalBytes int64
	for _, detail := range resp.Body.TrafficDetails {
		if detail == nil || detail.Traffic == nil {
			continue
		}
		totalBytes += *detail.Traffic
	}
	return traffic.GBFromBytes(totalBytes), nil
}
