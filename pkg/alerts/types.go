package alerts

import (
	"context"

	"github.com/le1239-ch/aliyunCDTtrafficCheck/pkg/traffic"
)

// Notifier delivers a traffic report to an external chat system.
type Notifier interface {
	// Name returns the notifier identifier.
	Name() string

	// Send delivers the report. Implementations perform exactly one outbound
	// request per call and do not retry.
	Send(ctx context.Context, report traffic.Report) error
}
