// Package monitor runs one traffic check end to end: fetch the measured
// usage, evaluate it against the threshold, and fan the report out to the
// configured notifiers. A run always completes; fetch and notify failures
// are logged and degrade to defaults rather than aborting.
package monitor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/le1239-ch/aliyunCDTtrafficCheck/pkg/alerts"
	"github.com/le1239-ch/aliyunCDTtrafficCheck/pkg/traffic"
)

// Fetcher reports current traffic usage in GB.
type Fetcher interface {
	TotalTrafficGB(ctx context.Context) (float64, error)
}

// Result is the outcome of a single check run.
type Result struct {
	Report   traffic.Report
	Notified bool
	// FetchErr is the error the fetcher returned, if any. The report then
	// carries a measured value of zero; callers decide whether that is fatal.
	FetchErr error
}

// Monitor wires a fetcher, a threshold and notifiers into a single-shot
// check.
type Monitor struct {
	fetcher     Fetcher
	notifiers   []alerts.Notifier
	thresholdGB float64
	logger      *slog.Logger
}

// New creates a monitor.
func New(fetcher Fetcher, notifiers []alerts.Notifier, thresholdGB float64, logger *slog.Logger) *Monitor {
	return &Monitor{
		fetcher:     fetcher,
		notifiers:   notifiers,
		thresholdGB: thresholdGB,
		logger:      logger,
	}
}

// Run executes one check: fetch, decide, notify. A fetch failure is logged
// and evaluated as zero usage so the run still produces a report and a
// notification.
func (m *Monitor) Run(ctx context.Context) Result {
	logger := m.logger.With("run_id", uuid.New().String())

	measured, fetchErr := m.fetcher.TotalTrafficGB(ctx)
	if fetchErr != nil {
		logger.Error("fetch traffic failed, treating usage as zero", "error", fetchErr)
		measured = 0
	}

	logger.Info("current traffic",
		"measured_gb", fmt.Sprintf("%.4f", measured),
		"threshold_gb", m.thresholdGB,
	)

	report := traffic.Evaluate(measured, m.thresholdGB)
	if report.Exceeded {
		logger.Warn("traffic limit exceeded",
			"measured_gb", fmt.Sprintf("%.4f", report.MeasuredGB),
			"threshold_gb", report.ThresholdGB,
			"pct", fmt.Sprintf("%.1f", report.Percent()),
		)
	} else {
		logger.Info("traffic within limit")
	}

	return Result{
		Report:   report,
		Notified: m.notify(ctx, logger, report),
		FetchErr: fetchErr,
	}
}

// notify sends the report to every notifier and returns true only if all
// sends succeeded. With no notifiers configured there is nothing to send and
// the result is false.
func (m *Monitor) notify(ctx context.Context, logger *slog.Logger, report traffic.Report) bool {
	if len(m.notifiers) == 0 {
		logger.Warn("no notifiers configured, cannot send notification")
		return false
	}

	ok := true
	for _, n := range m.notifiers {
		if err := n.Send(ctx, report); err != nil {
			logger.Error("send notification failed", "notifier", n.Name(), "error", err)
			ok = false
			continue
		}
		logger.Info("notification sent", "notifier", n.Name())
	}
	return ok
}
