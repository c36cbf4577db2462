package session

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lorekeep/atlas/internal/session"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// metrics holds the session's OTel instruments. With no global provider
// configured these are no-ops.
type metrics struct {
	actions      metric.Int64Counter
	saves        metric.Int64Counter
	saveFailures metric.Int64Counter
}

func newMetrics() (*metrics, error) {
	m := meter()
	var (
		out metrics
		err error
	)

	out.actions, err = m.Int64Counter(
		"session.actions.applied",
		metric.WithDescription("Total editor actions applied"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating actions counter: %w", err)
	}

	out.saves, err = m.Int64Counter(
		"session.saves.total",
		metric.WithDescription("Total save attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating saves counter: %w", err)
	}

	out.saveFailures, err = m.Int64Counter(
		"session.saves.failed",
		metric.WithDescription("Total failed save attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating save failures counter: %w", err)
	}

	return &out, nil
}
