package rainmaker

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/vovakirdan/rainmaker/internal/games/rainmaker"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// simMetrics are the simulation counters. They are no-ops unless the
// process installs a meter provider.
type simMetrics struct {
	cloudsSpawned    metric.Int64Counter
	blimpsSpawned    metric.Int64Counter
	crashes          metric.Int64Counter
	waterTransferred metric.Float64Counter
	fuelRefueled     metric.Float64Counter

	attrs metric.MeasurementOption
}

func newSimMetrics(mode string) (*simMetrics, error) {
	m := meter()
	s := &simMetrics{attrs: metric.WithAttributes(attribute.String("mode", mode))}

	var err error

	s.cloudsSpawned, err = m.Int64Counter(
		"rainmaker.clouds.spawned",
		metric.WithDescription("Total clouds spawned"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating clouds counter: %w", err)
	}

	s.blimpsSpawned, err = m.Int64Counter(
		"rainmaker.blimps.spawned",
		metric.WithDescription("Total blimps spawned"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating blimps counter: %w", err)
	}

	s.crashes, err = m.Int64Counter(
		"rainmaker.helicopter.crashes",
		metric.WithDescription("Total helicopter crashes"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating crash counter: %w", err)
	}

	s.waterTransferred, err = m.Float64Counter(
		"rainmaker.water.transferred",
		metric.WithDescription("Water moved from clouds into ponds"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating water counter: %w", err)
	}

	s.fuelRefueled, err = m.Float64Counter(
		"rainmaker.fuel.refueled",
		metric.WithDescription("Fuel siphoned from blimps"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating refuel counter: %w", err)
	}

	return s, nil
}

func (s *simMetrics) recordEvents(events []Event) {
	ctx := context.Background()
	for _, e := range events {
		switch e.Kind {
		case EventCloudSpawned:
			s.cloudsSpawned.Add(ctx, 1, s.attrs)
		case EventBlimpSpawned:
			s.blimpsSpawned.Add(ctx, 1, s.attrs)
		case EventCrash:
			s.crashes.Add(ctx, 1, s.attrs)
		}
	}
}

func (s *simMetrics) recordWater(amount float64) {
	if amount > 0 {
		s.waterTransferred.Add(context.Background(), amount, s.attrs)
	}
}

func (s *simMetrics) recordFuel(amount float64) {
	if amount > 0 {
		s.fuelRefueled.Add(context.Background(), amount, s.attrs)
	}
}
