// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package routing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope for routing metrics.
const meterName = "rivaas.dev/routing"

// Recorder receives routing events for metrics. Implementations must be
// safe for concurrent use: RecordMatch runs on the resolution path.
//
// A Recorder is optional. Without one the router records nothing and
// resolution carries no timing overhead.
type Recorder interface {
	// RecordMatch reports one resolution attempt and its scan duration.
	RecordMatch(hit bool, duration time.Duration)

	// RecordRegistration reports one route registration.
	RecordRegistration()
}

// meterRecorder implements Recorder on top of an OpenTelemetry meter.
type meterRecorder struct {
	matches       metric.Int64Counter
	duration      metric.Float64Histogram
	registrations metric.Int64Counter
}

var (
	hitAttrs  = metric.WithAttributes(attribute.String("outcome", "hit"))
	missAttrs = metric.WithAttributes(attribute.String("outcome", "miss"))
)

// newMeterRecorder builds the routing instruments on the given provider.
func newMeterRecorder(provider metric.MeterProvider) (*meterRecorder, error) {
	meter := provider.Meter(meterName)

	matches, err := meter.Int64Counter("routing.match.attempts",
		metric.WithDescription("Resolution attempts, partitioned by outcome."))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("routing.match.duration",
		metric.WithDescription("Duration of the first-match scan."),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	registrations, err := meter.Int64Counter("routing.routes.registered",
		metric.WithDescription("Routes registered in the store."))
	if err != nil {
		return nil, err
	}

	return &meterRecorder{
		matches:       matches,
		duration:      duration,
		registrations: registrations,
	}, nil
}

func (m *meterRecorder) RecordMatch(hit bool, duration time.Duration) {
	attrs := missAttrs
	if hit {
		attrs = hitAttrs
	}

	ctx := context.Background()
	m.matches.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(duration)/float64(time.Millisecond), attrs)
}

func (m *meterRecorder) RecordRegistration() {
	m.registrations.Add(context.Background(), 1)
}
