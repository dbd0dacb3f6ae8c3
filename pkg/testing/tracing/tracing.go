/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tracing

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/unikorn-cloud/manila/pkg/constants"
)

// LoggingSpanProcessor logs spans as they finish, so a failed test's output
// shows which API calls it made.
type LoggingSpanProcessor struct {
	Logger logr.Logger
}

var _ trace.SpanProcessor = &LoggingSpanProcessor{}

func (*LoggingSpanProcessor) OnStart(context.Context, trace.ReadWriteSpan) {
}

func (p *LoggingSpanProcessor) OnEnd(s trace.ReadOnlySpan) {
	p.Logger.V(1).Info("span ended", "name", s.Name(), "duration", s.EndTime().Sub(s.StartTime()).String(), "status", s.Status().Code.String())
}

func (*LoggingSpanProcessor) Shutdown(context.Context) error {
	return nil
}

func (*LoggingSpanProcessor) ForceFlush(context.Context) error {
	return nil
}

// Setup installs a global tracer provider that logs spans, and ships them
// to an OTLP collector when an endpoint URL is given.  The returned provider
// must be shut down to flush any buffered spans.
func Setup(ctx context.Context, logger logr.Logger, endpoint string, opts ...trace.TracerProviderOption) (*trace.TracerProvider, error) {
	otel.SetLogger(logger)

	attributes := resource.NewSchemaless(
		attribute.String("service.name", constants.Application),
		attribute.String("service.version", constants.Version),
	)

	opts = append(opts,
		trace.WithResource(attributes),
		trace.WithSpanProcessor(&LoggingSpanProcessor{Logger: logger}),
	)

	if endpoint != "" {
		exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}

		opts = append(opts, trace.WithBatcher(exporter))
	}

	provider := trace.NewTracerProvider(opts...)

	otel.SetTracerProvider(provider)

	return provider, nil
}
