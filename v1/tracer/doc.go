// Package tracer provides distributed tracing with OpenTelemetry.
//
// The tracer wraps the OpenTelemetry TracerProvider with a simplified API
// for creating spans, recording errors, and attaching attributes. When
// export is enabled, spans are batched to an OTLP HTTP endpoint configured
// through the standard OTEL_EXPORTER_OTLP_* environment variables.
//
// Basic usage:
//
//	tracerClient := tracer.NewClient(tracer.Config{
//	    ServiceName:  "document-index",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "handle-request")
//	defer span.End()
//
// The logger package's *WithContext methods pick up the trace and span ids
// from contexts produced by StartSpan, correlating log entries with traces.
//
// For fx applications, FXModule provides the tracer and registers a
// shutdown hook that flushes pending spans.
package tracer
