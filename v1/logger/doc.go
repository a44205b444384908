// Package logger provides structured logging functionality for Go applications.
//
// The logger wraps Uber's Zap with a simplified interface: log levels,
// structured key-value fields, context-aware methods with distributed
// tracing integration, and an fx module for dependency injection.
//
// Basic usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       "info",
//		ServiceName: "my-service",
//	})
//
//	log.Info("User logged in", nil, map[string]interface{}{
//		"user_id": "12345",
//	})
//
// When EnableTracing is set, the *WithContext methods automatically extract
// the OpenTelemetry trace and span ids from the context and add them to the
// log entry as trace_id and span_id, correlating logs with distributed
// traces:
//
//	log.InfoWithContext(ctx, "Processing request", nil, map[string]interface{}{
//		"request_id": "abc-123",
//	})
//
// Configuration can come from the environment:
//
//	ZAP_LOGGER_LEVEL=debug          # Log level (debug, info, warning, error)
//	LOGGER_ENABLE_TRACING=true      # Enable distributed tracing integration
//
// For fx applications, FXModule provides the logger and registers a
// shutdown hook that flushes buffered entries:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: "info"}
//	    }),
//	)
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
