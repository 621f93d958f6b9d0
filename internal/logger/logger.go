// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces for debugging
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fauzanr/voicegate/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService owns the optional New Relic application instance.
//
// When New Relic is not configured (empty license key) the service still
// exists, but GetApplication returns nil and every consumer degrades to
// a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes New Relic if a license key is configured.
//
// With no license key it returns a service with a nil application, which
// all integrations (nrecho, nrpgx5, log forwarding) treat as disabled.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	obs := cfg.Observability
	if obs == nil || obs.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(obs.ServiceName),
		newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
	}
	if obs.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	nrApp, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize new relic application: %w", err)
	}

	return &LoggerService{nrApp: nrApp}, nil
}

// GetApplication returns the New Relic application instance, or nil when
// New Relic is disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// New builds the application's main structured logger.
//
// Format follows config: "console" writes human-friendly output (local
// development), anything else writes JSON to stdout. When New Relic log
// forwarding is active the JSON writer is wrapped so log lines are
// decorated with linking metadata and forwarded by the agent.
func New(cfg *config.Config, ls *LoggerService) *zerolog.Logger {
	level := parseLevel(cfg.Observability.GetLogLevel())

	var w io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" || cfg.Primary.Env == "local" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	} else if app := ls.GetApplication(); app != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		nrWriter := zerologWriter.New(os.Stdout, app)
		w = &nrWriter
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Primary.Env).
		Logger()

	return &logger
}

// WithTraceContext returns a child logger carrying New Relic trace
// correlation fields, so log lines can be joined with distributed traces.
func WithTraceContext(l zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return l
	}

	md := txn.GetTraceMetadata()
	return l.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}

// NewPgxLogger builds the logger used for SQL query logging (pgx tracelog).
// It always writes console format; SQL logging is only enabled in local env
// where pretty output is what you want.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the application log level onto pgx's tracelog
// levels. Trace-level SQL output only appears when the app runs at debug.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return tracelog.LogLevelDebug
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelInfo
	}
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
