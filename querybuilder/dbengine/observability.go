package dbengine

import (
	"context"
	"math"
	"time"

	"github.com/domainblocks/ddd-blocks-go/querybuilder"
)

const (
	metricQueryDuration = "database_query_duration"
	metricExecDuration  = "database_exec_duration"
	metricDatabaseError = "database_errors"
	spanAttrOperation   = "operation"
	spanAttrErrorType   = "error_type"
	errorTypeDatabase   = "database"
	statusOK            = "ok"
	statusError         = "error"
	labelStatus         = "status"
)

// logQueryWithDuration logs SQL statements with execution time at debug level if a logger is configured.
func (e *Engine) logQueryWithDuration(
	ctx context.Context,
	sqlQuery sqlQueryString,
	action string,
	duration queryDuration,
	paramCount int,
) {
	if e.contextualLogger != nil {
		e.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action,
			logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery, logAttrParamCount, paramCount)
		return
	}

	if e.logger != nil {
		e.logger.Debug(logMsgSQLExecuted+action,
			logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery, logAttrParamCount, paramCount)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (e *Engine) logOperation(ctx context.Context, action string, args ...any) {
	if e.contextualLogger != nil {
		e.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
		return
	}

	if e.logger != nil {
		e.logger.Info(logMsgOperation+action, args...)
	}
}

// logWarn logs non-critical issues at warn level if a logger is configured.
func (e *Engine) logWarn(ctx context.Context, message string, err error) {
	if e.contextualLogger != nil {
		e.contextualLogger.WarnContext(ctx, message, logAttrError, err.Error())
		return
	}

	if e.logger != nil {
		e.logger.Warn(message, logAttrError, err.Error())
	}
}

// logError logs error information at error level if a logger is configured.
func (e *Engine) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if e.contextualLogger != nil {
		e.contextualLogger.ErrorContext(ctx, message, allArgs...)
		return
	}

	if e.logger != nil {
		e.logger.Error(message, allArgs...)
	}
}

// recordDurationMetricsContext records duration metrics with context if the collector supports it.
func (e *Engine) recordDurationMetricsContext(
	ctx context.Context,
	metricName string,
	duration time.Duration,
	operation, status string,
) {
	if e.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		labelStatus:       status,
	}

	if contextualCollector, ok := e.metricsCollector.(querybuilder.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricName, duration, labels)
		return
	}

	e.metricsCollector.RecordDuration(metricName, duration, labels)
}

// recordErrorMetricsContext records error metrics with context if the collector supports it.
func (e *Engine) recordErrorMetricsContext(ctx context.Context, operation, errorType string) {
	if e.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		labelStatus:       statusError,
		spanAttrErrorType: errorType,
	}

	if contextualCollector, ok := e.metricsCollector.(querybuilder.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricDatabaseError, labels)
		return
	}

	e.metricsCollector.IncrementCounter(metricDatabaseError, labels)
}

// startTraceSpan starts a tracing span if the tracing collector is configured.
func (e *Engine) startTraceSpan(
	ctx context.Context,
	operation string,
	attrs map[string]string,
) (context.Context, SpanContext) {
	if e.tracingCollector != nil {
		return e.tracingCollector.StartSpan(ctx, operation, attrs)
	}

	return ctx, nil
}

// finishTraceSpan finishes a tracing span if the tracing collector is configured.
func (e *Engine) finishTraceSpan(spanCtx SpanContext, status string, attrs map[string]string) {
	if e.tracingCollector != nil && spanCtx != nil {
		e.tracingCollector.FinishSpan(spanCtx, status, attrs)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
