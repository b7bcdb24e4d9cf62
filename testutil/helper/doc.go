// Package helper provides test doubles for the observability interfaces:
// a capturing slog.Handler, a metrics collector spy, and a tracing collector spy.
// They are used by the dbengine tests and are exported so that applications
// embedding the library can assert on their own instrumentation.
package helper
