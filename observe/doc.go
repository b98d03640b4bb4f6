// Package observe provides observability primitives for configuration
// resolution.
//
// It is a pure instrumentation library: no lookup logic, no I/O beyond
// exporter setup. The resolution layers accept its Logger and Metrics as
// optional hooks and default to no-ops, so embedding applications opt in
// to diagnostics without the engine taking a hard telemetry dependency at
// runtime.
package observe
