// Package metrics provides observability hooks for the guide ingestion
// pipeline. Components receive a Recorder by injection; the NoopRecorder
// default keeps metrics optional with zero overhead.
package metrics

import "time"

// Recorder defines observability hooks for corpus enumeration and indexing.
// Implementations may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	IncGuide(origin string)
	IncMetadataFallback(version string)
	IncContentReadFailure()
	ObserveIndexRunDuration(d time.Duration)
	IncIndexOutcome(outcome string) // outcome: success|failed
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncGuide(string)                      {}
func (NoopRecorder) IncMetadataFallback(string)           {}
func (NoopRecorder) IncContentReadFailure()               {}
func (NoopRecorder) ObserveIndexRunDuration(time.Duration) {}
func (NoopRecorder) IncIndexOutcome(string)               {}
