// Package metrics defines observability hooks for render runs.
package metrics

import "time"

// Run outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// Recorder defines observability hooks for render and page metrics.
// Implementations may forward to Prometheus; the NoopRecorder is the default
// when metrics are not configured.
type Recorder interface {
	ObservePageRenderDuration(d time.Duration)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome string)
	SetPagesRendered(n int)
	IncPathCollision()
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObservePageRenderDuration(time.Duration) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)        {}
func (NoopRecorder) IncRunOutcome(string)                    {}
func (NoopRecorder) SetPagesRendered(int)                    {}
func (NoopRecorder) IncPathCollision()                       {}
