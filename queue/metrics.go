/*
Copyright (c) The acdp Authors.

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

package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/suscan/acdp/message"
)

// Metrics holds the Prometheus counters tracked per Queue, mirroring
// _examples/facebook-time/ptp/sptp/stats/prom_exporter.go's pattern of a
// small owned *prometheus.Registry feeding a handful of named
// collectors.
type Metrics struct {
	registry *prometheus.Registry
	writes   *prometheus.CounterVec
	reads    *prometheus.CounterVec
	drops    *prometheus.CounterVec
	expired  *prometheus.CounterVec
}

// NewMetrics registers the queue's counters against reg. If reg is nil,
// a private registry is created (useful in tests that don't want to
// collide with a process-wide default registry).
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		registry: reg,
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "acdp_queue_writes_total",
			Help: "Messages successfully written to the queue, by type.",
		}, []string{"type"}),
		reads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "acdp_queue_reads_total",
			Help: "Messages read from the queue, by type.",
		}, []string{"type"}),
		drops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "acdp_queue_drops_total",
			Help: "Messages that failed to enqueue, by type and reason.",
		}, []string{"type", "reason"}),
		expired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "acdp_queue_expired_total",
			Help: "Perishable messages dropped for being past the expiry threshold, by type.",
		}, []string{"type"}),
	}
	reg.MustRegister(m.writes, m.reads, m.drops, m.expired)
	return m
}

// Registry returns the Prometheus registry m registers into, for mounting
// under an HTTP /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) incWrite(t message.Type) {
	if m == nil {
		return
	}
	m.writes.WithLabelValues(t.String()).Inc()
}

func (m *Metrics) incRead(t message.Type) {
	if m == nil {
		return
	}
	m.reads.WithLabelValues(t.String()).Inc()
}

func (m *Metrics) incDrop(t message.Type, reason string) {
	if m == nil {
		return
	}
	m.drops.WithLabelValues(t.String(), reason).Inc()
}

// IncExpired records a message dropped by expiry. Exported because the
// drop happens in the consumer loop (via ExpiryTracker.ShouldDispatch),
// not inside Queue itself.
func (m *Metrics) IncExpired(t message.Type) {
	if m == nil {
		return
	}
	m.expired.WithLabelValues(t.String()).Inc()
}
