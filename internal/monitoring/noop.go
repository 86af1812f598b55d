// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

// NoopMonitor satisfies MonitorInterface without recording anything. Used in
// tests and in commands that do not serve traffic.
type NoopMonitor struct{}

var _ MonitorInterface = (*NoopMonitor)(nil)

func NewNoopMonitor() *NoopMonitor {
	return &NoopMonitor{}
}

func (n *NoopMonitor) GetService() string {
	return "noop"
}

func (n *NoopMonitor) SetResponseTimeMetric(labels map[string]string, duration float64) error {
	return nil
}

func (n *NoopMonitor) SetDependencyAvailability(tags map[string]string, available float64) error {
	return nil
}
