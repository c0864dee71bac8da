package telemetry_test

import (
	"context"
	"sync"
	"time"
)

// mockReporter is a simple test double for ports.Reporter.
type mockReporter struct {
	mu            sync.Mutex
	startCalls    int
	logCalls      int
	completeCalls int
	logs          [][]byte
	events        []string
}

func (m *mockReporter) Start(_ context.Context) error { return nil }
func (m *mockReporter) Stop() error                   { return nil }
func (m *mockReporter) Wait() error                   { return nil }

func (m *mockReporter) OnDeployStart(_, _ string, _ time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startCalls++
	m.events = append(m.events, "start")
}

func (m *mockReporter) OnDeployLog(_ string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logCalls++
	m.logs = append(m.logs, data)
	m.events = append(m.events, "log")
}

func (m *mockReporter) OnDeployComplete(_ string, _ time.Time, _ error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completeCalls++
	m.events = append(m.events, "complete")
}

func (m *mockReporter) snapshot() (starts, logs, completes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startCalls, m.logCalls, m.completeCalls
}

func (m *mockReporter) eventOrder() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.events))
	copy(out, m.events)
	return out
}
