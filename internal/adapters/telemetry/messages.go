package telemetry

import (
	"time"
)

// MsgDeployStart indicates a deploy run (span) has started.
type MsgDeployStart struct {
	RunID     string
	Name      string
	StartTime time.Time
}

// MsgDeployComplete indicates a deploy run has finished.
type MsgDeployComplete struct {
	RunID   string
	EndTime time.Time
	Err     error
}

// MsgDeployLog carries a chunk of progress output for a specific run.
type MsgDeployLog struct {
	RunID string
	Data  []byte
}
