package domain

import "time"

// HubTarget is a fully resolved hub destination for one invocation.
type HubTarget struct {
	// Host is the hub address, with or without a scheme. Bare hosts are
	// dialed over plain HTTP, matching the hub's LAN-only admin interface.
	Host string

	// Timeout bounds every HTTP request made against this target.
	Timeout time.Duration
}

// CodeRevision is the hub's current state for one installed type.
type CodeRevision struct {
	// Version is the hub-side revision counter. Hubs omit it for code that
	// has never been saved, which decodes as zero.
	Version int

	// Source is the code currently installed on the hub.
	Source string
}

// SavePayload is an upload request for one type.
type SavePayload struct {
	ID      int
	Version int
	Source  string
}

// SaveResult is the hub's verdict on an upload. Only Success is guaranteed;
// the remaining fields are best-effort diagnostics and not a stable schema.
type SaveResult struct {
	Success bool

	// Version is the revision assigned by the hub, when it reports one.
	// Nil means the hub omitted it.
	Version *int

	// Message is the hub's failure summary, usually a compiler message.
	Message string

	// Errors lists individual compilation errors, verbatim.
	Errors []string
}

// DeployOutcome describes a completed deploy.
type DeployOutcome struct {
	ID         int
	Name       string
	Kind       Kind
	OldVersion int
	NewVersion int
}
