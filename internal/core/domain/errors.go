package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceNotFound is returned when the source file cannot be read.
	ErrSourceNotFound = zerr.New("failed to read source file")

	// ErrSourceEmpty is returned when the source file contains no code.
	ErrSourceEmpty = zerr.New("source file is empty")

	// ErrInvalidKind is returned when a kind is neither 'app' nor 'driver'.
	ErrInvalidKind = zerr.New("invalid kind, expected 'app' or 'driver'")

	// ErrHubUnreachable is returned when the hub cannot be reached over the network.
	ErrHubUnreachable = zerr.New("failed to reach hub")

	// ErrHubStatus is returned when the hub answers with a non-success HTTP status.
	ErrHubStatus = zerr.New("hub request failed")

	// ErrHubResponseShape is returned when a hub response cannot be decoded.
	ErrHubResponseShape = zerr.New("unexpected hub response")

	// ErrTypeNotFound is returned when no catalog entry matches the requested name.
	ErrTypeNotFound = zerr.New("no matching type found on hub")

	// ErrTypeAmbiguous is returned when more than one catalog entry matches the requested name.
	ErrTypeAmbiguous = zerr.New("multiple types match, be more specific")

	// ErrCompileFailed is returned when the hub rejects uploaded source.
	ErrCompileFailed = zerr.New("hub rejected source")

	// ErrDeployFailed is returned when the deploy pipeline fails.
	// The cause has already been reported, so callers only map it to an exit code.
	ErrDeployFailed = zerr.New("deploy failed")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch source file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrOutputWriteFailed is returned when fetched source cannot be written to disk.
	ErrOutputWriteFailed = zerr.New("failed to write output file")
)
