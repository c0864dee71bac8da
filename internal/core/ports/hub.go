// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"hubdeploy/internal/core/domain"
)

// HubClient talks to one hub's JSON admin API.
//
//go:generate mockgen -source=hub.go -destination=mocks/mock_hub.go -package=mocks
type HubClient interface {
	// ListTypes fetches the catalog of installed user code for the given kind.
	ListTypes(ctx context.Context, kind domain.Kind) ([]domain.TypeEntry, error)

	// FetchCode fetches the current source and version for one type.
	// Types that have never been saved report version zero.
	FetchCode(ctx context.Context, kind domain.Kind, id int) (domain.CodeRevision, error)

	// SaveCode uploads source for one type. A returned SaveResult with
	// Success false is not an error; it carries the hub's compiler verdict.
	SaveCode(ctx context.Context, kind domain.Kind, payload domain.SavePayload) (domain.SaveResult, error)
}

// HubClientFactory builds a client bound to one resolved hub target.
// The factory exists because the target is only known per invocation,
// after flags and config have been merged.
type HubClientFactory func(target domain.HubTarget) (HubClient, error)

// ConfigLoader loads hub configuration from the environment and filesystem.
type ConfigLoader interface {
	// Load reads configuration starting from the given working directory.
	// A missing config file is not an error; built-in defaults apply.
	Load(ctx context.Context, cwd string) (domain.HubConfig, error)
}
