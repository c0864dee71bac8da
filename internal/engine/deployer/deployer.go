// Package deployer implements the upload transaction against one hub.
package deployer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"hubdeploy/internal/core/domain"
	"hubdeploy/internal/core/ports"
)

// Deployer pushes Groovy source files to a hub. All progress output goes
// through the span, so the same transaction renders in any reporter.
type Deployer struct {
	client ports.HubClient
	tracer ports.Tracer
	host   string
}

// NewDeployer creates a Deployer bound to one hub client.
// host is the display form of the target, used in progress output.
func NewDeployer(client ports.HubClient, tracer ports.Tracer, host string) *Deployer {
	return &Deployer{
		client: client,
		tracer: tracer,
		host:   host,
	}
}

// Request describes one deploy attempt.
type Request struct {
	// Path is the Groovy source file to deploy.
	Path string

	// Kind overrides classification. Zero value means detect from source.
	Kind domain.Kind

	// TypeID overrides name resolution. Zero means resolve by declared name.
	TypeID int
}

// Deploy runs the upload transaction:
// read, classify, resolve, fetch version, save, report.
// There are no retries; the hub's accept/reject response is authoritative,
// and the version read-then-write race is inherent to the hub API.
func (d *Deployer) Deploy(ctx context.Context, req Request) (*domain.DeployOutcome, error) {
	ctx, span := d.tracer.Start(ctx, filepath.Base(req.Path))
	defer span.End()

	outcome, err := d.run(ctx, span, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return outcome, nil
}

func (d *Deployer) run(ctx context.Context, span ports.Span, req Request) (*domain.DeployOutcome, error) {
	artifact, err := readSource(req.Path)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(span, "Loaded: %s (%d chars)\n", filepath.Base(artifact.Path), len(artifact.Source))

	kind := req.Kind
	if kind == "" {
		kind = domain.DetectKind(artifact.Source)
	}
	span.SetAttribute("deploy.kind", string(kind))
	fmt.Fprintf(span, "Component type: %s\n", kind)

	entry, err := d.resolveEntry(ctx, span, artifact, kind, req.TypeID)
	if err != nil {
		return nil, err
	}
	span.SetAttribute("deploy.type_id", entry.ID)

	fmt.Fprintf(span, "Deploying: %s (type ID: %d) to %s\n", entry.Name, entry.ID, d.host)

	current, err := d.client.FetchCode(ctx, kind, entry.ID)
	if err != nil {
		return nil, err
	}

	result, err := d.client.SaveCode(ctx, kind, domain.SavePayload{
		ID:      entry.ID,
		Version: current.Version,
		Source:  artifact.Source,
	})
	if err != nil {
		return nil, err
	}

	if !result.Success {
		return nil, compileFailure(span, result)
	}

	newVersion := current.Version + 1
	if result.Version != nil {
		newVersion = *result.Version
	}
	span.SetAttribute("deploy.version", newVersion)
	fmt.Fprintf(span, "Deployed successfully (version %d → %d)\n", current.Version, newVersion)

	return &domain.DeployOutcome{
		ID:         entry.ID,
		Name:       entry.Name,
		Kind:       kind,
		OldVersion: current.Version,
		NewVersion: newVersion,
	}, nil
}

// resolveEntry picks the catalog entry to deploy to. An explicit type id
// bypasses the catalog entirely, mirroring the hub UI's direct-save path.
func (d *Deployer) resolveEntry(
	ctx context.Context,
	span ports.Span,
	artifact domain.SourceArtifact,
	kind domain.Kind,
	typeID int,
) (domain.TypeEntry, error) {
	if typeID != 0 {
		return domain.TypeEntry{ID: typeID, Name: fmt.Sprintf("(ID %d)", typeID)}, nil
	}

	name, ok := domain.ExtractName(artifact.Source)
	if !ok {
		name = domain.NameFromPath(artifact.Path)
		fmt.Fprintf(span, "Warning: Could not parse name from definition(), using filename: %s\n", name)
	}

	entries, err := d.client.ListTypes(ctx, kind)
	if err != nil {
		return domain.TypeEntry{}, err
	}

	entry, err := domain.ResolveType(entries, name)
	if err != nil {
		if errors.Is(err, domain.ErrTypeAmbiguous) {
			writeCandidates(span, entries, name)
		}
		return domain.TypeEntry{}, err
	}
	return entry, nil
}

// writeCandidates lists the colliding catalog entries so the user can
// qualify the name. Capped; hubs with generously named code can match a lot.
func writeCandidates(span ports.Span, entries []domain.TypeEntry, query string) {
	matches := domain.MatchTypes(entries, query)
	if len(matches) > domain.MaxTypeCandidates {
		matches = matches[:domain.MaxTypeCandidates]
	}
	for _, m := range matches {
		fmt.Fprintf(span, "  %d: %s\n", m.ID, m.Name)
	}
}

func compileFailure(span ports.Span, result domain.SaveResult) error {
	message := result.Message
	if message == "" {
		message = "Unknown error"
	}

	fmt.Fprintf(span, "Deploy failed: %s\n", message)
	for _, e := range result.Errors {
		fmt.Fprintf(span, "  - %s\n", e)
	}

	err := zerr.With(domain.ErrCompileFailed, "message", message)
	if len(result.Errors) > 0 {
		err = zerr.With(err, "errors", strings.Join(result.Errors, "; "))
	}
	return err
}

func readSource(path string) (domain.SourceArtifact, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.SourceArtifact{}, zerr.With(zerr.Wrap(err, domain.ErrSourceNotFound.Error()), "path", path)
	}

	artifact := domain.SourceArtifact{Path: path, Source: string(data)}
	if artifact.Empty() {
		return domain.SourceArtifact{}, zerr.With(domain.ErrSourceEmpty, "path", path)
	}
	return artifact, nil
}
