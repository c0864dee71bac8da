// Package app implements the application layer for hubdeploy.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"hubdeploy/internal/adapters/detector"
	"hubdeploy/internal/adapters/fs"
	"hubdeploy/internal/adapters/linear"
	"hubdeploy/internal/adapters/telemetry"
	"hubdeploy/internal/adapters/tui"
	"hubdeploy/internal/adapters/watcher"
	"hubdeploy/internal/core/domain"
	"hubdeploy/internal/core/ports"
	"hubdeploy/internal/engine/deployer"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	newClient    ports.HubClientFactory
	logger       ports.Logger
	stdout       io.Writer
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, factory ports.HubClientFactory, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		newClient:    factory,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithStdout redirects catalog listings and fetched source.
// This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// DeployOptions configuration for the Deploy method.
type DeployOptions struct {
	Hub     string
	TypeID  int
	Kind    string
	Timeout time.Duration
	Trace   bool
}

// Deploy uploads one Groovy source file to the hub.
//
// The transaction itself runs in the deployer; this method assembles the
// reporter and telemetry rig around it and maps the result to a sentinel
// the CLI can turn into an exit code.
func (a *App) Deploy(ctx context.Context, path string, opts DeployOptions) error {
	cfg, err := a.configLoader.Load(ctx, ".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	kind, err := parseKindFlag(opts.Kind)
	if err != nil {
		return err
	}

	target := cfg.ResolveTarget(opts.Hub, opts.Timeout)
	client, err := a.newClient(target)
	if err != nil {
		return zerr.Wrap(err, "failed to create hub client")
	}

	// One-shot deploys always render linearly; the TUI exists for watch
	// sessions where history accumulates.
	reporter := linear.NewReporter(a.stdout, os.Stderr)

	tracer, tp := a.setupTelemetry(reporter, opts.Trace)
	defer func() {
		_ = tp.Shutdown(ctx)
	}()

	d := deployer.NewDeployer(client, tracer, target.Host)

	g, gctx := errgroup.WithContext(ctx)

	// Reporter Routine
	g.Go(func() error {
		if err := reporter.Start(gctx); err != nil {
			return err
		}
		// Wait blocks until the reporter has terminated.
		return reporter.Wait()
	})

	// Deploy Routine
	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "Deploy panic: %v\n", r)
			}
			// Ensure the reporter stops when the transaction finishes.
			_ = reporter.Stop()
		}()

		req := deployer.Request{Path: path, Kind: kind, TypeID: opts.TypeID}
		if _, err := d.Deploy(gctx, req); err != nil {
			return errors.Join(domain.ErrDeployFailed, err)
		}
		return nil
	})

	return g.Wait()
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Hub        string
	TypeID     int
	Kind       string
	Timeout    time.Duration
	OutputMode string
	Trace      bool
}

// Watch deploys the file, then keeps redeploying it on every save until the
// context is canceled or the user quits the TUI. Deploy failures are
// reported and the session keeps watching; only a watcher that cannot start
// ends the session with an error.
//
//nolint:cyclop // orchestration function
func (a *App) Watch(ctx context.Context, path string, opts WatchOptions) error {
	cfg, err := a.configLoader.Load(ctx, ".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	kind, err := parseKindFlag(opts.Kind)
	if err != nil {
		return err
	}

	target := cfg.ResolveTarget(opts.Hub, opts.Timeout)
	client, err := a.newClient(target)
	if err != nil {
		return zerr.Wrap(err, "failed to create hub client")
	}

	// Quitting the TUI cancels the whole session.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var reporter ports.Reporter
	if detector.Resolve(opts.OutputMode) == detector.ModeTUI {
		model := tui.NewModel(os.Stderr).
			WithHeader(fmt.Sprintf("%s → %s", filepath.Base(path), target.Host))
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		reporter = tui.NewReporter(&model, optsTea...)
	} else {
		reporter = linear.NewReporter(a.stdout, os.Stderr)
	}

	tracer, tp := a.setupTelemetry(reporter, opts.Trace)
	defer func() {
		_ = tp.Shutdown(ctx)
	}()

	d := deployer.NewDeployer(client, tracer, target.Host)

	w, err := watcher.NewWatcher()
	if err != nil {
		return errors.Join(domain.ErrWatchFailed, err)
	}
	defer func() {
		_ = w.Stop()
	}()
	if err := w.Start(ctx, filepath.Dir(path)); err != nil {
		return errors.Join(domain.ErrWatchFailed, err)
	}

	// One pending redeploy covers any number of coalesced saves.
	redeploy := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(_ []string) {
		select {
		case redeploy <- struct{}{}:
		default:
		}
	})

	base := filepath.Base(path)

	g, gctx := errgroup.WithContext(ctx)

	// Reporter Routine
	g.Go(func() error {
		defer cancel()
		if err := reporter.Start(gctx); err != nil {
			return err
		}
		return reporter.Wait()
	})

	// Event Pump Routine. Editors save through temp files and renames, so
	// events are filtered by name and removals are ignored; the rename that
	// lands the new contents arrives as a create.
	g.Go(func() error {
		for event := range w.Events() {
			if filepath.Base(event.Path) != base {
				continue
			}
			if event.Operation == ports.OpRemove || event.Operation == ports.OpRename {
				continue
			}
			debouncer.Add(event.Path)
		}
		return nil
	})

	// Deploy Routine
	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "Watch panic: %v\n", r)
			}
			_ = reporter.Stop()
		}()

		hasher := fs.NewHasher()
		req := deployer.Request{Path: path, Kind: kind, TypeID: opts.TypeID}

		// The outcome has already been reported through the span; the error
		// only decides whether to keep the hash. A deploy failure forgets
		// it so a save of the same bytes retries instead of being skipped.
		var lastHash string
		deploy := func() {
			sum, hashErr := hasher.HashFile(path)
			if _, err := d.Deploy(gctx, req); err != nil {
				lastHash = ""
				return
			}
			if hashErr == nil {
				lastHash = sum
			}
		}

		// The session opens with a deploy of the current contents.
		deploy()

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-redeploy:
				sum, err := hasher.HashFile(path)
				if err == nil && lastHash != "" && sum == lastHash {
					// Same bytes as the last successful deploy.
					continue
				}
				deploy()
			}
		}
	})

	return g.Wait()
}

// ListOptions configuration for the List method.
type ListOptions struct {
	Hub     string
	Kind    string
	Timeout time.Duration
}

// List prints the hub's installed-code catalog, optionally filtered by a
// case-insensitive substring query. Without a kind it lists both namespaces.
func (a *App) List(ctx context.Context, query string, opts ListOptions) error {
	cfg, err := a.configLoader.Load(ctx, ".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	kinds := []domain.Kind{domain.KindApp, domain.KindDriver}
	if opts.Kind != "" {
		kind, err := domain.ParseKind(opts.Kind)
		if err != nil {
			return err
		}
		kinds = []domain.Kind{kind}
	}

	target := cfg.ResolveTarget(opts.Hub, opts.Timeout)
	client, err := a.newClient(target)
	if err != nil {
		return zerr.Wrap(err, "failed to create hub client")
	}

	for i, kind := range kinds {
		entries, err := client.ListTypes(ctx, kind)
		if err != nil {
			return err
		}
		if query != "" {
			entries = domain.MatchTypes(entries, query)
		}

		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		fmt.Fprintf(a.stdout, "%ss on %s:\n", kind, target.Host)
		if len(entries) == 0 {
			fmt.Fprintln(a.stdout, "  (none)")
			continue
		}
		for _, entry := range entries {
			fmt.Fprintf(a.stdout, "  %d: %s\n", entry.ID, entry.Name)
		}
	}
	return nil
}

// FetchOptions configuration for the Fetch method.
type FetchOptions struct {
	Hub     string
	Kind    string
	Output  string
	Timeout time.Duration
}

// Fetch downloads the hub's current source for one type, addressed by name
// or numeric id. The source goes to the output file when given, otherwise
// to stdout; the version note always goes to the log so piped output stays
// clean.
func (a *App) Fetch(ctx context.Context, nameOrID string, opts FetchOptions) error {
	cfg, err := a.configLoader.Load(ctx, ".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	kind, err := parseKindFlag(opts.Kind)
	if err != nil {
		return err
	}

	target := cfg.ResolveTarget(opts.Hub, opts.Timeout)
	client, err := a.newClient(target)
	if err != nil {
		return zerr.Wrap(err, "failed to create hub client")
	}

	entry, kind, err := resolveFetchTarget(ctx, client, kind, nameOrID)
	if err != nil {
		return err
	}

	revision, err := client.FetchCode(ctx, kind, entry.ID)
	if err != nil {
		return err
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(revision.Source), domain.FilePerm); err != nil {
			wrapped := zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
			return zerr.With(wrapped, "path", opts.Output)
		}
		a.logger.Info(fmt.Sprintf("wrote %s (version %d) to %s", entry.Name, revision.Version, opts.Output))
		return nil
	}

	a.logger.Info(fmt.Sprintf("%s (version %d)", entry.Name, revision.Version))
	if _, err := io.WriteString(a.stdout, revision.Source); err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	return nil
}

// resolveFetchTarget turns a name-or-id argument into a catalog entry. A
// numeric argument is taken verbatim, defaulting to the app namespace when
// no kind is given. A name without a kind searches apps first, then drivers.
func resolveFetchTarget(
	ctx context.Context,
	client ports.HubClient,
	kind domain.Kind,
	nameOrID string,
) (domain.TypeEntry, domain.Kind, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(nameOrID)); err == nil {
		if kind == "" {
			kind = domain.KindApp
		}
		return domain.TypeEntry{ID: id, Name: fmt.Sprintf("(ID %d)", id)}, kind, nil
	}

	kinds := []domain.Kind{kind}
	if kind == "" {
		kinds = []domain.Kind{domain.KindApp, domain.KindDriver}
	}

	var notFound error
	for _, k := range kinds {
		entries, err := client.ListTypes(ctx, k)
		if err != nil {
			return domain.TypeEntry{}, "", err
		}
		entry, err := domain.ResolveType(entries, nameOrID)
		if err == nil {
			return entry, k, nil
		}
		if !errors.Is(err, domain.ErrTypeNotFound) {
			// Ambiguity in one namespace ends the search.
			return domain.TypeEntry{}, "", err
		}
		notFound = err
	}
	return domain.TypeEntry{}, "", notFound
}

// setupTelemetry wires the reporter into a fresh tracer provider and returns
// the tracer deploys should run under. The caller owns the provider
// shutdown. With trace enabled, span lifecycle additionally mirrors into the
// structured log.
func (a *App) setupTelemetry(reporter ports.Reporter, trace bool) (ports.Tracer, *sdktrace.TracerProvider) {
	processors := []sdktrace.SpanProcessor{telemetry.NewBridge(reporter)}
	if trace {
		processors = append(processors, telemetry.NewLoggerBridge(a.logger))
	}

	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)

	// Register globally so the tracer adapter picks the provider up.
	otel.SetTracerProvider(tp)

	return telemetry.NewOTelTracer("hubdeploy").WithReporter(reporter), tp
}

func parseKindFlag(flag string) (domain.Kind, error) {
	if flag == "" {
		return "", nil
	}
	return domain.ParseKind(flag)
}
