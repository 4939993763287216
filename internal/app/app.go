// Package app implements the application layer for droid.
package app

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"time"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	platform      ports.PlatformDefaultsProvider
	resolver      ports.Resolver
	fingerprinter ports.Fingerprinter
	store         ports.DescriptorStore
	emitter       ports.Emitter
	logger        ports.Logger
	now           func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	platform ports.PlatformDefaultsProvider,
	resolver ports.Resolver,
	fingerprinter ports.Fingerprinter,
	store ports.DescriptorStore,
	emitter ports.Emitter,
	logger ports.Logger,
) *App {
	return &App{
		configLoader:  loader,
		platform:      platform,
		resolver:      resolver,
		fingerprinter: fingerprinter,
		store:         store,
		emitter:       emitter,
		logger:        logger,
		now:           time.Now,
	}
}

// WithClock sets the clock used to timestamp stored records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// ValidateOptions selects the build file and the build type to check.
type ValidateOptions struct {
	// Path is a build file or a directory to search from.
	Path string
	// BuildType overrides the build type selected in the build file.
	BuildType string
	// AcknowledgeDebugSigning allows the selected build to use the debug key.
	AcknowledgeDebugSigning bool
}

// ResolveOptions configures a resolution run.
type ResolveOptions struct {
	ValidateOptions

	// Format is the output format, "json" or "yaml". Empty means json.
	Format string
	// NoStore skips writing the descriptor record.
	NoStore bool
	// Output receives the descriptor document. Nil means stdout.
	Output io.Writer
}

// Resolve resolves the build file and writes the descriptor document to opts.Output.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	format := opts.Format
	if format == "" {
		format = domain.FormatJSON
	}
	if format != domain.FormatJSON && format != domain.FormatYAML {
		return zerr.With(domain.ErrUnknownOutputFormat, "format", format)
	}

	raw, descriptor, err := a.resolve(ctx, opts.ValidateOptions)
	if err != nil {
		return err
	}

	record := domain.DescriptorRecord{
		BuildType:   descriptor.BuildType().String(),
		Fingerprint: a.fingerprinter.Fingerprint(descriptor),
		Timestamp:   a.now().UTC(),
		Descriptor:  descriptor.Document(),
	}

	a.reportChanges(raw.Dir, record)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if err := a.emitter.Emit(out, format, record.Descriptor); err != nil {
		return err
	}

	// The record is kept only for descriptors that were emitted.
	if opts.NoStore {
		return nil
	}
	if err := a.store.Put(raw.Dir, record); err != nil {
		return zerr.Wrap(err, "failed to store descriptor")
	}
	return nil
}

// Validate resolves the build file and reports whether it is valid without emitting anything.
func (a *App) Validate(ctx context.Context, opts ValidateOptions) error {
	_, descriptor, err := a.resolve(ctx, opts)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("%s (%s) is valid", descriptor.ApplicationID(), descriptor.BuildType()))
	return nil
}

func (a *App) resolve(ctx context.Context, opts ValidateOptions) (*domain.RawConfig, domain.BuildDescriptor, error) {
	path := opts.Path
	if path == "" {
		path = "."
	}

	// 1. Load the build file
	raw, err := a.configLoader.Load(ctx, path)
	if err != nil {
		return nil, domain.BuildDescriptor{}, zerr.Wrap(err, "failed to load configuration")
	}
	applyOverrides(raw, opts)

	// 2. Collect platform defaults
	defaults, err := a.platform.Defaults(ctx, raw.Dir)
	if err != nil {
		return nil, domain.BuildDescriptor{}, zerr.Wrap(err, "failed to read platform defaults")
	}

	// 3. Resolve
	descriptor, err := a.resolver.Resolve(*raw, defaults)
	if err != nil {
		return nil, domain.BuildDescriptor{}, err
	}

	if descriptor.Signing().Acknowledged {
		a.logger.Warn(fmt.Sprintf("%s build of %s is signed with the debug key",
			descriptor.BuildType(), descriptor.ApplicationID()))
	}

	return raw, descriptor, nil
}

// reportChanges compares record with the stored record of the same build type.
// A stored record that cannot be read is reported and otherwise ignored.
func (a *App) reportChanges(root string, record domain.DescriptorRecord) {
	previous, err := a.store.Get(root, record.BuildType)
	switch {
	case err != nil:
		a.logger.Warn(fmt.Sprintf("ignoring stored descriptor: %v", err))
	case previous == nil:
		a.logger.Info(fmt.Sprintf("resolved %s (%s)", record.Descriptor.ApplicationID, record.BuildType))
	case previous.Fingerprint == record.Fingerprint:
		a.logger.Info(fmt.Sprintf("%s (%s) unchanged", record.Descriptor.ApplicationID, record.BuildType))
	default:
		a.logger.Info(fmt.Sprintf("%s (%s) changed since %s",
			record.Descriptor.ApplicationID, record.BuildType, previous.Timestamp.Format(time.RFC3339)))
	}
}

// applyOverrides applies command line selections to raw.
// Acknowledging debug signing without a signing config selects the debug config.
func applyOverrides(raw *domain.RawConfig, opts ValidateOptions) {
	if opts.BuildType != "" {
		raw.BuildType = opts.BuildType
	}
	if !opts.AcknowledgeDebugSigning {
		return
	}

	buildType := raw.BuildType
	if buildType == "" {
		buildType = domain.BuildTypeDebug.String()
	}

	raw.BuildTypes = maps.Clone(raw.BuildTypes)
	if raw.BuildTypes == nil {
		raw.BuildTypes = make(map[string]domain.RawBuildType)
	}
	bt := raw.BuildTypes[buildType]
	if bt.SigningConfig == "" {
		bt.SigningConfig = domain.DebugSigningConfigName
	}
	bt.AcknowledgeDebugSigning = true
	raw.BuildTypes[buildType] = bt
}
