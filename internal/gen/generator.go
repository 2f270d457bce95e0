package gen

import (
	"fmt"
	"log/slog"

	"protoref/internal/diagnostic"
	"protoref/internal/importing"
	"protoref/internal/manifest"
	"protoref/internal/wellknown"
)

// Config holds configuration for reference resolution.
type Config struct {
	// UnwrapWellKnown replaces wrapper types with native optional scalars.
	UnwrapWellKnown bool
	// WellKnownModule is the external module well-known types are imported from.
	WellKnownModule string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		UnwrapWellKnown: true,
		WellKnownModule: wellknown.DefaultModule,
	}
}

// Generator resolves the references of many output modules with one
// well-known table.
type Generator struct {
	config   Config
	resolver *importing.Resolver
	logger   *slog.Logger
}

// NewGenerator creates a Generator. A nil logger discards all output.
func NewGenerator(config Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{
		config:   config,
		resolver: importing.NewResolver(wellknown.NewTable(config.WellKnownModule)),
		logger:   logger,
	}
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.config
}

// NewModule starts a new output module in the dotted package pkg.
func (g *Generator) NewModule(pkg string) *Module {
	return NewModule(pkg, g.resolver, g.config.UnwrapWellKnown)
}

// ModuleResult is the outcome of resolving one manifest module.
type ModuleResult struct {
	Package     string
	Imports     []string
	ImportBlock string
	References  []Reference
}

// Run resolves every reference of a manifest. Settings in the manifest
// override the generator's configuration for this run only. Contract
// violations are reported as diagnostics; the remaining references are
// still resolved.
func (g *Generator) Run(f *manifest.File) ([]ModuleResult, diagnostic.Diagnostics) {
	run := g.forManifest(f)

	var diags diagnostic.Diagnostics

	results := make([]ModuleResult, 0, len(f.Modules))

	packages := make(map[string]bool, len(f.Modules))

	for _, mod := range f.Modules {
		if packages[mod.Package] {
			diags.AddWarning(diagnostic.CodeDuplicatePackage,
				"package listed more than once; each entry gets its own import block", mod.Package, "")
		}

		packages[mod.Package] = true

		m := run.NewModule(mod.Package)

		for _, ref := range mod.References {
			symbol, err := m.TypeRef(ref)
			if err != nil {
				run.logger.Debug("reference not resolved",
					"package", mod.Package, "reference", ref, "error", err)
				diags.AddResolveError(mod.Package, ref, err)

				continue
			}

			run.logger.Debug("reference resolved",
				"package", mod.Package, "reference", ref, "symbol", symbol)
		}

		block, err := m.ImportBlock()
		if err != nil {
			diags.AddError(diagnostic.CodeResolveFailed,
				fmt.Sprintf("rendering imports: %v", err), mod.Package, "")
		}

		results = append(results, ModuleResult{
			Package:     m.Package(),
			Imports:     m.Imports(),
			ImportBlock: block,
			References:  m.References(),
		})
	}

	return results, diags
}

// forManifest returns g, or a generator with the manifest overrides applied.
func (g *Generator) forManifest(f *manifest.File) *Generator {
	cfg := g.config
	if f.UnwrapWellKnown != nil {
		cfg.UnwrapWellKnown = *f.UnwrapWellKnown
	}

	if f.WellKnownModule != "" {
		cfg.WellKnownModule = f.WellKnownModule
	}

	if cfg == g.config {
		return g
	}

	return NewGenerator(cfg, g.logger)
}
