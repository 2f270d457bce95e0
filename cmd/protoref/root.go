package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"protoref/internal/diagnostic"
	"protoref/internal/gen"
	"protoref/internal/logging"
	"protoref/internal/manifest"
	"protoref/internal/wellknown"
)

// errUnresolved is returned when at least one reference could not be resolved.
var errUnresolved = errors.New("unresolved references")

type rootOptions struct {
	logLevel        string
	logFormat       string
	noUnwrap        bool
	wellKnownModule string
}

func (o *rootOptions) config() gen.Config {
	cfg := gen.DefaultConfig()
	cfg.UnwrapWellKnown = !o.noUnwrap

	if o.wellKnownModule != "" {
		cfg.WellKnownModule = o.wellKnownModule
	}

	return cfg
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	return logging.New(w, logging.Config{Level: o.logLevel, Format: o.logFormat})
}

// newRootCmd creates the top-level protoref command.
func newRootCmd(version string, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "protoref",
		Short:         "Resolve schema type references for generated code",
		Long:          "protoref turns fully qualified schema type names into local symbols and relative import directives.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = version
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text|json")
	flags.BoolVar(&opts.noUnwrap, "no-unwrap", false, "keep wrapper types instead of native optional scalars")
	flags.StringVar(&opts.wellKnownModule, "well-known-module", "",
		"module well-known types are imported from (default "+wellknown.DefaultModule+")")

	cmd.AddCommand(newResolveCmd(opts), newRunCmd(opts), newWellKnownCmd(opts))

	return cmd
}

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var pkg string

	cmd := &cobra.Command{
		Use:   "resolve TYPE...",
		Short: "Resolve type references made from one package",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := &manifest.File{Modules: []manifest.Module{{Package: pkg, References: args}}}

			return runManifest(cmd, opts, f)
		},
	}

	cmd.Flags().StringVarP(&pkg, "package", "p", "", "dotted package of the referencing code")

	return cmd
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run MANIFEST",
		Short: "Resolve all modules of a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := manifest.LoadFile(args[0])
			if err != nil {
				return err
			}

			return runManifest(cmd, opts, f)
		},
	}
}

func newWellKnownCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "wellknown",
		Short: "List the well-known type table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.config()
			table := wellknown.NewTable(cfg.WellKnownModule)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, table.Import())

			for _, e := range table.Entries() {
				symbol, _ := table.Resolve(e, cfg.UnwrapWellKnown)
				fmt.Fprintf(out, "%s\t%s\t%s\n", e.Name, e.Kind, symbol)
			}

			return nil
		},
	}
}

func runManifest(cmd *cobra.Command, opts *rootOptions, f *manifest.File) error {
	g := gen.NewGenerator(opts.config(), opts.logger(cmd.ErrOrStderr()))

	results, diags := g.Run(f)
	out := cmd.OutOrStdout()

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}

		writeResult(out, r)
	}

	writeDiagnostics(cmd.ErrOrStderr(), diags)

	if err := diags.Error(); err != nil {
		return fmt.Errorf("%w: %w", errUnresolved, err)
	}

	return nil
}

func writeResult(w io.Writer, r gen.ModuleResult) {
	pkg := r.Package
	if pkg == "" {
		pkg = "<root>"
	}

	fmt.Fprintf(w, "# package %s\n", pkg)

	if r.ImportBlock != "" {
		fmt.Fprint(w, r.ImportBlock)
		fmt.Fprintln(w)
	}

	for _, ref := range r.References {
		fmt.Fprintf(w, "%s -> %s\n", ref.TypeName, ref.Symbol)
	}
}

func writeDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	for _, d := range diags.Errors {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
