// Package main provides the CLI entrypoint for maskfmt.
//
// maskfmt reads text line by line from stdin and writes each line rendered
// through an input mask:
//   - given inline with -mask "(###) ###-####"
//   - or by name from a YAML mask catalog with -catalog masks.yaml -name us_phone
//
// With -check it validates the catalog (names, patterns, samples) and exits;
// with -list it prints the catalog entries.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"inputmask/internal/catalog"
	"inputmask/internal/diagnostic"
	"inputmask/mask"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

type options struct {
	mask    string
	catalog string
	name    string
	check   bool
	list    bool
	verbose bool
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Optional .env next to the working directory, before flag defaults read the env
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.check || opts.list {
		return runCatalog(logger, opts, stdout)
	}

	p, err := resolvePattern(logger, opts)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, "maskfmt: one of -mask or -catalog with -name is required")
			return exitUsage
		}
		logger.Error("Failed to resolve mask", "error", err)
		return exitError
	}

	logger.Debug("Formatting stdin", "mask", p.String(), "capacity", p.Capacity())

	if err := formatLines(p, stdin, stdout); err != nil {
		logger.Error("Failed to format input", "error", err)
		return exitError
	}

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("maskfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.mask, "mask", "", "Mask pattern to apply, e.g. \"(###) ###-####\"")
	fs.StringVar(&opts.catalog, "catalog", getEnv("MASKFMT_CATALOG", ""), "Path to a YAML mask catalog")
	fs.StringVar(&opts.name, "name", "", "Name of the catalog mask to apply")
	fs.BoolVar(&opts.check, "check", false, "Validate the catalog and exit")
	fs.BoolVar(&opts.list, "list", false, "List the catalog masks and exit")
	fs.BoolVar(&opts.verbose, "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if (opts.check || opts.list) && opts.catalog == "" {
		fmt.Fprintln(stderr, "maskfmt: -check and -list require -catalog")
		return opts, errUsage
	}

	if opts.mask != "" && opts.name != "" {
		fmt.Fprintln(stderr, "maskfmt: -mask and -name are mutually exclusive")
		return opts, errUsage
	}

	return opts, nil
}

func resolvePattern(logger *slog.Logger, opts options) (*mask.Pattern, error) {
	if opts.mask != "" {
		return mask.Compile(opts.mask)
	}

	if opts.catalog == "" || opts.name == "" {
		return nil, errUsage
	}

	registry, err := loadRegistry(logger, opts.catalog)
	if err != nil {
		return nil, err
	}

	return registry.Lookup(opts.name)
}

func loadRegistry(logger *slog.Logger, path string) (*catalog.Registry, error) {
	cf, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}

	registry, diags := catalog.Compile(cf)
	logDiagnostics(logger, diags)

	if registry == nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, diags.Error())
	}

	logger.Debug("Loaded catalog", "path", path, "masks", registry.Len())

	return registry, nil
}

func runCatalog(logger *slog.Logger, opts options, stdout io.Writer) int {
	registry, err := loadRegistry(logger, opts.catalog)
	if err != nil {
		logger.Error("Catalog check failed", "path", opts.catalog, "error", err)
		return exitError
	}

	if opts.list {
		for _, name := range registry.Names() {
			p, _ := registry.Lookup(name)
			fmt.Fprintf(stdout, "%s\t%s\t%s\n", name, p.String(), registry.Description(name))
		}

		return exitOK
	}

	logger.Info("Catalog is valid", "path", opts.catalog, "masks", registry.Len())

	return exitOK
}

func logDiagnostics(logger *slog.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		attrs := []any{"code", d.Code, "mask", d.Mask, "field", d.Field}
		if len(d.Suggestions) > 0 {
			attrs = append(attrs, "suggestions", d.Suggestions)
		}

		switch d.Severity {
		case diagnostic.DiagnosticError:
			logger.Error(d.Message, attrs...)
		case diagnostic.DiagnosticWarning:
			logger.Warn(d.Message, attrs...)
		default:
			logger.Debug(d.Message, attrs...)
		}
	}
}

func formatLines(p *mask.Pattern, in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, p.Apply(scanner.Text())); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return w.Flush()
}
