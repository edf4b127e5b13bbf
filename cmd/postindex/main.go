package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/postindex"
	"github.com/fwojciec/postindex/fs"
	pijson "github.com/fwojciec/postindex/json"
	"github.com/fwojciec/postindex/markdown"
	"github.com/fwojciec/postindex/reindex"
	pislog "github.com/fwojciec/postindex/slog"
	"github.com/fwojciec/postindex/sqlite"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getwd returns the directory the root search starts from.
	Getwd func() (string, error)

	// SQLite database used by the catalog, when enabled.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getwd: os.Getwd}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("postindex"),
		kong.Description("Regenerate the markdown and JSON indexes of a directory of blog posts"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"version": version},
		kong.Configuration(YAMLLoader, ".postindex.yaml"),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if wantsHelp(args) {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// The version flag has already printed.
	if cli.Version {
		return nil
	}

	labels, err := markdown.LabelsFor(cli.Locale)
	if err != nil {
		return err
	}

	wd, err := m.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	root, err := ResolveRoot(wd, cli.Root, cli.Posts)
	if err != nil {
		return err
	}

	// Wire dependencies
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	source, err := fs.NewPostSource(resolve(root, cli.Posts), cli.Exclude...)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Indexer: &reindex.Indexer{
			Source:  pislog.NewLoggingPostSource(source, logger),
			Writer:  pislog.NewLoggingFileWriter(fs.NewFileWriter(root), logger),
			Outputs: []reindex.Output{
				{Path: resolve(root, cli.Index), Renderer: markdown.NewRenderer(labels)},
				{Path: resolve(root, cli.JSON), Renderer: pijson.NewRenderer()},
			},
			Concurrency: cli.Jobs,
			DryRun:      cli.DryRun,
		},
	}

	if cli.DB != "" && !cli.DryRun {
		path := resolve(root, cli.DB)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create catalog directory: %w", err)
		}

		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set POSTINDEX_DB to use a different catalog path\n")
			return fmt.Errorf("failed to open catalog at %q: %w", m.DB.Path(), err)
		}
		defer m.Close()

		deps.Indexer.Catalog = pislog.NewLoggingCatalogService(sqlite.NewCatalogService(m.DB), logger)
	}

	cmd := &BuildCmd{
		Root:   root,
		Locale: cli.Locale,
	}
	return cmd.Run(deps)
}

// wantsHelp reports whether args ask for usage.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--help", "-h", "help":
			return true
		case "--":
			return false
		}
	}
	return false
}

// resolve joins relative paths to root.
func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// ResolveRoot returns the directory relative paths are resolved against.
// An explicit root wins. Otherwise the nearest ancestor of wd containing the
// posts directory is used, falling back to wd.
func ResolveRoot(wd, root, posts string) (string, error) {
	if root != "" {
		if !filepath.IsAbs(root) {
			root = filepath.Join(wd, root)
		}
		info, err := os.Stat(root)
		if err != nil {
			return "", postindex.Errorf(postindex.ENOTFOUND, "root %q not found", root)
		}
		if !info.IsDir() {
			return "", postindex.Errorf(postindex.EINVALID, "root %q is not a directory", root)
		}
		return filepath.Clean(root), nil
	}

	if filepath.IsAbs(posts) {
		return wd, nil
	}

	// Walk up from wd to find the posts directory
	dir := wd
	for {
		if info, err := os.Stat(filepath.Join(dir, posts)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}
