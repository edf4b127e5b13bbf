package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/postindex/reindex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Indexer *reindex.Indexer
}

// CLI defines the command-line interface structure for Kong.
// Every flag is optional; running without arguments uses the defaults.
type CLI struct {
	Root    string   `short:"r" env:"POSTINDEX_ROOT" help:"Repository root (default: nearest ancestor containing the posts directory)"`
	Posts   string   `short:"p" default:"content/posts" env:"POSTINDEX_POSTS" help:"Posts directory, relative to the root"`
	Index   string   `short:"o" default:".claude/knowledge/post-index.md" env:"POSTINDEX_INDEX" help:"Markdown index path, relative to the root"`
	JSON    string   `name:"json" short:"j" default:".claude/knowledge/posts.json" env:"POSTINDEX_JSON" help:"JSON metadata path, relative to the root"`
	DB      string   `name:"db" env:"POSTINDEX_DB" help:"SQLite catalog path, relative to the root (disabled when empty)"`
	Exclude []string `short:"x" sep:"none" help:"Skip post files whose name matches a glob (repeatable)"`
	Locale  string   `short:"l" default:"en" enum:"en,ko" env:"POSTINDEX_LOCALE" help:"Language of the markdown index headings (en, ko)"`
	Jobs    int      `short:"J" default:"1" env:"POSTINDEX_JOBS" help:"Number of posts read in parallel"`
	DryRun  bool     `short:"n" help:"Collect and report without writing any output"`
	Verbose bool     `short:"v" help:"Log every post read and output written"`

	Config  kong.ConfigFlag  `help:"Load flag values from a YAML file"`
	Version kong.VersionFlag `short:"V" help:"Print version and exit"`
}

// BuildCmd regenerates the index outputs.
type BuildCmd struct {
	Root   string
	Locale string
}
